package server

import (
	"github.com/go-playground/validator/v10"
)

type registerForm struct {
	Username string `validate:"required,min=3,max=32"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=72"`
}

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type accountForm struct {
	Username string `validate:"required,min=3,max=32"`
	Email    string `validate:"required,email"`
}

type clipForm struct {
	Title    string `validate:"required,max=120"`
	VideoURL string `validate:"required,url"`
}

// fieldErrors flattens validator output into field → message pairs for
// the response body.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["form"] = err.Error()
		return out
	}

	for _, fe := range validationErrs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "this field is required"
		case "email":
			out[fe.Field()] = "must be a valid email address"
		case "url":
			out[fe.Field()] = "must be a valid URL"
		case "min":
			out[fe.Field()] = "too short (minimum " + fe.Param() + ")"
		case "max":
			out[fe.Field()] = "too long (maximum " + fe.Param() + ")"
		default:
			out[fe.Field()] = "invalid value"
		}
	}
	return out
}
