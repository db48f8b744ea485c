package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/LucasBartista123/ProjetoSenai/internal/auth"
	"github.com/LucasBartista123/ProjetoSenai/internal/constants"
	"github.com/LucasBartista123/ProjetoSenai/internal/domain"
	"github.com/LucasBartista123/ProjetoSenai/internal/middleware"
	"github.com/LucasBartista123/ProjetoSenai/internal/repository"
	"github.com/LucasBartista123/ProjetoSenai/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Server owns the HTTP handlers for the tracker and the account/clip
// subsystem.
type Server struct {
	resolverSvc *service.ResolverService
	profileSvc  *service.ProfileService
	accountSvc  *service.AccountService
	clipSvc     *service.ClipService
	sessions    *auth.SessionManager
	validate    *validator.Validate
	logger      zerolog.Logger
}

func New(
	resolverSvc *service.ResolverService,
	profileSvc *service.ProfileService,
	accountSvc *service.AccountService,
	clipSvc *service.ClipService,
	sessions *auth.SessionManager,
	logger zerolog.Logger,
) *Server {
	return &Server{
		resolverSvc: resolverSvc,
		profileSvc:  profileSvc,
		accountSvc:  accountSvc,
		clipSvc:     clipSvc,
		sessions:    sessions,
		validate:    validator.New(),
		logger:      logger,
	}
}

// Routes registers every handler on the mux. Session-protected routes are
// wrapped here so main only stacks the global middleware.
func (s *Server) Routes(mux *http.ServeMux) {
	protected := middleware.RequireSession(s.sessions, s.logger)

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /perfil/{id}", s.handleProfile)
	mux.HandleFunc("GET /register", s.handleRegisterForm)
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("GET /login", s.handleLoginForm)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.Handle("GET /logout", protected(http.HandlerFunc(s.handleLogout)))
	mux.Handle("GET /account", protected(http.HandlerFunc(s.handleAccount)))
	mux.Handle("POST /account", protected(http.HandlerFunc(s.handleAccountUpdate)))
	mux.HandleFunc("GET /user/{username}", s.handleUserPage)
	mux.Handle("GET /postar-clipe", protected(http.HandlerFunc(s.handleClipForm)))
	mux.Handle("POST /postar-clipe", protected(http.HandlerFunc(s.handleClipCreate)))
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	clips, err := s.clipSvc.ListRecent(r.Context(), constants.HomeClipLimit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list clips")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	payload := map[string]any{"clips": clipPayloads(clips)}
	if claims := s.currentSession(r); claims != nil {
		payload["user"] = map[string]any{"id": claims.UserID, "username": claims.Username}
	}
	s.writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	steamID, ok := s.resolverSvc.Resolve(r.Context(), query)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/perfil/"+steamID, http.StatusSeeOther)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	steamID := r.PathValue("id")

	view, err := s.profileSvc.PlayerView(r.Context(), steamID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrEmptySteamID) || errors.Is(err, service.ErrPlayerNotFound) {
			status = http.StatusNotFound
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		fmt.Fprintf(w, "Erro: %s", err)
		return
	}

	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"form":   "register",
		"fields": []string{"username", "email", "password"},
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := registerForm{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := s.validate.Struct(form); err != nil {
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": fieldErrors(err)})
		return
	}

	if _, err := s.accountSvc.Register(r.Context(), form.Username, form.Email, form.Password); err != nil {
		s.writeAccountError(w, err)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"form":   "login",
		"fields": []string{"email", "password"},
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := loginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := s.validate.Struct(form); err != nil {
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": fieldErrors(err)})
		return
	}

	user, err := s.accountSvc.Authenticate(r.Context(), form.Email, form.Password)
	if err != nil {
		s.writeJSON(w, http.StatusUnauthorized, map[string]any{"errors": map[string]string{"form": "invalid email or password"}})
		return
	}

	token, err := s.sessions.Issue(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to issue session token")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.sessions.SetCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAccount(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetSession(r.Context())

	user, err := s.accountSvc.Get(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, userPayload(user))
}

func (s *Server) handleAccountUpdate(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetSession(r.Context())

	if err := r.ParseMultipartForm(constants.MaxAvatarBytes); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := accountForm{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
	}
	if err := s.validate.Struct(form); err != nil {
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": fieldErrors(err)})
		return
	}

	var avatar *service.AvatarUpload
	if file, header, err := r.FormFile("avatar"); err == nil {
		defer file.Close()
		avatar = &service.AvatarUpload{Filename: header.Filename, Data: file}
	}

	user, err := s.accountSvc.UpdateProfile(r.Context(), claims.UserID, form.Username, form.Email, avatar)
	if err != nil {
		s.writeAccountError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, userPayload(user))
}

func (s *Server) handleUserPage(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	user, err := s.accountSvc.Profile(r.Context(), username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		s.logger.Error().Err(err).Str("username", username).Msg("failed to load user page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	clips, err := s.clipSvc.ListByUser(r.Context(), user.ID)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to list user clips")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"user":  userPayload(user),
		"clips": clipPayloads(clips),
	})
}

func (s *Server) handleClipForm(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"form":   "clip",
		"fields": []string{"title", "video_url"},
	})
}

func (s *Server) handleClipCreate(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetSession(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := clipForm{
		Title:    r.PostFormValue("title"),
		VideoURL: r.PostFormValue("video_url"),
	}
	if err := s.validate.Struct(form); err != nil {
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": fieldErrors(err)})
		return
	}

	if _, err := s.clipSvc.Create(r.Context(), claims.UserID, form.Title, form.VideoURL); err != nil {
		if errors.Is(err, service.ErrInvalidVideoURL) {
			s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": map[string]string{"VideoURL": err.Error()}})
			return
		}
		s.logger.Error().Err(err).Int64("user_id", claims.UserID).Msg("failed to create clip")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// currentSession reads the cookie on routes where a session is optional.
func (s *Server) currentSession(r *http.Request) *auth.Claims {
	cookie, err := r.Cookie(constants.SessionCookie)
	if err != nil {
		return nil
	}
	claims, err := s.sessions.Validate(cookie.Value)
	if err != nil {
		return nil
	}
	return claims
}

func (s *Server) writeAccountError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": map[string]string{"Username": err.Error()}})
	case errors.Is(err, service.ErrEmailTaken):
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": map[string]string{"Email": err.Error()}})
	default:
		s.logger.Error().Err(err).Msg("account operation failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func userPayload(user *domain.User) map[string]any {
	return map[string]any{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"avatar":     user.Avatar,
		"created_at": user.CreatedAt,
	}
}

func clipPayloads(clips []domain.Clip) []map[string]any {
	out := make([]map[string]any, 0, len(clips))
	for _, clip := range clips {
		out = append(out, map[string]any{
			"id":         clip.ID,
			"user_id":    clip.UserID,
			"title":      clip.Title,
			"video_url":  clip.VideoURL,
			"created_at": clip.CreatedAt,
		})
	}
	return out
}
