package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/LucasBartista123/ProjetoSenai/internal/config"
	"github.com/LucasBartista123/ProjetoSenai/internal/constants"
	"github.com/LucasBartista123/ProjetoSenai/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already in use")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserStore is the repository surface the account service depends on.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, user *domain.User) error
}

// AvatarUpload is an uploaded profile picture ready to be stored.
type AvatarUpload struct {
	Filename string
	Data     io.Reader
}

type AccountService struct {
	users     UserStore
	uploadDir string
	logger    zerolog.Logger
}

func NewAccountService(users UserStore, cfg *config.Config, logger zerolog.Logger) *AccountService {
	return &AccountService{users: users, uploadDir: cfg.UploadDir, logger: logger}
}

// Register creates a user with a bcrypt password hash. Duplicate username
// or email is rejected before anything is written.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.checkUniqueness(ctx, username, email, 0); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Avatar:       constants.DefaultAvatar,
	}

	user.ID, err = s.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().Int64("user_id", user.ID).Str("username", username).Msg("user registered")
	return user, nil
}

// Authenticate verifies the email/password pair. Unknown email and wrong
// password yield the same error.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// UpdateProfile changes username/email, re-checking uniqueness with the
// caller's own row excluded, and optionally stores a new avatar.
func (s *AccountService) UpdateProfile(ctx context.Context, userID int64, username, email string, avatar *AvatarUpload) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.checkUniqueness(ctx, username, email, userID); err != nil {
		return nil, err
	}

	user.Username = username
	user.Email = email

	if avatar != nil {
		filename, err := s.saveAvatar(avatar)
		if err != nil {
			return nil, err
		}
		user.Avatar = filename
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info().Int64("user_id", userID).Msg("profile updated")
	return user, nil
}

// Profile returns the public record for one username.
func (s *AccountService) Profile(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.users.GetByUsername(ctx, username)
}

// Get returns the user for a session's user id.
func (s *AccountService) Get(ctx context.Context, userID int64) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.users.GetByID(ctx, userID)
}

func (s *AccountService) checkUniqueness(ctx context.Context, username, email string, excludeID int64) error {
	taken, err := s.users.UsernameTaken(ctx, username, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return ErrUsernameTaken
	}

	taken, err = s.users.EmailTaken(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return ErrEmailTaken
	}
	return nil
}

func (s *AccountService) saveAvatar(avatar *AvatarUpload) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("failed to generate avatar name: %w", err)
	}

	ext := filepath.Ext(avatar.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	filename := id + ext

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.uploadDir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create avatar file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(avatar.Data, constants.MaxAvatarBytes)); err != nil {
		return "", fmt.Errorf("failed to write avatar file: %w", err)
	}

	return filename, nil
}
