package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/LucasBartista123/ProjetoSenai/internal/domain"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

type UserRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewUserRepository(sqlDB *sql.DB, logger zerolog.Logger) *UserRepository {
	return &UserRepository{db: sqlDB, logger: logger}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	now := time.Now()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, avatar, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.Username, user.Email, user.PasswordHash, user.Avatar, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted user id: %w", err)
	}

	r.logger.Debug().Int64("user_id", id).Str("username", user.Username).Msg("user created")
	return id, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, avatar, created_at, updated_at
		 FROM users WHERE id = ?`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, avatar, created_at, updated_at
		 FROM users WHERE email = ?`, email))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, avatar, created_at, updated_at
		 FROM users WHERE username = ?`, username))
}

// UsernameTaken reports whether another user already owns the username.
// excludeID skips the caller's own row on profile updates; pass 0 on
// registration.
func (r *UserRepository) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	return r.exists(ctx,
		`SELECT COUNT(1) FROM users WHERE username = ? AND id != ?`, username, excludeID)
}

func (r *UserRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	return r.exists(ctx,
		`SELECT COUNT(1) FROM users WHERE email = ? AND id != ?`, email, excludeID)
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = ?, email = ?, avatar = ?, updated_at = ? WHERE id = ?`,
		user.Username, user.Email, user.Avatar, time.Now(), user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	r.logger.Debug().Int64("user_id", user.ID).Msg("user updated")
	return nil
}

func (r *UserRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) scanOne(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.Avatar, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}
