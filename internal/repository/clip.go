package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/LucasBartista123/ProjetoSenai/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type ClipRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewClipRepository(sqlDB *sql.DB, logger zerolog.Logger) *ClipRepository {
	return &ClipRepository{db: sqlDB, logger: logger}
}

func (r *ClipRepository) Create(ctx context.Context, clip *domain.Clip) error {
	if clip.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
		clip.ID = id
	}
	if clip.CreatedAt.IsZero() {
		clip.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO clips (id, user_id, title, video_url, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		clip.ID, clip.UserID, clip.Title, clip.VideoURL, clip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert clip: %w", err)
	}

	r.logger.Debug().Str("clip_id", clip.ID).Int64("user_id", clip.UserID).Msg("clip created")
	return nil
}

func (r *ClipRepository) ListRecent(ctx context.Context, limit int) ([]domain.Clip, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, video_url, created_at
		 FROM clips ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list clips: %w", err)
	}
	return scanClips(rows)
}

func (r *ClipRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Clip, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, video_url, created_at
		 FROM clips WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user clips: %w", err)
	}
	return scanClips(rows)
}

func scanClips(rows *sql.Rows) ([]domain.Clip, error) {
	defer rows.Close()

	var clips []domain.Clip
	for rows.Next() {
		var clip domain.Clip
		if err := rows.Scan(&clip.ID, &clip.UserID, &clip.Title, &clip.VideoURL, &clip.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan clip: %w", err)
		}
		clips = append(clips, clip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clips: %w", err)
	}
	return clips, nil
}
