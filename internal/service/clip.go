package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/LucasBartista123/ProjetoSenai/internal/constants"
	"github.com/LucasBartista123/ProjetoSenai/internal/domain"

	"github.com/rs/zerolog"
)

var ErrInvalidVideoURL = errors.New("video url must be a valid http(s) address")

// ClipStore is the repository surface the clip service depends on.
type ClipStore interface {
	Create(ctx context.Context, clip *domain.Clip) error
	ListRecent(ctx context.Context, limit int) ([]domain.Clip, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Clip, error)
}

type ClipService struct {
	clips  ClipStore
	logger zerolog.Logger
}

func NewClipService(clips ClipStore, logger zerolog.Logger) *ClipService {
	return &ClipService{clips: clips, logger: logger}
}

// Create inserts a clip for its owner. Clips are immutable after
// creation; there is no update or delete path.
func (s *ClipService) Create(ctx context.Context, ownerID int64, title, videoURL string) (*domain.Clip, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	parsed, err := url.Parse(videoURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, ErrInvalidVideoURL
	}

	clip := &domain.Clip{
		UserID:   ownerID,
		Title:    title,
		VideoURL: videoURL,
	}
	if err := s.clips.Create(ctx, clip); err != nil {
		return nil, fmt.Errorf("failed to create clip: %w", err)
	}

	s.logger.Info().Str("clip_id", clip.ID).Int64("user_id", ownerID).Msg("clip posted")
	return clip, nil
}

func (s *ClipService) ListRecent(ctx context.Context, limit int) ([]domain.Clip, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.clips.ListRecent(ctx, limit)
}

func (s *ClipService) ListByUser(ctx context.Context, userID int64) ([]domain.Clip, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.clips.ListByUser(ctx, userID)
}
