package service

import (
	"context"
	"testing"

	"github.com/LucasBartista123/ProjetoSenai/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeClipStore struct {
	clips []domain.Clip
}

func (f *fakeClipStore) Create(ctx context.Context, clip *domain.Clip) error {
	clip.ID = "clip-1"
	f.clips = append(f.clips, *clip)
	return nil
}

func (f *fakeClipStore) ListRecent(ctx context.Context, limit int) ([]domain.Clip, error) {
	if len(f.clips) > limit {
		return f.clips[:limit], nil
	}
	return f.clips, nil
}

func (f *fakeClipStore) ListByUser(ctx context.Context, userID int64) ([]domain.Clip, error) {
	var out []domain.Clip
	for _, clip := range f.clips {
		if clip.UserID == userID {
			out = append(out, clip)
		}
	}
	return out, nil
}

func TestClipCreate(t *testing.T) {
	t.Parallel()

	store := &fakeClipStore{}
	svc := NewClipService(store, zerolog.Nop())

	clip, err := svc.Create(context.Background(), 7, "ace on mirage", "https://clips.example.com/v/abc")
	require.NoError(t, err)
	require.Equal(t, int64(7), clip.UserID)
	require.Len(t, store.clips, 1)
}

func TestClipCreate_InvalidURL(t *testing.T) {
	t.Parallel()

	store := &fakeClipStore{}
	svc := NewClipService(store, zerolog.Nop())

	for _, bad := range []string{"", "not a url", "ftp://example.com/x", "https://"} {
		_, err := svc.Create(context.Background(), 7, "title", bad)
		require.ErrorIs(t, err, ErrInvalidVideoURL, "url %q", bad)
	}
	require.Empty(t, store.clips, "invalid clips must not be stored")
}

func TestClipListByUser(t *testing.T) {
	t.Parallel()

	store := &fakeClipStore{clips: []domain.Clip{
		{ID: "a", UserID: 1},
		{ID: "b", UserID: 2},
		{ID: "c", UserID: 1},
	}}
	svc := NewClipService(store, zerolog.Nop())

	clips, err := svc.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, clips, 2)
}
