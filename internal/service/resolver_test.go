package service

import (
	"context"
	"errors"
	"testing"

	"github.com/LucasBartista123/ProjetoSenai/internal/api"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeVanityResolver struct {
	calls    int
	response *api.VanityResponse
	err      error
}

func (f *fakeVanityResolver) ResolveVanityURL(ctx context.Context, vanity string) (*api.VanityResponse, error) {
	f.calls++
	return f.response, f.err
}

func vanitySuccess(steamID string) *api.VanityResponse {
	resp := &api.VanityResponse{}
	resp.Response.Success = 1
	resp.Response.SteamID = steamID
	return resp
}

func TestResolve_NumericIDPassthrough(t *testing.T) {
	t.Parallel()

	fake := &fakeVanityResolver{err: errors.New("should not be called")}
	svc := NewResolverService(fake, zerolog.Nop())

	for _, query := range []string{
		"76561198000000001",
		"https://steamcommunity.com/profiles/76561198000000001",
		"76561198000000001/",
	} {
		id, ok := svc.Resolve(context.Background(), query)
		require.True(t, ok, "query %q", query)
		require.Equal(t, "76561198000000001", id)
	}
	require.Zero(t, fake.calls, "canonical ids must not trigger a lookup")
}

func TestResolve_VanityName(t *testing.T) {
	t.Parallel()

	fake := &fakeVanityResolver{response: vanitySuccess("76561198000000042")}
	svc := NewResolverService(fake, zerolog.Nop())

	id, ok := svc.Resolve(context.Background(), "https://steamcommunity.com/id/examplevanity/")
	require.True(t, ok)
	require.Equal(t, "76561198000000042", id)
	require.Equal(t, 1, fake.calls)
}

func TestResolve_VanityNotFound(t *testing.T) {
	t.Parallel()

	resp := &api.VanityResponse{}
	resp.Response.Success = 42
	fake := &fakeVanityResolver{response: resp}
	svc := NewResolverService(fake, zerolog.Nop())

	id, ok := svc.Resolve(context.Background(), "nosuchname")
	require.False(t, ok)
	require.Empty(t, id)
	require.Equal(t, 1, fake.calls)
}

func TestResolve_TransportFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeVanityResolver{err: errors.New("connection refused")}
	svc := NewResolverService(fake, zerolog.Nop())

	id, ok := svc.Resolve(context.Background(), "examplevanity")
	require.False(t, ok)
	require.Empty(t, id)
	require.Equal(t, 1, fake.calls)
}

func TestResolve_ShortNumericIsVanity(t *testing.T) {
	t.Parallel()

	// 16 digits is not canonical and must go through the lookup.
	fake := &fakeVanityResolver{response: vanitySuccess("76561198000000099")}
	svc := NewResolverService(fake, zerolog.Nop())

	id, ok := svc.Resolve(context.Background(), "7656119800000009")
	require.True(t, ok)
	require.Equal(t, "76561198000000099", id)
	require.Equal(t, 1, fake.calls)
}
