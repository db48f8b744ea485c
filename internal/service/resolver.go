package service

import (
	"context"
	"strings"

	"github.com/LucasBartista123/ProjetoSenai/internal/api"
	"github.com/LucasBartista123/ProjetoSenai/internal/constants"

	"github.com/rs/zerolog"
)

// VanityResolver is the slice of the Steam client the resolver needs.
type VanityResolver interface {
	ResolveVanityURL(ctx context.Context, vanity string) (*api.VanityResponse, error)
}

// ResolverService turns free-form user input (vanity name, profile URL or
// a raw 17-digit id) into a canonical SteamID64.
type ResolverService struct {
	steam  VanityResolver
	logger zerolog.Logger
}

func NewResolverService(steam VanityResolver, logger zerolog.Logger) *ResolverService {
	return &ResolverService{steam: steam, logger: logger}
}

// Resolve returns the canonical id and true, or "" and false when the
// input cannot be resolved. A 17-digit numeric identifier is already
// canonical and resolves without any network call; everything else costs
// exactly one vanity lookup. Lookup failures are logged, never returned.
func (s *ResolverService) Resolve(ctx context.Context, query string) (string, bool) {
	trimmed := strings.TrimRight(query, "/")
	identifier := trimmed
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		identifier = trimmed[idx+1:]
	}

	if isSteamID64(identifier) {
		return identifier, true
	}

	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.steam.ResolveVanityURL(ctx, identifier)
	if err != nil {
		s.logger.Warn().Err(err).Str("identifier", identifier).Msg("vanity resolution failed")
		return "", false
	}
	if resp.Response.Success != 1 {
		s.logger.Debug().
			Int("success", resp.Response.Success).
			Str("identifier", identifier).
			Msg("vanity name not found")
		return "", false
	}

	return resp.Response.SteamID, true
}

func isSteamID64(s string) bool {
	if len(s) != constants.SteamIDLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
