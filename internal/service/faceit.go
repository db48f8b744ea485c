package service

import (
	"context"
	"errors"

	"github.com/LucasBartista123/ProjetoSenai/internal/api"
	"github.com/LucasBartista123/ProjetoSenai/internal/constants"
	"github.com/LucasBartista123/ProjetoSenai/internal/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// FaceitAPI is the slice of the FACEIT client the aggregator needs.
type FaceitAPI interface {
	SearchPlayer(ctx context.Context, steamID string) (*api.FaceitPlayerResponse, error)
	GetLifetimeStats(ctx context.Context, playerID string) (*api.FaceitStatsResponse, error)
	GetMatchHistory(ctx context.Context, playerID string) (*api.FaceitHistoryResponse, error)
	GetMatchStats(ctx context.Context, matchID string) (*api.FaceitMatchStatsResponse, error)
}

// FaceitService aggregates a player's FACEIT profile, lifetime stats and
// recent match history, enriching each history entry with the player's
// own line from the match-stats endpoint.
type FaceitService struct {
	faceit FaceitAPI
	logger zerolog.Logger
}

func NewFaceitService(faceit FaceitAPI, logger zerolog.Logger) *FaceitService {
	return &FaceitService{faceit: faceit, logger: logger}
}

// PlayerData returns nil when the player has no linked FACEIT account or
// when any transport failure interrupts the flow; both render as the same
// absent state. Non-200 answers on the stats and history lookups degrade
// to empty values instead, and a failed per-match detail lookup leaves
// that entry unenriched without stopping the loop.
func (s *FaceitService) PlayerData(ctx context.Context, steamID string) *domain.FaceitData {
	search, err := s.searchPlayer(ctx, steamID)
	if err != nil || search == nil {
		return nil
	}

	data := &domain.FaceitData{
		Profile: buildFaceitProfile(search),
		Stats:   map[string]any{},
	}

	stats, err := s.fetchLifetimeStats(ctx, search.PlayerID)
	if err != nil {
		return nil
	}
	if stats != nil {
		data.Stats = stats
	}

	history, aborted := s.fetchHistory(ctx, search.PlayerID)
	if aborted {
		return nil
	}
	if history == nil {
		data.History = []domain.HistoryEntry{}
		return data
	}

	entries, err := s.enrichHistory(ctx, search.PlayerID, history)
	if err != nil {
		s.logger.Warn().Err(err).Str("steam_id", steamID).Msg("history enrichment aborted")
		return nil
	}
	data.History = entries

	s.logger.Info().
		Str("steam_id", steamID).
		Str("player_id", search.PlayerID).
		Int("history_entries", len(entries)).
		Msg("faceit data aggregated")

	return data
}

func (s *FaceitService) searchPlayer(ctx context.Context, steamID string) (*api.FaceitPlayerResponse, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.faceit.SearchPlayer(apiCtx, steamID)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			s.logger.Debug().Int("status", statusErr.Code).Str("steam_id", steamID).Msg("no linked faceit account")
		} else {
			s.logger.Warn().Err(err).Str("steam_id", steamID).Msg("faceit player search failed")
		}
		return nil, err
	}
	if resp.PlayerID == "" {
		s.logger.Debug().Str("steam_id", steamID).Msg("faceit search returned no player id")
		return nil, nil
	}
	return resp, nil
}

func (s *FaceitService) fetchLifetimeStats(ctx context.Context, playerID string) (map[string]any, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.faceit.GetLifetimeStats(apiCtx, playerID)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			// Stats missing is not fatal; the profile still renders.
			s.logger.Debug().Int("status", statusErr.Code).Str("player_id", playerID).Msg("lifetime stats unavailable")
			return nil, nil
		}
		s.logger.Warn().Err(err).Str("player_id", playerID).Msg("lifetime stats lookup failed")
		return nil, err
	}
	return resp.Lifetime, nil
}

// fetchHistory returns (nil, false) when history is unavailable but the
// result should still render, and (nil, true) on transport failure.
func (s *FaceitService) fetchHistory(ctx context.Context, playerID string) (*api.FaceitHistoryResponse, bool) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.faceit.GetMatchHistory(apiCtx, playerID)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			s.logger.Debug().Int("status", statusErr.Code).Str("player_id", playerID).Msg("match history unavailable")
			return nil, false
		}
		s.logger.Warn().Err(err).Str("player_id", playerID).Msg("match history lookup failed")
		return nil, true
	}
	return resp, false
}

// enrichHistory fetches per-match details with a bounded worker group and
// writes results by input index, so the output order is always the
// provider's order regardless of completion order.
func (s *FaceitService) enrichHistory(ctx context.Context, playerID string, history *api.FaceitHistoryResponse) ([]domain.HistoryEntry, error) {
	items := history.Items
	if len(items) > constants.HistoryPageSize {
		items = items[:constants.HistoryPageSize]
	}

	entries := make([]domain.HistoryEntry, len(items))
	for i, item := range items {
		entries[i] = domain.HistoryEntry{
			MatchID:         item.MatchID,
			GameMode:        item.GameMode,
			CompetitionName: item.CompetitionName,
			Region:          item.Region,
			StartedAt:       item.StartedAt,
			FinishedAt:      item.FinishedAt,
			FaceitURL:       item.FaceitURL,
		}
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(constants.HistoryDetailWorkers)

	for i := range entries {
		matchID := entries[i].MatchID
		if matchID == "" {
			continue
		}
		g.Go(func() error {
			apiCtx, cancel := context.WithTimeout(gCtx, constants.ExternalAPITimeout)
			defer cancel()

			detail, err := s.faceit.GetMatchStats(apiCtx, matchID)
			if err != nil {
				var statusErr *api.StatusError
				if errors.As(err, &statusErr) {
					// Keep the raw entry and move on.
					s.logger.Debug().Int("status", statusErr.Code).Str("match_id", matchID).Msg("match stats unavailable")
					return nil
				}
				return err
			}

			if line, ok := extractMatchLine(detail, playerID); ok {
				entries[i].Stats = line
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

func buildFaceitProfile(resp *api.FaceitPlayerResponse) domain.FaceitProfile {
	profile := domain.FaceitProfile{
		PlayerID:  resp.PlayerID,
		Nickname:  resp.Nickname,
		Avatar:    resp.Avatar,
		Country:   resp.Country,
		FaceitURL: resp.FaceitURL,
	}
	if game, ok := resp.Games["cs2"]; ok {
		profile.SkillLevel = game.SkillLevel
		profile.FaceitElo = game.FaceitElo
	}
	return profile
}
