package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/LucasBartista123/ProjetoSenai/internal/api"
	"github.com/LucasBartista123/ProjetoSenai/internal/constants"
	"github.com/LucasBartista123/ProjetoSenai/internal/domain"

	"github.com/rs/zerolog"
)

var (
	// ErrEmptySteamID is returned before any lookup when the id is blank.
	ErrEmptySteamID = errors.New("player id not found")

	// ErrPlayerNotFound is returned when the summary lookup knows no such id.
	ErrPlayerNotFound = errors.New("player not found for this id")
)

// SteamAPI is the slice of the Steam client the aggregator needs.
type SteamAPI interface {
	GetPlayerSummaries(ctx context.Context, steamID string) (*api.PlayerSummariesResponse, error)
	GetOwnedGames(ctx context.Context, steamID string) (*api.OwnedGamesResponse, error)
	GetUserStatsForGame(ctx context.Context, steamID string) (*api.UserStatsResponse, error)
}

// SteamService merges the three Steam lookups (summary, owned games,
// per-game stats) into one record.
type SteamService struct {
	steam  SteamAPI
	logger zerolog.Logger
}

func NewSteamService(steam SteamAPI, logger zerolog.Logger) *SteamService {
	return &SteamService{steam: steam, logger: logger}
}

// PlayerData runs the three lookups sequentially. An empty player list
// from the summary call aborts before the remaining lookups; any
// transport failure aborts immediately and discards partial results.
// Hidden stats are a valid state, not an error.
func (s *SteamService) PlayerData(ctx context.Context, steamID string) (*domain.SteamData, error) {
	if steamID == "" {
		return nil, ErrEmptySteamID
	}

	summary, err := s.fetchSummary(ctx, steamID)
	if err != nil {
		return nil, err
	}

	data := &domain.SteamData{
		Profile: domain.SteamProfile{
			SteamID:      summary.SteamID,
			PersonaName:  summary.PersonaName,
			ProfileURL:   summary.ProfileURL,
			Avatar:       summary.Avatar,
			AvatarFull:   summary.AvatarFull,
			CountryCode:  summary.LocCountryCode,
			PersonaState: summary.PersonaState,
			TimeCreated:  summary.TimeCreated,
		},
	}

	data.PlaytimeHours, err = s.fetchPlaytime(ctx, steamID)
	if err != nil {
		return nil, err
	}

	data.Stats, data.StatsPublic, err = s.fetchStats(ctx, steamID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("steam_id", steamID).
		Int("playtime_hours", data.PlaytimeHours).
		Bool("stats_public", data.StatsPublic).
		Msg("steam data aggregated")

	return data, nil
}

func (s *SteamService) fetchSummary(ctx context.Context, steamID string) (*api.PlayerSummary, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.steam.GetPlayerSummaries(apiCtx, steamID)
	if err != nil {
		s.logger.Error().Err(err).Str("steam_id", steamID).Msg("failed to fetch player summary")
		return nil, fmt.Errorf("failed to fetch player summary: %w", err)
	}
	if len(resp.Response.Players) == 0 {
		return nil, ErrPlayerNotFound
	}
	return &resp.Response.Players[0], nil
}

func (s *SteamService) fetchPlaytime(ctx context.Context, steamID string) (int, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.steam.GetOwnedGames(apiCtx, steamID)
	if err != nil {
		s.logger.Error().Err(err).Str("steam_id", steamID).Msg("failed to fetch owned games")
		return 0, fmt.Errorf("failed to fetch owned games: %w", err)
	}

	// An absent game list means a private profile; playtime stays 0.
	for _, game := range resp.Response.Games {
		if game.AppID == constants.CS2AppID {
			return roundMinutesToHours(game.PlaytimeForever), nil
		}
	}
	return 0, nil
}

func (s *SteamService) fetchStats(ctx context.Context, steamID string) (map[string]int64, bool, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.steam.GetUserStatsForGame(apiCtx, steamID)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			// Steam answers non-200 when per-game stats are hidden.
			s.logger.Debug().Int("status", statusErr.Code).Str("steam_id", steamID).Msg("user stats not visible")
			return nil, false, nil
		}
		s.logger.Error().Err(err).Str("steam_id", steamID).Msg("failed to fetch user stats")
		return nil, false, fmt.Errorf("failed to fetch user stats: %w", err)
	}

	if len(resp.PlayerStats.Stats) == 0 {
		// Private stats; not an error.
		return nil, false, nil
	}

	stats := make(map[string]int64, len(resp.PlayerStats.Stats))
	for _, stat := range resp.PlayerStats.Stats {
		stats[stat.Name] = stat.Value
	}
	return stats, true, nil
}

// roundMinutesToHours converts reported minutes to hours, rounding half up.
func roundMinutesToHours(minutes int) int {
	return (minutes + 30) / 60
}
