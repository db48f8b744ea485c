package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/LucasBartista123/ProjetoSenai/internal/api"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type matchStatsResult struct {
	resp *api.FaceitMatchStatsResponse
	err  error
}

type fakeFaceitAPI struct {
	search     *api.FaceitPlayerResponse
	searchErr  error
	stats      *api.FaceitStatsResponse
	statsErr   error
	history    *api.FaceitHistoryResponse
	historyErr error
	matchStats map[string]matchStatsResult
}

func (f *fakeFaceitAPI) SearchPlayer(ctx context.Context, steamID string) (*api.FaceitPlayerResponse, error) {
	return f.search, f.searchErr
}

func (f *fakeFaceitAPI) GetLifetimeStats(ctx context.Context, playerID string) (*api.FaceitStatsResponse, error) {
	return f.stats, f.statsErr
}

func (f *fakeFaceitAPI) GetMatchHistory(ctx context.Context, playerID string) (*api.FaceitHistoryResponse, error) {
	return f.history, f.historyErr
}

func (f *fakeFaceitAPI) GetMatchStats(ctx context.Context, matchID string) (*api.FaceitMatchStatsResponse, error) {
	result, ok := f.matchStats[matchID]
	if !ok {
		return nil, &api.StatusError{Code: 404}
	}
	return result.resp, result.err
}

const testPlayerID = "faceit-player-1"

func searchResult() *api.FaceitPlayerResponse {
	return &api.FaceitPlayerResponse{
		PlayerID: testPlayerID,
		Nickname: "tester",
		Games: map[string]struct {
			SkillLevel int    `json:"skill_level"`
			FaceitElo  int    `json:"faceit_elo"`
			Region     string `json:"region"`
		}{"cs2": {SkillLevel: 7, FaceitElo: 1643}},
	}
}

func historyOf(matchIDs ...string) *api.FaceitHistoryResponse {
	resp := &api.FaceitHistoryResponse{}
	for _, id := range matchIDs {
		resp.Items = append(resp.Items, api.FaceitHistoryItem{MatchID: id})
	}
	return resp
}

func matchStatsFor(playerID, result string) *api.FaceitMatchStatsResponse {
	return &api.FaceitMatchStatsResponse{
		Rounds: []api.FaceitRound{{
			RoundStats: map[string]any{"Score": "13 / 7", "Map": "de_mirage"},
			Teams: []api.FaceitTeam{{
				Players: []api.FaceitTeamPlayer{{
					PlayerID: playerID,
					PlayerStats: map[string]string{
						"Result": result, "Kills": "21", "Deaths": "14", "Assists": "5",
					},
				}},
			}},
		}},
	}
}

func TestFaceitPlayerData_SearchNotFound(t *testing.T) {
	t.Parallel()

	fake := &fakeFaceitAPI{searchErr: &api.StatusError{Code: 404}}
	svc := NewFaceitService(fake, zerolog.Nop())

	require.Nil(t, svc.PlayerData(context.Background(), "76561198000000001"))
}

func TestFaceitPlayerData_SearchTransportFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeFaceitAPI{searchErr: errors.New("connection refused")}
	svc := NewFaceitService(fake, zerolog.Nop())

	require.Nil(t, svc.PlayerData(context.Background(), "76561198000000001"))
}

func TestFaceitPlayerData_MissingPlayerID(t *testing.T) {
	t.Parallel()

	fake := &fakeFaceitAPI{search: &api.FaceitPlayerResponse{Nickname: "no-id"}}
	svc := NewFaceitService(fake, zerolog.Nop())

	require.Nil(t, svc.PlayerData(context.Background(), "76561198000000001"))
}

func TestFaceitPlayerData_StatsUnavailable(t *testing.T) {
	t.Parallel()

	fake := &fakeFaceitAPI{
		search:   searchResult(),
		statsErr: &api.StatusError{Code: 503},
		history:  historyOf(),
	}
	svc := NewFaceitService(fake, zerolog.Nop())

	data := svc.PlayerData(context.Background(), "76561198000000001")
	require.NotNil(t, data)
	require.Empty(t, data.Stats)
	require.Equal(t, 7, data.Profile.SkillLevel)
	require.Equal(t, 1643, data.Profile.FaceitElo)
}

func TestFaceitPlayerData_HistoryUnavailable(t *testing.T) {
	t.Parallel()

	fake := &fakeFaceitAPI{
		search:     searchResult(),
		stats:      &api.FaceitStatsResponse{Lifetime: map[string]any{"Matches": "100"}},
		historyErr: &api.StatusError{Code: 404},
	}
	svc := NewFaceitService(fake, zerolog.Nop())

	data := svc.PlayerData(context.Background(), "76561198000000001")
	require.NotNil(t, data)
	require.Empty(t, data.History)
	require.Equal(t, "100", data.Stats["Matches"])
}

func TestFaceitPlayerData_PartialEnrichment(t *testing.T) {
	t.Parallel()

	fake := &fakeFaceitAPI{
		search:  searchResult(),
		stats:   &api.FaceitStatsResponse{Lifetime: map[string]any{}},
		history: historyOf("m1", "m2", "m3"),
		matchStats: map[string]matchStatsResult{
			"m1": {resp: matchStatsFor(testPlayerID, "1")},
			"m2": {err: &api.StatusError{Code: 500}},
			"m3": {resp: matchStatsFor(testPlayerID, "0")},
		},
	}
	svc := NewFaceitService(fake, zerolog.Nop())

	data := svc.PlayerData(context.Background(), "76561198000000001")
	require.NotNil(t, data)
	require.Len(t, data.History, 3)

	require.Equal(t, "m1", data.History[0].MatchID)
	require.Equal(t, "m2", data.History[1].MatchID)
	require.Equal(t, "m3", data.History[2].MatchID)

	require.NotNil(t, data.History[0].Stats)
	require.Equal(t, "won", data.History[0].Stats.Result)
	require.Equal(t, "21", data.History[0].Stats.Kills)
	require.Equal(t, "13 / 7", data.History[0].Stats.Score)
	require.Equal(t, "de_mirage", data.History[0].Stats.Map)

	require.Nil(t, data.History[1].Stats, "failed detail lookup keeps the raw entry")

	require.NotNil(t, data.History[2].Stats)
	require.Equal(t, "lost", data.History[2].Stats.Result)
}

func TestFaceitPlayerData_DetailTransportFailureAborts(t *testing.T) {
	t.Parallel()

	fake := &fakeFaceitAPI{
		search:  searchResult(),
		stats:   &api.FaceitStatsResponse{Lifetime: map[string]any{}},
		history: historyOf("m1", "m2"),
		matchStats: map[string]matchStatsResult{
			"m1": {resp: matchStatsFor(testPlayerID, "1")},
			"m2": {err: errors.New("read timeout")},
		},
	}
	svc := NewFaceitService(fake, zerolog.Nop())

	require.Nil(t, svc.PlayerData(context.Background(), "76561198000000001"))
}

func TestFaceitPlayerData_HistoryCapped(t *testing.T) {
	t.Parallel()

	var ids []string
	for i := 0; i < 15; i++ {
		ids = append(ids, fmt.Sprintf("m%d", i))
	}
	fake := &fakeFaceitAPI{
		search:  searchResult(),
		stats:   &api.FaceitStatsResponse{Lifetime: map[string]any{}},
		history: historyOf(ids...),
	}
	svc := NewFaceitService(fake, zerolog.Nop())

	data := svc.PlayerData(context.Background(), "76561198000000001")
	require.NotNil(t, data)
	require.Len(t, data.History, 10)
}
