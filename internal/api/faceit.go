package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/LucasBartista123/ProjetoSenai/internal/config"
	"github.com/LucasBartista123/ProjetoSenai/internal/constants"

	"github.com/valyala/fasthttp"
)

const faceitBaseURL = "https://open.faceit.com/data/v4"

// FaceitClient wraps the FACEIT open data API, authenticated with a
// bearer token on every call.
type FaceitClient struct {
	authorization string
	baseURL       string
	client        *fasthttp.Client
}

func NewFaceitClient(cfg *config.Config) *FaceitClient {
	return &FaceitClient{
		authorization: "Bearer " + cfg.FaceitAPIKey,
		baseURL:       faceitBaseURL,
		client:        newHTTPClient(),
	}
}

func (c *FaceitClient) SearchPlayer(ctx context.Context, steamID string) (*FaceitPlayerResponse, error) {
	u := fmt.Sprintf("%s/players?game=cs2&game_player_id=%s", c.baseURL, url.QueryEscape(steamID))
	return doRequest[FaceitPlayerResponse](ctx, c.client, u, c.authorization)
}

func (c *FaceitClient) GetLifetimeStats(ctx context.Context, playerID string) (*FaceitStatsResponse, error) {
	u := fmt.Sprintf("%s/players/%s/stats/cs2", c.baseURL, url.PathEscape(playerID))
	return doRequest[FaceitStatsResponse](ctx, c.client, u, c.authorization)
}

func (c *FaceitClient) GetMatchHistory(ctx context.Context, playerID string) (*FaceitHistoryResponse, error) {
	u := fmt.Sprintf("%s/players/%s/history?game=cs2&offset=0&limit=%d",
		c.baseURL, url.PathEscape(playerID), constants.HistoryPageSize)
	return doRequest[FaceitHistoryResponse](ctx, c.client, u, c.authorization)
}

func (c *FaceitClient) GetMatchStats(ctx context.Context, matchID string) (*FaceitMatchStatsResponse, error) {
	u := fmt.Sprintf("%s/matches/%s/stats", c.baseURL, url.PathEscape(matchID))
	return doRequest[FaceitMatchStatsResponse](ctx, c.client, u, c.authorization)
}

type FaceitPlayerResponse struct {
	PlayerID  string `json:"player_id"`
	Nickname  string `json:"nickname"`
	Avatar    string `json:"avatar"`
	Country   string `json:"country"`
	FaceitURL string `json:"faceit_url"`
	Games     map[string]struct {
		SkillLevel int    `json:"skill_level"`
		FaceitElo  int    `json:"faceit_elo"`
		Region     string `json:"region"`
	} `json:"games"`
}

type FaceitStatsResponse struct {
	PlayerID string         `json:"player_id"`
	GameID   string         `json:"game_id"`
	Lifetime map[string]any `json:"lifetime"`
}

type FaceitHistoryResponse struct {
	Items []FaceitHistoryItem `json:"items"`
	Start int                 `json:"start"`
	End   int                 `json:"end"`
}

type FaceitHistoryItem struct {
	MatchID         string `json:"match_id"`
	GameMode        string `json:"game_mode"`
	CompetitionName string `json:"competition_name"`
	Region          string `json:"region"`
	StartedAt       int64  `json:"started_at"`
	FinishedAt      int64  `json:"finished_at"`
	FaceitURL       string `json:"faceit_url"`
}

type FaceitMatchStatsResponse struct {
	Rounds []FaceitRound `json:"rounds"`
}

type FaceitRound struct {
	RoundStats map[string]any `json:"round_stats"`
	Teams      []FaceitTeam   `json:"teams"`
}

type FaceitTeam struct {
	TeamID  string             `json:"team_id"`
	Players []FaceitTeamPlayer `json:"players"`
}

type FaceitTeamPlayer struct {
	PlayerID    string            `json:"player_id"`
	Nickname    string            `json:"nickname"`
	PlayerStats map[string]string `json:"player_stats"`
}
