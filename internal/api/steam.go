package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/LucasBartista123/ProjetoSenai/internal/config"
	"github.com/LucasBartista123/ProjetoSenai/internal/constants"

	"github.com/valyala/fasthttp"
)

const steamBaseURL = "http://api.steampowered.com"

// SteamClient wraps the Steam Web API endpoints the tracker consumes.
// Authentication is an api key query parameter on every call.
type SteamClient struct {
	apiKey  string
	baseURL string
	client  *fasthttp.Client
}

func NewSteamClient(cfg *config.Config) *SteamClient {
	return &SteamClient{
		apiKey:  cfg.SteamAPIKey,
		baseURL: steamBaseURL,
		client:  newHTTPClient(),
	}
}

func (c *SteamClient) ResolveVanityURL(ctx context.Context, vanity string) (*VanityResponse, error) {
	u := fmt.Sprintf("%s/ISteamUser/ResolveVanityURL/v0001/?key=%s&vanityurl=%s",
		c.baseURL, c.apiKey, url.QueryEscape(vanity))
	return doRequest[VanityResponse](ctx, c.client, u, "")
}

func (c *SteamClient) GetPlayerSummaries(ctx context.Context, steamID string) (*PlayerSummariesResponse, error) {
	u := fmt.Sprintf("%s/ISteamUser/GetPlayerSummaries/v0002/?key=%s&steamids=%s",
		c.baseURL, c.apiKey, url.QueryEscape(steamID))
	return doRequest[PlayerSummariesResponse](ctx, c.client, u, "")
}

func (c *SteamClient) GetOwnedGames(ctx context.Context, steamID string) (*OwnedGamesResponse, error) {
	u := fmt.Sprintf("%s/IPlayerService/GetOwnedGames/v0001/?key=%s&steamid=%s&format=json&include_played_free_games=1",
		c.baseURL, c.apiKey, url.QueryEscape(steamID))
	return doRequest[OwnedGamesResponse](ctx, c.client, u, "")
}

func (c *SteamClient) GetUserStatsForGame(ctx context.Context, steamID string) (*UserStatsResponse, error) {
	u := fmt.Sprintf("%s/ISteamUserStats/GetUserStatsForGame/v0002/?key=%s&steamid=%s&appid=%d",
		c.baseURL, c.apiKey, url.QueryEscape(steamID), constants.CS2AppID)
	return doRequest[UserStatsResponse](ctx, c.client, u, "")
}

type VanityResponse struct {
	Response struct {
		Success int    `json:"success"`
		SteamID string `json:"steamid"`
		Message string `json:"message"`
	} `json:"response"`
}

type PlayerSummariesResponse struct {
	Response struct {
		Players []PlayerSummary `json:"players"`
	} `json:"response"`
}

type PlayerSummary struct {
	SteamID                  string `json:"steamid"`
	PersonaName              string `json:"personaname"`
	ProfileURL               string `json:"profileurl"`
	Avatar                   string `json:"avatar"`
	AvatarFull               string `json:"avatarfull"`
	PersonaState             int    `json:"personastate"`
	CommunityVisibilityState int    `json:"communityvisibilitystate"`
	LocCountryCode           string `json:"loccountrycode"`
	TimeCreated              int64  `json:"timecreated"`
}

type OwnedGamesResponse struct {
	Response struct {
		GameCount int `json:"game_count"`
		Games     []struct {
			AppID           int `json:"appid"`
			PlaytimeForever int `json:"playtime_forever"`
		} `json:"games"`
	} `json:"response"`
}

type UserStatsResponse struct {
	PlayerStats struct {
		SteamID  string `json:"steamID"`
		GameName string `json:"gameName"`
		Stats    []struct {
			Name  string `json:"name"`
			Value int64  `json:"value"`
		} `json:"stats"`
	} `json:"playerstats"`
}
