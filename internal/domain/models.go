package domain

import (
	"time"
)

// SteamProfile is the subset of a GetPlayerSummaries entry the tracker renders.
type SteamProfile struct {
	SteamID      string `json:"steamid"`
	PersonaName  string `json:"personaname"`
	ProfileURL   string `json:"profileurl"`
	Avatar       string `json:"avatar"`
	AvatarFull   string `json:"avatarfull"`
	CountryCode  string `json:"loccountrycode,omitempty"`
	PersonaState int    `json:"personastate"`
	TimeCreated  int64  `json:"timecreated,omitempty"`
}

// SteamData is the merged output of the Steam aggregation flow.
type SteamData struct {
	Profile       SteamProfile     `json:"profile"`
	PlaytimeHours int              `json:"playtime_cs2_hours"`
	StatsPublic   bool             `json:"profile_public"`
	Stats         map[string]int64 `json:"stats,omitempty"`
}

// FaceitData is the FACEIT side of a player view. A nil *FaceitData means
// the player has no linked account (or the lookup failed, which renders
// the same way).
type FaceitData struct {
	Profile FaceitProfile  `json:"profile"`
	Stats   map[string]any `json:"stats"`
	History []HistoryEntry `json:"history"`
}

type FaceitProfile struct {
	PlayerID   string `json:"player_id"`
	Nickname   string `json:"nickname"`
	Avatar     string `json:"avatar"`
	Country    string `json:"country"`
	SkillLevel int    `json:"skill_level"`
	FaceitElo  int    `json:"faceit_elo"`
	FaceitURL  string `json:"faceit_url"`
}

// HistoryEntry is one past match as returned by the history endpoint,
// optionally enriched with the queried player's line.
type HistoryEntry struct {
	MatchID         string     `json:"match_id"`
	GameMode        string     `json:"game_mode,omitempty"`
	CompetitionName string     `json:"competition_name,omitempty"`
	Region          string     `json:"region,omitempty"`
	StartedAt       int64      `json:"started_at"`
	FinishedAt      int64      `json:"finished_at"`
	FaceitURL       string     `json:"faceit_url,omitempty"`
	Stats           *MatchLine `json:"stats,omitempty"`
}

// MatchLine is a player's line score extracted from one match-stats tree.
type MatchLine struct {
	Result  string `json:"result"`
	Score   string `json:"score"`
	Map     string `json:"map"`
	Kills   string `json:"kills"`
	Deaths  string `json:"deaths"`
	Assists string `json:"assists"`
}

const (
	ResultWon  = "won"
	ResultLost = "lost"
)

// PlayerView is the combined render payload for one profile page.
type PlayerView struct {
	Steam  *SteamData  `json:"steam"`
	Faceit *FaceitData `json:"faceit"`
}

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Clip struct {
	ID        string
	UserID    int64
	Title     string
	VideoURL  string
	CreatedAt time.Time
}
