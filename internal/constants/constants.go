package constants

import "time"

const (
	// CS2AppID is the Steam application id the tracker reports on.
	CS2AppID = 730

	// SteamIDLength is the digit count of a canonical 64-bit SteamID.
	SteamIDLength = 17

	// HistoryPageSize is the fixed FACEIT match-history page size.
	HistoryPageSize = 10

	// HistoryDetailWorkers bounds concurrent per-match detail lookups.
	HistoryDetailWorkers = 4
)

const (
	ExternalAPITimeout = 5 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	SessionTTL      = 24 * time.Hour
	SessionCookie   = "session_token"
	DefaultAvatar   = "default.jpg"
	MaxAvatarBytes  = 5 << 20
	ShutdownTimeout = 5 * time.Second
)

const (
	HomeClipLimit = 20
)
