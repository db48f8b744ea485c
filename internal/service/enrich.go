package service

import (
	"github.com/LucasBartista123/ProjetoSenai/internal/api"
	"github.com/LucasBartista123/ProjetoSenai/internal/domain"
)

// extractMatchLine walks rounds[0].teams[*].players[*] of one match-stats
// tree looking for the given player id and derives their line score. The
// first match wins. Missing numeric fields default to "0", missing round
// fields to "N/A".
func extractMatchLine(detail *api.FaceitMatchStatsResponse, playerID string) (*domain.MatchLine, bool) {
	if detail == nil || len(detail.Rounds) == 0 {
		return nil, false
	}

	round := detail.Rounds[0]
	for _, team := range round.Teams {
		for _, player := range team.Players {
			if player.PlayerID != playerID {
				continue
			}

			result := domain.ResultLost
			if player.PlayerStats["Result"] == "1" {
				result = domain.ResultWon
			}

			return &domain.MatchLine{
				Result:  result,
				Score:   roundStat(round.RoundStats, "Score"),
				Map:     roundStat(round.RoundStats, "Map"),
				Kills:   playerStat(player.PlayerStats, "Kills"),
				Deaths:  playerStat(player.PlayerStats, "Deaths"),
				Assists: playerStat(player.PlayerStats, "Assists"),
			}, true
		}
	}

	return nil, false
}

func roundStat(stats map[string]any, key string) string {
	if v, ok := stats[key].(string); ok && v != "" {
		return v
	}
	return "N/A"
}

func playerStat(stats map[string]string, key string) string {
	if v, ok := stats[key]; ok && v != "" {
		return v
	}
	return "0"
}
