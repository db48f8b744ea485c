package service

import (
	"context"

	"github.com/LucasBartista123/ProjetoSenai/internal/constants"
	"github.com/LucasBartista123/ProjetoSenai/internal/domain"

	"github.com/rs/zerolog"
)

// ProfileService assembles the combined Steam + FACEIT view for one player.
type ProfileService struct {
	steamSvc  *SteamService
	faceitSvc *FaceitService
	logger    zerolog.Logger
}

func NewProfileService(steamSvc *SteamService, faceitSvc *FaceitService, logger zerolog.Logger) *ProfileService {
	return &ProfileService{steamSvc: steamSvc, faceitSvc: faceitSvc, logger: logger}
}

// PlayerView fails only when the Steam side fails; the FACEIT side is
// attached unconditionally afterwards, absent or not.
func (s *ProfileService) PlayerView(ctx context.Context, steamID string) (*domain.PlayerView, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	steam, err := s.steamSvc.PlayerData(ctx, steamID)
	if err != nil {
		return nil, err
	}

	faceit := s.faceitSvc.PlayerData(ctx, steamID)
	if faceit == nil {
		s.logger.Debug().Str("steam_id", steamID).Msg("no faceit data attached")
	}

	return &domain.PlayerView{Steam: steam, Faceit: faceit}, nil
}
