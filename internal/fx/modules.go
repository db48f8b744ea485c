package fx

import (
	"github.com/LucasBartista123/ProjetoSenai/internal/api"
	"github.com/LucasBartista123/ProjetoSenai/internal/auth"
	"github.com/LucasBartista123/ProjetoSenai/internal/config"
	"github.com/LucasBartista123/ProjetoSenai/internal/database"
	"github.com/LucasBartista123/ProjetoSenai/internal/logger"
	"github.com/LucasBartista123/ProjetoSenai/internal/repository"
	"github.com/LucasBartista123/ProjetoSenai/internal/server"
	"github.com/LucasBartista123/ProjetoSenai/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// The aggregation services take narrow interfaces; these adapters bind
// them to the concrete API clients for the container.

func ProvideResolverService(steam *api.SteamClient, log zerolog.Logger) *service.ResolverService {
	return service.NewResolverService(steam, log)
}

func ProvideSteamService(steam *api.SteamClient, log zerolog.Logger) *service.SteamService {
	return service.NewSteamService(steam, log)
}

func ProvideFaceitService(faceit *api.FaceitClient, log zerolog.Logger) *service.FaceitService {
	return service.NewFaceitService(faceit, log)
}

func ProvideAccountService(users *repository.UserRepository, cfg *config.Config, log zerolog.Logger) *service.AccountService {
	return service.NewAccountService(users, cfg, log)
}

func ProvideClipService(clips *repository.ClipRepository, log zerolog.Logger) *service.ClipService {
	return service.NewClipService(clips, log)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewUserRepository),
	fx.Provide(repository.NewClipRepository),
	// api clients
	fx.Provide(api.NewSteamClient),
	fx.Provide(api.NewFaceitClient),
	// sessions
	fx.Provide(auth.NewSessionManager),
	// svc
	fx.Provide(ProvideResolverService),
	fx.Provide(ProvideSteamService),
	fx.Provide(ProvideFaceitService),
	fx.Provide(service.NewProfileService),
	fx.Provide(ProvideAccountService),
	fx.Provide(ProvideClipService),
	// server
	fx.Provide(server.New),
)
