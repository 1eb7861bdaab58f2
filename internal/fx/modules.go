package fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tourney-graphics/internal/api"
	"tourney-graphics/internal/compose"
	"tourney-graphics/internal/config"
	"tourney-graphics/internal/logger"
	"tourney-graphics/internal/server"
	"tourney-graphics/internal/service"
	"tourney-graphics/internal/sprites"
	"tourney-graphics/internal/tournament"
)

func ProvideResolver(cfg *config.Config, client *api.Client, log zerolog.Logger) *sprites.Resolver {
	return sprites.NewResolver(cfg.AssetDir, cfg.DexIndexURL, client, log)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// upstream clients
	fx.Provide(api.NewClient),
	// pipeline
	fx.Provide(ProvideResolver),
	fx.Provide(tournament.NewStore),
	fx.Provide(compose.NewComposer),
	// svc
	fx.Provide(service.NewImportService),
	fx.Provide(service.NewTournamentService),
	// server
	fx.Provide(server.New),
)
