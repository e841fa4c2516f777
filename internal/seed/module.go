package seed

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/loyaltyhub/internal/config"
	"github.com/polkiloo/loyaltyhub/internal/domain/repository"
)

// Module seeds demo data on startup when enabled in configuration.
var Module = fx.Invoke(registerSeeder)

type seederParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Config     *config.Config
	Users      repository.UserRepository
	Rewards    repository.RewardRepository
	Activities repository.ActivityRepository
	Logger     *slog.Logger
}

func registerSeeder(p seederParams) {
	if !p.Config.SeedDemoData {
		return
	}

	seeder := NewSeeder(p.Users, p.Rewards, p.Activities, p.Config.SeedRandSeed, p.Config.SeedUserCount, p.Logger)
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return seeder.Run(ctx)
		},
	})
}
