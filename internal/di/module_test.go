package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/loyaltyhub/internal/app"
	"github.com/polkiloo/loyaltyhub/internal/config"
	"github.com/polkiloo/loyaltyhub/internal/domain/repository"
	"github.com/polkiloo/loyaltyhub/internal/storage/postgres"
	"github.com/polkiloo/loyaltyhub/internal/test"
	"github.com/polkiloo/loyaltyhub/internal/usecase"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:         ":0",
		DatabaseURI:        "postgres://stub",
		SessionSecret:      "secret",
		TierReviewInterval: time.Millisecond,
		WorkerPoolSize:     1,
		ReviewBatchSize:    1,
		ShutdownTimeout:    time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	rewardRepo := test.NewRewardRepositoryStub(userRepo)

	var facade *app.LoyaltyFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.RewardRepository(rewardRepo)),
			fx.Replace(repository.ActivityRepository(userRepo.Ledger)),
			fx.Replace(repository.StatsRepository(&test.StatsRepositoryStub{})),
			fx.Replace(usecase.StatsCache(&test.StatsCacheStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected loyalty facade instance")
	}
}
