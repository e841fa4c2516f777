package repository

import (
	"context"

	"github.com/polkiloo/loyaltyhub/internal/domain/model"
)

// StatsRepository reads raw program counters for the dashboard.
type StatsRepository interface {
	Aggregate(ctx context.Context) (*model.StatsAggregate, error)
}
