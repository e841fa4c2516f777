package usecase

import (
	"context"

	"github.com/polkiloo/loyaltyhub/internal/domain/model"
	"github.com/polkiloo/loyaltyhub/internal/domain/repository"
)

// StatsCache holds a recently derived stats snapshot. Implementations treat
// every failure as a cache miss; the dashboard never breaks on cache trouble.
type StatsCache interface {
	Get(ctx context.Context) (*model.LoyaltyStats, bool)
	Set(ctx context.Context, stats *model.LoyaltyStats)
}

// StatsUseCase derives the dashboard view over the raw program counters.
type StatsUseCase struct {
	stats repository.StatsRepository
	cache StatsCache
}

// NewStatsUseCase constructs StatsUseCase.
func NewStatsUseCase(stats repository.StatsRepository, cache StatsCache) *StatsUseCase {
	return &StatsUseCase{stats: stats, cache: cache}
}

// Stats returns the current dashboard snapshot, served from cache when fresh.
func (u *StatsUseCase) Stats(ctx context.Context) (*model.LoyaltyStats, error) {
	if cached, ok := u.cache.Get(ctx); ok {
		return cached, nil
	}

	agg, err := u.stats.Aggregate(ctx)
	if err != nil {
		return nil, err
	}

	stats := DeriveStats(agg)
	u.cache.Set(ctx, stats)
	return stats, nil
}

// DeriveStats computes the ratio fields from raw counters. Rates are rounded
// to two decimals; empty programs yield zero averages rather than NaN.
func DeriveStats(agg *model.StatsAggregate) *model.LoyaltyStats {
	stats := &model.LoyaltyStats{
		TotalUsers:          agg.TotalUsers,
		ActiveUsers:         agg.ActiveUsers,
		TotalPointsIssued:   agg.TotalPointsIssued,
		TotalPointsRedeemed: agg.TotalPointsRedeemed,
		TierDistribution:    agg.TierDistribution,
	}
	if stats.TierDistribution == nil {
		stats.TierDistribution = map[model.Tier]int64{}
	}
	if agg.TotalUsers > 0 {
		stats.AveragePointsPerUser = round2(float64(agg.TotalPointsIssued) / float64(agg.TotalUsers))
	}
	if agg.TotalPointsIssued > 0 {
		stats.RedemptionRate = round2(float64(agg.TotalPointsRedeemed) / float64(agg.TotalPointsIssued))
	}
	return stats
}
