package model

// StatsAggregate holds raw program counters as read from storage.
type StatsAggregate struct {
	TotalUsers          int64
	ActiveUsers         int64
	TotalPointsIssued   int64
	TotalPointsRedeemed int64
	TierDistribution    map[Tier]int64
}

// LoyaltyStats is the derived dashboard view over a StatsAggregate. It is
// JSON-tagged directly because the stats cache stores it serialized.
type LoyaltyStats struct {
	TotalUsers           int64          `json:"total_users"`
	ActiveUsers          int64          `json:"active_users"`
	TotalPointsIssued    int64          `json:"total_points_issued"`
	TotalPointsRedeemed  int64          `json:"total_points_redeemed"`
	AveragePointsPerUser float64        `json:"average_points_per_user"`
	TierDistribution     map[Tier]int64 `json:"tier_distribution"`
	RedemptionRate       float64        `json:"redemption_rate"`
}
