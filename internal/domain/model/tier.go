package model

import "math"

// Tier names a loyalty rank gating the points multiplier and benefit set.
type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
	TierDiamond  Tier = "Diamond"
)

// TierDefinition describes a single catalog entry. The catalog is ordered by
// ascending threshold and multipliers grow strictly with rank.
type TierDefinition struct {
	Tier             Tier
	PointsThreshold  int64
	PointsMultiplier float64
	Benefits         []string
	Color            string
}

var tierCatalog = []TierDefinition{
	{
		Tier:             TierBronze,
		PointsThreshold:  0,
		PointsMultiplier: 1.0,
		Benefits:         []string{"Earn 1 point per dollar", "Birthday surprise"},
		Color:            "#cd7f32",
	},
	{
		Tier:             TierSilver,
		PointsThreshold:  1000,
		PointsMultiplier: 1.25,
		Benefits:         []string{"Earn 1.25 points per dollar", "Free shipping vouchers", "Early sale access"},
		Color:            "#c0c0c0",
	},
	{
		Tier:             TierGold,
		PointsThreshold:  2500,
		PointsMultiplier: 1.5,
		Benefits:         []string{"Earn 1.5 points per dollar", "Priority support", "Exclusive drops"},
		Color:            "#ffd700",
	},
	{
		Tier:             TierPlatinum,
		PointsThreshold:  5000,
		PointsMultiplier: 2.0,
		Benefits:         []string{"Earn 2 points per dollar", "Dedicated concierge", "Annual gift box"},
		Color:            "#e5e4e2",
	},
	{
		Tier:             TierDiamond,
		PointsThreshold:  10000,
		PointsMultiplier: 3.0,
		Benefits:         []string{"Earn 3 points per dollar", "Invitation-only events", "Free express shipping"},
		Color:            "#b9f2ff",
	},
}

// TierCatalog returns the ordered tier definitions. Callers must not mutate
// the returned slice.
func TierCatalog() []TierDefinition {
	return tierCatalog
}

// TierDetails resolves a tier name to its definition. Unknown names fall back
// to the lowest tier.
func TierDetails(tier Tier) TierDefinition {
	for _, def := range tierCatalog {
		if def.Tier == tier {
			return def
		}
	}
	return tierCatalog[0]
}

// NextTierDetails returns the tier immediately following the given one in
// catalog order, or nil when the tier is the highest or unrecognized.
func NextTierDetails(tier Tier) *TierDefinition {
	for i, def := range tierCatalog {
		if def.Tier == tier {
			if i+1 >= len(tierCatalog) {
				return nil
			}
			next := tierCatalog[i+1]
			return &next
		}
	}
	return nil
}

// TierForEarnedPoints returns the highest tier whose threshold does not
// exceed the lifetime earned total.
func TierForEarnedPoints(earned int64) Tier {
	current := tierCatalog[0].Tier
	for _, def := range tierCatalog {
		if earned >= def.PointsThreshold {
			current = def.Tier
		}
	}
	return current
}

// PointsForPurchase converts a purchase amount into loyalty points using the
// tier multiplier. The result is floored; negative amounts are a caller
// precondition and are not validated here.
func PointsForPurchase(amount float64, tier Tier) int64 {
	return int64(math.Floor(amount * TierDetails(tier).PointsMultiplier))
}

// TierProgress describes how far a user is from the next tier.
type TierProgress struct {
	NextTier     *TierDefinition
	PointsNeeded int64
}

// PointsToNextTier computes the remaining points between the user's balance
// and the next tier threshold. At the top of the ladder PointsNeeded is zero
// and NextTier is nil.
func PointsToNextTier(user *LoyaltyUser) TierProgress {
	next := NextTierDetails(user.Tier)
	if next == nil {
		return TierProgress{}
	}
	needed := next.PointsThreshold - user.PointsBalance
	if needed < 0 {
		needed = 0
	}
	return TierProgress{NextTier: next, PointsNeeded: needed}
}
