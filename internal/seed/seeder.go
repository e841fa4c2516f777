package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/loyaltyhub/internal/domain/model"
	"github.com/polkiloo/loyaltyhub/internal/domain/repository"
)

var memberNames = []string{
	"Sarah Johnson", "Michael Chen", "Emma Wilson", "James Rodriguez",
	"Olivia Brown", "Liam Davis", "Ava Martinez", "Noah Garcia",
	"Sophia Anderson", "Mason Taylor", "Isabella Thomas", "Ethan Moore",
}

// Seeder populates an empty program with a deterministic demo data set.
// The same PRNG seed always produces the same members, so repeated runs
// against a fresh database are reproducible.
type Seeder struct {
	users      repository.UserRepository
	rewards    repository.RewardRepository
	activities repository.ActivityRepository
	rng        *rand.Rand
	userCount  int
	logger     *slog.Logger
}

// NewSeeder constructs a Seeder with its own PRNG stream.
func NewSeeder(
	users repository.UserRepository,
	rewards repository.RewardRepository,
	activities repository.ActivityRepository,
	randSeed int64,
	userCount int,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		users:      users,
		rewards:    rewards,
		activities: activities,
		rng:        rand.New(rand.NewSource(randSeed)),
		userCount:  userCount,
		logger:     logger,
	}
}

// Run seeds members, their ledgers, and the rewards catalog. A program that
// already has members is left untouched.
func (s *Seeder) Run(ctx context.Context) error {
	_, total, err := s.users.List(ctx, 0, 1)
	if err != nil {
		return fmt.Errorf("check existing members: %w", err)
	}
	if total > 0 {
		s.logger.Info("demo seed skipped, program already has members", slog.Int64("members", total))
		return nil
	}

	if err := s.seedRewards(ctx); err != nil {
		return err
	}
	if err := s.seedMembers(ctx); err != nil {
		return err
	}

	s.logger.Info("demo data seeded", slog.Int("members", s.userCount))
	return nil
}

func (s *Seeder) seedMembers(ctx context.Context) error {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < s.userCount; i++ {
		id, err := uuid.NewRandomFromReader(s.rng)
		if err != nil {
			return fmt.Errorf("generate member id: %w", err)
		}

		earned := s.rng.Int63n(12000)
		redeemed := int64(0)
		if earned > 0 {
			redeemed = s.rng.Int63n(earned + 1)
		}
		joined := base.AddDate(0, 0, -s.rng.Intn(365))

		member := &model.LoyaltyUser{
			ID:                  id,
			Name:                memberNames[i%len(memberNames)],
			Email:               fmt.Sprintf("member%d@example.com", i+1),
			PointsBalance:       earned - redeemed,
			Tier:                model.TierForEarnedPoints(earned),
			JoinDate:            joined,
			TotalPointsEarned:   earned,
			TotalPointsRedeemed: redeemed,
			LastActivity:        joined.AddDate(0, 0, s.rng.Intn(60)),
			Avatar:              fmt.Sprintf("https://i.pravatar.cc/150?u=%s", id),
		}
		if err := s.users.Create(ctx, member); err != nil {
			return fmt.Errorf("seed member %s: %w", member.Email, err)
		}

		if err := s.seedLedger(ctx, member); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedLedger(ctx context.Context, member *model.LoyaltyUser) error {
	entries := []model.LoyaltyActivity{}
	if member.TotalPointsEarned > 0 {
		entries = append(entries, model.LoyaltyActivity{
			UserID:      member.ID,
			Type:        model.ActivityEarned,
			Points:      member.TotalPointsEarned,
			Description: "Points earned on purchase",
			Date:        member.JoinDate,
		})
	}
	if member.TotalPointsRedeemed > 0 {
		entries = append(entries, model.LoyaltyActivity{
			UserID:      member.ID,
			Type:        model.ActivityRedeemed,
			Points:      -member.TotalPointsRedeemed,
			Description: "Redeemed reward",
			Date:        member.LastActivity,
		})
	}

	for i := range entries {
		id, err := uuid.NewRandomFromReader(s.rng)
		if err != nil {
			return fmt.Errorf("generate activity id: %w", err)
		}
		entries[i].ID = id
		if err := s.activities.Create(ctx, &entries[i]); err != nil {
			return fmt.Errorf("seed ledger for %s: %w", member.Email, err)
		}
	}
	return nil
}

func (s *Seeder) seedRewards(ctx context.Context) error {
	thirty := 30
	sixty := 60
	catalog := []model.LoyaltyReward{
		{Name: "10% Off Next Purchase", Description: "Save 10% on your next order", PointsCost: 500, Category: model.CategoryDiscount, Available: true, Featured: true, ExpiryDays: &thirty},
		{Name: "$25 Gift Card", Description: "Redeemable on any purchase", PointsCost: 2500, Category: model.CategoryGiftCard, Available: true, Featured: true, ExpiryDays: &sixty},
		{Name: "Free Shipping", Description: "Free shipping on one order", PointsCost: 300, Category: model.CategoryService, Available: true},
		{Name: "Limited Edition Tote", Description: "Exclusive branded tote bag", PointsCost: 1500, Category: model.CategoryProduct, Available: true},
		{Name: "VIP Styling Session", Description: "One-on-one session with a stylist", PointsCost: 5000, Category: model.CategoryExperience, Available: false, Featured: true},
	}

	added := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := range catalog {
		id, err := uuid.NewRandomFromReader(s.rng)
		if err != nil {
			return fmt.Errorf("generate reward id: %w", err)
		}
		catalog[i].ID = id
		catalog[i].DateAdded = added
		if err := s.rewards.Create(ctx, &catalog[i]); err != nil {
			return fmt.Errorf("seed reward %q: %w", catalog[i].Name, err)
		}
	}
	return nil
}
