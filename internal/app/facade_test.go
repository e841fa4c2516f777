package app

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/polkiloo/loyaltyhub/internal/adapter/promo"
	"github.com/polkiloo/loyaltyhub/internal/domain/model"
	testhelpers "github.com/polkiloo/loyaltyhub/internal/test"
	"github.com/polkiloo/loyaltyhub/internal/usecase"
)

func newTestFacade(t *testing.T) (*LoyaltyFacade, *testhelpers.UserRepositoryStub, *testhelpers.RewardRepositoryStub) {
	t.Helper()
	users := testhelpers.NewUserRepositoryStub()
	rewards := testhelpers.NewRewardRepositoryStub(users)
	activities := users.Ledger
	stats := &testhelpers.StatsRepositoryStub{Agg: &model.StatsAggregate{TotalUsers: 2, TotalPointsIssued: 1000, TotalPointsRedeemed: 250}}

	pricing := usecase.NewPricingUseCase(promo.NewStaticResolver())
	facade := NewLoyaltyFacade(
		usecase.NewSessionUseCase(users, testhelpers.StrategyStub{}),
		usecase.NewUserUseCase(users, activities),
		usecase.NewRewardUseCase(rewards),
		pricing,
		usecase.NewCheckoutUseCase(users, pricing),
		usecase.NewStatsUseCase(stats, &testhelpers.StatsCacheStub{}),
	)
	return facade, users, rewards
}

func enroll(t *testing.T, users *testhelpers.UserRepositoryStub, balance, earned int64, tier model.Tier) uuid.UUID {
	t.Helper()
	member := &model.LoyaltyUser{
		ID:                uuid.New(),
		Name:              "Sarah",
		Email:             testhelpers.RandomEmail(),
		PointsBalance:     balance,
		TotalPointsEarned: earned,
		Tier:              tier,
	}
	if err := users.Create(context.Background(), member); err != nil {
		t.Fatalf("enroll member: %v", err)
	}
	return member.ID
}

func TestFacadeSessionRoundTrip(t *testing.T) {
	facade, users, _ := newTestFacade(t)
	memberID := enroll(t, users, 0, 0, model.TierBronze)

	token, err := facade.IssueSession(context.Background(), memberID)
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	parsed, err := facade.ParseSession(token)
	if err != nil {
		t.Fatalf("parse session: %v", err)
	}
	if parsed != memberID {
		t.Fatalf("expected %s, got %s", memberID, parsed)
	}
}

func TestFacadeProfileAndLedger(t *testing.T) {
	facade, users, _ := newTestFacade(t)
	memberID := enroll(t, users, 100, 100, model.TierBronze)

	member, err := facade.User(context.Background(), memberID)
	if err != nil || member.PointsBalance != 100 {
		t.Fatalf("unexpected profile %+v err=%v", member, err)
	}

	page, total, err := facade.Users(context.Background(), 1, 10)
	if err != nil || total != 1 || len(page) != 1 {
		t.Fatalf("unexpected page total=%d len=%d err=%v", total, len(page), err)
	}

	if _, err := users.AddEarned(context.Background(), memberID, 50, "order-1"); err != nil {
		t.Fatalf("add earned: %v", err)
	}
	ledger, err := facade.UserActivities(context.Background(), memberID, 0)
	if err != nil || len(ledger) != 1 {
		t.Fatalf("unexpected ledger %v err=%v", ledger, err)
	}
}

func TestFacadeRedeemFlow(t *testing.T) {
	facade, users, rewards := newTestFacade(t)
	memberID := enroll(t, users, 1000, 1000, model.TierSilver)

	reward := &model.LoyaltyReward{ID: uuid.New(), Name: "$25 Gift Card", PointsCost: 500, Available: true, Featured: true}
	if err := rewards.Create(context.Background(), reward); err != nil {
		t.Fatalf("create reward: %v", err)
	}

	featured, err := facade.FeaturedRewards(context.Background())
	if err != nil || len(featured) != 1 {
		t.Fatalf("unexpected featured %v err=%v", featured, err)
	}

	result, err := facade.RedeemReward(context.Background(), memberID, reward.ID)
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if !result.Success || result.Message != "Successfully redeemed $25 Gift Card for 500 points" {
		t.Fatalf("unexpected result %+v", result)
	}

	member, _ := facade.User(context.Background(), memberID)
	if member.PointsBalance != 500 {
		t.Fatalf("expected balance 500 after redemption, got %d", member.PointsBalance)
	}
}

func TestFacadeCheckoutCreditsPoints(t *testing.T) {
	facade, users, _ := newTestFacade(t)
	memberID := enroll(t, users, 0, 2600, model.TierGold)

	items := []model.CartLineItem{{ProductID: "p1", Name: "Jacket", Price: 200, Quantity: 1}}
	result, err := facade.Checkout(context.Background(), memberID, items, "", 0)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if result.Pricing.Total != 214 {
		t.Fatalf("expected total 214, got %v", result.Pricing.Total)
	}
	if result.PointsEarned != 321 {
		t.Fatalf("expected 321 points at gold multiplier, got %d", result.PointsEarned)
	}
	if !strings.HasPrefix(result.Reference, "order-") {
		t.Fatalf("unexpected reference %q", result.Reference)
	}
}

func TestFacadePriceCartAppliesPromo(t *testing.T) {
	facade, _, _ := newTestFacade(t)

	items := []model.CartLineItem{{ProductID: "p1", Name: "Jacket", Price: 200, Quantity: 1}}
	pricing, applied, err := facade.PriceCart(context.Background(), items, "DISCOUNT20", 0)
	if err != nil || !applied {
		t.Fatalf("expected applied promo, err=%v", err)
	}
	if pricing.Discount != 40 {
		t.Fatalf("expected discount 40, got %v", pricing.Discount)
	}
}

func TestFacadeStats(t *testing.T) {
	facade, _, _ := newTestFacade(t)

	stats, err := facade.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalUsers != 2 || stats.RedemptionRate != 0.25 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestFacadeTierReviewCycle(t *testing.T) {
	facade, users, _ := newTestFacade(t)
	memberID := enroll(t, users, 0, 0, model.TierBronze)

	if _, err := users.AddEarned(context.Background(), memberID, 2600, "order-1"); err != nil {
		t.Fatalf("add earned: %v", err)
	}

	batch, err := facade.UsersForTierReview(context.Background(), 10)
	if err != nil || len(batch) != 1 {
		t.Fatalf("unexpected batch %v err=%v", batch, err)
	}
	if err := facade.ReconcileTier(context.Background(), batch[0]); err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	member, _ := facade.User(context.Background(), memberID)
	if member.Tier != model.TierGold {
		t.Fatalf("expected gold after review, got %s", member.Tier)
	}
	if member.NeedsTierReview {
		t.Fatal("expected review flag cleared")
	}
}
