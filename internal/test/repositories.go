package test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/loyaltyhub/internal/domain/errors"
	"github.com/polkiloo/loyaltyhub/internal/domain/model"
)

// UserRepositoryStub stores loyalty members in-memory for tests.
type UserRepositoryStub struct {
	mu    sync.Mutex
	Users map[uuid.UUID]*model.LoyaltyUser
	order []uuid.UUID
	Err   error

	// Ledger receives activity entries produced by earning and tier review
	// when set, mirroring the transactional writes of the real storage.
	Ledger *ActivityRepositoryStub
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Users: make(map[uuid.UUID]*model.LoyaltyUser), Ledger: &ActivityRepositoryStub{}}
}

// Create registers a member unless one with the same ID exists.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.LoyaltyUser) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Users == nil {
		s.Users = make(map[uuid.UUID]*model.LoyaltyUser)
	}
	if _, exists := s.Users[user.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	clone := *user
	s.Users[user.ID] = &clone
	s.order = append(s.order, user.ID)
	return nil
}

// GetByID fetches a member or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.LoyaltyUser, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.Users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, domainErrors.ErrUserNotFound
}

// List pages members in insertion order.
func (s *UserRepositoryStub) List(ctx context.Context, offset, limit int) ([]model.LoyaltyUser, int64, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	total := int64(len(s.order))
	if offset >= len(s.order) {
		return []model.LoyaltyUser{}, total, nil
	}
	end := offset + limit
	if end > len(s.order) {
		end = len(s.order)
	}
	page := make([]model.LoyaltyUser, 0, end-offset)
	for _, id := range s.order[offset:end] {
		page = append(page, *s.Users[id])
	}
	return page, total, nil
}

// AddEarned credits purchase points and flags the member for tier review.
func (s *UserRepositoryStub) AddEarned(ctx context.Context, userID uuid.UUID, points int64, reference string) (*model.LoyaltyUser, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	user, ok := s.Users[userID]
	if !ok {
		s.mu.Unlock()
		return nil, domainErrors.ErrUserNotFound
	}
	user.PointsBalance += points
	user.TotalPointsEarned += points
	user.LastActivity = time.Now()
	user.NeedsTierReview = true
	clone := *user
	s.mu.Unlock()

	if s.Ledger != nil {
		_ = s.Ledger.Create(ctx, &model.LoyaltyActivity{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        model.ActivityEarned,
			Points:      points,
			Description: "Points earned on purchase",
			Date:        clone.LastActivity,
			Reference:   reference,
		})
	}
	return &clone, nil
}

// SelectBatchForTierReview returns flagged members up to limit.
func (s *UserRepositoryStub) SelectBatchForTierReview(ctx context.Context, limit int) ([]model.LoyaltyUser, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var batch []model.LoyaltyUser
	for _, id := range s.order {
		if len(batch) >= limit {
			break
		}
		if s.Users[id].NeedsTierReview {
			batch = append(batch, *s.Users[id])
		}
	}
	return batch, nil
}

// FinishTierReview stores the reconciled tier and clears the flag.
func (s *UserRepositoryStub) FinishTierReview(ctx context.Context, userID uuid.UUID, tier model.Tier, promoted bool) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	user, ok := s.Users[userID]
	if !ok {
		s.mu.Unlock()
		return domainErrors.ErrUserNotFound
	}
	user.Tier = tier
	user.NeedsTierReview = false
	s.mu.Unlock()

	if promoted && s.Ledger != nil {
		_ = s.Ledger.Create(ctx, &model.LoyaltyActivity{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        model.ActivityAdjusted,
			Description: "Tier upgraded to " + string(tier),
			Date:        time.Now(),
		})
	}
	return nil
}

// RewardRepositoryStub stores the rewards catalog in-memory. Redemption
// mutates members through the linked UserRepositoryStub, mirroring the
// single-transaction behaviour of the real storage.
type RewardRepositoryStub struct {
	mu      sync.Mutex
	Rewards map[uuid.UUID]*model.LoyaltyReward
	order   []uuid.UUID
	Err     error

	UserStore *UserRepositoryStub
	Ledger    *ActivityRepositoryStub
	RedeemFn  func(context.Context, uuid.UUID, uuid.UUID) (*model.LoyaltyReward, error)
}

// NewRewardRepositoryStub constructs stub repository with initialized maps.
func NewRewardRepositoryStub(users *UserRepositoryStub) *RewardRepositoryStub {
	return &RewardRepositoryStub{Rewards: make(map[uuid.UUID]*model.LoyaltyReward), UserStore: users}
}

// Create adds a catalog entry.
func (s *RewardRepositoryStub) Create(ctx context.Context, reward *model.LoyaltyReward) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Rewards == nil {
		s.Rewards = make(map[uuid.UUID]*model.LoyaltyReward)
	}
	if _, exists := s.Rewards[reward.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	clone := *reward
	s.Rewards[reward.ID] = &clone
	s.order = append(s.order, reward.ID)
	return nil
}

// GetByID fetches a catalog entry or returns not found.
func (s *RewardRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.LoyaltyReward, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if reward, ok := s.Rewards[id]; ok {
		clone := *reward
		return &clone, nil
	}
	return nil, domainErrors.ErrRewardNotFound
}

// List returns the catalog in insertion order.
func (s *RewardRepositoryStub) List(ctx context.Context) ([]model.LoyaltyReward, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.LoyaltyReward, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, *s.Rewards[id])
	}
	return result, nil
}

// Redeem applies the redemption guards and mutations in-memory.
func (s *RewardRepositoryStub) Redeem(ctx context.Context, userID, rewardID uuid.UUID) (*model.LoyaltyReward, error) {
	if s.RedeemFn != nil {
		return s.RedeemFn(ctx, userID, rewardID)
	}
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var user *model.LoyaltyUser
	if s.UserStore != nil {
		s.UserStore.mu.Lock()
		defer s.UserStore.mu.Unlock()
		user = s.UserStore.Users[userID]
	}
	reward := s.Rewards[rewardID]

	if err := model.ValidateRedemption(user, reward); err != nil {
		return nil, err
	}

	user.PointsBalance -= reward.PointsCost
	user.TotalPointsRedeemed += reward.PointsCost
	user.LastActivity = time.Now()
	reward.RedemptionCount++

	if s.Ledger != nil {
		_ = s.Ledger.Create(ctx, &model.LoyaltyActivity{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        model.ActivityRedeemed,
			Points:      -reward.PointsCost,
			Description: "Redeemed " + reward.Name,
			Date:        user.LastActivity,
			Reference:   reward.ID.String(),
		})
	}

	clone := *reward
	return &clone, nil
}

// ActivityRepositoryStub keeps an append-only ledger in-memory.
type ActivityRepositoryStub struct {
	mu    sync.Mutex
	Items []model.LoyaltyActivity
	Err   error
}

// Create appends a ledger entry.
func (s *ActivityRepositoryStub) Create(ctx context.Context, activity *model.LoyaltyActivity) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Items = append(s.Items, *activity)
	return nil
}

// ListByUser returns entries newest-first; limit <= 0 means all.
func (s *ActivityRepositoryStub) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.LoyaltyActivity, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.LoyaltyActivity
	for i := len(s.Items) - 1; i >= 0; i-- {
		if s.Items[i].UserID != userID {
			continue
		}
		result = append(result, s.Items[i])
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

// StatsRepositoryStub serves a fixed aggregate.
type StatsRepositoryStub struct {
	Agg   *model.StatsAggregate
	Err   error
	Calls int
}

// Aggregate returns the configured counters.
func (s *StatsRepositoryStub) Aggregate(ctx context.Context) (*model.StatsAggregate, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Agg != nil {
		return s.Agg, nil
	}
	return &model.StatsAggregate{}, nil
}

// StatsCacheStub records cache traffic for tests.
type StatsCacheStub struct {
	Stats *model.LoyaltyStats
	Gets  int
	Sets  int
}

// Get returns the cached snapshot when present.
func (s *StatsCacheStub) Get(ctx context.Context) (*model.LoyaltyStats, bool) {
	s.Gets++
	return s.Stats, s.Stats != nil
}

// Set stores the snapshot.
func (s *StatsCacheStub) Set(ctx context.Context, stats *model.LoyaltyStats) {
	s.Sets++
	s.Stats = stats
}
