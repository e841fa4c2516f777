package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/loyaltyhub/internal/domain/errors"
	"github.com/polkiloo/loyaltyhub/internal/domain/model"
	"github.com/polkiloo/loyaltyhub/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on. Tests swap in
// a pgxmock pool through the same seam.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type rewardRepository struct {
	storage *Storage
}

type activityRepository struct {
	storage *Storage
}

type statsRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Rewards() repository.RewardRepository {
	return &rewardRepository{storage: s}
}

func (s *Storage) Activities() repository.ActivityRepository {
	return &activityRepository{storage: s}
}

func (s *Storage) Stats() repository.StatsRepository {
	return &statsRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS loyalty_users (
            id UUID PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            points_balance BIGINT NOT NULL DEFAULT 0,
            tier TEXT NOT NULL DEFAULT 'Bronze',
            join_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            total_points_earned BIGINT NOT NULL DEFAULT 0,
            total_points_redeemed BIGINT NOT NULL DEFAULT 0,
            last_activity TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            avatar TEXT NOT NULL DEFAULT '',
            needs_tier_review BOOLEAN NOT NULL DEFAULT FALSE
        )`,
		`CREATE TABLE IF NOT EXISTS loyalty_rewards (
            id UUID PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            points_cost BIGINT NOT NULL,
            category TEXT NOT NULL,
            image TEXT NOT NULL DEFAULT '',
            available BOOLEAN NOT NULL DEFAULT TRUE,
            featured BOOLEAN NOT NULL DEFAULT FALSE,
            expiry_days INT,
            redemption_count BIGINT NOT NULL DEFAULT 0,
            date_added TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS loyalty_activities (
            id UUID PRIMARY KEY,
            user_id UUID NOT NULL REFERENCES loyalty_users(id),
            type TEXT NOT NULL,
            points BIGINT NOT NULL DEFAULT 0,
            description TEXT NOT NULL DEFAULT '',
            date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            reference TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE INDEX IF NOT EXISTS idx_activities_user ON loyalty_activities(user_id, date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_users_tier_review ON loyalty_users(needs_tier_review) WHERE needs_tier_review`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const userColumns = `id, name, email, points_balance, tier, join_date,
                     total_points_earned, total_points_redeemed, last_activity, avatar, needs_tier_review`

func scanUser(row pgx.Row) (*model.LoyaltyUser, error) {
	var u model.LoyaltyUser
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PointsBalance, &u.Tier, &u.JoinDate,
		&u.TotalPointsEarned, &u.TotalPointsRedeemed, &u.LastActivity, &u.Avatar, &u.NeedsTierReview)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user *model.LoyaltyUser) error {
	const query = `INSERT INTO loyalty_users
                   (id, name, email, points_balance, tier, join_date,
                    total_points_earned, total_points_redeemed, last_activity, avatar, needs_tier_review)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.storage.pool.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PointsBalance, user.Tier, user.JoinDate,
		user.TotalPointsEarned, user.TotalPointsRedeemed, user.LastActivity, user.Avatar, user.NeedsTierReview)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.LoyaltyUser, error) {
	query := `SELECT ` + userColumns + ` FROM loyalty_users WHERE id=$1`
	user, err := scanUser(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) List(ctx context.Context, offset, limit int) ([]model.LoyaltyUser, int64, error) {
	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM loyalty_users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + userColumns + ` FROM loyalty_users ORDER BY join_date, id LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	result := make([]model.LoyaltyUser, 0, limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *userRepository) AddEarned(ctx context.Context, userID uuid.UUID, points int64, reference string) (*model.LoyaltyUser, error) {
	var user *model.LoyaltyUser
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		query := `UPDATE loyalty_users
                  SET points_balance = points_balance + $2,
                      total_points_earned = total_points_earned + $2,
                      last_activity = NOW(),
                      needs_tier_review = TRUE
                  WHERE id=$1
                  RETURNING ` + userColumns
		updated, err := scanUser(tx.QueryRow(ctx, query, userID, points))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrUserNotFound
			}
			return err
		}

		const insertActivity = `INSERT INTO loyalty_activities (id, user_id, type, points, description, date, reference)
                                VALUES ($1, $2, $3, $4, $5, NOW(), $6)`
		if _, err := tx.Exec(ctx, insertActivity,
			uuid.New(), userID, model.ActivityEarned, points, "Points earned on purchase", reference); err != nil {
			return err
		}

		user = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) SelectBatchForTierReview(ctx context.Context, limit int) ([]model.LoyaltyUser, error) {
	selectQuery := `SELECT ` + userColumns + `
                    FROM loyalty_users
                    WHERE needs_tier_review
                    ORDER BY last_activity
                    LIMIT $1
                    FOR UPDATE SKIP LOCKED`

	var users []model.LoyaltyUser
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			user, err := scanUser(rows)
			if err != nil {
				return err
			}
			users = append(users, *user)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FinishTierReview(ctx context.Context, userID uuid.UUID, tier model.Tier, promoted bool) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const updateQuery = `UPDATE loyalty_users SET tier=$2, needs_tier_review=FALSE WHERE id=$1`
		if _, err := tx.Exec(ctx, updateQuery, userID, tier); err != nil {
			return err
		}

		if promoted {
			const insertActivity = `INSERT INTO loyalty_activities (id, user_id, type, points, description, date, reference)
                                    VALUES ($1, $2, $3, 0, $4, NOW(), '')`
			if _, err := tx.Exec(ctx, insertActivity,
				uuid.New(), userID, model.ActivityAdjusted, fmt.Sprintf("Tier upgraded to %s", tier)); err != nil {
				return err
			}
		}
		return nil
	})
}

const rewardColumns = `id, name, description, points_cost, category, image,
                       available, featured, expiry_days, redemption_count, date_added`

func scanReward(row pgx.Row) (*model.LoyaltyReward, error) {
	var rw model.LoyaltyReward
	err := row.Scan(&rw.ID, &rw.Name, &rw.Description, &rw.PointsCost, &rw.Category, &rw.Image,
		&rw.Available, &rw.Featured, &rw.ExpiryDays, &rw.RedemptionCount, &rw.DateAdded)
	if err != nil {
		return nil, err
	}
	return &rw, nil
}

// --- RewardRepository implementation ---

func (r *rewardRepository) Create(ctx context.Context, reward *model.LoyaltyReward) error {
	const query = `INSERT INTO loyalty_rewards
                   (id, name, description, points_cost, category, image,
                    available, featured, expiry_days, redemption_count, date_added)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.storage.pool.Exec(ctx, query,
		reward.ID, reward.Name, reward.Description, reward.PointsCost, reward.Category, reward.Image,
		reward.Available, reward.Featured, reward.ExpiryDays, reward.RedemptionCount, reward.DateAdded)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *rewardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.LoyaltyReward, error) {
	query := `SELECT ` + rewardColumns + ` FROM loyalty_rewards WHERE id=$1`
	reward, err := scanReward(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrRewardNotFound
		}
		return nil, err
	}
	return reward, nil
}

func (r *rewardRepository) List(ctx context.Context) ([]model.LoyaltyReward, error) {
	query := `SELECT ` + rewardColumns + ` FROM loyalty_rewards ORDER BY date_added, id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.LoyaltyReward
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *reward)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Redeem runs the whole redemption inside one transaction: both rows are
// locked before the balance guard so concurrent redemptions serialize.
func (r *rewardRepository) Redeem(ctx context.Context, userID, rewardID uuid.UUID) (*model.LoyaltyReward, error) {
	var redeemed *model.LoyaltyReward
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		userQuery := `SELECT ` + userColumns + ` FROM loyalty_users WHERE id=$1 FOR UPDATE`
		user, err := scanUser(tx.QueryRow(ctx, userQuery, userID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrUserNotFound
			}
			return err
		}

		rewardQuery := `SELECT ` + rewardColumns + ` FROM loyalty_rewards WHERE id=$1 FOR UPDATE`
		reward, err := scanReward(tx.QueryRow(ctx, rewardQuery, rewardID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrRewardNotFound
			}
			return err
		}

		if err := model.ValidateRedemption(user, reward); err != nil {
			return err
		}

		const updateUser = `UPDATE loyalty_users
                            SET points_balance = points_balance - $2,
                                total_points_redeemed = total_points_redeemed + $2,
                                last_activity = NOW()
                            WHERE id=$1`
		if _, err := tx.Exec(ctx, updateUser, userID, reward.PointsCost); err != nil {
			return err
		}

		const updateReward = `UPDATE loyalty_rewards SET redemption_count = redemption_count + 1 WHERE id=$1`
		if _, err := tx.Exec(ctx, updateReward, rewardID); err != nil {
			return err
		}

		const insertActivity = `INSERT INTO loyalty_activities (id, user_id, type, points, description, date, reference)
                                VALUES ($1, $2, $3, $4, $5, NOW(), $6)`
		if _, err := tx.Exec(ctx, insertActivity,
			uuid.New(), userID, model.ActivityRedeemed, -reward.PointsCost,
			fmt.Sprintf("Redeemed %s", reward.Name), reward.ID.String()); err != nil {
			return err
		}

		reward.RedemptionCount++
		redeemed = reward
		return nil
	})
	if err != nil {
		return nil, err
	}
	return redeemed, nil
}

// --- ActivityRepository implementation ---

func (r *activityRepository) Create(ctx context.Context, activity *model.LoyaltyActivity) error {
	const query = `INSERT INTO loyalty_activities (id, user_id, type, points, description, date, reference)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.storage.pool.Exec(ctx, query,
		activity.ID, activity.UserID, activity.Type, activity.Points,
		activity.Description, activity.Date, activity.Reference)
	return err
}

func (r *activityRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.LoyaltyActivity, error) {
	const baseQuery = `SELECT id, user_id, type, points, description, date, reference
                       FROM loyalty_activities WHERE user_id=$1 ORDER BY date DESC, id DESC`

	var rows pgx.Rows
	var err error
	if limit > 0 {
		rows, err = r.storage.pool.Query(ctx, baseQuery+` LIMIT $2`, userID, limit)
	} else {
		rows, err = r.storage.pool.Query(ctx, baseQuery, userID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.LoyaltyActivity
	for rows.Next() {
		var a model.LoyaltyActivity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Points, &a.Description, &a.Date, &a.Reference); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- StatsRepository implementation ---

func (r *statsRepository) Aggregate(ctx context.Context) (*model.StatsAggregate, error) {
	const totalsQuery = `SELECT COUNT(*),
                                COUNT(*) FILTER (WHERE last_activity > NOW() - INTERVAL '30 days'),
                                COALESCE(SUM(total_points_earned), 0),
                                COALESCE(SUM(total_points_redeemed), 0)
                         FROM loyalty_users`
	agg := &model.StatsAggregate{TierDistribution: make(map[model.Tier]int64)}
	err := r.storage.pool.QueryRow(ctx, totalsQuery).Scan(
		&agg.TotalUsers, &agg.ActiveUsers, &agg.TotalPointsIssued, &agg.TotalPointsRedeemed)
	if err != nil {
		return nil, err
	}

	const tiersQuery = `SELECT tier, COUNT(*) FROM loyalty_users GROUP BY tier`
	rows, err := r.storage.pool.Query(ctx, tiersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tier model.Tier
		var count int64
		if err := rows.Scan(&tier, &count); err != nil {
			return nil, err
		}
		agg.TierDistribution[tier] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return agg, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
