package repository

import (
	"context"
	"errors"

	"idle_garden/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrAlreadyExists = errors.New("already exists")

// Postgres unique_violation
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, google_id, email, name, gold, total_earnings, total_trees_sold,
	total_clicks, current_location_id, premium_slots, collection_progress,
	has_fairy, has_no_ads, click_power_upgrade, time_reduction_upgrade,
	boost_time_reduction, boost_sell_multiplier, last_ad_watched_at,
	daily_ads_watched, total_ad_watch_count, longest_combo, rarest_tree_sold,
	last_login, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(
		&u.ID,
		&u.GoogleID,
		&u.Email,
		&u.Name,
		&u.Gold,
		&u.TotalEarnings,
		&u.TotalTreesSold,
		&u.TotalClicks,
		&u.CurrentLocationID,
		&u.PremiumSlots,
		&u.CollectionProgress,
		&u.HasFairy,
		&u.HasNoAds,
		&u.ClickPowerUpgrade,
		&u.TimeReductionUpgrade,
		&u.AdBoosts.TimeReductionAvailable,
		&u.AdBoosts.SellMultiplier,
		&u.AdBoosts.LastAdWatchedAt,
		&u.AdBoosts.DailyAdsWatched,
		&u.AdBoosts.TotalAdWatchCount,
		&u.LongestCombo,
		&u.RarestTreeSold,
		&u.LastLogin,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new account with the starting defaults and unlocks the
// given location and seed. Duplicate google_id or email yields
// ErrAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, u *domain.User, startLocationID, startSeedID int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO users (google_id, email, name, current_location_id, collection_progress, last_login)
		VALUES ($1, $2, $3, $4, 1, NOW())
		RETURNING id, gold, premium_slots, boost_sell_multiplier, last_login, created_at`,
		u.GoogleID, u.Email, u.Name, startLocationID,
	).Scan(&u.ID, &u.Gold, &u.PremiumSlots, &u.AdBoosts.SellMultiplier, &u.LastLogin, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO user_locations (user_id, location_id) VALUES ($1, $2)`,
		u.ID, startLocationID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO user_seeds (user_id, seed_id) VALUES ($1, $2)`,
		u.ID, startSeedID); err != nil {
		return err
	}

	u.CurrentLocationID = &startLocationID
	u.UnlockedLocations = []int64{startLocationID}
	u.UnlockedSeeds = []int64{startSeedID}
	u.CollectionProgress = 1

	return tx.Commit(ctx)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return u, r.loadUnlocks(ctx, u)
}

func (r *UserRepository) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE google_id = $1`, googleID))
	if err != nil {
		return nil, err
	}
	return u, r.loadUnlocks(ctx, u)
}

func (r *UserRepository) loadUnlocks(ctx context.Context, u *domain.User) error {
	rows, err := r.db.Query(ctx,
		`SELECT location_id FROM user_locations WHERE user_id = $1`, u.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return err
		}
		u.UnlockedLocations = append(u.UnlockedLocations, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	seedRows, err := r.db.Query(ctx,
		`SELECT seed_id FROM user_seeds WHERE user_id = $1`, u.ID)
	if err != nil {
		return err
	}
	defer seedRows.Close()
	for seedRows.Next() {
		var id int64
		if err := seedRows.Scan(&id); err != nil {
			return err
		}
		u.UnlockedSeeds = append(u.UnlockedSeeds, id)
	}
	return seedRows.Err()
}

// UpdateLastLogin stamps the login time.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET last_login = NOW(), updated_at = NOW() WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ProfilePatch carries the mutable profile fields for PATCH /users/:id.
// Nil pointers are left untouched.
type ProfilePatch struct {
	Name                 *string `json:"name"`
	PremiumSlots         *int    `json:"premium_slots"`
	HasFairy             *bool   `json:"has_fairy"`
	HasNoAds             *bool   `json:"has_no_ads"`
	ClickPowerUpgrade    *bool   `json:"click_power_upgrade"`
	TimeReductionUpgrade *bool   `json:"time_reduction_upgrade"`
	LongestCombo         *int64  `json:"longest_combo"`
}

// Update applies a whitelisted partial update and returns the fresh row.
func (r *UserRepository) Update(ctx context.Context, userID int64, p ProfilePatch) (*domain.User, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET
			name = COALESCE($2, name),
			premium_slots = COALESCE($3, premium_slots),
			has_fairy = COALESCE($4, has_fairy),
			has_no_ads = COALESCE($5, has_no_ads),
			click_power_upgrade = COALESCE($6, click_power_upgrade),
			time_reduction_upgrade = COALESCE($7, time_reduction_upgrade),
			longest_combo = COALESCE($8, longest_combo),
			updated_at = NOW()
		WHERE id = $1`,
		userID, p.Name, p.PremiumSlots, p.HasFairy, p.HasNoAds,
		p.ClickPowerUpgrade, p.TimeReductionUpgrade, p.LongestCombo)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}
	return r.GetByID(ctx, userID)
}
