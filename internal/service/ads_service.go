package service

import (
	"context"
	"errors"
	"time"

	"idle_garden/internal/domain"
	"idle_garden/internal/game"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdsService tracks per-user ad watches and applies the one-shot boosts.
type AdsService struct {
	db *pgxpool.Pool
}

func NewAdsService(db *pgxpool.Pool) *AdsService {
	return &AdsService{db: db}
}

// AdStatus mirrors GET /ads/status.
type AdStatus struct {
	DailyAdsWatched   int        `json:"daily_ads_watched"`
	AdsRemaining      int        `json:"ads_remaining"`
	MaxDailyAds       int        `json:"max_daily_ads"`
	CanWatchAd        bool       `json:"can_watch_ad"`
	LastAdWatchedAt   *time.Time `json:"last_ad_watched_at"`
	TotalAdWatchCount int        `json:"total_ad_watch_count"`
	ActiveBoosts      struct {
		TimeReduction  int `json:"time_reduction"`
		SellMultiplier int `json:"sell_multiplier"`
	} `json:"active_boosts"`
}

// Status reports the daily allowance. Crossing a calendar day resets the
// counter, and the reset is persisted right away.
func (s *AdsService) Status(ctx context.Context, userID int64) (*AdStatus, error) {
	var (
		boosts domain.AdBoosts
	)
	err := s.db.QueryRow(ctx, `
		SELECT boost_time_reduction, boost_sell_multiplier, last_ad_watched_at,
		       daily_ads_watched, total_ad_watch_count
		FROM users WHERE id = $1`,
		userID,
	).Scan(
		&boosts.TimeReductionAvailable,
		&boosts.SellMultiplier,
		&boosts.LastAdWatchedAt,
		&boosts.DailyAdsWatched,
		&boosts.TotalAdWatchCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if boosts.LastAdWatchedAt != nil && game.IsNewDay(*boosts.LastAdWatchedAt, time.Now()) {
		if _, err := s.db.Exec(ctx,
			`UPDATE users SET daily_ads_watched = 0, updated_at = NOW() WHERE id = $1`,
			userID); err != nil {
			return nil, err
		}
		boosts.DailyAdsWatched = 0
	}

	st := &AdStatus{
		DailyAdsWatched:   boosts.DailyAdsWatched,
		AdsRemaining:      game.MaxDailyAds - boosts.DailyAdsWatched,
		MaxDailyAds:       game.MaxDailyAds,
		CanWatchAd:        boosts.DailyAdsWatched < game.MaxDailyAds,
		LastAdWatchedAt:   boosts.LastAdWatchedAt,
		TotalAdWatchCount: boosts.TotalAdWatchCount,
	}
	st.ActiveBoosts.TimeReduction = boosts.TimeReductionAvailable
	st.ActiveBoosts.SellMultiplier = boosts.SellMultiplier
	return st, nil
}

// ClaimResult mirrors POST /ads/reward.
type ClaimResult struct {
	BoostType         domain.BoostType `json:"boost_type"`
	BoostValue        int              `json:"boost_value"`
	DailyAdsWatched   int              `json:"daily_ads_watched"`
	AdsRemaining      int              `json:"ads_remaining"`
	TotalAdWatchCount int              `json:"total_ad_watch_count"`
}

// Claim grants an ad boost. Grants are flat sets, never additive: claiming
// "time" twice still leaves 30 seconds available, "sell" stays at x2.
func (s *AdsService) Claim(ctx context.Context, userID int64, boostType domain.BoostType) (*ClaimResult, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		lastWatched *time.Time
		daily       int
	)
	err = tx.QueryRow(ctx,
		`SELECT last_ad_watched_at, daily_ads_watched FROM users WHERE id = $1 FOR UPDATE`,
		userID,
	).Scan(&lastWatched, &daily)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now()
	if lastWatched != nil && game.IsNewDay(*lastWatched, now) {
		daily = 0
	}
	if daily >= game.MaxDailyAds {
		return nil, ErrDailyAdLimit
	}

	var (
		boostValue int
		query      string
	)
	switch boostType {
	case domain.BoostTime:
		boostValue = game.AdTimeReductionSeconds
		query = `UPDATE users SET
			boost_time_reduction = $2,
			last_ad_watched_at = $3,
			daily_ads_watched = $4,
			total_ad_watch_count = total_ad_watch_count + 1,
			updated_at = NOW()
		WHERE id = $1
		RETURNING total_ad_watch_count`
	case domain.BoostSell:
		boostValue = game.AdSellMultiplier
		query = `UPDATE users SET
			boost_sell_multiplier = $2,
			last_ad_watched_at = $3,
			daily_ads_watched = $4,
			total_ad_watch_count = total_ad_watch_count + 1,
			updated_at = NOW()
		WHERE id = $1
		RETURNING total_ad_watch_count`
	default:
		return nil, errors.New("unknown boost type")
	}

	daily++
	var total int
	if err := tx.QueryRow(ctx, query, userID, boostValue, now, daily).Scan(&total); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &ClaimResult{
		BoostType:         boostType,
		BoostValue:        boostValue,
		DailyAdsWatched:   daily,
		AdsRemaining:      game.MaxDailyAds - daily,
		TotalAdWatchCount: total,
	}, nil
}
