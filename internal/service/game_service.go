package service

import (
	"context"
	"errors"
	"time"

	"idle_garden/internal/domain"
	"idle_garden/internal/game"
	"idle_garden/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GameService implements the tree lifecycle: plant, click, sell. Every
// operation is a single transaction with row locks on the affected user and
// tree, so concurrent requests cannot split a multi-step update. Lock order
// is always tree before user.
type GameService struct {
	db       *pgxpool.Pool
	seedRepo *repository.SeedRepository
	treeRepo *repository.TreeRepository
}

func NewGameService(db *pgxpool.Pool) *GameService {
	return &GameService{
		db:       db,
		seedRepo: repository.NewSeedRepository(db),
		treeRepo: repository.NewTreeRepository(db),
	}
}

// PlantResult is the payload for a successful plant.
type PlantResult struct {
	Tree       *domain.PlantedTree `json:"planted_tree"`
	Seed       *domain.Seed        `json:"seed"`
	Gold       int64               `json:"gold"`
	TotalSlots int                 `json:"total_slots"`
}

// Plant creates a tree in the given slot and deducts the seed price, as one
// atomic unit.
func (s *GameService) Plant(ctx context.Context, userID, seedID int64, slotIndex int) (*PlantResult, error) {
	seed, err := s.seedRepo.GetByID(ctx, seedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSeedNotFound
		}
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		gold                 int64
		premiumSlots         int
		timeReductionUpgrade bool
	)
	err = tx.QueryRow(ctx,
		`SELECT gold, premium_slots, time_reduction_upgrade FROM users WHERE id = $1 FOR UPDATE`,
		userID,
	).Scan(&gold, &premiumSlots, &timeReductionUpgrade)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	totalSlots := 1 + premiumSlots
	if slotIndex < 0 || slotIndex >= totalSlots {
		return nil, ErrInvalidSlot
	}
	if gold < seed.BasePrice {
		return nil, ErrInsufficientFunds
	}

	now := time.Now()
	tree := &domain.PlantedTree{
		UserID:    userID,
		SlotIndex: slotIndex,
		SeedID:    seed.ID,
		Quality:   game.RollQuality(nil),
		StartTime: now,
		EndTime:   now.Add(game.GrowDuration(seed.BaseGrowTime, timeReductionUpgrade)),
	}

	if err := s.treeRepo.CreateTx(ctx, tx, tree); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrSlotOccupied
		}
		return nil, err
	}

	var newGold int64
	err = tx.QueryRow(ctx,
		`UPDATE users SET gold = gold - $1, updated_at = NOW() WHERE id = $2 RETURNING gold`,
		seed.BasePrice, userID,
	).Scan(&newGold)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &PlantResult{
		Tree:       tree,
		Seed:       seed,
		Gold:       newGold,
		TotalSlots: totalSlots,
	}, nil
}

// ClickResult is the payload for a click batch.
type ClickResult struct {
	Tree            *domain.PlantedTree `json:"planted_tree"`
	TimeLeft        int64               `json:"time_left"`
	IsReady         bool                `json:"is_ready"`
	ClicksProcessed int                 `json:"clicks_processed"`
	TimeReduced     int64               `json:"time_reduced"`
	TotalClicks     int64               `json:"total_clicks"`
}

// Click applies a batch of taps: the claimed reduction is capped by the
// per-click ceiling (rejected, not truncated) and then clamped to the time
// actually remaining.
func (s *GameService) Click(ctx context.Context, userID, treeID int64, clicks int, timeReduction int64) (*ClickResult, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tree, err := s.treeRepo.GetForUpdateTx(ctx, tx, treeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTreeNotFound
		}
		return nil, err
	}
	if tree.UserID != userID {
		return nil, ErrNotTreeOwner
	}

	now := time.Now()
	if tree.Ready(now) {
		return nil, ErrTreeAlreadyReady
	}
	if !game.ReductionAllowed(clicks, timeReduction) {
		return nil, ErrReductionTooHigh
	}

	actual := game.ClampReduction(timeReduction, tree.TimeLeft(now))

	tree, err = s.treeRepo.ApplyReductionTx(ctx, tx, treeID, actual)
	if err != nil {
		return nil, err
	}

	// Lifetime clicks count the raw taps, not the reduction applied.
	var totalClicks int64
	err = tx.QueryRow(ctx,
		`UPDATE users SET total_clicks = total_clicks + $1, updated_at = NOW() WHERE id = $2 RETURNING total_clicks`,
		clicks, userID,
	).Scan(&totalClicks)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &ClickResult{
		Tree:            tree,
		TimeLeft:        tree.TimeLeft(now),
		IsReady:         tree.Ready(now),
		ClicksProcessed: clicks,
		TimeReduced:     actual,
		TotalClicks:     totalClicks,
	}, nil
}

// SellResult is the payload for a sold tree.
type SellResult struct {
	SoldPrice int64              `json:"sold_price"`
	Quality   domain.TreeQuality `json:"quality"`
	SeedName  string             `json:"seed_name"`

	Gold           int64 `json:"gold"`
	TotalEarnings  int64 `json:"total_earnings"`
	TotalTreesSold int64 `json:"total_trees_sold"`
}

// Sell pays out a ready tree and deletes it. Payout, stat updates, the
// rarest-tree ratchet and the one-shot multiplier reset are folded into a
// single user UPDATE inside the same transaction as the delete.
func (s *GameService) Sell(ctx context.Context, userID, treeID int64) (*SellResult, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tree, err := s.treeRepo.GetForUpdateTx(ctx, tx, treeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTreeNotFound
		}
		return nil, err
	}
	if tree.UserID != userID {
		return nil, ErrNotTreeOwner
	}

	now := time.Now()
	if !tree.Ready(now) {
		// Ceiling, so a tree 0.5s from ready reports 1 remaining second.
		left := int64(tree.EndTime.Sub(now).Seconds())
		if tree.EndTime.Sub(now)%time.Second > 0 {
			left++
		}
		return nil, &TreeNotReadyError{TimeLeft: left}
	}

	seed, err := s.seedRepo.GetByID(ctx, tree.SeedID)
	if err != nil {
		return nil, err
	}

	var (
		sellMultiplier int
		rarest         *string
	)
	err = tx.QueryRow(ctx,
		`SELECT boost_sell_multiplier, rarest_tree_sold FROM users WHERE id = $1 FOR UPDATE`,
		userID,
	).Scan(&sellMultiplier, &rarest)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	price := game.SellPrice(seed.BaseSellPrice, tree.Quality, sellMultiplier)

	var newRarest *string
	if v, ok := game.RarestAfterSale(rarest, tree.Quality); ok {
		newRarest = &v
	}

	res := &SellResult{
		SoldPrice: price,
		Quality:   tree.Quality,
		SeedName:  seed.Name,
	}
	err = tx.QueryRow(ctx, `
		UPDATE users SET
			gold = gold + $2,
			total_earnings = total_earnings + $2,
			total_trees_sold = total_trees_sold + 1,
			rarest_tree_sold = COALESCE($3, rarest_tree_sold),
			boost_sell_multiplier = 1,
			updated_at = NOW()
		WHERE id = $1
		RETURNING gold, total_earnings, total_trees_sold`,
		userID, price, newRarest,
	).Scan(&res.Gold, &res.TotalEarnings, &res.TotalTreesSold)
	if err != nil {
		return nil, err
	}

	if err := s.treeRepo.DeleteTx(ctx, tx, treeID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return res, nil
}
