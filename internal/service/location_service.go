package service

import (
	"context"
	"errors"

	"idle_garden/internal/domain"
	"idle_garden/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LocationService handles location purchase and selection.
type LocationService struct {
	db           *pgxpool.Pool
	locationRepo *repository.LocationRepository
}

func NewLocationService(db *pgxpool.Pool) *LocationService {
	return &LocationService{
		db:           db,
		locationRepo: repository.NewLocationRepository(db),
	}
}

// BuyResult is the payload for a purchased location.
type BuyResult struct {
	Location *domain.Location `json:"location"`
	Gold     int64            `json:"gold"`
}

// Buy unlocks a location: the gold debit and the unlock-set append happen
// in one transaction.
func (s *LocationService) Buy(ctx context.Context, userID, locationID int64) (*BuyResult, error) {
	loc, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var gold int64
	err = tx.QueryRow(ctx,
		`SELECT gold FROM users WHERE id = $1 FOR UPDATE`, userID,
	).Scan(&gold)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var owned bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_locations WHERE user_id = $1 AND location_id = $2)`,
		userID, locationID,
	).Scan(&owned)
	if err != nil {
		return nil, err
	}
	if owned {
		return nil, ErrLocationAlreadyUnlocked
	}

	if gold < loc.Price {
		return nil, ErrInsufficientFunds
	}

	var newGold int64
	err = tx.QueryRow(ctx,
		`UPDATE users SET gold = gold - $1, updated_at = NOW() WHERE id = $2 RETURNING gold`,
		loc.Price, userID,
	).Scan(&newGold)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO user_locations (user_id, location_id) VALUES ($1, $2)`,
		userID, locationID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &BuyResult{Location: loc, Gold: newGold}, nil
}

// Select makes an already-unlocked location the user's current one.
func (s *LocationService) Select(ctx context.Context, userID, locationID int64) (*domain.Location, error) {
	loc, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	var owned bool
	err = s.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_locations WHERE user_id = $1 AND location_id = $2)`,
		userID, locationID,
	).Scan(&owned)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrLocationNotUnlocked
	}

	tag, err := s.db.Exec(ctx,
		`UPDATE users SET current_location_id = $1, updated_at = NOW() WHERE id = $2`,
		locationID, userID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrUserNotFound
	}
	return loc, nil
}
