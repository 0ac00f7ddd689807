package service

import (
	"context"
	"errors"
	"time"

	"idle_garden/internal/catalog"
	"idle_garden/internal/domain"
	"idle_garden/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserService handles accounts and the aggregate game state view.
type UserService struct {
	db           *pgxpool.Pool
	userRepo     *repository.UserRepository
	treeRepo     *repository.TreeRepository
	seedRepo     *repository.SeedRepository
	locationRepo *repository.LocationRepository
}

func NewUserService(db *pgxpool.Pool) *UserService {
	return &UserService{
		db:           db,
		userRepo:     repository.NewUserRepository(db),
		treeRepo:     repository.NewTreeRepository(db),
		seedRepo:     repository.NewSeedRepository(db),
		locationRepo: repository.NewLocationRepository(db),
	}
}

// Register creates a new account with the starting defaults: the default
// location unlocked and current, the starter seed in the collection.
func (s *UserService) Register(ctx context.Context, googleID, email, name string) (*domain.User, error) {
	defaultLocation, err := s.locationRepo.GetByCode(ctx, catalog.DefaultLocationCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("default location not found, run the catalog sync first")
		}
		return nil, err
	}
	defaultSeed, err := s.seedRepo.GetByCode(ctx, catalog.DefaultSeedCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("default seed not found, run the catalog sync first")
		}
		return nil, err
	}

	u := &domain.User{
		GoogleID: googleID,
		Email:    email,
		Name:     name,
	}
	if err := s.userRepo.Create(ctx, u, defaultLocation.ID, defaultSeed.ID); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	return u, nil
}

// LoginWithGoogle returns the account for a verified Google identity,
// creating it on first login, and stamps last_login.
func (s *UserService) LoginWithGoogle(ctx context.Context, gu *GoogleUser) (*domain.User, error) {
	u, err := s.userRepo.GetByGoogleID(ctx, gu.GoogleID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return s.Register(ctx, gu.GoogleID, gu.Email, gu.Name)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Update(ctx context.Context, userID int64, patch repository.ProfilePatch) (*domain.User, error) {
	u, err := s.userRepo.Update(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) TouchLastLogin(ctx context.Context, userID int64) error {
	if err := s.userRepo.UpdateLastLogin(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// TreeState is a planted tree with its seed and the lazily computed
// remaining time.
type TreeState struct {
	domain.PlantedTree
	Seed     *domain.Seed `json:"seed"`
	TimeLeft int64        `json:"time_left"`
	IsReady  bool         `json:"is_ready"`
}

// SlotStats summarizes slot occupancy.
type SlotStats struct {
	TotalSlots     int `json:"total_slots"`
	OccupiedSlots  int `json:"occupied_slots"`
	AvailableSlots int `json:"available_slots"`
}

// GameState is the aggregate for GET /users/:id/state and the garden feed.
type GameState struct {
	User         *domain.User `json:"user"`
	PlantedTrees []TreeState  `json:"planted_trees"`
	Stats        SlotStats    `json:"stats"`
}

// State assembles the user, their trees with time-left, and slot stats.
// Time left is derived from stored timestamps; nothing ticks server-side.
func (s *UserService) State(ctx context.Context, userID int64) (*GameState, error) {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	trees, err := s.treeRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	states := make([]TreeState, 0, len(trees))
	for _, t := range trees {
		seed, err := s.seedRepo.GetByID(ctx, t.SeedID)
		if err != nil {
			return nil, err
		}
		states = append(states, TreeState{
			PlantedTree: t,
			Seed:        seed,
			TimeLeft:    t.TimeLeft(now),
			IsReady:     t.Ready(now),
		})
	}

	total := u.TotalSlots()
	return &GameState{
		User:         u,
		PlantedTrees: states,
		Stats: SlotStats{
			TotalSlots:     total,
			OccupiedSlots:  len(trees),
			AvailableSlots: total - len(trees),
		},
	}, nil
}
