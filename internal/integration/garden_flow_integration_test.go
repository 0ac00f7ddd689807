package integration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"idle_garden/internal/catalog"
	"idle_garden/internal/domain"
	"idle_garden/internal/repository"
	"idle_garden/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

func applyMigrations(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	migDir := filepath.Join("..", "..", "internal", "migrations")
	files, err := os.ReadDir(migDir)
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	for _, f := range files {
		b, err := os.ReadFile(filepath.Join(migDir, f.Name()))
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if _, err := db.Exec(context.Background(), string(b)); err != nil {
			t.Fatalf("apply migration %s: %v", f.Name(), err)
		}
	}
}

func syncCatalog(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()
	seedRepo := repository.NewSeedRepository(db)
	for i := range catalog.Seeds {
		s := catalog.Seeds[i]
		if err := seedRepo.Upsert(ctx, &s); err != nil {
			t.Fatalf("upsert seed %s: %v", s.Code, err)
		}
	}
	locRepo := repository.NewLocationRepository(db)
	for i := range catalog.Locations {
		l := catalog.Locations[i]
		if err := locRepo.Upsert(ctx, &l); err != nil {
			t.Fatalf("upsert location %s: %v", l.Code, err)
		}
	}
}

func connectTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func TestPlantClickSellFlow(t *testing.T) {
	db := connectTestDB(t)
	defer db.Close()

	applyMigrations(t, db)
	syncCatalog(t, db)

	ctx := context.Background()
	users := service.NewUserService(db)
	game := service.NewGameService(db)

	suffix := time.Now().UnixNano()
	u, err := users.Register(ctx, fmt.Sprintf("it-%d", suffix), fmt.Sprintf("flow-%d@test.local", suffix), "Flow Tester")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Gold != 0 {
		t.Fatalf("starting gold = %d; want 0", u.Gold)
	}

	seedRepo := repository.NewSeedRepository(db)
	seed, err := seedRepo.GetByCode(ctx, "bean_sprout")
	if err != nil {
		t.Fatalf("get seed: %v", err)
	}

	plant, err := game.Plant(ctx, u.ID, seed.ID, 0)
	if err != nil {
		t.Fatalf("plant: %v", err)
	}
	if plant.Tree.SlotIndex != 0 {
		t.Fatalf("slot = %d; want 0", plant.Tree.SlotIndex)
	}

	// same slot again must be rejected
	if _, err := game.Plant(ctx, u.ID, seed.ID, 0); !errors.Is(err, service.ErrSlotOccupied) {
		t.Fatalf("second plant err = %v; want ErrSlotOccupied", err)
	}

	// overclaimed reduction is rejected outright
	if _, err := game.Click(ctx, u.ID, plant.Tree.ID, 1, 11); !errors.Is(err, service.ErrReductionTooHigh) {
		t.Fatalf("click err = %v; want ErrReductionTooHigh", err)
	}

	click, err := game.Click(ctx, u.ID, plant.Tree.ID, 5, 50)
	if err != nil {
		t.Fatalf("click: %v", err)
	}
	if click.TimeReduced != 50 {
		t.Fatalf("time reduced = %d; want 50", click.TimeReduced)
	}

	// not ready yet, sell must report the remaining time
	var notReady *service.TreeNotReadyError
	if _, err := game.Sell(ctx, u.ID, plant.Tree.ID); !errors.As(err, &notReady) {
		t.Fatalf("sell err = %v; want TreeNotReadyError", err)
	}

	// clicking down the full bean_sprout grow time (300s) ripens it
	for i := 0; i < 3; i++ {
		if _, err := game.Click(ctx, u.ID, plant.Tree.ID, 100, 1000); err != nil {
			if errors.Is(err, service.ErrTreeAlreadyReady) {
				break
			}
			t.Fatalf("click batch %d: %v", i, err)
		}
	}

	// reductions are whole seconds, a sub-second residue may remain
	sold, err := game.Sell(ctx, u.ID, plant.Tree.ID)
	if errors.As(err, &notReady) {
		time.Sleep(time.Duration(notReady.TimeLeft)*time.Second + 100*time.Millisecond)
		sold, err = game.Sell(ctx, u.ID, plant.Tree.ID)
	}
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if sold.TotalTreesSold != 1 {
		t.Fatalf("total trees sold = %d; want 1", sold.TotalTreesSold)
	}
	if sold.SoldPrice <= 0 {
		t.Fatalf("sold price = %d; want > 0", sold.SoldPrice)
	}

	// tree is gone, slot is free again
	if _, err := game.Sell(ctx, u.ID, plant.Tree.ID); !errors.Is(err, service.ErrTreeNotFound) {
		t.Fatalf("resell err = %v; want ErrTreeNotFound", err)
	}
}

func TestAdClaimDailyLimit(t *testing.T) {
	db := connectTestDB(t)
	defer db.Close()

	applyMigrations(t, db)
	syncCatalog(t, db)

	ctx := context.Background()
	users := service.NewUserService(db)
	ads := service.NewAdsService(db)

	suffix := time.Now().UnixNano()
	u, err := users.Register(ctx, fmt.Sprintf("it-ads-%d", suffix), fmt.Sprintf("ads-%d@test.local", suffix), "Ads Tester")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	first, err := ads.Claim(ctx, u.ID, domain.BoostTime)
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if first.AdsRemaining != 1 {
		t.Fatalf("ads remaining = %d; want 1", first.AdsRemaining)
	}

	if _, err := ads.Claim(ctx, u.ID, domain.BoostSell); err != nil {
		t.Fatalf("second claim: %v", err)
	}

	if _, err := ads.Claim(ctx, u.ID, domain.BoostTime); !errors.Is(err, service.ErrDailyAdLimit) {
		t.Fatalf("third claim err = %v; want ErrDailyAdLimit", err)
	}

	status, err := ads.Status(ctx, u.ID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.CanWatchAd {
		t.Fatal("can_watch_ad should be false at the daily cap")
	}
	if status.ActiveBoosts.SellMultiplier != 2 {
		t.Fatalf("sell multiplier = %d; want 2", status.ActiveBoosts.SellMultiplier)
	}
}
