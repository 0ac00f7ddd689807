package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"idle_garden/internal/catalog"
	"idle_garden/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// syncdata reconciles the seed and location tables with the authored
// catalog: upsert by code, then remove rows the catalog no longer lists.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()
	seedRepo := repository.NewSeedRepository(db)
	locRepo := repository.NewLocationRepository(db)

	seedCodes := make([]string, 0, len(catalog.Seeds))
	for i := range catalog.Seeds {
		s := catalog.Seeds[i]
		if err := seedRepo.Upsert(ctx, &s); err != nil {
			log.Fatalf("upsert seed %s: %v", s.Code, err)
		}
		seedCodes = append(seedCodes, s.Code)
	}
	removedSeeds, err := seedRepo.DeleteNotIn(ctx, seedCodes)
	if err != nil {
		log.Fatalf("prune seeds: %v", err)
	}

	locCodes := make([]string, 0, len(catalog.Locations))
	for i := range catalog.Locations {
		l := catalog.Locations[i]
		if err := locRepo.Upsert(ctx, &l); err != nil {
			log.Fatalf("upsert location %s: %v", l.Code, err)
		}
		locCodes = append(locCodes, l.Code)
	}
	removedLocs, err := locRepo.DeleteNotIn(ctx, locCodes)
	if err != nil {
		log.Fatalf("prune locations: %v", err)
	}

	fmt.Printf("seeds: %d synced, %d removed\n", len(seedCodes), removedSeeds)
	fmt.Printf("locations: %d synced, %d removed\n", len(locCodes), removedLocs)
}
