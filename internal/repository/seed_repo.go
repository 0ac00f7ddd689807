package repository

import (
	"context"

	"idle_garden/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SeedRepository struct {
	db *pgxpool.Pool
}

func NewSeedRepository(db *pgxpool.Pool) *SeedRepository {
	return &SeedRepository{db: db}
}

const seedColumns = `id, code, name, base_price, base_sell_price, base_grow_time,
	unlock_type, unlock_value, icon, description, is_event, event_start, event_end`

func scanSeed(row pgx.Row) (*domain.Seed, error) {
	var s domain.Seed
	if err := row.Scan(
		&s.ID,
		&s.Code,
		&s.Name,
		&s.BasePrice,
		&s.BaseSellPrice,
		&s.BaseGrowTime,
		&s.UnlockRequirement.Type,
		&s.UnlockRequirement.Value,
		&s.Icon,
		&s.Description,
		&s.IsEvent,
		&s.EventStart,
		&s.EventEnd,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetAll returns all seeds, cheapest first.
func (r *SeedRepository) GetAll(ctx context.Context) ([]domain.Seed, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+seedColumns+` FROM seeds ORDER BY base_price ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.Seed
	for rows.Next() {
		s, err := scanSeed(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *s)
	}
	return res, rows.Err()
}

func (r *SeedRepository) GetByID(ctx context.Context, id int64) (*domain.Seed, error) {
	return scanSeed(r.db.QueryRow(ctx,
		`SELECT `+seedColumns+` FROM seeds WHERE id = $1`, id))
}

func (r *SeedRepository) GetByCode(ctx context.Context, code string) (*domain.Seed, error) {
	return scanSeed(r.db.QueryRow(ctx,
		`SELECT `+seedColumns+` FROM seeds WHERE code = $1`, code))
}

// Upsert inserts or updates a catalog row by code. Used by the sync tool.
func (r *SeedRepository) Upsert(ctx context.Context, s *domain.Seed) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO seeds (code, name, base_price, base_sell_price, base_grow_time,
			unlock_type, unlock_value, icon, description, is_event, event_start, event_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			base_price = EXCLUDED.base_price,
			base_sell_price = EXCLUDED.base_sell_price,
			base_grow_time = EXCLUDED.base_grow_time,
			unlock_type = EXCLUDED.unlock_type,
			unlock_value = EXCLUDED.unlock_value,
			icon = EXCLUDED.icon,
			description = EXCLUDED.description,
			is_event = EXCLUDED.is_event,
			event_start = EXCLUDED.event_start,
			event_end = EXCLUDED.event_end
		RETURNING id`,
		s.Code, s.Name, s.BasePrice, s.BaseSellPrice, s.BaseGrowTime,
		s.UnlockRequirement.Type, s.UnlockRequirement.Value,
		s.Icon, s.Description, s.IsEvent, s.EventStart, s.EventEnd,
	).Scan(&s.ID)
}

// DeleteNotIn removes seeds whose code is no longer in the static catalog.
func (r *SeedRepository) DeleteNotIn(ctx context.Context, codes []string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM seeds WHERE NOT (code = ANY($1))`, codes)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
