package repository

import (
	"context"

	"idle_garden/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LocationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{db: db}
}

const locationColumns = `id, code, name, price, ord, bonus_type, bonus_value,
	bonus_multiplier, icon, description, location_image_url, pot_image_url`

func scanLocation(row pgx.Row) (*domain.Location, error) {
	var l domain.Location
	if err := row.Scan(
		&l.ID,
		&l.Code,
		&l.Name,
		&l.Price,
		&l.Order,
		&l.BonusType,
		&l.BonusValue,
		&l.BonusMultiplier,
		&l.Icon,
		&l.Description,
		&l.LocationImageURL,
		&l.PotImageURL,
	); err != nil {
		return nil, err
	}
	return &l, nil
}

// GetAll returns all locations in unlock order.
func (r *LocationRepository) GetAll(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+locationColumns+` FROM locations ORDER BY ord ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *l)
	}
	return res, rows.Err()
}

func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	return scanLocation(r.db.QueryRow(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE id = $1`, id))
}

func (r *LocationRepository) GetByCode(ctx context.Context, code string) (*domain.Location, error) {
	return scanLocation(r.db.QueryRow(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE code = $1`, code))
}

// Upsert inserts or updates a catalog row by code. Used by the sync tool.
func (r *LocationRepository) Upsert(ctx context.Context, l *domain.Location) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO locations (code, name, price, ord, bonus_type, bonus_value,
			bonus_multiplier, icon, description, location_image_url, pot_image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			ord = EXCLUDED.ord,
			bonus_type = EXCLUDED.bonus_type,
			bonus_value = EXCLUDED.bonus_value,
			bonus_multiplier = EXCLUDED.bonus_multiplier,
			icon = EXCLUDED.icon,
			description = EXCLUDED.description,
			location_image_url = EXCLUDED.location_image_url,
			pot_image_url = EXCLUDED.pot_image_url
		RETURNING id`,
		l.Code, l.Name, l.Price, l.Order, l.BonusType, l.BonusValue,
		l.BonusMultiplier, l.Icon, l.Description, l.LocationImageURL, l.PotImageURL,
	).Scan(&l.ID)
}

// DeleteNotIn removes locations whose code is no longer in the static catalog.
func (r *LocationRepository) DeleteNotIn(ctx context.Context, codes []string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM locations WHERE NOT (code = ANY($1))`, codes)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
