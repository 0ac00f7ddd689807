package repository

import (
	"context"

	"idle_garden/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TreeRepository struct {
	db *pgxpool.Pool
}

func NewTreeRepository(db *pgxpool.Pool) *TreeRepository {
	return &TreeRepository{db: db}
}

const treeColumns = `id, user_id, slot_index, seed_id, quality, start_time,
	end_time, time_reduced, created_at`

func scanTree(row pgx.Row) (*domain.PlantedTree, error) {
	var t domain.PlantedTree
	if err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.SlotIndex,
		&t.SeedID,
		&t.Quality,
		&t.StartTime,
		&t.EndTime,
		&t.TimeReduced,
		&t.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TreeRepository) GetByID(ctx context.Context, id int64) (*domain.PlantedTree, error) {
	return scanTree(r.db.QueryRow(ctx,
		`SELECT `+treeColumns+` FROM planted_trees WHERE id = $1`, id))
}

// GetByUser returns the user's planted trees ordered by slot.
func (r *TreeRepository) GetByUser(ctx context.Context, userID int64) ([]domain.PlantedTree, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+treeColumns+` FROM planted_trees WHERE user_id = $1 ORDER BY slot_index ASC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.PlantedTree
	for rows.Next() {
		t, err := scanTree(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *t)
	}
	return res, rows.Err()
}

// GetForUpdateTx loads a tree inside a transaction with a row lock, so a
// click cannot race a sell on the same tree.
func (r *TreeRepository) GetForUpdateTx(ctx context.Context, tx pgx.Tx, id int64) (*domain.PlantedTree, error) {
	return scanTree(tx.QueryRow(ctx,
		`SELECT `+treeColumns+` FROM planted_trees WHERE id = $1 FOR UPDATE`, id))
}

// CreateTx inserts a tree within a transaction. The UNIQUE (user_id,
// slot_index) constraint backs the one-tree-per-slot invariant; callers
// translate the unique violation into a slot-occupied error.
func (r *TreeRepository) CreateTx(ctx context.Context, tx pgx.Tx, t *domain.PlantedTree) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO planted_trees (user_id, slot_index, seed_id, quality, start_time, end_time, time_reduced)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		t.UserID, t.SlotIndex, t.SeedID, t.Quality, t.StartTime, t.EndTime, t.TimeReduced,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil && isUniqueViolation(err) {
		return ErrAlreadyExists
	}
	return err
}

// ApplyReductionTx pulls the end time earlier by seconds and accumulates
// the running total.
func (r *TreeRepository) ApplyReductionTx(ctx context.Context, tx pgx.Tx, treeID, seconds int64) (*domain.PlantedTree, error) {
	return scanTree(tx.QueryRow(ctx, `
		UPDATE planted_trees
		SET end_time = end_time - make_interval(secs => $2),
		    time_reduced = time_reduced + $2
		WHERE id = $1
		RETURNING `+treeColumns, treeID, seconds))
}

// DeleteTx hard-deletes a sold tree.
func (r *TreeRepository) DeleteTx(ctx context.Context, tx pgx.Tx, treeID int64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM planted_trees WHERE id = $1`, treeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
