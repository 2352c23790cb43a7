// repository.go runs all queries against the categories table.
// List replacement is done in a database transaction so readers never see a
// half-replaced set.
package categories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides access to the categories table.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a category repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// List returns a user's categories ordered by usage, most used first.
func (r *Repository) List(ctx context.Context, userID int64) ([]*Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT user_id, name, parent, times_used
		FROM categories
		WHERE user_id = $1
		ORDER BY times_used DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []*Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.UserID, &c.Name, &c.Parent, &c.TimesUsed); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		cats = append(cats, &c)
	}
	return cats, rows.Err()
}

// Create inserts a single new category with a zero counter.
// Re-creating an existing name is a no-op.
func (r *Repository) Create(ctx context.Context, userID int64, name string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (user_id, name, times_used)
		VALUES ($1, $2, 0)
		ON CONFLICT (user_id, name) DO NOTHING
	`, userID, name)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}
	return nil
}

// ReplaceAll swaps a user's whole category set in one transaction.
// The caller decides which counters the new rows carry.
func (r *Repository) ReplaceAll(ctx context.Context, userID int64, cats []*Category) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM categories WHERE user_id = $1`, userID,
	); err != nil {
		return fmt.Errorf("deleting old categories: %w", err)
	}

	for _, c := range cats {
		if _, err := tx.Exec(ctx, `
			INSERT INTO categories (user_id, name, times_used)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, name) DO NOTHING
		`, userID, c.Name, c.TimesUsed); err != nil {
			return fmt.Errorf("inserting category %q: %w", c.Name, err)
		}
	}

	return tx.Commit(ctx)
}

// IncrementUsage bumps the counter of one category by 1.
// A name with no row matches zero rows and the increment is silently lost;
// commit relies on that to mirror the historical behavior.
func (r *Repository) IncrementUsage(ctx context.Context, userID int64, name string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE categories
		SET times_used = times_used + 1
		WHERE user_id = $1 AND name = $2
	`, userID, name)
	if err != nil {
		return fmt.Errorf("incrementing usage of %q: %w", name, err)
	}
	return nil
}

// ReconcileUsage re-derives every counter from the committed transactions.
// Run by the nightly job to heal the drift a list replacement can introduce.
func (r *Repository) ReconcileUsage(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE categories c
		SET times_used = (
			SELECT COUNT(*)
			FROM transactions t
			WHERE t.user_id = c.user_id AND t.category = c.name
		)
	`)
	if err != nil {
		return 0, fmt.Errorf("reconciling usage counters: %w", err)
	}
	return tag.RowsAffected(), nil
}
