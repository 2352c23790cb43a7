package reports

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads the transaction slices the aggregation needs.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a report repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// monthRows returns a user's date/category/amount triples for the given
// month number (1-12, any year). Uncategorized rows come back with an empty
// category.
func (r *Repository) monthRows(ctx context.Context, userID int64, month int) ([]row, error) {
	rows, err := r.db.Query(ctx, `
		SELECT date, COALESCE(category, ''), amount
		FROM transactions
		WHERE user_id = $1 AND EXTRACT(MONTH FROM date) = $2
		ORDER BY date
	`, userID, month)
	if err != nil {
		return nil, fmt.Errorf("reading report rows: %w", err)
	}
	defer rows.Close()

	var out []row
	for rows.Next() {
		var rec row
		if err := rows.Scan(&rec.Date, &rec.Category, &rec.Amount); err != nil {
			return nil, fmt.Errorf("scanning report row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
