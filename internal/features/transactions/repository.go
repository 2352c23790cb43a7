// repository.go runs all queries against the transactions table.
package transactions

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"spesebot.it/telegram-bot/internal/features/classifier"
)

// Repository provides access to the transactions table.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a transaction repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Insert writes one committed transaction. Empty description/category are
// stored as NULL. On identity collision the new row wins.
func (r *Repository) Insert(ctx context.Context, t *Transaction) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO transactions (user_id, ts, date, amount, description, category)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
		ON CONFLICT (user_id, ts, amount) DO UPDATE
		SET date = EXCLUDED.date,
		    description = EXCLUDED.description,
		    category = EXCLUDED.category
	`, t.UserID, t.Timestamp, t.Date, t.Amount, t.Description, t.Category)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}
	return nil
}

// ListMonth returns a user's transactions whose date falls in the given
// month number (1-12, any year), newest date first.
func (r *Repository) ListMonth(ctx context.Context, userID int64, month int) ([]*Transaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT user_id, ts, date, amount, COALESCE(description, ''), COALESCE(category, '')
		FROM transactions
		WHERE user_id = $1 AND EXTRACT(MONTH FROM date) = $2
		ORDER BY date DESC
	`, userID, month)
	if err != nil {
		return nil, fmt.Errorf("listing month transactions: %w", err)
	}
	defer rows.Close()

	var txs []*Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.UserID, &t.Timestamp, &t.Date, &t.Amount, &t.Description, &t.Category); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		txs = append(txs, &t)
	}
	return txs, rows.Err()
}

// DescriptionHistory returns the user's description/category pairs ordered
// by descending capture timestamp. Implements classifier.HistoryProvider.
func (r *Repository) DescriptionHistory(ctx context.Context, userID int64) ([]classifier.HistoryEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT COALESCE(description, ''), COALESCE(category, '')
		FROM transactions
		WHERE user_id = $1
		ORDER BY ts DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("reading description history: %w", err)
	}
	defer rows.Close()

	var entries []classifier.HistoryEntry
	for rows.Next() {
		var e classifier.HistoryEntry
		if err := rows.Scan(&e.Description, &e.Category); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
