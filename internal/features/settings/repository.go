// repository.go reads and upserts the settings table.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides access to the settings table.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a settings repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Get returns a user's settings row, or nil when the user never saved any.
func (r *Repository) Get(ctx context.Context, userID int64) (*Setting, error) {
	var s Setting
	err := r.db.QueryRow(ctx, `
		SELECT user_id, setting1, setting2, setting3, setting4, setting5
		FROM settings
		WHERE user_id = $1
	`, userID).Scan(&s.UserID, &s.Setting1, &s.Setting2, &s.Setting3, &s.Setting4, &s.Setting5)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	return &s, nil
}

// UpsertCurrency stores the display currency with replace semantics:
// one row per user, last write wins. nil disables the symbol.
func (r *Repository) UpsertCurrency(ctx context.Context, userID int64, currency *string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO settings (user_id, setting1)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET setting1 = EXCLUDED.setting1
	`, userID, currency)
	if err != nil {
		return fmt.Errorf("upserting currency: %w", err)
	}
	return nil
}
