// Package transactions manages committed spending transactions and the
// conversation that edits a draft before committing it.
// models.go describes the stored row.
package transactions

import "time"

// Transaction is one committed row. Immutable once written: the running
// system only ever inserts at the terminal save step.
//
// (user_id, ts, amount) is the identity; two saves by the same user in the
// same second with the same amount collapse into one row, last write wins.
type Transaction struct {
	// Timestamp is the capture instant in unix seconds.
	Timestamp int64 `db:"ts"`
	// Date is the user-editable calendar date, independent of Timestamp.
	Date   time.Time `db:"date"`
	UserID int64     `db:"user_id"`
	// Amount is stored as the user entered it; the sign convention is not
	// enforced.
	Amount float64 `db:"amount"`
	// Description and Category are optional; empty means absent.
	Description string `db:"description"`
	Category    string `db:"category"`
}
