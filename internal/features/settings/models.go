// Package settings stores per-user preferences.
// models.go describes the settings row: five free-text slots, of which only
// the first (display currency) is in use today.
package settings

// Setting is the single settings row of one user.
type Setting struct {
	UserID   int64   `db:"user_id"`
	Setting1 *string `db:"setting1"` // display currency symbol
	Setting2 *string `db:"setting2"` // reserved
	Setting3 *string `db:"setting3"` // reserved
	Setting4 *string `db:"setting4"` // reserved
	Setting5 *string `db:"setting5"` // reserved
}

// Currency returns the stored symbol, empty when the user disabled it.
func (s *Setting) Currency() string {
	if s.Setting1 == nil {
		return ""
	}
	return *s.Setting1
}
