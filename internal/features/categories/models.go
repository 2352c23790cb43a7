// Package categories manages the per-user category set and its usage
// counters. models.go describes the stored rows and the default set.
package categories

// Category is one row of the categories table. (user_id, name) is the
// identity: every user owns an independent set of names.
type Category struct {
	UserID int64  `db:"user_id"`
	Name   string `db:"name"`
	// Parent is reserved for a future hierarchy; nothing reads it yet.
	Parent *string `db:"parent"`
	// TimesUsed counts committed transactions referencing this name.
	TimesUsed int `db:"times_used"`
}

// DefaultNames is provisioned on first access for users with no categories.
var DefaultNames = []string{
	"🍔 Cibo",
	"📨 Bollette",
	"📱 Telefono",
	"👔 Abbigliamento",
	"🏠 Casa",
	"🕹️ Svago",
	"🚗 Auto",
	"⛽ Benzina",
	"🪁 Tempo libero",
	"🎁 Regali",
	"💰 Altro",
}
