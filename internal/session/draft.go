package session

import (
	"strconv"
	"strings"
	"time"

	"spesebot.it/telegram-bot/internal/common"
)

// Draft is an uncommitted transaction under interactive editing.
// It lives only inside a Session and becomes a persisted transaction on
// save, or disappears on cancel.
type Draft struct {
	// Amount as the user typed it. Sign convention is up to the user.
	Amount float64

	// Category and Description are optional; empty means unset.
	Category    string
	Description string

	// Timestamp is the capture instant (unix seconds), stamped once at
	// construction and never recomputed.
	Timestamp int64

	// Date is the calendar date, editable independently of Timestamp.
	Date time.Time
}

// ParseDraft builds a draft from an incoming message.
//
// The first whitespace-delimited token must parse as a number, otherwise no
// draft is created (ok is false). Any remaining tokens, joined by single
// spaces, become the description.
func ParseDraft(text string, now time.Time) (d *Draft, ok bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, false
	}

	amount, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, false
	}

	d = &Draft{
		Amount:    amount,
		Timestamp: now.Unix(),
		Date:      now,
	}
	if len(fields) >= 2 {
		d.Description = strings.Join(fields[1:], " ")
	}
	return d, true
}

// Render produces the HTML summary shown above the editing keyboard.
// Date and amount always appear; category and description lines are omitted
// entirely when unset.
func (d *Draft) Render(currency string) string {
	var sb strings.Builder
	sb.WriteString("<b>Data:</b> " + d.Date.Format(common.DateLayout) + "\n")
	sb.WriteString("<b>Importo:</b> " + common.FormatAmount(d.Amount, currency) + "\n")
	if d.Category != "" {
		sb.WriteString("<b>Categoria:</b> " + d.Category + "\n")
	}
	if d.Description != "" {
		sb.WriteString("<b>Descrizione:</b> " + d.Description + "\n")
	}
	return sb.String()
}

// SetAmount replaces the amount from user text.
func (d *Draft) SetAmount(text string) error {
	amount, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return common.ErrInvalidAmount
	}
	d.Amount = amount
	return nil
}

// SetDate replaces the date from a YYYY-MM-DD string.
func (d *Draft) SetDate(text string) error {
	t, err := common.ParseDate(text)
	if err != nil {
		return err
	}
	d.Date = t
	return nil
}
