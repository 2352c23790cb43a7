// table.go renders the monthly listing as a monospace table.
package transactions

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"spesebot.it/telegram-bot/internal/common"
)

// Column widths are tight so the table fits a phone screen.
const (
	descriptionWidth = 15
	categoryWidth    = 10
)

// RenderMonthTable formats the transactions as a text table with a total
// row. Amounts are shown sign-flipped so stored expenses read as positive
// spending.
func RenderMonthTable(txs []*Transaction, currency string) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"DATA", "DESCRIZIONE", currency, "CATEGORIA"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	var total float64
	for _, t := range txs {
		total += t.Amount
		table.Append([]string{
			t.Date.Format("01-02"),
			common.Truncate(t.Description, descriptionWidth),
			fmt.Sprintf("%.2f", -t.Amount),
			common.Truncate(t.Category, categoryWidth),
		})
	}
	table.SetFooter([]string{"", "", fmt.Sprintf("%.2f", -total), "TOTAL"})

	table.Render()
	return buf.String()
}
