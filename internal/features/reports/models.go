// Package reports aggregates committed transactions into spending summaries
// and renders them as charts.
package reports

import "time"

// row is one transaction slice relevant to aggregation.
type row struct {
	Date     time.Time
	Category string
	Amount   float64
}

// CategorySpend is the total spent in one category.
type CategorySpend struct {
	Name   string
	Amount float64
}

// MonthSpend is the total spent in one calendar month.
type MonthSpend struct {
	Month  string // YYYY-MM
	Amount float64
}

// MonthCategorySpend is the total spent in one category in one month.
type MonthCategorySpend struct {
	Month    string // YYYY-MM
	Category string
	Amount   float64
}

// Analysis bundles the three aggregate views of a month's transactions.
type Analysis struct {
	ByCategory      []CategorySpend      // descending by amount spent
	ByMonth         []MonthSpend         // ascending by month
	ByMonthCategory []MonthCategorySpend // ascending by month, then descending by amount
}

// Empty reports whether the analysis has nothing to plot.
func (a *Analysis) Empty() bool {
	return len(a.ByCategory) == 0 && len(a.ByMonth) == 0 && len(a.ByMonthCategory) == 0
}
