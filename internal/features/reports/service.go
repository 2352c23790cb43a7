package reports

import (
	"context"
	"sort"

	"spesebot.it/telegram-bot/internal/common"
)

// Service computes spending analyses.
type Service struct {
	repo *Repository
}

// NewService creates the report service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Analyze aggregates a user's transactions for a YYYY-MM month selector.
func (s *Service) Analyze(ctx context.Context, userID int64, month string) (*Analysis, error) {
	num, err := common.MonthNumber(month)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.monthRows(ctx, userID, num)
	if err != nil {
		return nil, err
	}
	return aggregate(rows), nil
}

// aggregate folds the rows into the three views. Amounts are summed as
// stored; only the listing table flips the sign for display.
func aggregate(rows []row) *Analysis {
	byCat := make(map[string]float64)
	byMonth := make(map[string]float64)
	byMonthCat := make(map[string]map[string]float64)

	for _, r := range rows {
		month := r.Date.Format(common.MonthLayout)
		byCat[r.Category] += r.Amount
		byMonth[month] += r.Amount
		if byMonthCat[month] == nil {
			byMonthCat[month] = make(map[string]float64)
		}
		byMonthCat[month][r.Category] += r.Amount
	}

	a := &Analysis{}

	for name, amount := range byCat {
		a.ByCategory = append(a.ByCategory, CategorySpend{Name: name, Amount: amount})
	}
	sort.Slice(a.ByCategory, func(i, j int) bool {
		if a.ByCategory[i].Amount != a.ByCategory[j].Amount {
			return a.ByCategory[i].Amount > a.ByCategory[j].Amount
		}
		return a.ByCategory[i].Name < a.ByCategory[j].Name
	})

	for month, amount := range byMonth {
		a.ByMonth = append(a.ByMonth, MonthSpend{Month: month, Amount: amount})
	}
	sort.Slice(a.ByMonth, func(i, j int) bool {
		return a.ByMonth[i].Month < a.ByMonth[j].Month
	})

	for month, cats := range byMonthCat {
		for name, amount := range cats {
			a.ByMonthCategory = append(a.ByMonthCategory, MonthCategorySpend{
				Month:    month,
				Category: name,
				Amount:   amount,
			})
		}
	}
	sort.Slice(a.ByMonthCategory, func(i, j int) bool {
		if a.ByMonthCategory[i].Month != a.ByMonthCategory[j].Month {
			return a.ByMonthCategory[i].Month < a.ByMonthCategory[j].Month
		}
		if a.ByMonthCategory[i].Amount != a.ByMonthCategory[j].Amount {
			return a.ByMonthCategory[i].Amount > a.ByMonthCategory[j].Amount
		}
		return a.ByMonthCategory[i].Category < a.ByMonthCategory[j].Category
	})

	return a
}
