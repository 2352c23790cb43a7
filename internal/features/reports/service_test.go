package reports

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregate(t *testing.T) {
	rows := []row{
		{Date: day(2024, 3, 1), Category: "🍔 Cibo", Amount: 10},
		{Date: day(2024, 3, 2), Category: "🍔 Cibo", Amount: 5},
		{Date: day(2024, 3, 3), Category: "🚗 Auto", Amount: 40},
		{Date: day(2023, 3, 10), Category: "🍔 Cibo", Amount: 7},
		{Date: day(2024, 3, 5), Category: "", Amount: 3},
	}

	a := aggregate(rows)

	// Categories come out descending by total.
	if len(a.ByCategory) != 3 {
		t.Fatalf("ByCategory len = %d, want 3", len(a.ByCategory))
	}
	if a.ByCategory[0].Name != "🚗 Auto" || a.ByCategory[0].Amount != 40 {
		t.Errorf("top category = %+v, want 🚗 Auto / 40", a.ByCategory[0])
	}
	if a.ByCategory[1].Name != "🍔 Cibo" || a.ByCategory[1].Amount != 22 {
		t.Errorf("second category = %+v, want 🍔 Cibo / 22", a.ByCategory[1])
	}

	// Months ascending: the same month number of an earlier year stays
	// separate.
	if len(a.ByMonth) != 2 {
		t.Fatalf("ByMonth len = %d, want 2", len(a.ByMonth))
	}
	if a.ByMonth[0].Month != "2023-03" || a.ByMonth[0].Amount != 7 {
		t.Errorf("first month = %+v, want 2023-03 / 7", a.ByMonth[0])
	}
	if a.ByMonth[1].Month != "2024-03" || a.ByMonth[1].Amount != 58 {
		t.Errorf("second month = %+v, want 2024-03 / 58", a.ByMonth[1])
	}

	// Month/category pairs ascending by month then category.
	if len(a.ByMonthCategory) != 4 {
		t.Fatalf("ByMonthCategory len = %d, want 4", len(a.ByMonthCategory))
	}
	first := a.ByMonthCategory[0]
	if first.Month != "2023-03" || first.Category != "🍔 Cibo" || first.Amount != 7 {
		t.Errorf("first pair = %+v", first)
	}
	second := a.ByMonthCategory[1]
	if second.Month != "2024-03" || second.Category != "🚗 Auto" || second.Amount != 40 {
		t.Errorf("second pair = %+v, want 2024-03 top spender first", second)
	}

	if a.Empty() {
		t.Error("non-empty analysis reported empty")
	}
}

func TestAggregateMixedSigns(t *testing.T) {
	// A negative row lowers the category total.
	a := aggregate([]row{
		{Date: day(2024, 3, 1), Category: "🚗 Auto", Amount: 40},
		{Date: day(2024, 3, 2), Category: "🚗 Auto", Amount: -15},
	})

	if a.ByCategory[0].Amount != 25 {
		t.Errorf("net total = %v, want 25", a.ByCategory[0].Amount)
	}
}

func TestAggregateEmpty(t *testing.T) {
	a := aggregate(nil)
	if !a.Empty() {
		t.Error("empty input should produce an empty analysis")
	}
}
