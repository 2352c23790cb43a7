// charts.go turns an analysis into PNG bar charts.
package reports

import (
	"fmt"
	"os"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	chartWidth  = 800
	chartHeight = 500
)

// RenderCategoryChart plots spending by category into a temporary PNG file
// and returns its path. The caller removes the file after sending it.
func RenderCategoryChart(spends []CategorySpend) (string, error) {
	bars := make([]chart.Value, 0, len(spends))
	for _, s := range spends {
		bars = append(bars, chart.Value{
			Label: strings.ToUpper(s.Name),
			Value: s.Amount,
		})
	}

	graph := chart.BarChart{
		Title:  "SPENDING BY CATEGORY",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth: 60,
		Bars:     bars,
	}

	return renderToTemp(graph)
}

// RenderMonthChart plots total spending per month. Useful when the month
// selector matches the same month of several years.
func RenderMonthChart(spends []MonthSpend) (string, error) {
	bars := make([]chart.Value, 0, len(spends))
	for _, s := range spends {
		bars = append(bars, chart.Value{
			Label: s.Month,
			Value: s.Amount,
		})
	}

	graph := chart.BarChart{
		Title:  "SPENDING BY MONTH",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth: 60,
		Bars:     bars,
	}

	return renderToTemp(graph)
}

func renderToTemp(graph chart.BarChart) (string, error) {
	f, err := os.CreateTemp("", "report-*.png")
	if err != nil {
		return "", fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("rendering chart: %w", err)
	}
	return f.Name(), nil
}
