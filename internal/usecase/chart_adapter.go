package usecase

import (
	"strings"

	"github.com/vitos/crypto_dash/internal/domain"
)

const (
	ChartWindowDays = 7
	ChartLabel      = "Price (USD)"
	ChartTimeUnit   = "day"
	ChartMaxTicks   = 7
)

// ChartLabelFor names the series after the quote currency.
func ChartLabelFor(currency string) string {
	if currency == "" || strings.EqualFold(currency, "usd") {
		return ChartLabel
	}
	return "Price (" + strings.ToUpper(currency) + ")"
}

// ChartPoint is one point of a line chart.
type ChartPoint struct {
	X int64   `json:"x"`
	Y float64 `json:"y"`
}

// ChartSeries is what the chart widget consumes.
type ChartSeries struct {
	Label    string       `json:"label"`
	Days     int          `json:"days"`
	TimeUnit string       `json:"time_unit"`
	MaxTicks int          `json:"max_ticks"`
	Points   []ChartPoint `json:"points"`
}

// AdaptChart maps the price series one to one into chart points quoted in
// currency.
func AdaptChart(chart domain.MarketChart, currency string) ChartSeries {
	points := make([]ChartPoint, len(chart.Prices))
	for i, p := range chart.Prices {
		points[i] = ChartPoint{X: p.Timestamp, Y: p.Price}
	}
	return ChartSeries{
		Label:    ChartLabelFor(currency),
		Days:     ChartWindowDays,
		TimeUnit: ChartTimeUnit,
		MaxTicks: ChartMaxTicks,
		Points:   points,
	}
}

// Values returns just the prices, oldest first.
func (s ChartSeries) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Y
	}
	return out
}
