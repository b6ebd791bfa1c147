// Package cli renders list and detail view models for the terminal.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/vitos/crypto_dash/internal/usecase"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const (
	ChartHeight = 12
	ChartWidth  = 64
)

// RenderList writes the coin list as a table.
func RenderList(w io.Writer, vm usecase.HomeViewModel) {
	fmt.Fprintln(w, titleStyle.Render("Crypto Dash"))
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf("top %d · filter %q · sort %s", vm.Limit, vm.Filter, vm.Sort)))

	switch {
	case vm.Loading:
		fmt.Fprintln(w, "Loading...")
		return
	case vm.Error != "":
		fmt.Fprintln(w, errorStyle.Render(vm.Error))
		return
	case vm.Empty:
		fmt.Fprintln(w, "(No matching coins)")
		return
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-4s %-20s %-8s %16s %10s %22s", "#", "Name", "Symbol", "Price", "24h", "Market Cap")))
	for _, c := range vm.Coins {
		change := fmt.Sprintf("%10s", usecase.FormatPercent(c.PriceChangePercentage24h))
		if c.PriceChangePercentage24h < 0 {
			change = negativeStyle.Render(change)
		} else {
			change = positiveStyle.Render(change)
		}
		fmt.Fprintf(w, "%-4d %-20s %-8s %16s %s %22s\n",
			c.MarketCapRank,
			truncate(c.Name, 20),
			strings.ToUpper(c.Symbol),
			usecase.FormatMoney(c.CurrentPrice, vm.Currency),
			change,
			usecase.FormatMoney(c.MarketCap, vm.Currency),
		)
	}
}

// RenderDetail writes the detail fields and an ASCII price chart.
func RenderDetail(w io.Writer, vm usecase.DetailViewModel) {
	if vm.Error != "" {
		fmt.Fprintln(w, errorStyle.Render(vm.Error))
	}
	if vm.Detail == nil {
		if vm.NoData {
			fmt.Fprintln(w, "No Data Found!")
		}
		return
	}

	d := vm.Detail
	fmt.Fprintln(w, titleStyle.Render(d.Title))
	if d.Summary != "" {
		fmt.Fprintln(w, d.Summary)
	}
	fmt.Fprintln(w)

	rows := [][2]string{
		{"Rank", fmt.Sprintf("#%d", d.Rank)},
		{"Current Price", d.CurrentPrice},
		{"Market Cap", d.MarketCap},
		{"24h Price Change", d.PriceChange24h + " (" + d.PriceChangePct24h + ")"},
		{"Circulating Supply", d.CirculatingSupply},
		{"Total Supply", d.TotalSupply},
		{"All-Time High", d.ATH + " on " + d.ATHDate},
		{"All-Time Low", d.ATL + " on " + d.ATLDate},
		{"Last Updated", d.LastUpdated},
	}
	if d.Homepage != "" {
		rows = append(rows, [2]string{"Website", d.Homepage})
	}
	if d.Explorer != "" {
		rows = append(rows, [2]string{"Blockchain Explorer", d.Explorer})
	}
	if len(d.Categories) > 0 {
		rows = append(rows, [2]string{"Categories", d.CategoryList()})
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-20s %s\n", r[0]+":", r[1])
	}
	fmt.Fprintln(w)

	switch {
	case vm.Chart != nil && len(vm.Chart.Points) > 1:
		fmt.Fprintln(w, asciigraph.Plot(vm.Chart.Values(),
			asciigraph.Height(ChartHeight),
			asciigraph.Width(ChartWidth),
			asciigraph.Caption(fmt.Sprintf("%s, last %d days", vm.Chart.Label, vm.Chart.Days)),
		))
	case vm.ChartError != "":
		fmt.Fprintln(w, errorStyle.Render("Chart: "+vm.ChartError))
	default:
		fmt.Fprintln(w, subtleStyle.Render("Not enough data to draw chart."))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
