package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/PortellaAlly/bestprice/internal/catalog"
)

// pt-BR short month names; time.Format only knows English.
var shortMonths = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

func chartLabel(t time.Time) string {
	return fmt.Sprintf("%02d %s", t.Day(), shortMonths[t.Month()-1])
}

func renderTrendSummary(t catalog.Trend) string {
	switch t.Direction {
	case catalog.TrendDown:
		return trendDownStyle.Render(fmt.Sprintf(
			"▼ Economia: %s (%.1f%%)", catalog.FormatPrice(math.Abs(t.Variation)), t.Percent))
	case catalog.TrendUp:
		return trendUpStyle.Render(fmt.Sprintf(
			"▲ Aumento: %s (+%.1f%%)", catalog.FormatPrice(t.Variation), t.Percent))
	default:
		return trendFlatStyle.Render("− Preço estável: sem variação")
	}
}

// chartLevels maps each price onto a row between 0 (cheapest) and
// height-1 (most expensive). A flat series sits in the middle row.
func chartLevels(prices []float64, height int) []int {
	lo, hi := prices[0], prices[0]
	for _, p := range prices {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}

	levels := make([]int, len(prices))
	if hi == lo {
		for i := range levels {
			levels[i] = (height - 1) / 2
		}
		return levels
	}
	for i, p := range prices {
		levels[i] = int(math.Round((p - lo) / (hi - lo) * float64(height-1)))
	}
	return levels
}

// plotLine draws the price series as a dot-per-point grid with a light
// interpolation between neighbouring points.
func plotLine(prices []float64, width, height int) []string {
	if height < 2 {
		height = 2
	}
	if width < len(prices) {
		width = len(prices)
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	levels := chartLevels(prices, height)

	col := func(i int) int {
		if len(prices) == 1 {
			return width / 2
		}
		return i * (width - 1) / (len(prices) - 1)
	}

	for i, lv := range levels {
		x := col(i)
		grid[height-1-lv][x] = '●'

		if i == 0 {
			continue
		}
		x0, lv0 := col(i-1), levels[i-1]
		for x1 := x0 + 1; x1 < x; x1++ {
			frac := float64(x1-x0) / float64(x-x0)
			lv1 := int(math.Round(float64(lv0) + frac*float64(lv-lv0)))
			if grid[height-1-lv1][x1] == ' ' {
				grid[height-1-lv1][x1] = '·'
			}
		}
	}

	rows := make([]string, height)
	for i, r := range grid {
		rows[i] = string(r)
	}
	return rows
}

// renderHistory draws the full price-history view for one product. The
// points come in API order (newest first) and are reversed here.
func renderHistory(p catalog.Product, points []catalog.PricePoint, width, height int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("Histórico de Preços")
	name := helpDimStyle.Render(truncateStr(p.Name, max(10, width-4)))

	if len(points) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			title, name, "",
			noticeInfoStyle.Render("Nenhum histórico de preços para este produto ainda."),
			"",
			helpDimStyle.Render("esc voltar"),
		)
	}

	chrono := catalog.Chronological(points)
	trend, _ := catalog.ComputeTrend(chrono)

	prices := make([]float64, len(chrono))
	lo, hi := chrono[0].Price, chrono[0].Price
	for i, pt := range chrono {
		prices[i] = pt.Price
		if pt.Price < lo {
			lo = pt.Price
		}
		if pt.Price > hi {
			hi = pt.Price
		}
	}

	chartHeight := height - 9
	if chartHeight < 4 {
		chartHeight = 4
	}
	if chartHeight > 12 {
		chartHeight = 12
	}
	chartWidth := max(len(chrono), width-16)

	rows := plotLine(prices, chartWidth, chartHeight)
	for i, row := range rows {
		axis := strings.Repeat(" ", 12)
		switch i {
		case 0:
			axis = fmt.Sprintf("%12s", catalog.FormatPrice(hi))
		case len(rows) - 1:
			axis = fmt.Sprintf("%12s", catalog.FormatPrice(lo))
		}
		rows[i] = chartLabelStyle.Render(axis) + " " + chartLineStyle.Render(row)
	}

	first := chartLabel(chrono[0].CheckedAt)
	last := chartLabel(chrono[len(chrono)-1].CheckedAt)
	gap := chartWidth - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	labels := strings.Repeat(" ", 13) + chartLabelStyle.Render(first+strings.Repeat(" ", gap)+last)

	consultas := "consultas"
	if len(points) == 1 {
		consultas = "consulta"
	}
	footer := helpDimStyle.Render(fmt.Sprintf("Baseado em %d %s", len(points), consultas))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		name,
		"",
		" "+renderTrendSummary(trend),
		"",
		strings.Join(rows, "\n"),
		labels,
		"",
		footer,
		helpDimStyle.Render("esc voltar · o abrir oferta"),
	)
}
