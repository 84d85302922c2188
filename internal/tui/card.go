package tui

import (
	"strings"

	"github.com/PortellaAlly/bestprice/internal/catalog"
)

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// clampLines word-wraps s to width and keeps at most n lines, padding
// with blanks so every card has the same height.
func clampLines(s string, width, n int) []string {
	lines := strings.Split(wrapText(s, width), "\n")
	if len(lines) > n {
		lines = lines[:n]
		lines[n-1] = truncateStr(lines[n-1]+"...", width)
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

// renderCard draws one product. cheapest is computed by the caller
// against the unfiltered collection, never here.
func renderCard(p catalog.Product, cheapest, selected bool, width int) string {
	inner := width - 4 // border + padding
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder

	for _, line := range clampLines(p.Name, inner, 2) {
		b.WriteString(cardNameStyle.Render(line))
		b.WriteString("\n")
	}

	badge := storeBadge(p.Store)
	if cheapest {
		badge += " " + cheapestBadgeStyle.Render("Melhor Preço")
	}
	b.WriteString(badge)
	b.WriteString("\n")

	if cheapest {
		b.WriteString(cardCheapestPriceStyle.Render(catalog.FormatPrice(p.Price)))
	} else {
		b.WriteString(cardPriceStyle.Render(catalog.FormatPrice(p.Price)))
	}
	b.WriteString("\n")

	b.WriteString(cardURLStyle.Render(truncateStr(p.URL, inner)))
	b.WriteString("\n")

	// Constant card height keeps the list's scroll math simple.
	if p.ID > 0 {
		b.WriteString(helpDimStyle.Render("enter histórico · o abrir oferta"))
	} else {
		b.WriteString(helpDimStyle.Render("o abrir oferta"))
	}

	if selected {
		return cardSelectedStyle.Width(width - 2).Render(b.String())
	}
	return cardStyle.Width(width - 2).Render(b.String())
}
