package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(count int, filterLabel, sortLabel string, width int, searching bool) string {
	left := fmt.Sprintf(" %d produtos", count)
	if filterLabel != "Todas" {
		left += " · " + filterLabel
	}
	left += " · " + sortLabel
	if searching {
		left += " (buscando...)"
	}

	right := " / buscar  s ordenar  f loja  ? ajuda  q sair "
	if searching {
		right = " aguarde... "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
