package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/PortellaAlly/bestprice/internal/catalog"
)

// storeBar is the single-select store filter shown above the list.
// Index 0 is the synthetic "Todas" tab; stores keep the first-occurrence
// order of the current result set.
type storeBar struct {
	stores       []string
	selected     int // 0 = all stores
	filterMode   bool
	filterCursor int
}

func newStoreBar(stores []string) storeBar {
	return storeBar{stores: stores}
}

func (f *storeBar) tabs() []string {
	return append([]string{"Todas"}, f.stores...)
}

// selectCurrent commits the tab under the cursor.
func (f *storeBar) selectCurrent() {
	f.selected = f.filterCursor
}

// active returns the selected store name, or "" for all stores.
func (f *storeBar) active() string {
	if f.selected == 0 || f.selected > len(f.stores) {
		return ""
	}
	return f.stores[f.selected-1]
}

func (f *storeBar) activeLabel() string {
	if s := f.active(); s != "" {
		return s
	}
	return "Todas"
}

func (f *storeBar) render(width int, sort catalog.SortKey) string {
	sep := tabSeparatorStyle.Render(" · ")
	var parts []string

	for i, tab := range f.tabs() {
		style := tabInactiveStyle
		if i == f.selected {
			style = tabActiveStyle
		}
		label := tab
		if f.filterMode && i == f.filterCursor {
			label = "[" + tab + "]"
		}
		parts = append(parts, style.Render(label))
	}

	parts = append(parts, tabSeparatorStyle.Render("  s ")+tabInactiveStyle.Render(sort.String()))

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorTabBg).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
