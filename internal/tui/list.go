package tui

import (
	"fmt"
	"strings"

	"github.com/PortellaAlly/bestprice/internal/catalog"
)

// Rendered card height in rows: 6 content lines + 2 border lines.
const cardHeight = 8

// renderResultsHeader shows the displayed-product count and the global
// best-offer banner. The banner always reflects the cheapest product of
// the whole collection, not the filtered view.
func renderResultsHeader(shown int, all []catalog.Product, width int) string {
	label := "produtos encontrados"
	if shown == 1 {
		label = "produto encontrado"
	}
	count := countStyle.Render(fmt.Sprintf("%d %s", shown, label))

	cheapest, ok := catalog.FindCheapest(all)
	if !ok {
		return count
	}

	banner := bannerStyle.Render(fmt.Sprintf(
		"▼ Melhor oferta: %s por %s na %s",
		truncateStr(cheapest.Name, max(10, width-40)),
		catalog.FormatPrice(cheapest.Price),
		cheapest.Store,
	))
	return count + "\n" + banner
}

// renderList draws the visible window of product cards. The caller passes
// the already filtered and sorted slice; cheapest identity is matched by
// price+store, mirroring how the best-offer banner is computed.
func renderList(items []catalog.Product, all []catalog.Product, cursor, height, width int) string {
	if len(items) == 0 {
		return noticeInfoStyle.Render("Nenhum produto nesta loja.")
	}

	visible := height / cardHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(items) {
		end = len(items)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	cheapest, hasCheapest := catalog.FindCheapest(all)

	var b strings.Builder
	for i := start; i < end; i++ {
		p := items[i]
		isCheapest := hasCheapest && p.Price == cheapest.Price && p.Store == cheapest.Store
		b.WriteString(renderCard(p, isCheapest, i == cursor, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
