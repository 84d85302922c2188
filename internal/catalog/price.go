// Package catalog holds the product data model plus the pure price and
// view-state math the UI is built on. Nothing here does I/O.
package catalog

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatPrice renders a price in Brazilian real, e.g. 1234.5 -> "R$ 1.234,50".
func FormatPrice(v float64) string {
	return brl.Sprintf("R$ %.2f", v)
}

// Discount returns the percentage saved going from original to current,
// rounded to the nearest integer. A zero original price yields 0 rather
// than propagating a division by zero.
func Discount(original, current float64) int {
	if original == 0 {
		return 0
	}
	return int(math.Round(((original - current) / original) * 100))
}

// FindCheapest returns the lowest-priced product. On equal prices the
// first one in input order wins, which keeps the result in agreement
// with the first element of a stable cheapest-first sort. ok is false
// for an empty slice.
func FindCheapest(ps []Product) (Product, bool) {
	if len(ps) == 0 {
		return Product{}, false
	}
	min := ps[0]
	for _, p := range ps[1:] {
		if p.Price < min.Price {
			min = p
		}
	}
	return min, true
}

// Stores returns the distinct store names in first-occurrence order.
func Stores(ps []Product) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range ps {
		if !seen[p.Store] {
			seen[p.Store] = true
			out = append(out, p.Store)
		}
	}
	return out
}

// GroupByStore splits products by store, preserving input order within
// each group. The returned slice carries the stores in first-occurrence
// order since map iteration order is unspecified.
func GroupByStore(ps []Product) ([]string, map[string][]Product) {
	groups := make(map[string][]Product)
	stores := Stores(ps)
	for _, p := range ps {
		groups[p.Store] = append(groups[p.Store], p)
	}
	return stores, groups
}
