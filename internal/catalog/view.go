package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of the displayed product list.
type SortKey int

const (
	SortCheapest SortKey = iota
	SortExpensive
	SortName
)

var sortLabels = map[SortKey]string{
	SortCheapest:  "menor preço",
	SortExpensive: "maior preço",
	SortName:      "nome A-Z",
}

func (k SortKey) String() string { return sortLabels[k] }

// ParseSortKey maps a CLI flag value to a SortKey.
func ParseSortKey(s string) (SortKey, bool) {
	switch s {
	case "cheapest", "":
		return SortCheapest, true
	case "expensive":
		return SortExpensive, true
	case "name":
		return SortName, true
	}
	return SortCheapest, false
}

// Name sorting follows pt-BR collation rules so accented product names
// land where a user expects them.
var nameCollator = collate.New(language.BrazilianPortuguese)

// View is the user-controlled part of the list view-state: one sort key
// and an optional store filter. The empty store means "all stores".
type View struct {
	Sort  SortKey
	Store string
}

// Apply derives the display list from a product collection: filter by
// store, then stable-sort by the view's key. The input slice is never
// mutated. Stability matters: the cheapest-badge comparison elsewhere
// assumes equal-priced products keep their input order.
func (v View) Apply(ps []Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		if v.Store != "" && p.Store != v.Store {
			continue
		}
		out = append(out, p)
	}

	switch v.Sort {
	case SortCheapest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortExpensive:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
		})
	}
	return out
}
