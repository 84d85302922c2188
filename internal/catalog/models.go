package catalog

import "time"

// Product is one offer returned by the search API. ID is zero for stores
// the backend scrapes without persisting, in which case no price history
// is available.
type Product struct {
	ID        int       `json:"id,omitempty"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	URL       string    `json:"url"`
	Image     string    `json:"image"`
	Store     string    `json:"store"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Breakdown counts results per store for one search.
type Breakdown struct {
	MercadoLivre int `json:"mercadoLivre"`
	Amazon       int `json:"amazon"`
	Magalu       int `json:"magalu"`
	Americanas   int `json:"americanas"`
}

// SearchResponse is the payload of POST /products/search.
type SearchResponse struct {
	Success   bool       `json:"success"`
	Count     int        `json:"count"`
	Breakdown *Breakdown `json:"breakdown,omitempty"`
	Products  []Product  `json:"products"`
}

// PricePoint is one recorded price for a product. The API returns points
// newest-first; use Chronological before doing first-vs-last math.
type PricePoint struct {
	Price     float64   `json:"price"`
	CheckedAt time.Time `json:"checked_at"`
}

// History is the payload of GET /products/{id}/history.
type History struct {
	Product Product      `json:"product"`
	Points  []PricePoint `json:"history"`
}
