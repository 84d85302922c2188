package catalog

import "math"

// Direction classifies the first-vs-last price movement of a history.
type Direction int

const (
	TrendDown Direction = iota // price dropped: savings
	TrendUp                    // price rose
	TrendFlat                  // no change
)

// Trend summarizes a chronological price history.
type Trend struct {
	Variation float64 // last price minus first price
	Percent   float64 // variation relative to first price, one decimal
	Direction Direction
}

// Chronological returns a reversed copy of an API-order (newest-first)
// history so index 0 is the oldest point.
func Chronological(points []PricePoint) []PricePoint {
	out := make([]PricePoint, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

// ComputeTrend derives the trend of chronological points. ok is false for
// an empty history, which also guards the division by the first price.
func ComputeTrend(points []PricePoint) (Trend, bool) {
	if len(points) == 0 {
		return Trend{}, false
	}
	first := points[0].Price
	last := points[len(points)-1].Price
	t := Trend{Variation: last - first}

	if first != 0 {
		t.Percent = math.Round(t.Variation/first*1000) / 10
	}

	switch {
	case t.Variation < 0:
		t.Direction = TrendDown
	case t.Variation > 0:
		t.Direction = TrendUp
	default:
		t.Direction = TrendFlat
	}
	return t, true
}
