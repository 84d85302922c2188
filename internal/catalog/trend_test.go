package catalog

import (
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2025, 8, n, 12, 0, 0, 0, time.UTC)
}

func TestChronological(t *testing.T) {
	// API order is newest-first.
	points := []PricePoint{
		{Price: 80, CheckedAt: day(3)},
		{Price: 90, CheckedAt: day(2)},
		{Price: 100, CheckedAt: day(1)},
	}
	got := Chronological(points)
	if got[0].Price != 100 || got[1].Price != 90 || got[2].Price != 80 {
		t.Errorf("Chronological() = %v", got)
	}
	if points[0].Price != 80 {
		t.Error("Chronological mutated its input")
	}
}

func TestComputeTrendEmpty(t *testing.T) {
	if _, ok := ComputeTrend(nil); ok {
		t.Error("empty history must not produce a trend")
	}
}

func TestComputeTrendSinglePoint(t *testing.T) {
	trend, ok := ComputeTrend([]PricePoint{{Price: 100, CheckedAt: day(1)}})
	if !ok {
		t.Fatal("single point is a valid history")
	}
	if trend.Variation != 0 || trend.Percent != 0 || trend.Direction != TrendFlat {
		t.Errorf("single point trend = %+v, want flat 0/0.0", trend)
	}
}

func TestComputeTrendSavings(t *testing.T) {
	// Latest check found R$ 80, the oldest R$ 100: the price dropped.
	newestFirst := []PricePoint{
		{Price: 80, CheckedAt: day(2)},
		{Price: 100, CheckedAt: day(1)},
	}
	trend, ok := ComputeTrend(Chronological(newestFirst))
	if !ok {
		t.Fatal("expected a trend")
	}
	if trend.Variation != -20 {
		t.Errorf("variation = %v, want -20", trend.Variation)
	}
	if trend.Direction != TrendDown {
		t.Errorf("direction = %v, want TrendDown", trend.Direction)
	}
	if trend.Percent != -20.0 {
		t.Errorf("percent = %v, want -20.0", trend.Percent)
	}
}

func TestComputeTrendIncrease(t *testing.T) {
	chrono := []PricePoint{
		{Price: 100, CheckedAt: day(1)},
		{Price: 150, CheckedAt: day(2)},
	}
	trend, _ := ComputeTrend(chrono)
	if trend.Variation != 50 || trend.Direction != TrendUp || trend.Percent != 50.0 {
		t.Errorf("trend = %+v, want +50 TrendUp 50.0%%", trend)
	}
}

func TestComputeTrendPercentRounding(t *testing.T) {
	chrono := []PricePoint{
		{Price: 90, CheckedAt: day(1)},
		{Price: 80, CheckedAt: day(2)},
	}
	trend, _ := ComputeTrend(chrono)
	// -10/90 = -11.11..%, one decimal
	if trend.Percent != -11.1 {
		t.Errorf("percent = %v, want -11.1", trend.Percent)
	}
}

func TestComputeTrendZeroFirstPrice(t *testing.T) {
	chrono := []PricePoint{
		{Price: 0, CheckedAt: day(1)},
		{Price: 10, CheckedAt: day(2)},
	}
	trend, ok := ComputeTrend(chrono)
	if !ok {
		t.Fatal("expected a trend")
	}
	if trend.Percent != 0 {
		t.Errorf("zero first price must not divide: percent = %v", trend.Percent)
	}
	if trend.Direction != TrendUp {
		t.Errorf("direction = %v, want TrendUp", trend.Direction)
	}
}
