package generate

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"gpm-datagen/internal/dataset"
)

func testWindow() Window {
	return Window{
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(2025))
}

func TestTradesShape(t *testing.T) {
	const n = 50
	trades := Trades(testRng(), n, testWindow())
	if len(trades) != n {
		t.Fatalf("expected %d trades, got %d", n, len(trades))
	}

	validQty := map[int64]bool{50: true, 100: true, 200: true, 500: true, 1000: true}
	low := decimal.NewFromInt(5)
	high := decimal.NewFromInt(300)
	seen := make(map[dataset.TradeID]bool, n)
	w := testWindow()

	for _, tr := range trades {
		if seen[tr.ID] {
			t.Fatalf("duplicate trade id %s", tr.ID)
		}
		seen[tr.ID] = true

		if !validQty[tr.Quantity] {
			t.Errorf("trade %s quantity %d outside the fixed set", tr.ID, tr.Quantity)
		}
		if tr.Price.Cmp(low) < 0 || tr.Price.Cmp(high) > 0 {
			t.Errorf("trade %s price %s outside [5,300]", tr.ID, tr.Price)
		}
		if tr.Price.Exponent() < -2 {
			t.Errorf("trade %s price %s not rounded to 2 decimals", tr.ID, tr.Price)
		}
		if tr.TradeDate.Before(w.Start) || tr.TradeDate.After(w.End) {
			t.Errorf("trade %s timestamp %s outside window", tr.ID, tr.TradeDate)
		}
		if want := dataset.AssetClassFor(tr.Instrument); tr.AssetClass != want {
			t.Errorf("trade %s asset class %s, want %s for %s", tr.ID, tr.AssetClass, want, tr.Instrument)
		}
	}
}

func TestTradesScenarioRoundRobin(t *testing.T) {
	for _, n := range []int{50, 13, 5, 3} {
		trades := Trades(testRng(), n, testWindow())
		counts := make(map[dataset.ScenarioID]int)
		for _, tr := range trades {
			counts[tr.Scenario]++
		}
		floor := n / 5
		ceil := floor
		if n%5 != 0 {
			ceil++
		}
		for _, s := range dataset.Catalog() {
			if c := counts[s.ID]; c != floor && c != ceil {
				t.Errorf("n=%d scenario %s assigned %d trades, want %d or %d", n, s.ID, c, floor, ceil)
			}
		}
	}
}

func TestTradesDeterministic(t *testing.T) {
	a := Trades(testRng(), 50, testWindow())
	b := Trades(testRng(), 50, testWindow())
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed must produce identical trades")
	}
}
