package generate

import (
	"testing"

	"github.com/shopspring/decimal"

	"gpm-datagen/internal/dataset"
)

func TestPositionsBaseSnapshot(t *testing.T) {
	rng := testRng()
	trades := Trades(rng, 50, testWindow())
	positions := Positions(rng, trades, 0)

	if len(positions) != len(trades) {
		t.Fatalf("with zero correction probability expected %d positions, got %d", len(trades), len(positions))
	}

	byTrade := make(map[dataset.TradeID]dataset.Position, len(positions))
	for _, p := range positions {
		byTrade[p.TradeID] = p
	}
	for _, tr := range trades {
		p, ok := byTrade[tr.ID]
		if !ok {
			t.Fatalf("trade %s has no position", tr.ID)
		}
		if p.Snapshot != "T+0" {
			t.Errorf("trade %s base snapshot label %q", tr.ID, p.Snapshot)
		}
		if p.Quantity != tr.Quantity {
			t.Errorf("trade %s base quantity %d, want %d", tr.ID, p.Quantity, tr.Quantity)
		}
		want := decimal.NewFromInt(tr.Quantity).Mul(tr.Price).Round(2)
		if !p.MarketValue.Equal(want) {
			t.Errorf("trade %s market value %s, want %s", tr.ID, p.MarketValue, want)
		}
		if got := p.ValuationDate.Sub(tr.TradeDate).Hours(); got != 6 {
			t.Errorf("trade %s base valuation offset %v hours", tr.ID, got)
		}
	}
}

func TestPositionsCorrections(t *testing.T) {
	rng := testRng()
	trades := Trades(rng, 50, testWindow())
	positions := Positions(rng, trades, 1) // force a correction for every trade

	if len(positions) != 2*len(trades) {
		t.Fatalf("expected %d positions, got %d", 2*len(trades), len(positions))
	}

	base := make(map[dataset.TradeID]dataset.Position)
	corrected := make(map[dataset.TradeID]dataset.Position)
	for _, p := range positions {
		switch p.Snapshot {
		case "T+0":
			base[p.TradeID] = p
		case "T+1":
			if _, dup := corrected[p.TradeID]; dup {
				t.Fatalf("trade %s has more than one corrected snapshot", p.TradeID)
			}
			corrected[p.TradeID] = p
		default:
			t.Fatalf("unexpected snapshot label %q", p.Snapshot)
		}
	}

	priceByTrade := make(map[dataset.TradeID]decimal.Decimal, len(trades))
	for _, tr := range trades {
		priceByTrade[tr.ID] = tr.Price
	}
	for id, c := range corrected {
		b := base[id]
		if !c.ValuationDate.After(b.ValuationDate) {
			t.Errorf("trade %s correction not strictly later than base", id)
		}
		if c.Quantity < 0 {
			t.Errorf("trade %s corrected quantity negative", id)
		}
		want := decimal.NewFromInt(c.Quantity).Mul(priceByTrade[id]).Round(2)
		if !c.MarketValue.Equal(want) {
			t.Errorf("trade %s corrected market value %s, want %s", id, c.MarketValue, want)
		}
	}
}
