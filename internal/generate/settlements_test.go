package generate

import (
	"testing"

	"github.com/shopspring/decimal"

	"gpm-datagen/internal/dataset"
)

func TestSettlementsShape(t *testing.T) {
	rng := testRng()
	trades := Trades(rng, 50, testWindow())
	settlements := Settlements(rng, trades, 40)

	if len(settlements) != 40 {
		t.Fatalf("expected 40 settlements, got %d", len(settlements))
	}

	tradesByID := make(map[dataset.TradeID]dataset.Trade, len(trades))
	for _, tr := range trades {
		tradesByID[tr.ID] = tr
	}

	seen := make(map[dataset.TradeID]bool)
	for _, s := range settlements {
		tr, ok := tradesByID[s.TradeID]
		if !ok {
			t.Fatalf("settlement %s references unknown trade %s", s.ID, s.TradeID)
		}
		if seen[s.TradeID] {
			t.Errorf("trade %s settled more than once", s.TradeID)
		}
		seen[s.TradeID] = true

		switch s.Status {
		case "Failed":
			if s.FailReason == "" {
				t.Errorf("settlement %s failed without a reason", s.ID)
			}
		case "Confirmed", "Pending":
			if s.FailReason != "" {
				t.Errorf("settlement %s has reason %q but status %s", s.ID, s.FailReason, s.Status)
			}
		default:
			t.Errorf("settlement %s has unexpected status %q", s.ID, s.Status)
		}

		if s.Status == "Confirmed" && s.Quantity != tr.Quantity {
			t.Errorf("confirmed settlement %s quantity %d, want %d", s.ID, s.Quantity, tr.Quantity)
		}
		if diff := tr.Quantity - s.Quantity; diff != 0 && diff != 5 && diff != 10 {
			t.Errorf("settlement %s shortfall %d outside {0,5,10}", s.ID, diff)
		}

		// Amount is always priced off the traded quantity.
		want := decimal.NewFromInt(tr.Quantity).Mul(tr.Price).Round(2)
		if !s.Amount.Equal(want) {
			t.Errorf("settlement %s amount %s, want %s", s.ID, s.Amount, want)
		}

		if s.Currency != tr.Currency {
			t.Errorf("settlement %s currency %s, trade has %s", s.ID, s.Currency, tr.Currency)
		}
		offset := s.SettlementDate.Sub(tr.TradeDate).Hours()
		if offset != 24 && offset != 48 {
			t.Errorf("settlement %s date offset %v hours, want T+1 or T+2", s.ID, offset)
		}
	}
}

func TestSettlementsClampsCount(t *testing.T) {
	rng := testRng()
	trades := Trades(rng, 5, testWindow())
	settlements := Settlements(rng, trades, 40)
	if len(settlements) != 5 {
		t.Fatalf("expected count clamped to %d trades, got %d settlements", len(trades), len(settlements))
	}
}
