package generate

import (
	"fmt"
	"testing"
	"time"

	"gpm-datagen/internal/dataset"
)

func TestBreaksAlwaysLink(t *testing.T) {
	rng := testRng()
	trades := Trades(rng, 10, testWindow())

	// Craft one failed settlement per trade so linking is unambiguous.
	settlements := make([]dataset.Settlement, 0, len(trades))
	for i, tr := range trades {
		settlements = append(settlements, dataset.Settlement{
			ID:             dataset.SettlementID(fmt.Sprintf("S%d", 20000+i)),
			TradeID:        tr.ID,
			SettlementDate: tr.TradeDate.Add(24 * time.Hour),
			Quantity:       tr.Quantity,
			Currency:       tr.Currency,
			Amount:         tr.Price,
			Status:         "Failed",
			FailReason:     "SSI_Mismatch",
			Custodian:      dataset.Custodians[i%len(dataset.Custodians)],
		})
	}

	breaks := Breaks(rng, 30, trades, settlements, 1)
	if len(breaks) != 30 {
		t.Fatalf("expected 30 breaks, got %d", len(breaks))
	}

	byTrade := make(map[dataset.TradeID]dataset.Settlement, len(settlements))
	for _, s := range settlements {
		byTrade[s.TradeID] = s
	}
	for _, b := range breaks {
		s, ok := byTrade[b.TradeID]
		if !ok {
			t.Fatalf("break %s references unknown trade %s", b.ID, b.TradeID)
		}
		if b.SettlementID != s.ID {
			t.Errorf("break %s linked to %s, want %s", b.ID, b.SettlementID, s.ID)
		}
		if b.Reason != s.FailReason {
			t.Errorf("break %s reason %q, want inherited %q", b.ID, b.Reason, s.FailReason)
		}
	}
}

func TestBreaksNeverLink(t *testing.T) {
	rng := testRng()
	trades := Trades(rng, 10, testWindow())
	settlements := Settlements(rng, trades, 10)

	breaks := Breaks(rng, 30, trades, settlements, 0)
	for _, b := range breaks {
		if b.SettlementID != "" {
			t.Errorf("break %s linked to settlement %s with link probability zero", b.ID, b.SettlementID)
		}
		if b.Reason == "" {
			t.Errorf("break %s has empty reason", b.ID)
		}
	}

	byID := make(map[dataset.TradeID]dataset.Trade, len(trades))
	for _, tr := range trades {
		byID[tr.ID] = tr
	}
	for _, b := range breaks {
		tr := byID[b.TradeID]
		offset := b.DetectedAt.Sub(tr.TradeDate).Hours()
		if offset < 1 || offset > 72 {
			t.Errorf("break %s detected %v hours after trade, want [1,72]", b.ID, offset)
		}
	}
}
