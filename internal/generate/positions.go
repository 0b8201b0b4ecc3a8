package generate

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"gpm-datagen/internal/dataset"
)

// Positions emits one base T+0 snapshot per trade, valued six hours after
// the trade, and with probability correctionProb a T+1 correction one day
// later. The corrected quantity is perturbed by -10%, +20%, or nothing,
// floored at zero, with market value recomputed from the floored quantity.
func Positions(rng *rand.Rand, trades []dataset.Trade, correctionProb float64) []dataset.Position {
	positions := make([]dataset.Position, 0, len(trades))
	for i, t := range trades {
		valuedAt := t.TradeDate.Add(6 * time.Hour)
		positions = append(positions, dataset.Position{
			ID:            dataset.PositionID(fmt.Sprintf("P%d", 10000+i)),
			TradeID:       t.ID,
			Snapshot:      "T+0",
			ValuationDate: valuedAt,
			Quantity:      t.Quantity,
			MarketValue:   decimal.NewFromInt(t.Quantity).Mul(t.Price).Round(2),
			Book:          t.Book,
		})

		if rng.Float64() >= correctionProb {
			continue
		}

		deltas := []int64{
			-int64(float64(t.Quantity) * 0.1),
			int64(float64(t.Quantity) * 0.2),
			0,
		}
		corrected := t.Quantity + pick(rng, deltas)
		if corrected < 0 {
			corrected = 0
		}
		positions = append(positions, dataset.Position{
			ID:            dataset.PositionID(fmt.Sprintf("P%d_1", 10000+i)),
			TradeID:       t.ID,
			Snapshot:      "T+1",
			ValuationDate: valuedAt.Add(24 * time.Hour),
			Quantity:      corrected,
			MarketValue:   decimal.NewFromInt(corrected).Mul(t.Price).Round(2),
			Book:          t.Book,
		})
	}
	return positions
}
