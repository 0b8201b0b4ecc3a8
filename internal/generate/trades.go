package generate

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"gpm-datagen/internal/dataset"
)

// Trades produces n trades, assigning scenarios round-robin over the fixed
// catalog so every scenario is covered evenly regardless of n. Ids run
// T9000, T9001, ... in emission order.
func Trades(rng *rand.Rand, n int, window Window) []dataset.Trade {
	catalog := dataset.Catalog()
	counterparties := dataset.Counterparties()
	books := dataset.Books()

	trades := make([]dataset.Trade, 0, n)
	for i := 0; i < n; i++ {
		scenario := catalog[i%len(catalog)]
		instrument := pick(rng, dataset.Instruments)
		price := decimal.NewFromFloat(5 + rng.Float64()*295).Round(2)

		trades = append(trades, dataset.Trade{
			ID:           dataset.TradeID(fmt.Sprintf("T%d", 9000+i)),
			Scenario:     scenario.ID,
			TradeDate:    randTime(rng, window),
			Trader:       pick(rng, dataset.Traders),
			Desk:         pick(rng, dataset.Desks),
			Instrument:   instrument,
			AssetClass:   dataset.AssetClassFor(instrument),
			Quantity:     pick(rng, dataset.Quantities),
			Price:        price,
			Currency:     pick(rng, dataset.Currencies),
			Counterparty: pick(rng, counterparties),
			Book:         pick(rng, books),
		})
	}
	return trades
}
