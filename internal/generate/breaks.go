package generate

import (
	"fmt"
	"math/rand"
	"time"

	"gpm-datagen/internal/dataset"
)

// Breaks derives n discrepancy records. Each break samples one trade
// uniformly with replacement, so a trade may raise zero or several breaks.
// When the trade has a settlement and the link coin succeeds, the first
// settlement is linked and a non-empty failure reason is inherited
// verbatim; otherwise a generic reason is drawn.
func Breaks(rng *rand.Rand, n int, trades []dataset.Trade, settlements []dataset.Settlement, linkProb float64) []dataset.Break {
	firstSettlement := make(map[dataset.TradeID]dataset.Settlement, len(settlements))
	for _, s := range settlements {
		if _, ok := firstSettlement[s.TradeID]; !ok {
			firstSettlement[s.TradeID] = s
		}
	}

	breaks := make([]dataset.Break, 0, n)
	for i := 0; i < n; i++ {
		t := trades[rng.Intn(len(trades))]

		b := dataset.Break{
			ID:         dataset.BreakID(fmt.Sprintf("B%d", 30000+i)),
			TradeID:    t.ID,
			Type:       pick(rng, dataset.BreakTypes),
			DetectedAt: t.TradeDate.Add(time.Duration(1+rng.Intn(72)) * time.Hour),
			Status:     pick(rng, dataset.BreakStatuses),
			AssignedTo: pick(rng, dataset.BreakAssignees),
			Severity:   pick(rng, dataset.Severities),
		}

		if s, ok := firstSettlement[t.ID]; ok && rng.Float64() < linkProb {
			b.SettlementID = s.ID
			b.Reason = s.FailReason
		}
		if b.Reason == "" {
			b.Reason = pick(rng, dataset.GenericBreakReasons)
		}

		breaks = append(breaks, b)
	}
	return breaks
}
