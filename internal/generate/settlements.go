package generate

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"gpm-datagen/internal/dataset"
)

// failureMode describes scenario-specific settlement failure injection.
type failureMode struct {
	prob   float64
	reason string
}

// Scenario SCEN4 never fails through this path.
var failureModes = map[dataset.ScenarioID]failureMode{
	"SCEN1": {prob: 0.3, reason: "SSI_Mismatch"},
	"SCEN2": {prob: 0.2, reason: "FX_Conversion_Error"},
	"SCEN3": {prob: 0.15, reason: "CA_Not_Applied"},
	"SCEN5": {prob: 0.25, reason: "Insufficient_Funds"},
}

var shortfalls = []int64{0, 5, 10}

// Settlements derives settlement records for a random subset of count
// trades, sampled without replacement. Settlement ids encode the trade's
// index, so a settlement's id is stable for a given trade regardless of
// sampling order.
//
// Amount is priced off the traded quantity, not the settled quantity; the
// downstream reconciliation narratives depend on that gap, so it must not
// be "fixed".
func Settlements(rng *rand.Rand, trades []dataset.Trade, count int) []dataset.Settlement {
	if count > len(trades) {
		count = len(trades)
	}

	settlements := make([]dataset.Settlement, 0, count)
	for _, idx := range rng.Perm(len(trades))[:count] {
		t := trades[idx]

		status := ""
		reason := ""
		if mode, ok := failureModes[t.Scenario]; ok && rng.Float64() < mode.prob {
			status = "Failed"
			reason = mode.reason
		} else if rng.Float64() < 0.8 {
			status = "Confirmed"
		} else {
			status = "Pending"
		}

		quantity := t.Quantity
		if status != "Confirmed" {
			quantity -= pick(rng, shortfalls)
		}

		settlements = append(settlements, dataset.Settlement{
			ID:             dataset.SettlementID(fmt.Sprintf("S%d", 20000+idx)),
			TradeID:        t.ID,
			SettlementDate: t.TradeDate.Add(time.Duration(1+rng.Intn(2)) * 24 * time.Hour),
			Quantity:       quantity,
			Currency:       t.Currency,
			Amount:         decimal.NewFromInt(t.Quantity).Mul(t.Price).Round(2),
			Status:         status,
			FailReason:     reason,
			Custodian:      pick(rng, dataset.Custodians),
		})
	}
	return settlements
}
