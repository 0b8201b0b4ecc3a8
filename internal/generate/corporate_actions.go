package generate

import (
	"fmt"
	"math/rand"

	"gpm-datagen/internal/dataset"
)

// CorporateActions produces n standalone corporate-action records. They
// deliberately carry no trade linkage; scenario SCEN3 narratives reference
// them only by instrument.
func CorporateActions(rng *rand.Rand, n int, window Window) []dataset.CorporateAction {
	actions := make([]dataset.CorporateAction, 0, n)
	for i := 0; i < n; i++ {
		actions = append(actions, dataset.CorporateAction{
			ID:            dataset.CorporateActionID(fmt.Sprintf("CA%d", 500+i)),
			Instrument:    pick(rng, dataset.Instruments),
			Type:          pick(rng, dataset.CorporateActionTypes),
			EffectiveDate: randTime(rng, window),
			Notes:         "Feed update required across subledgers",
		})
	}
	return actions
}
