package generate

import "gpm-datagen/internal/dataset"

// Relationships derives the flat edge list for graph ingestion. The pass is
// purely structural: one HAS_POSITION edge per trade to its first position,
// one HAS_SETTLEMENT edge per settlement, one BREAK_OF edge per break, and
// one TICKET_FOR_BREAK edge per incident ticket.
func Relationships(d *dataset.Dataset) []dataset.Relationship {
	firstPosition := make(map[dataset.TradeID]dataset.PositionID, len(d.Trades))
	for _, p := range d.Positions {
		if _, ok := firstPosition[p.TradeID]; !ok {
			firstPosition[p.TradeID] = p.ID
		}
	}

	rels := make([]dataset.Relationship, 0, len(d.Trades)+len(d.Settlements)+len(d.Breaks)+len(d.Tickets))
	for _, t := range d.Trades {
		if pos, ok := firstPosition[t.ID]; ok {
			rels = append(rels, dataset.Relationship{Source: string(t.ID), Target: string(pos), Type: dataset.RelHasPosition})
		}
	}
	for _, s := range d.Settlements {
		rels = append(rels, dataset.Relationship{Source: string(s.TradeID), Target: string(s.ID), Type: dataset.RelHasSettlement})
	}
	for _, b := range d.Breaks {
		rels = append(rels, dataset.Relationship{Source: string(b.ID), Target: string(b.TradeID), Type: dataset.RelBreakOf})
	}
	for _, t := range d.Tickets {
		rels = append(rels, dataset.Relationship{Source: string(t.ID), Target: string(t.BreakID), Type: dataset.RelTicketForBreak})
	}
	return rels
}
