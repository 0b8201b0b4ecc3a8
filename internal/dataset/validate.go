package dataset

import "fmt"

// Validate checks cross-entity referential integrity: every reference held
// by a position, settlement, break, ticket, audit entry, or relationship
// must resolve to an emitted record. Generators are expected to produce
// valid datasets; this catches wiring mistakes before anything is written.
func (d *Dataset) Validate() error {
	trades := make(map[TradeID]struct{}, len(d.Trades))
	ids := make(map[string]struct{})
	for _, t := range d.Trades {
		if _, dup := trades[t.ID]; dup {
			return fmt.Errorf("duplicate trade id %s", t.ID)
		}
		trades[t.ID] = struct{}{}
		ids[string(t.ID)] = struct{}{}
	}

	settlements := make(map[SettlementID]struct{}, len(d.Settlements))
	for _, s := range d.Settlements {
		if _, ok := trades[s.TradeID]; !ok {
			return fmt.Errorf("settlement %s references unknown trade %s", s.ID, s.TradeID)
		}
		if (s.Status == "Failed") != (s.FailReason != "") {
			return fmt.Errorf("settlement %s: fail reason %q inconsistent with status %q", s.ID, s.FailReason, s.Status)
		}
		settlements[s.ID] = struct{}{}
		ids[string(s.ID)] = struct{}{}
	}

	seen := make(map[TradeID]map[string]bool, len(d.Trades))
	for _, p := range d.Positions {
		if _, ok := trades[p.TradeID]; !ok {
			return fmt.Errorf("position %s references unknown trade %s", p.ID, p.TradeID)
		}
		if p.Quantity < 0 {
			return fmt.Errorf("position %s has negative quantity", p.ID)
		}
		if seen[p.TradeID] == nil {
			seen[p.TradeID] = make(map[string]bool, 2)
		}
		if seen[p.TradeID][p.Snapshot] {
			return fmt.Errorf("trade %s has more than one %s snapshot", p.TradeID, p.Snapshot)
		}
		seen[p.TradeID][p.Snapshot] = true
		ids[string(p.ID)] = struct{}{}
	}
	for id := range trades {
		if !seen[id]["T+0"] {
			return fmt.Errorf("trade %s has no base position snapshot", id)
		}
	}

	breaks := make(map[BreakID]struct{}, len(d.Breaks))
	for _, b := range d.Breaks {
		if _, ok := trades[b.TradeID]; !ok {
			return fmt.Errorf("break %s references unknown trade %s", b.ID, b.TradeID)
		}
		if b.SettlementID != "" {
			if _, ok := settlements[b.SettlementID]; !ok {
				return fmt.Errorf("break %s references unknown settlement %s", b.ID, b.SettlementID)
			}
		}
		breaks[b.ID] = struct{}{}
		ids[string(b.ID)] = struct{}{}
	}

	for _, t := range d.Tickets {
		if _, ok := breaks[t.BreakID]; !ok {
			return fmt.Errorf("ticket %s references unknown break %s", t.ID, t.BreakID)
		}
		ids[string(t.ID)] = struct{}{}
	}

	for _, a := range d.AuditTrail {
		if _, ok := breaks[a.EntityID]; !ok {
			return fmt.Errorf("audit entry %s references unknown break %s", a.ID, a.EntityID)
		}
	}

	for i, r := range d.Relationships {
		if _, ok := ids[r.Source]; !ok {
			return fmt.Errorf("relationship %d: source %s does not resolve", i, r.Source)
		}
		if _, ok := ids[r.Target]; !ok {
			return fmt.Errorf("relationship %d: target %s does not resolve", i, r.Target)
		}
	}

	return nil
}
