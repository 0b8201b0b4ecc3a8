package generate

import (
	"fmt"
	"math/rand"

	"gpm-datagen/internal/dataset"
)

// IncidentTickets raises n ITSM tickets, each sampling a random break and
// templating its fields into the summary and description.
func IncidentTickets(rng *rand.Rand, n int, breaks []dataset.Break, window Window) []dataset.IncidentTicket {
	tickets := make([]dataset.IncidentTicket, 0, n)
	for i := 0; i < n; i++ {
		b := breaks[rng.Intn(len(breaks))]
		tickets = append(tickets, dataset.IncidentTicket{
			ID:       dataset.TicketID(fmt.Sprintf("ITSM%d", 7000+i)),
			BreakID:  b.ID,
			System:   pick(rng, dataset.Systems),
			Priority: pick(rng, dataset.TicketPriorities),
			Summary:  fmt.Sprintf("%s for trade %s", b.Type, b.TradeID),
			Description: fmt.Sprintf(
				"Detailed: %s. Steps: Investigate static data, verify custodian confirmation, check MQ queues, apply manual fix if required.",
				b.Reason,
			),
			CreatedAt:  randTime(rng, window),
			Status:     pick(rng, dataset.TicketStatuses),
			AssignedTo: pick(rng, dataset.TicketAssignees),
		})
	}
	return tickets
}

// ChangeTickets produces n standalone change-management records.
func ChangeTickets(rng *rand.Rand, n int, window Window) []dataset.ChangeTicket {
	changes := make([]dataset.ChangeTicket, 0, n)
	for i := 0; i < n; i++ {
		changes = append(changes, dataset.ChangeTicket{
			ID:            dataset.ChangeID(fmt.Sprintf("CHG%d", 900+i)),
			Date:          randTime(rng, window),
			Description:   pick(rng, dataset.ChangeDescriptions),
			Impact:        pick(rng, dataset.ChangeImpacts),
			RelatedSystem: pick(rng, dataset.Systems),
			Status:        pick(rng, dataset.ChangeStatuses),
		})
	}
	return changes
}

// AuditTrail derives n audit-log entries, each against a random break.
func AuditTrail(rng *rand.Rand, n int, breaks []dataset.Break, window Window) []dataset.AuditEntry {
	entries := make([]dataset.AuditEntry, 0, n)
	for i := 0; i < n; i++ {
		b := breaks[rng.Intn(len(breaks))]
		entries = append(entries, dataset.AuditEntry{
			ID:        dataset.AuditID(fmt.Sprintf("AUD%d", 4000+i)),
			EntityID:  b.ID,
			Action:    pick(rng, dataset.AuditActions),
			User:      pick(rng, dataset.AuditUsers),
			Timestamp: randTime(rng, window),
			Notes:     pick(rng, dataset.AuditNotes),
		})
	}
	return entries
}
