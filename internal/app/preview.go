package app

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"gpm-datagen/internal/dataset"
)

// Preview regenerates the dataset in memory from the configured seed and
// prints a summary without writing any files.
func (a *App) Preview(ctx context.Context, opts PreviewOptions) error {
	params := a.buildParams(opts.Seed, opts.Trades)

	ds, err := a.newGenerator(params).Run()
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "Table\tRows")
	fmt.Fprintf(writer, "trades\t%d\n", len(ds.Trades))
	fmt.Fprintf(writer, "positions\t%d\n", len(ds.Positions))
	fmt.Fprintf(writer, "settlements\t%d\n", len(ds.Settlements))
	fmt.Fprintf(writer, "corporate_actions\t%d\n", len(ds.CorporateActions))
	fmt.Fprintf(writer, "breaks\t%d\n", len(ds.Breaks))
	fmt.Fprintf(writer, "itsm_tickets\t%d\n", len(ds.Tickets))
	fmt.Fprintf(writer, "change_tickets\t%d\n", len(ds.ChangeTickets))
	fmt.Fprintf(writer, "audit_trail\t%d\n", len(ds.AuditTrail))
	fmt.Fprintf(writer, "relationships\t%d\n", len(ds.Relationships))
	fmt.Fprintf(writer, "email_threads\t%d\n", len(ds.Emails))
	fmt.Fprintf(writer, "chat_threads\t%d\n", len(ds.Chats))
	fmt.Fprintln(writer)

	fmt.Fprintln(writer, "Scenario\tTrades\tSettlements\tFailed\tBreaks")
	for _, scenario := range ds.Scenarios {
		row := summarizeScenario(ds, scenario.ID)
		fmt.Fprintf(writer, "%s\t%d\t%d\t%d\t%d\n",
			scenario.ID, row.trades, row.settlements, row.failed, row.breaks)
	}

	return writer.Flush()
}

type scenarioSummary struct {
	trades      int
	settlements int
	failed      int
	breaks      int
}

func summarizeScenario(ds *dataset.Dataset, id dataset.ScenarioID) scenarioSummary {
	byTrade := make(map[dataset.TradeID]dataset.ScenarioID, len(ds.Trades))
	var row scenarioSummary
	for _, t := range ds.Trades {
		byTrade[t.ID] = t.Scenario
		if t.Scenario == id {
			row.trades++
		}
	}
	for _, s := range ds.Settlements {
		if byTrade[s.TradeID] != id {
			continue
		}
		row.settlements++
		if s.Status == "Failed" {
			row.failed++
		}
	}
	for _, b := range ds.Breaks {
		if byTrade[b.TradeID] == id {
			row.breaks++
		}
	}
	return row
}
