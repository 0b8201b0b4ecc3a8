package dataset

import (
	"fmt"
	"strings"
)

// Catalog returns the fixed ordered scenario catalog. Trades are assigned
// scenarios round-robin over this slice, so its order is load-bearing.
func Catalog() []Scenario {
	return []Scenario{
		{ID: "SCEN1", Name: "Equity SSI Late Update", Tag: "SSI"},
		{ID: "SCEN2", Name: "FI FX Conversion Mismatch", Tag: "FX"},
		{ID: "SCEN3", Name: "Corporate Action Sync Failure", Tag: "CA"},
		{ID: "SCEN4", Name: "Interbook Transfer Mapping Error", Tag: "IB"},
		{ID: "SCEN5", Name: "Nostro Shortfall - Funding Issue", Tag: "NS"},
	}
}

// Fixed universes the generators draw from.
var (
	Instruments = []string{
		"MSFT.O", "AAPL.O", "DBR.X", "JPM.N", "NIKK.N",
		"GOVBOND10Y", "EURUSDSPOT", "USDJPYSPOT", "SPX_OPT", "CDS_UK",
	}

	Traders    = []string{"joe.trader", "li.chen", "maria.g", "omar.khan", "sara.r"}
	Desks      = []string{"Equities-APAC", "FI-EMEA", "FX-NA", "Derivatives-APAC"}
	Currencies = []string{"USD", "EUR", "JPY", "GBP"}
	Custodians = []string{"JPM", "CITI", "BOFA", "BNP", "HSBC"}

	Quantities = []int64{50, 100, 200, 500, 1000}

	Systems = []string{
		"ReconciliationEngine", "MQGateway", "SettlementHub", "PositionEngine",
		"CAFeed", "SSIService", "TreasurySystem",
	}

	BreakTypes = []string{
		"Cash_Break", "Quantity_Mismatch", "Documentation_Gap",
		"Pricing_Mismatch", "SSI_Issue", "Feed_Delay", "CA_Mismatch",
	}
	GenericBreakReasons = []string{"AutoDetected", "StaticDataError", "IntegrationError", "ToleranceExceeded"}
	BreakStatuses       = []string{"Open", "Investigating", "Resolved"}
	BreakAssignees      = []string{"GPM_Analyst1", "GPM_Analyst2", "GPM_Analyst3", "CustodyOps", "StaticDataTeam"}
	Severities          = []string{"High", "Medium", "Low"}

	TicketPriorities = []string{"Low", "Medium", "High", "Critical"}
	TicketStatuses   = []string{"Open", "In Progress", "Resolved", "Pending RCA"}
	TicketAssignees  = []string{"Infra Team", "Middleware", "Custody Team", "GPM Support", "Treasury Ops"}

	CorporateActionTypes = []string{"Split", "Dividend", "SpinOff", "RightsIssue"}

	ChangeDescriptions = []string{
		"SSI table update", "MQ consumer tuning", "Reconciliation tolerance change",
		"CA feed parser fix", "Schedule adjustment",
	}
	ChangeImpacts  = []string{"Low", "Medium", "High"}
	ChangeStatuses = []string{"Planned", "Completed", "RolledBack"}

	AuditActions = []string{"CREATE_BREAK", "ASSIGN_ANALYST", "UPDATE_POSITION", "ESCALATE_TO_IT", "RESOLVE_BREAK"}
	AuditUsers   = []string{"GPM_Analyst1", "GPM_Analyst2", "GPM_Lead", "CustodyOps", "StaticDataTeam"}
	AuditNotes   = []string{
		"Logged by automation",
		"Manual update after counterparty confirmation",
		"Escalated following SLA breach",
		"Resolved after SSI update",
	}
)

// Counterparties returns the fixed counterparty universe CP001..CP020.
func Counterparties() []string {
	cps := make([]string, 0, 20)
	for i := 1; i <= 20; i++ {
		cps = append(cps, fmt.Sprintf("CP%03d", i))
	}
	return cps
}

// Books returns the fixed book universe Book1..Book7.
func Books() []string {
	books := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		books = append(books, fmt.Sprintf("Book%d", i))
	}
	return books
}

// AssetClassFor derives the asset class from an instrument symbol. The
// mapping is a pure function of the symbol: RIC-style dotted codes and SPX
// products are equities, government bond codes are fixed income, spot pairs
// are FX, everything else is a derivative.
func AssetClassFor(instrument string) string {
	switch {
	case strings.Contains(instrument, ".") || strings.Contains(instrument, "SPX"):
		return "Equity"
	case strings.Contains(instrument, "GOVBOND") || strings.Contains(instrument, "DBR"):
		return "Fixed Income"
	case strings.Contains(instrument, "SPOT") || strings.Contains(instrument, "FX"):
		return "FX"
	default:
		return "Derivatives"
	}
}
