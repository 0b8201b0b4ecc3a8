package dataset

import (
	"time"

	"github.com/shopspring/decimal"
)

// Timestamp layouts used across CSV output and narrative text.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

// Typed identifiers. Every cross-entity reference carries the id kind it
// points at, so wiring a Break to something that is not a Trade fails to
// compile rather than surfacing as a dangling string downstream.
type (
	ScenarioID        string
	TradeID           string
	PositionID        string
	SettlementID      string
	CorporateActionID string
	BreakID           string
	TicketID          string
	ChangeID          string
	AuditID           string
)

// Scenario names one of the fixed failure scenarios trades are spread over.
type Scenario struct {
	ID   ScenarioID
	Name string
	Tag  string
}

// Trade is a single booked trade assigned to a scenario.
type Trade struct {
	ID           TradeID
	Scenario     ScenarioID
	TradeDate    time.Time
	Trader       string
	Desk         string
	Instrument   string
	AssetClass   string
	Quantity     int64
	Price        decimal.Decimal
	Currency     string
	Counterparty string
	Book         string
	Notes        string
}

// Position is a point-in-time valuation snapshot derived from a trade.
// A correction is a second, later snapshot, never a mutation of the first.
type Position struct {
	ID            PositionID
	TradeID       TradeID
	Snapshot      string // "T+0" or "T+1"
	ValuationDate time.Time
	Quantity      int64
	MarketValue   decimal.Decimal
	Book          string
}

// Settlement records the settlement attempt for a trade. FailReason is
// populated exactly when Status is "Failed".
type Settlement struct {
	ID             SettlementID
	TradeID        TradeID
	SettlementDate time.Time
	Quantity       int64
	Currency       string
	Amount         decimal.Decimal
	Status         string
	FailReason     string
	Custodian      string
}

// CorporateAction is a standalone corporate-action event; it has no trade
// linkage.
type CorporateAction struct {
	ID            CorporateActionID
	Instrument    string
	Type          string
	EffectiveDate time.Time
	Notes         string
}

// Break is a detected discrepancy requiring investigation. SettlementID is
// empty when the break was raised without a settlement linkage.
type Break struct {
	ID           BreakID
	TradeID      TradeID
	SettlementID SettlementID
	Type         string
	Reason       string
	DetectedAt   time.Time
	Status       string
	AssignedTo   string
	Severity     string
}

// IncidentTicket is an ITSM ticket raised for a break.
type IncidentTicket struct {
	ID          TicketID
	BreakID     BreakID
	System      string
	Priority    string
	Summary     string
	Description string
	CreatedAt   time.Time
	Status      string
	AssignedTo  string
}

// ChangeTicket is a standalone change-management record.
type ChangeTicket struct {
	ID            ChangeID
	Date          time.Time
	Description   string
	Impact        string
	RelatedSystem string
	Status        string
}

// AuditEntry logs an action taken against a break.
type AuditEntry struct {
	ID        AuditID
	EntityID  BreakID
	Action    string
	User      string
	Timestamp time.Time
	Notes     string
}

// RelationType enumerates the edge kinds of the relationship list.
type RelationType string

const (
	RelHasPosition    RelationType = "HAS_POSITION"
	RelHasSettlement  RelationType = "HAS_SETTLEMENT"
	RelBreakOf        RelationType = "BREAK_OF"
	RelTicketForBreak RelationType = "TICKET_FOR_BREAK"
)

// Relationship is one edge of the flat graph export. Source and Target are
// untyped because edges connect heterogeneous entity kinds.
type Relationship struct {
	Source string
	Target string
	Type   RelationType
}

// Dataset aggregates every generated collection for a single run.
type Dataset struct {
	Scenarios        []Scenario
	Trades           []Trade
	Positions        []Position
	Settlements      []Settlement
	CorporateActions []CorporateAction
	Breaks           []Break
	Tickets          []IncidentTicket
	ChangeTickets    []ChangeTicket
	AuditTrail       []AuditEntry
	Emails           []string
	Chats            []string
	Relationships    []Relationship
}
