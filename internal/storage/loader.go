package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gpm-datagen/internal/dataset"
)

var (
	// ErrNotConfigured indicates the storage pool was not initialised.
	ErrNotConfigured = errors.New("storage: pool not configured")
)

// One DDL statement per table; executed in order by EnsureSchema.
var schemaSQL = []string{
	`CREATE TABLE IF NOT EXISTS trades (
        trade_id     TEXT PRIMARY KEY,
        scenario     TEXT NOT NULL,
        trade_date   TIMESTAMPTZ NOT NULL,
        trader       TEXT NOT NULL,
        desk         TEXT NOT NULL,
        instrument   TEXT NOT NULL,
        asset_class  TEXT NOT NULL,
        quantity     BIGINT NOT NULL,
        price        NUMERIC(18,2) NOT NULL,
        currency     TEXT NOT NULL,
        counterparty TEXT NOT NULL,
        book         TEXT NOT NULL,
        notes        TEXT NOT NULL DEFAULT ''
    );`,
	`CREATE TABLE IF NOT EXISTS positions (
        position_id    TEXT PRIMARY KEY,
        trade_id       TEXT NOT NULL REFERENCES trades(trade_id),
        snapshot       TEXT NOT NULL,
        valuation_date TIMESTAMPTZ NOT NULL,
        quantity       BIGINT NOT NULL,
        market_value   NUMERIC(18,2) NOT NULL,
        book           TEXT NOT NULL
    );`,
	`CREATE TABLE IF NOT EXISTS settlements (
        settlement_id     TEXT PRIMARY KEY,
        trade_id          TEXT NOT NULL REFERENCES trades(trade_id),
        settlement_date   TIMESTAMPTZ NOT NULL,
        quantity          BIGINT NOT NULL,
        currency          TEXT NOT NULL,
        amount            NUMERIC(18,2) NOT NULL,
        settlement_status TEXT NOT NULL,
        fail_reason       TEXT NOT NULL DEFAULT '',
        custodian         TEXT NOT NULL
    );`,
	`CREATE TABLE IF NOT EXISTS corporate_actions (
        ca_id          TEXT PRIMARY KEY,
        instrument     TEXT NOT NULL,
        ca_type        TEXT NOT NULL,
        effective_date DATE NOT NULL,
        notes          TEXT NOT NULL DEFAULT ''
    );`,
	`CREATE TABLE IF NOT EXISTS breaks (
        break_id      TEXT PRIMARY KEY,
        trade_id      TEXT NOT NULL REFERENCES trades(trade_id),
        settlement_id TEXT REFERENCES settlements(settlement_id),
        break_type    TEXT NOT NULL,
        break_reason  TEXT NOT NULL,
        detected_date TIMESTAMPTZ NOT NULL,
        status        TEXT NOT NULL,
        assigned_to   TEXT NOT NULL,
        severity      TEXT NOT NULL
    );`,
	`CREATE TABLE IF NOT EXISTS itsm_tickets (
        ticket_id    TEXT PRIMARY KEY,
        linked_break TEXT NOT NULL REFERENCES breaks(break_id),
        system       TEXT NOT NULL,
        priority     TEXT NOT NULL,
        summary      TEXT NOT NULL,
        description  TEXT NOT NULL,
        created_on   TIMESTAMPTZ NOT NULL,
        status       TEXT NOT NULL,
        assigned_to  TEXT NOT NULL
    );`,
	`CREATE TABLE IF NOT EXISTS change_tickets (
        change_id      TEXT PRIMARY KEY,
        change_date    DATE NOT NULL,
        description    TEXT NOT NULL,
        impact         TEXT NOT NULL,
        related_system TEXT NOT NULL,
        status         TEXT NOT NULL
    );`,
	`CREATE TABLE IF NOT EXISTS audit_trail (
        audit_id  TEXT PRIMARY KEY,
        entity_id TEXT NOT NULL REFERENCES breaks(break_id),
        action    TEXT NOT NULL,
        "user"    TEXT NOT NULL,
        ts        TIMESTAMPTZ NOT NULL,
        notes     TEXT NOT NULL
    );`,
	`CREATE TABLE IF NOT EXISTS relationships (
        source   TEXT NOT NULL,
        target   TEXT NOT NULL,
        rel_type TEXT NOT NULL
    );`,
}

// truncateSQL clears every dataset table; child tables first so the
// foreign keys hold during reload.
const truncateSQL = `TRUNCATE relationships, audit_trail, itsm_tickets, change_tickets,
    breaks, corporate_actions, settlements, positions, trades;`

// Loader pushes a generated dataset into PostgreSQL for downstream
// reconciliation and graph-ingestion consumers.
type Loader struct {
	pool *pgxpool.Pool
}

// NewLoader wires a pgx pool into a Loader.
func NewLoader(pool *pgxpool.Pool) *Loader {
	return &Loader{pool: pool}
}

// Close releases the underlying pool resources.
func (l *Loader) Close() {
	if l == nil || l.pool == nil {
		return
	}
	l.pool.Close()
}

func (l *Loader) getPool() (*pgxpool.Pool, error) {
	if l == nil || l.pool == nil {
		return nil, ErrNotConfigured
	}
	return l.pool, nil
}

// EnsureSchema creates the dataset tables if they do not exist.
func (l *Loader) EnsureSchema(ctx context.Context) error {
	pool, err := l.getPool()
	if err != nil {
		return err
	}
	for _, ddl := range schemaSQL {
		if _, err := pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Load replaces the stored dataset with ds, bulk-inserting every table.
func (l *Loader) Load(ctx context.Context, ds *dataset.Dataset) error {
	pool, err := l.getPool()
	if err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, truncateSQL); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}

	if err := l.copyTrades(ctx, ds.Trades); err != nil {
		return err
	}
	if err := l.copyPositions(ctx, ds.Positions); err != nil {
		return err
	}
	if err := l.copySettlements(ctx, ds.Settlements); err != nil {
		return err
	}
	if err := l.copyCorporateActions(ctx, ds.CorporateActions); err != nil {
		return err
	}
	if err := l.copyBreaks(ctx, ds.Breaks); err != nil {
		return err
	}
	if err := l.copyTickets(ctx, ds.Tickets); err != nil {
		return err
	}
	if err := l.copyChangeTickets(ctx, ds.ChangeTickets); err != nil {
		return err
	}
	if err := l.copyAuditTrail(ctx, ds.AuditTrail); err != nil {
		return err
	}
	return l.copyRelationships(ctx, ds.Relationships)
}

// Counts returns stored row counts per table, in load order.
func (l *Loader) Counts(ctx context.Context) (map[string]int64, error) {
	pool, err := l.getPool()
	if err != nil {
		return nil, err
	}

	tables := []string{
		"trades", "positions", "settlements", "corporate_actions",
		"breaks", "itsm_tickets", "change_tickets", "audit_trail", "relationships",
	}
	counts := make(map[string]int64, len(tables))
	for _, table := range tables {
		var count int64
		if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = count
	}
	return counts, nil
}

func (l *Loader) copy(ctx context.Context, table string, columns []string, rows [][]any) error {
	_, err := l.pool.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy %s: %w", table, err)
	}
	return nil
}

func (l *Loader) copyTrades(ctx context.Context, trades []dataset.Trade) error {
	rows := make([][]any, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, []any{
			string(t.ID), string(t.Scenario), t.TradeDate, t.Trader, t.Desk,
			t.Instrument, t.AssetClass, t.Quantity, t.Price.StringFixed(2),
			t.Currency, t.Counterparty, t.Book, t.Notes,
		})
	}
	return l.copy(ctx, "trades", []string{
		"trade_id", "scenario", "trade_date", "trader", "desk", "instrument",
		"asset_class", "quantity", "price", "currency", "counterparty", "book", "notes",
	}, rows)
}

func (l *Loader) copyPositions(ctx context.Context, positions []dataset.Position) error {
	rows := make([][]any, 0, len(positions))
	for _, p := range positions {
		rows = append(rows, []any{
			string(p.ID), string(p.TradeID), p.Snapshot, p.ValuationDate,
			p.Quantity, p.MarketValue.StringFixed(2), p.Book,
		})
	}
	return l.copy(ctx, "positions", []string{
		"position_id", "trade_id", "snapshot", "valuation_date", "quantity", "market_value", "book",
	}, rows)
}

func (l *Loader) copySettlements(ctx context.Context, settlements []dataset.Settlement) error {
	rows := make([][]any, 0, len(settlements))
	for _, s := range settlements {
		rows = append(rows, []any{
			string(s.ID), string(s.TradeID), s.SettlementDate, s.Quantity,
			s.Currency, s.Amount.StringFixed(2), s.Status, s.FailReason, s.Custodian,
		})
	}
	return l.copy(ctx, "settlements", []string{
		"settlement_id", "trade_id", "settlement_date", "quantity", "currency",
		"amount", "settlement_status", "fail_reason", "custodian",
	}, rows)
}

func (l *Loader) copyCorporateActions(ctx context.Context, actions []dataset.CorporateAction) error {
	rows := make([][]any, 0, len(actions))
	for _, ca := range actions {
		rows = append(rows, []any{
			string(ca.ID), ca.Instrument, ca.Type, ca.EffectiveDate, ca.Notes,
		})
	}
	return l.copy(ctx, "corporate_actions", []string{
		"ca_id", "instrument", "ca_type", "effective_date", "notes",
	}, rows)
}

func (l *Loader) copyBreaks(ctx context.Context, breaks []dataset.Break) error {
	rows := make([][]any, 0, len(breaks))
	for _, b := range breaks {
		var settlementID any
		if b.SettlementID != "" {
			settlementID = string(b.SettlementID)
		}
		rows = append(rows, []any{
			string(b.ID), string(b.TradeID), settlementID, b.Type, b.Reason,
			b.DetectedAt, b.Status, b.AssignedTo, b.Severity,
		})
	}
	return l.copy(ctx, "breaks", []string{
		"break_id", "trade_id", "settlement_id", "break_type", "break_reason",
		"detected_date", "status", "assigned_to", "severity",
	}, rows)
}

func (l *Loader) copyTickets(ctx context.Context, tickets []dataset.IncidentTicket) error {
	rows := make([][]any, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, []any{
			string(t.ID), string(t.BreakID), t.System, t.Priority, t.Summary,
			t.Description, t.CreatedAt, t.Status, t.AssignedTo,
		})
	}
	return l.copy(ctx, "itsm_tickets", []string{
		"ticket_id", "linked_break", "system", "priority", "summary",
		"description", "created_on", "status", "assigned_to",
	}, rows)
}

func (l *Loader) copyChangeTickets(ctx context.Context, changes []dataset.ChangeTicket) error {
	rows := make([][]any, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, []any{
			string(c.ID), c.Date, c.Description, c.Impact, c.RelatedSystem, c.Status,
		})
	}
	return l.copy(ctx, "change_tickets", []string{
		"change_id", "change_date", "description", "impact", "related_system", "status",
	}, rows)
}

func (l *Loader) copyAuditTrail(ctx context.Context, entries []dataset.AuditEntry) error {
	rows := make([][]any, 0, len(entries))
	for _, a := range entries {
		rows = append(rows, []any{
			string(a.ID), string(a.EntityID), a.Action, a.User, a.Timestamp, a.Notes,
		})
	}
	return l.copy(ctx, "audit_trail", []string{
		"audit_id", "entity_id", "action", "user", "ts", "notes",
	}, rows)
}

func (l *Loader) copyRelationships(ctx context.Context, rels []dataset.Relationship) error {
	rows := make([][]any, 0, len(rels))
	for _, r := range rels {
		rows = append(rows, []any{r.Source, r.Target, string(r.Type)})
	}
	return l.copy(ctx, "relationships", []string{"source", "target", "rel_type"}, rows)
}
