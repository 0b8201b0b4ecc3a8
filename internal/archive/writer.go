package archive

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"gpm-datagen/internal/dataset"
	"gpm-datagen/internal/narrative"
)

// Zip entries carry this fixed modification time so a fixed seed yields a
// byte-identical archive, not just identical member files.
var archiveEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// Writer materialises a dataset as delimited files plus narrative and
// policy documents, then bundles the output directory into a zip archive.
// Failures are fatal to the run; partial output is acceptable for an
// offline batch generator, so nothing is rolled back.
type Writer struct {
	outDir      string
	archivePath string
	logger      zerolog.Logger
}

// NewWriter constructs a Writer. An empty archivePath skips bundling.
func NewWriter(outDir, archivePath string, logger zerolog.Logger) *Writer {
	return &Writer{
		outDir:      outDir,
		archivePath: archivePath,
		logger:      logger.With().Str("component", "archive").Logger(),
	}
}

// Write emits every table and document, then bundles the archive.
func (w *Writer) Write(ds *dataset.Dataset) error {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tables := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{"trades.csv", tradeHeader, tradeRows(ds.Trades)},
		{"positions.csv", positionHeader, positionRows(ds.Positions)},
		{"settlements.csv", settlementHeader, settlementRows(ds.Settlements)},
		{"corporate_actions.csv", corporateActionHeader, corporateActionRows(ds.CorporateActions)},
		{"breaks.csv", breakHeader, breakRows(ds.Breaks)},
		{"itsm_tickets.csv", ticketHeader, ticketRows(ds.Tickets)},
		{"change_tickets.csv", changeHeader, changeRows(ds.ChangeTickets)},
		{"audit_trail.csv", auditHeader, auditRows(ds.AuditTrail)},
		{"relationships.csv", relationshipHeader, relationshipRows(ds.Relationships)},
	}
	for _, table := range tables {
		if err := w.writeCSV(table.name, table.header, table.rows); err != nil {
			return err
		}
	}

	texts := []struct {
		name    string
		content string
	}{
		{"emails.txt", strings.Join(ds.Emails, "\n\n")},
		{"chats.txt", strings.Join(ds.Chats, "\n\n")},
		{"sop.txt", narrative.SOP()},
		{"sla.txt", narrative.SLA()},
	}
	for _, text := range texts {
		if err := w.writeText(text.name, text.content); err != nil {
			return err
		}
	}

	if w.archivePath == "" {
		return nil
	}
	return w.bundle()
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	file, err := os.Create(filepath.Join(w.outDir, name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write %s row: %w", name, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", name, err)
	}

	w.logger.Debug().Str("file", name).Int("rows", len(rows)).Msg("table written")
	return nil
}

func (w *Writer) writeText(name, content string) error {
	if err := os.WriteFile(filepath.Join(w.outDir, name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// bundle zips every regular file in the output directory. Entries are added
// in lexical name order with a pinned mod-time.
func (w *Writer) bundle() error {
	if err := ensureDir(w.archivePath); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}

	out, err := os.Create(w.archivePath)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	entries, err := os.ReadDir(w.outDir)
	if err != nil {
		return fmt.Errorf("read output dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := w.addFile(zw, entry.Name()); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalise archive: %w", err)
	}

	w.logger.Info().Str("archive", w.archivePath).Int("files", len(entries)).Msg("archive written")
	return nil
}

func (w *Writer) addFile(zw *zip.Writer, name string) error {
	src, err := os.Open(filepath.Join(w.outDir, name))
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer src.Close()

	dst, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: archiveEpoch,
	})
	if err != nil {
		return fmt.Errorf("add %s to archive: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("compress %s: %w", name, err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

var (
	tradeHeader           = []string{"Trade_ID", "Scenario", "Trade_Date", "Trader", "Desk", "Instrument", "Asset_Class", "Quantity", "Price", "Currency", "Counterparty", "Book", "Notes"}
	positionHeader        = []string{"Position_ID", "Trade_ID", "Snapshot", "Valuation_Date", "Quantity", "Market_Value", "Book"}
	settlementHeader      = []string{"Settlement_ID", "Trade_ID", "Settlement_Date", "Quantity", "Currency", "Amount", "Settlement_Status", "Fail_Reason", "Custodian"}
	corporateActionHeader = []string{"CA_ID", "Instrument", "CA_Type", "Effective_Date", "Notes"}
	breakHeader           = []string{"Break_ID", "Trade_ID", "Settlement_ID", "Break_Type", "Break_Reason", "Detected_Date", "Status", "Assigned_To", "Severity"}
	ticketHeader          = []string{"Ticket_ID", "Linked_Break", "System", "Priority", "Summary", "Description", "Created_On", "Status", "Assigned_To"}
	changeHeader          = []string{"Change_ID", "Change_Date", "Description", "Impact", "Related_System", "Status"}
	auditHeader           = []string{"Audit_ID", "Entity_ID", "Action", "User", "Timestamp", "Notes"}
	relationshipHeader    = []string{"Source", "Target", "Type"}
)

func tradeRows(trades []dataset.Trade) [][]string {
	rows := make([][]string, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, []string{
			string(t.ID),
			string(t.Scenario),
			t.TradeDate.Format(dataset.TimestampLayout),
			t.Trader,
			t.Desk,
			t.Instrument,
			t.AssetClass,
			strconv.FormatInt(t.Quantity, 10),
			t.Price.StringFixed(2),
			t.Currency,
			t.Counterparty,
			t.Book,
			t.Notes,
		})
	}
	return rows
}

func positionRows(positions []dataset.Position) [][]string {
	rows := make([][]string, 0, len(positions))
	for _, p := range positions {
		rows = append(rows, []string{
			string(p.ID),
			string(p.TradeID),
			p.Snapshot,
			p.ValuationDate.Format(dataset.TimestampLayout),
			strconv.FormatInt(p.Quantity, 10),
			p.MarketValue.StringFixed(2),
			p.Book,
		})
	}
	return rows
}

func settlementRows(settlements []dataset.Settlement) [][]string {
	rows := make([][]string, 0, len(settlements))
	for _, s := range settlements {
		rows = append(rows, []string{
			string(s.ID),
			string(s.TradeID),
			s.SettlementDate.Format(dataset.TimestampLayout),
			strconv.FormatInt(s.Quantity, 10),
			s.Currency,
			s.Amount.StringFixed(2),
			s.Status,
			s.FailReason,
			s.Custodian,
		})
	}
	return rows
}

func corporateActionRows(actions []dataset.CorporateAction) [][]string {
	rows := make([][]string, 0, len(actions))
	for _, ca := range actions {
		rows = append(rows, []string{
			string(ca.ID),
			ca.Instrument,
			ca.Type,
			ca.EffectiveDate.Format(dataset.DateLayout),
			ca.Notes,
		})
	}
	return rows
}

func breakRows(breaks []dataset.Break) [][]string {
	rows := make([][]string, 0, len(breaks))
	for _, b := range breaks {
		rows = append(rows, []string{
			string(b.ID),
			string(b.TradeID),
			string(b.SettlementID),
			b.Type,
			b.Reason,
			b.DetectedAt.Format(dataset.TimestampLayout),
			b.Status,
			b.AssignedTo,
			b.Severity,
		})
	}
	return rows
}

func ticketRows(tickets []dataset.IncidentTicket) [][]string {
	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, []string{
			string(t.ID),
			string(t.BreakID),
			t.System,
			t.Priority,
			t.Summary,
			t.Description,
			t.CreatedAt.Format(dataset.TimestampLayout),
			t.Status,
			t.AssignedTo,
		})
	}
	return rows
}

func changeRows(changes []dataset.ChangeTicket) [][]string {
	rows := make([][]string, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, []string{
			string(c.ID),
			c.Date.Format(dataset.DateLayout),
			c.Description,
			c.Impact,
			c.RelatedSystem,
			c.Status,
		})
	}
	return rows
}

func auditRows(entries []dataset.AuditEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, a := range entries {
		rows = append(rows, []string{
			string(a.ID),
			string(a.EntityID),
			a.Action,
			a.User,
			a.Timestamp.Format(dataset.TimestampLayout),
			a.Notes,
		})
	}
	return rows
}

func relationshipRows(rels []dataset.Relationship) [][]string {
	rows := make([][]string, 0, len(rels))
	for _, r := range rels {
		rows = append(rows, []string{r.Source, r.Target, string(r.Type)})
	}
	return rows
}
