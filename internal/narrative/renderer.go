package narrative

import (
	"fmt"
	"strings"
	"time"

	"gpm-datagen/internal/dataset"
)

// Renderer turns a sampled break and its trade into free-text narrative.
// It is deliberately a pure templating surface so alternate narrative
// styles can be swapped in for testing.
type Renderer interface {
	EmailThread(b dataset.Break, t dataset.Trade, ticketRef string) string
	ChatThread(b dataset.Break, t dataset.Trade, ticketRef string) string
}

// OpsRenderer renders the default back-office style: an escalation email
// thread with a forwarded custodian reply, and an ops chat transcript.
// Timestamps are fixed offsets from the trade time so the detection and
// follow-up portions of a thread stay internally consistent.
type OpsRenderer struct{}

// NewOpsRenderer constructs the default renderer.
func NewOpsRenderer() *OpsRenderer {
	return &OpsRenderer{}
}

func (r *OpsRenderer) EmailThread(b dataset.Break, t dataset.Trade, ticketRef string) string {
	t0 := t.TradeDate
	subject := fmt.Sprintf("[Action Required] Settlement Break %s for %s", b.ID, t.ID)

	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("From: %s@bank.com\n", t.Trader))
	builder.WriteString("To: gpm_ops@bank.com\n")
	builder.WriteString("CC: staticdata@bank.com,custody@bank.com,it_support@bank.com\n")
	builder.WriteString(fmt.Sprintf("Date: %s\n", t0.Format(dataset.TimestampLayout)))
	builder.WriteString(fmt.Sprintf("Subject: %s\n\n", subject))
	builder.WriteString(fmt.Sprintf(
		"Team,\n\nWe have a settlement failure for trade %s (%s). Reason: %s. This affects client P&L reporting and may impact T+1 regulatory submission. Please advise corrective action and timeline.\n\nRegards,\n%s\n\n",
		t.ID, t.Instrument, b.Reason, t.Trader,
	))
	builder.WriteString("-----Forwarded Message-----\n")
	builder.WriteString("From: custody@custodian.com\nTo: gpm_ops@bank.com\n")
	builder.WriteString(fmt.Sprintf("Date: %s\n", t0.Add(2*time.Hour).Format(dataset.TimestampLayout)))
	builder.WriteString(fmt.Sprintf("Subject: Re: %s\n\n", subject))
	builder.WriteString("Custodian: We see SSI mismatch. Provide updated instructions.\n\n")
	builder.WriteString(fmt.Sprintf("Ops Reply: Assigned to %s. ITSM ticket created: %s\n", b.AssignedTo, ticketRef))
	return builder.String()
}

func (r *OpsRenderer) ChatThread(b dataset.Break, t dataset.Trade, ticketRef string) string {
	t0 := t.TradeDate
	line := func(offset time.Duration, speaker, text string) string {
		return fmt.Sprintf("[%s] %s: %s\n", t0.Add(offset).Format(dataset.TimestampLayout), speaker, text)
	}

	builder := strings.Builder{}
	builder.WriteString(line(time.Hour, "ops_analyst", fmt.Sprintf("Created break %s for trade %s", b.ID, t.ID)))
	builder.WriteString(line(time.Hour+10*time.Minute, "custody_ops", fmt.Sprintf("Checking SSI registry for CP %s", t.Counterparty)))
	builder.WriteString(line(time.Hour+25*time.Minute, "it_support", fmt.Sprintf("Observed MQ lag; creating ticket %s", ticketRef)))
	builder.WriteString(line(2*time.Hour, "ops_lead", fmt.Sprintf("If not resolved within SLA (%s), escalate to Treasury", b.Severity)))
	return builder.String()
}

var _ Renderer = (*OpsRenderer)(nil)
