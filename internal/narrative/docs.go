package narrative

// Static procedural and policy documents. Fixed content, independent of
// generation parameters; emitted unconditionally alongside the dataset.

// SOP returns the break-handling standard operating procedure.
func SOP() string {
	return `
SOP: GPM Break Handling - Key Steps
1. Detection: Automated reconciliation at T+0 flags exceptions in ReconciliationEngine.
2. Classification: Break types include Cash_Break, Quantity_Mismatch, SSI_Issue, CA_Mismatch, Others.
3. Assignment: Breaks auto-route to GPM queue; critical ones assigned to GPM_Lead.
4. Resolution: Engage StaticData, CustodyOps, or IT (MQGateway) depending on root cause.
5. Escalation: SLA breaches escalate to Treasury and Compliance; ITSM tickets must include RCA.
`
}

// SLA returns the break-resolution service-level agreement.
func SLA() string {
	return `
SLA: GPM Breaks
- High severity: Resolve within 1 business hour.
- Medium severity: Resolve within T+1 business day.
- Low severity: Resolve within T+3 business days.
- ITSM tickets created by GPM must include Root Cause Analysis prior to closure.
`
}
