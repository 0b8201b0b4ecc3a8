package generate

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"gpm-datagen/internal/dataset"
	"gpm-datagen/internal/narrative"
)

// Params fixes every knob of a generation run. Two runs with equal Params
// produce identical datasets.
type Params struct {
	Seed int64

	Trades           int
	Settlements      int
	Breaks           int
	IncidentTickets  int
	ChangeTickets    int
	AuditEntries     int
	CorporateActions int
	EmailThreads     int
	ChatThreads      int

	CorrectionProb     float64
	SettlementLinkProb float64

	Window Window
}

// DefaultParams mirrors the canonical compact PoC dataset: 50 trades over
// the first three quarters of 2025, seed 2025.
func DefaultParams() Params {
	return Params{
		Seed:               2025,
		Trades:             50,
		Settlements:        40,
		Breaks:             30,
		IncidentTickets:    25,
		ChangeTickets:      8,
		AuditEntries:       50,
		CorporateActions:   10,
		EmailThreads:       10,
		ChatThreads:        10,
		CorrectionProb:     0.2,
		SettlementLinkProb: 0.7,
		Window: Window{
			Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// Generator runs the generation stages strictly in sequence over a single
// seeded randomness source. Later stages only read collections earlier
// stages materialized; nothing is mutated after emission.
type Generator struct {
	params   Params
	renderer narrative.Renderer
	logger   zerolog.Logger
}

// New constructs a Generator.
func New(params Params, renderer narrative.Renderer, logger zerolog.Logger) *Generator {
	return &Generator{
		params:   params,
		renderer: renderer,
		logger:   logger.With().Str("component", "generator").Logger(),
	}
}

// Run executes every stage and returns the validated dataset.
func (g *Generator) Run() (*dataset.Dataset, error) {
	p := g.params
	rng := rand.New(rand.NewSource(p.Seed))

	ds := &dataset.Dataset{Scenarios: dataset.Catalog()}

	ds.Trades = Trades(rng, p.Trades, p.Window)
	ds.Positions = Positions(rng, ds.Trades, p.CorrectionProb)
	ds.Settlements = Settlements(rng, ds.Trades, p.Settlements)
	ds.CorporateActions = CorporateActions(rng, p.CorporateActions, p.Window)
	ds.Breaks = Breaks(rng, p.Breaks, ds.Trades, ds.Settlements, p.SettlementLinkProb)
	ds.Tickets = IncidentTickets(rng, p.IncidentTickets, ds.Breaks, p.Window)
	ds.ChangeTickets = ChangeTickets(rng, p.ChangeTickets, p.Window)
	ds.AuditTrail = AuditTrail(rng, p.AuditEntries, ds.Breaks, p.Window)

	tradesByID := make(map[dataset.TradeID]dataset.Trade, len(ds.Trades))
	for _, t := range ds.Trades {
		tradesByID[t.ID] = t
	}
	ds.Emails = g.threads(rng, p.EmailThreads, ds.Breaks, tradesByID, g.renderer.EmailThread)
	ds.Chats = g.threads(rng, p.ChatThreads, ds.Breaks, tradesByID, g.renderer.ChatThread)

	ds.Relationships = Relationships(ds)

	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("generated dataset failed validation: %w", err)
	}

	g.logger.Info().
		Int64("seed", p.Seed).
		Int("trades", len(ds.Trades)).
		Int("positions", len(ds.Positions)).
		Int("settlements", len(ds.Settlements)).
		Int("breaks", len(ds.Breaks)).
		Int("relationships", len(ds.Relationships)).
		Msg("dataset generated")

	return ds, nil
}

// threads renders n narrative threads, each sampling a random break and its
// trade. The cited ITSM ticket number is drawn from the ticket id range and
// is textual colour only, not a structural reference.
func (g *Generator) threads(
	rng *rand.Rand,
	n int,
	breaks []dataset.Break,
	trades map[dataset.TradeID]dataset.Trade,
	render func(dataset.Break, dataset.Trade, string) string,
) []string {
	threads := make([]string, 0, n)
	for i := 0; i < n; i++ {
		b := breaks[rng.Intn(len(breaks))]
		ticketRef := fmt.Sprintf("ITSM%d", 7000+rng.Intn(26))
		threads = append(threads, render(b, trades[b.TradeID], ticketRef))
	}
	return threads
}
