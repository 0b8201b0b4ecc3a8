package app

import (
	"github.com/rs/zerolog"

	"gpm-datagen/internal/config"
	"gpm-datagen/internal/generate"
	"gpm-datagen/internal/narrative"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logger.With().Str("component", "app").Logger()}
}

// GenerateOptions hold parameters for the generate command.
type GenerateOptions struct {
	OutDir      string
	ArchivePath string
	Seed        *int64
	Trades      int
	SkipArchive bool
}

// PreviewOptions configure the preview command.
type PreviewOptions struct {
	Seed   *int64
	Trades int
}

// ChartOptions configure summary chart rendering.
type ChartOptions struct {
	StatusPNGPath   string
	ScenarioPNGPath string
	Seed            *int64
}

// LoadOptions configure the database load.
type LoadOptions struct {
	DSN  string
	Seed *int64
}

// buildParams resolves generation parameters from config plus CLI
// overrides.
func (a *App) buildParams(seed *int64, trades int) generate.Params {
	g := a.Config.Generator
	params := generate.Params{
		Seed:               g.Seed,
		Trades:             g.Trades,
		Settlements:        g.Settlements,
		Breaks:             g.Breaks,
		IncidentTickets:    g.IncidentTickets,
		ChangeTickets:      g.ChangeTickets,
		AuditEntries:       g.AuditEntries,
		CorporateActions:   g.CorporateActions,
		EmailThreads:       g.EmailThreads,
		ChatThreads:        g.ChatThreads,
		CorrectionProb:     g.CorrectionProb,
		SettlementLinkProb: g.SettlementLinkProb,
		Window: generate.Window{
			Start: g.WindowStart,
			End:   g.WindowEnd,
		},
	}
	if seed != nil {
		params.Seed = *seed
	}
	if trades > 0 {
		params.Trades = trades
		if params.Settlements > trades {
			params.Settlements = trades
		}
	}
	return params
}

// newGenerator wires the default narrative renderer into a generator.
func (a *App) newGenerator(params generate.Params) *generate.Generator {
	return generate.New(params, narrative.NewOpsRenderer(), a.Logger)
}
