package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"

	"gpm-datagen/internal/dataset"
)

// Chart regenerates the dataset in memory and renders summary bar charts:
// settlement status mix and failed settlements per scenario.
func (a *App) Chart(ctx context.Context, opts ChartOptions) error {
	if opts.StatusPNGPath == "" && opts.ScenarioPNGPath == "" {
		return errors.New("at least one of --status-png or --scenario-png must be provided")
	}

	params := a.buildParams(opts.Seed, 0)
	ds, err := a.newGenerator(params).Run()
	if err != nil {
		return err
	}

	if opts.StatusPNGPath != "" {
		bars := statusBars(ds)
		if err := a.renderBarChart(opts.StatusPNGPath, "Settlement Status", bars); err != nil {
			return err
		}
	}

	if opts.ScenarioPNGPath != "" {
		bars := scenarioFailureBars(ds)
		if err := a.renderBarChart(opts.ScenarioPNGPath, "Failed Settlements by Scenario", bars); err != nil {
			return err
		}
	}

	return nil
}

func statusBars(ds *dataset.Dataset) []chart.Value {
	counts := make(map[string]int)
	for _, s := range ds.Settlements {
		counts[s.Status]++
	}
	statuses := []string{"Confirmed", "Pending", "Failed"}
	bars := make([]chart.Value, 0, len(statuses))
	for _, status := range statuses {
		bars = append(bars, chart.Value{Label: status, Value: float64(counts[status])})
	}
	return bars
}

func scenarioFailureBars(ds *dataset.Dataset) []chart.Value {
	scenarioByTrade := make(map[dataset.TradeID]dataset.ScenarioID, len(ds.Trades))
	for _, t := range ds.Trades {
		scenarioByTrade[t.ID] = t.Scenario
	}
	counts := make(map[dataset.ScenarioID]int)
	for _, s := range ds.Settlements {
		if s.Status == "Failed" {
			counts[scenarioByTrade[s.TradeID]]++
		}
	}
	bars := make([]chart.Value, 0, len(ds.Scenarios))
	for _, scenario := range ds.Scenarios {
		bars = append(bars, chart.Value{Label: string(scenario.ID), Value: float64(counts[scenario.ID])})
	}
	return bars
}

func (a *App) renderBarChart(path, title string, bars []chart.Value) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    a.Config.Chart.Width,
		Height:   a.Config.Chart.Height,
		BarWidth: 80,
		Bars:     bars,
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer file.Close()

	if err := graph.Render(chart.PNG, file); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	a.Logger.Info().Str("png", path).Str("title", title).Msg("chart rendered")
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
