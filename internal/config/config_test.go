package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}

	if cfg.Generator.Seed != 2025 {
		t.Errorf("seed: got %d, want 2025", cfg.Generator.Seed)
	}
	if cfg.Generator.Trades != 50 {
		t.Errorf("trades: got %d, want 50", cfg.Generator.Trades)
	}
	if cfg.Generator.Settlements != 40 {
		t.Errorf("settlements: got %d, want 40", cfg.Generator.Settlements)
	}
	if cfg.Generator.CorrectionProb != 0.2 {
		t.Errorf("correction prob: got %v, want 0.2", cfg.Generator.CorrectionProb)
	}
	wantStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !cfg.Generator.WindowStart.Equal(wantStart) {
		t.Errorf("window start: got %v, want %v", cfg.Generator.WindowStart, wantStart)
	}
	if cfg.Output.Dir != "gpm_poc_compact" {
		t.Errorf("output dir: got %q", cfg.Output.Dir)
	}
	if cfg.Output.Archive != "gpm_poc_compact.zip" {
		t.Errorf("output archive: got %q", cfg.Output.Archive)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging level: got %q", cfg.Logging.Level)
	}
	if cfg.Database.ConnMaxLifetime != 30*time.Minute {
		t.Errorf("conn max lifetime: got %v", cfg.Database.ConnMaxLifetime)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("load defaults: %v", err)
		}
		return cfg
	}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero trades", func(c *Config) { c.Generator.Trades = 0 }, "generator.trades"},
		{"settlements exceed trades", func(c *Config) { c.Generator.Settlements = 99 }, "generator.settlements"},
		{"zero breaks", func(c *Config) { c.Generator.Breaks = 0 }, "generator.breaks"},
		{"correction prob out of range", func(c *Config) { c.Generator.CorrectionProb = 1.5 }, "correction_prob"},
		{"link prob negative", func(c *Config) { c.Generator.SettlementLinkProb = -0.1 }, "settlement_link_prob"},
		{"inverted window", func(c *Config) { c.Generator.WindowEnd = c.Generator.WindowStart }, "window_start"},
		{"empty output dir", func(c *Config) { c.Output.Dir = "" }, "output.dir"},
		{"bad chart dims", func(c *Config) { c.Chart.Width = 0 }, "chart"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}
