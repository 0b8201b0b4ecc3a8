package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"gpm-datagen/internal/logging"
)

// Config materialises application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Logging   logging.Config  `mapstructure:"logging"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Output    OutputConfig    `mapstructure:"output"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Chart     ChartConfig     `mapstructure:"chart"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// GeneratorConfig fixes every knob of a generation run. Same seed and
// counts must yield byte-identical output.
type GeneratorConfig struct {
	Seed             int64 `mapstructure:"seed"`
	Trades           int   `mapstructure:"trades"`
	Settlements      int   `mapstructure:"settlements"`
	Breaks           int   `mapstructure:"breaks"`
	IncidentTickets  int   `mapstructure:"incident_tickets"`
	ChangeTickets    int   `mapstructure:"change_tickets"`
	AuditEntries     int   `mapstructure:"audit_entries"`
	CorporateActions int   `mapstructure:"corporate_actions"`
	EmailThreads     int   `mapstructure:"email_threads"`
	ChatThreads      int   `mapstructure:"chat_threads"`

	CorrectionProb     float64 `mapstructure:"correction_prob"`
	SettlementLinkProb float64 `mapstructure:"settlement_link_prob"`

	WindowStart time.Time `mapstructure:"window_start"`
	WindowEnd   time.Time `mapstructure:"window_end"`
}

// OutputConfig names the output directory and archive path.
type OutputConfig struct {
	Dir     string `mapstructure:"dir"`
	Archive string `mapstructure:"archive"`
}

// DatabaseConfig encapsulates PostgreSQL connectivity for the loader.
type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// ChartConfig sets summary chart rendering dimensions.
type ChartConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GPMGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "gpmgen")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("generator.seed", int64(2025))
	v.SetDefault("generator.trades", 50)
	v.SetDefault("generator.settlements", 40)
	v.SetDefault("generator.breaks", 30)
	v.SetDefault("generator.incident_tickets", 25)
	v.SetDefault("generator.change_tickets", 8)
	v.SetDefault("generator.audit_entries", 50)
	v.SetDefault("generator.corporate_actions", 10)
	v.SetDefault("generator.email_threads", 10)
	v.SetDefault("generator.chat_threads", 10)
	v.SetDefault("generator.correction_prob", 0.2)
	v.SetDefault("generator.settlement_link_prob", 0.7)
	v.SetDefault("generator.window_start", "2025-01-01T00:00:00Z")
	v.SetDefault("generator.window_end", "2025-10-01T00:00:00Z")

	v.SetDefault("output.dir", "gpm_poc_compact")
	v.SetDefault("output.archive", "gpm_poc_compact.zip")

	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")

	v.SetDefault("chart.width", 1280)
	v.SetDefault("chart.height", 720)
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	g := c.Generator
	if g.Trades <= 0 {
		return fmt.Errorf("generator.trades must be greater than zero")
	}
	if g.Settlements < 0 || g.Settlements > g.Trades {
		return fmt.Errorf("generator.settlements must be between 0 and generator.trades")
	}
	if g.Breaks <= 0 {
		return fmt.Errorf("generator.breaks must be greater than zero")
	}
	if g.CorrectionProb < 0 || g.CorrectionProb > 1 {
		return fmt.Errorf("generator.correction_prob must be within [0,1]")
	}
	if g.SettlementLinkProb < 0 || g.SettlementLinkProb > 1 {
		return fmt.Errorf("generator.settlement_link_prob must be within [0,1]")
	}
	if !g.WindowStart.Before(g.WindowEnd) {
		return fmt.Errorf("generator.window_start must precede generator.window_end")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart dimensions must be positive")
	}
	return nil
}
