package cli

import (
	"github.com/spf13/cobra"

	"gpm-datagen/internal/app"
)

var (
	loadDSN  string
	loadSeed int64
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the generated dataset into PostgreSQL",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.LoadOptions{
			DSN:  loadDSN,
			Seed: seedOverride(cmd, loadSeed),
		}

		return getApp().Load(cmd.Context(), opts)
	},
}

func init() {
	loadCmd.Flags().StringVar(&loadDSN, "dsn", "", "PostgreSQL DSN (defaults to config)")
	loadCmd.Flags().Int64Var(&loadSeed, "seed", 0, "Random seed (defaults to config)")
}
