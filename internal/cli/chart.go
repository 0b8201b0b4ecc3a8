package cli

import (
	"github.com/spf13/cobra"

	"gpm-datagen/internal/app"
)

var (
	chartStatusPNG   string
	chartScenarioPNG string
	chartSeed        int64
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render summary PNG charts for the generated dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.ChartOptions{
			StatusPNGPath:   chartStatusPNG,
			ScenarioPNGPath: chartScenarioPNG,
			Seed:            seedOverride(cmd, chartSeed),
		}

		return getApp().Chart(cmd.Context(), opts)
	},
}

func init() {
	chartCmd.Flags().StringVar(&chartStatusPNG, "status-png", "", "Path to write the settlement status chart")
	chartCmd.Flags().StringVar(&chartScenarioPNG, "scenario-png", "", "Path to write the per-scenario failure chart")
	chartCmd.Flags().Int64Var(&chartSeed, "seed", 0, "Random seed (defaults to config)")
}
