package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gpm-datagen/internal/app"
)

var (
	previewSeed   int64
	previewTrades int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate in memory and print a dataset summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		if previewTrades < 0 {
			return fmt.Errorf("--trades cannot be negative")
		}

		opts := app.PreviewOptions{
			Seed:   seedOverride(cmd, previewSeed),
			Trades: previewTrades,
		}

		return getApp().Preview(cmd.Context(), opts)
	},
}

func init() {
	previewCmd.Flags().Int64Var(&previewSeed, "seed", 0, "Random seed (defaults to config)")
	previewCmd.Flags().IntVar(&previewTrades, "trades", 0, "Number of trades (defaults to config)")
}
