package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gpm-datagen/internal/app"
)

var (
	generateOut       string
	generateArchive   string
	generateSeed      int64
	generateTrades    int
	generateNoArchive bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dataset and bundle it into a zip archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		if generateTrades < 0 {
			return fmt.Errorf("--trades cannot be negative")
		}

		opts := app.GenerateOptions{
			OutDir:      generateOut,
			ArchivePath: generateArchive,
			Seed:        seedOverride(cmd, generateSeed),
			Trades:      generateTrades,
			SkipArchive: generateNoArchive,
		}

		return getApp().Generate(cmd.Context(), opts)
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Output directory (defaults to config)")
	generateCmd.Flags().StringVar(&generateArchive, "archive", "", "Archive path (defaults to config)")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed (defaults to config)")
	generateCmd.Flags().IntVar(&generateTrades, "trades", 0, "Number of trades (defaults to config)")
	generateCmd.Flags().BoolVar(&generateNoArchive, "no-archive", false, "Skip bundling the output directory")
}
