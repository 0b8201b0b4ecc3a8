package app

import (
	"context"

	"gpm-datagen/internal/archive"
)

// Generate runs every generation stage and writes the dataset, bundling
// the output directory into a zip archive unless skipped.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	params := a.buildParams(opts.Seed, opts.Trades)

	ds, err := a.newGenerator(params).Run()
	if err != nil {
		return err
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = a.Config.Output.Dir
	}
	archivePath := ""
	if !opts.SkipArchive {
		archivePath = opts.ArchivePath
		if archivePath == "" {
			archivePath = a.Config.Output.Archive
		}
	}

	writer := archive.NewWriter(outDir, archivePath, a.Logger)
	if err := writer.Write(ds); err != nil {
		return err
	}

	a.Logger.Info().
		Str("out_dir", outDir).
		Str("archive", archivePath).
		Int64("seed", params.Seed).
		Msg("dataset written")
	return nil
}
