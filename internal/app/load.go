package app

import (
	"context"
	"errors"

	"gpm-datagen/internal/storage"
)

// Load regenerates the dataset from the configured seed and pushes it into
// PostgreSQL for downstream consumers.
func (a *App) Load(ctx context.Context, opts LoadOptions) error {
	if opts.DSN != "" {
		a.Config.Database.DSN = opts.DSN
	}
	if a.Config.Database.DSN == "" {
		return errors.New("database not configured; cannot load")
	}

	params := a.buildParams(opts.Seed, 0)
	ds, err := a.newGenerator(params).Run()
	if err != nil {
		return err
	}

	pool, err := storage.NewPool(ctx, a.Config.Database)
	if err != nil {
		return err
	}
	loader := storage.NewLoader(pool)
	defer loader.Close()

	if err := loader.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := loader.Load(ctx, ds); err != nil {
		return err
	}

	counts, err := loader.Counts(ctx)
	if err != nil {
		return err
	}
	event := a.Logger.Info()
	for table, count := range counts {
		event = event.Int64(table, count)
	}
	event.Msg("dataset loaded")
	return nil
}
