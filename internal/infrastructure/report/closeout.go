package report

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"
)

// Exporter writes an end-of-day artifact
type Exporter interface {
	Name() string
	Export(ctx context.Context) error
}

// RunCloseout runs every exporter concurrently and returns the first failure.
// Nil exporters are skipped.
func RunCloseout(ctx context.Context, exporters ...Exporter) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, exp := range exporters {
		if exp == nil {
			continue
		}
		exp := exp
		g.Go(func() error {
			if err := exp.Export(gctx); err != nil {
				return fmt.Errorf("%s: %w", exp.Name(), err)
			}
			log.Printf("Closeout: %s written", exp.Name())
			return nil
		})
	}

	return g.Wait()
}
