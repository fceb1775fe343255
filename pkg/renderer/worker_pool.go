package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/integrator"
	"golang.org/x/sync/errgroup"
)

// renderRows distributes image rows across the configured number of workers.
// Each worker writes only the rows it receives, so the buffer needs no locking.
func (rt *Raytracer) renderRows(ctx context.Context, img *Image, integ integrator.Integrator) ([]WorkerStats, error) {
	numWorkers := rt.config.workers()
	if numWorkers > rt.config.Height {
		numWorkers = rt.config.Height
	}

	stats := make([]WorkerStats, numWorkers)
	rows := make(chan int)

	group, gctx := errgroup.WithContext(ctx)

	// Producer
	group.Go(func() error {
		defer close(rows)
		for y := 0; y < rt.config.Height; y++ {
			select {
			case rows <- y:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for id := 0; id < numWorkers; id++ {
		ws := &stats[id]
		ws.ID = id
		group.Go(func() error {
			start := time.Now()
			defer func() { ws.RenderTime = time.Since(start) }()

			for y := range rows {
				if err := gctx.Err(); err != nil {
					return err
				}
				rt.renderRow(img, y, integ)
				ws.Rows++
				ws.Samples += rt.config.Width * rt.sampling.SamplesPerPixel
				rt.logger.Debugf("worker %d finished row %d", ws.ID, y)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInterrupted, err)
	}

	// A cancellation racing with the last row must still be reported
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInterrupted, err)
	}

	return stats, nil
}
