package strarray

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Runner executes element-wise operations on arrays.
type Runner struct {
	cfg Config
}

// NewRunner returns a Runner scheduling work according to cfg.
func NewRunner(cfg Config) *Runner {
	cfg = cfg.normalized()
	tracer().Debugf("runner: %d workers, chunks of %d", cfg.Workers, cfg.ChunkSize)
	return &Runner{cfg: cfg}
}

// forEach calls fn for every index in [0, n). Indices are handed out in
// chunks to at most cfg.Workers goroutines. The first error cancels the
// remaining chunks and is returned.
func (r *Runner) forEach(ctx context.Context, n int, fn func(i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for lo := 0; lo < n; lo += r.cfg.ChunkSize {
		if gctx.Err() != nil {
			break
		}
		hi := min(lo+r.cfg.ChunkSize, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
