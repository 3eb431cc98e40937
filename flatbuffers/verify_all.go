package flatbuffers

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

// VerifyAll verifies independent buffers concurrently, each with its own
// Verifier and budgets. It returns the error of the first rejected buffer,
// annotated with its index, and stops starting new work once one fails or
// ctx is done. The buffers must not be written to while this runs.
func VerifyAll(ctx context.Context, bufs [][]byte, opts *VerifierOptions, fn VerifyFunc) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, buf := range bufs {
		i, buf := i, buf
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := Verify(buf, opts, fn); err != nil {
				return xerrors.Errorf("buffer %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}
