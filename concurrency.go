package fundamentals

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// ConcurrencyOptions parameterizes RunConcurrently.
type ConcurrencyOptions struct {
	// Iterations is the number of lines each side prints.
	Iterations int
	// SpawnedDelay is the pause after each line of the spawned worker.
	SpawnedDelay time.Duration
	// MainDelay is the pause after each line of the caller.
	MainDelay time.Duration
	// Step, when set, runs before each spawned iteration. A non-nil error
	// stops the worker and is returned from RunConcurrently.
	Step func(i int) error
}

// DefaultConcurrencyOptions returns five iterations with 1ms and 2ms delays.
func DefaultConcurrencyOptions() ConcurrencyOptions {
	return ConcurrencyOptions{
		Iterations:   5,
		SpawnedDelay: time.Millisecond,
		MainDelay:    2 * time.Millisecond,
	}
}

// RunConcurrently spawns one worker that prints numbered lines while the
// caller prints its own, then waits for the worker. It returns the number of
// iterations the worker completed and the worker's error, if any.
// Output order between the two sides is unspecified.
func RunConcurrently(ctx context.Context, w io.Writer, opts ConcurrencyOptions) (int, error) {
	out := Synchronized(w)
	g, gctx := errgroup.WithContext(ctx)

	var completed atomic.Int64
	g.Go(func() error {
		for i := 1; i <= opts.Iterations; i++ {
			if opts.Step != nil {
				if err := opts.Step(i); err != nil {
					return fmt.Errorf("spawned iteration %d: %w", i, err)
				}
			}
			fmt.Fprintf(out, "スレッドから: %d\n", i)
			completed.Add(1)
			if err := sleep(gctx, opts.SpawnedDelay); err != nil {
				return err
			}
		}
		return nil
	})

	for i := 1; i <= opts.Iterations; i++ {
		fmt.Fprintf(out, "メインから: %d\n", i)
		if sleep(gctx, opts.MainDelay) != nil {
			break
		}
	}

	err := g.Wait()
	return int(completed.Load()), err
}

// ShowConcurrency returns a demonstration running RunConcurrently with opts.
func ShowConcurrency(opts ConcurrencyOptions) DemoFunc {
	return func(ctx context.Context, w io.Writer) error {
		n, err := RunConcurrently(ctx, w, opts)
		if err != nil {
			return fmt.Errorf("spawned worker: %w", err)
		}
		fmt.Fprintf(w, "スレッド完了: %d回\n", n)
		return nil
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
