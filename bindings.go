package fundamentals

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ============================================================================
// IO Bindings
// ============================================================================

// WriteFunc is a functional binding for io.Writer.
// Demonstrations write through it so output sinks can be swapped inline.
//
// Example:
//
//	var buf bytes.Buffer
//	w := WriteFunc(buf.Write)
type WriteFunc func(p []byte) (n int, err error)

// Write implements io.Writer.
func (f WriteFunc) Write(p []byte) (int, error) {
	return f(p)
}

// Synchronized serializes writes so concurrent producers never interleave
// within a single Write call.
func Synchronized(w io.Writer) WriteFunc {
	var mu sync.Mutex
	return func(p []byte) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		return w.Write(p)
	}
}

// ============================================================================
// Describable Bindings
// ============================================================================

// DescribeFunc is a functional binding for Describable.
//
// Example:
//
//	label := DescribeFunc(person.Describe).WithPrefix("人物の説明: ")
type DescribeFunc func() string

// Describe implements Describable.
func (f DescribeFunc) Describe() string {
	return f()
}

// String implements fmt.Stringer.
func (f DescribeFunc) String() string {
	return f()
}

// WithPrefix adds a prefix.
func (f DescribeFunc) WithPrefix(prefix string) DescribeFunc {
	return func() string {
		return prefix + f()
	}
}

// ============================================================================
// Demonstration Bindings
// ============================================================================

// DemoFunc is a single demonstration. It writes human-readable text to w
// and returns an error only when it cannot finish.
//
// Example:
//
//	demo := DemoFunc(ShowSum).
//	    WithTitle("合計").
//	    Recover("sum").
//	    WithLogging(logger, "sum")
type DemoFunc func(ctx context.Context, w io.Writer) error

// Run invokes the demonstration.
func (f DemoFunc) Run(ctx context.Context, w io.Writer) error {
	return f(ctx, w)
}

// Empty returns a demonstration that prints nothing (identity).
// It starts a chain built with Compose.
func (f DemoFunc) Empty() DemoFunc {
	return func(context.Context, io.Writer) error { return nil }
}

// Compose runs this demonstration, then next. The first error stops the chain.
func (f DemoFunc) Compose(next DemoFunc) DemoFunc {
	return func(ctx context.Context, w io.Writer) error {
		if err := f(ctx, w); err != nil {
			return err
		}
		return next(ctx, w)
	}
}

// Before runs a function before the demonstration.
func (f DemoFunc) Before(before func(io.Writer)) DemoFunc {
	return func(ctx context.Context, w io.Writer) error {
		before(w)
		return f(ctx, w)
	}
}

// WithTitle prints a section heading before the demonstration.
func (f DemoFunc) WithTitle(title string) DemoFunc {
	return f.Before(func(w io.Writer) {
		fmt.Fprintf(w, "== %s ==\n", title)
	})
}

// WithLogging logs the start, end and outcome of the demonstration.
func (f DemoFunc) WithLogging(logger *zap.Logger, name string) DemoFunc {
	return func(ctx context.Context, w io.Writer) error {
		log := logger.With(zap.String("demo", name))
		log.Debug("demo started")
		start := time.Now()
		err := f(ctx, w)
		if err != nil {
			log.Error("demo failed", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
			return err
		}
		log.Debug("demo completed", zap.Duration("elapsed", time.Since(start)))
		return nil
	}
}

// Recover converts a panic inside the demonstration into an error.
func (f DemoFunc) Recover(name string) DemoFunc {
	return func(ctx context.Context, w io.Writer) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("demo %s panicked: %v", name, r)
			}
		}()
		return f(ctx, w)
	}
}
