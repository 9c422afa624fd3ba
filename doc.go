/*
Package fundamentals is a tour of Go language fundamentals, one small
demonstration at a time.

# Overview

Each demonstration is a DemoFunc: a function that writes human-readable text
to an io.Writer. They share no state and can run alone or in sequence.
The fundamentals command runs them all in order.

	err := fundamentals.RunAll(ctx, os.Stdout, logger, fundamentals.Demos(fundamentals.DefaultSettings()))

# Topics

Values and records:
  - ShowVariables, ShowBasicTypes, ShowCollections
  - Person and the Describable interface
  - Status, a closed sum type matched with a type switch

Control flow and errors:
  - ShowControlFlow: if/else, loop with a result, while-style and range loops
  - ParseNumber: failure as a returned error, printed by the caller
  - ClassifyOptional: presence and guard conditions on a *int
  - ReadText: fs.ErrNotExist and ErrInvalidText, both printed and recovered

Functions and sequences:
  - AddOne and Counter closures
  - Map, Filter and Range over iter.Seq
  - Sum, Longest and the generic PrintElements

Ownership and concurrency:
  - Box: a heap-allocated value behind a pointer
  - Shared: an explicitly reference-counted value with a release callback
  - RunConcurrently: one errgroup worker, joined before returning

# Composition

DemoFunc follows the same decorator pattern as the rest of the package's
function types:

	demo := fundamentals.DemoFunc(fundamentals.ShowSum).
	    WithTitle("合計").
	    Recover("sum").
	    WithLogging(logger, "sum")

Testing a demonstration needs no mocks, only a buffer:

	var buf bytes.Buffer
	_ = fundamentals.ShowSum(context.Background(), &buf)
	// buf.String() == "合計: 15\n"
*/
package fundamentals
