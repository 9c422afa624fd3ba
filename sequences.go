package fundamentals

import (
	"context"
	"fmt"
	"io"
	"iter"
	"slices"
)

// ============================================================================
// Closures
// ============================================================================

// AddOne returns x + 1.
var AddOne = func(x int) int { return x + 1 }

// Counter returns a closure that yields 1, 2, 3, ... on successive calls.
func Counter() func() int {
	count := 0
	return func() int {
		count++
		return count
	}
}

// ShowClosures prints a stateless and a stateful closure.
func ShowClosures(_ context.Context, w io.Writer) error {
	fmt.Fprintf(w, "クロージャ結果: %d\n", AddOne(5))

	next := Counter()
	fmt.Fprintf(w, "カウンター: %d %d %d\n", next(), next(), next())
	return nil
}

// ============================================================================
// Iterators
// ============================================================================

// Map transforms each element of seq lazily.
func Map[T, U any](seq iter.Seq[T], transform func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Filter keeps only elements matching the predicate, lazily.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) && !yield(v) {
				return
			}
		}
	}
}

// DoubleAndFilter doubles every element and keeps the results above 5.
func DoubleAndFilter(xs []int) []int {
	doubled := Map(slices.Values(xs), func(x int) int { return x * 2 })
	return slices.Collect(Filter(doubled, func(x int) bool { return x > 5 }))
}

// ShowIterators prints the doubled-and-filtered sequence.
func ShowIterators(_ context.Context, w io.Writer) error {
	fmt.Fprintf(w, "処理後の数字: %v\n", DoubleAndFilter([]int{1, 2, 3, 4, 5}))
	return nil
}

// Range returns the integers 0 through n-1, produced on demand.
// Each range over the returned sequence starts again from 0.
func Range(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// ShowLazyRange consumes Range(5).
func ShowLazyRange(_ context.Context, w io.Writer) error {
	for v := range Range(5) {
		fmt.Fprintf(w, "範囲: %d\n", v)
	}
	return nil
}

// Sum returns the arithmetic sum of xs; an empty slice sums to zero.
func Sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

// ShowSum prints the sum of 1 through 5.
func ShowSum(_ context.Context, w io.Writer) error {
	fmt.Fprintf(w, "合計: %d\n", Sum([]int{1, 2, 3, 4, 5}))
	return nil
}

// PrintElements writes each element on its own line using its default format.
func PrintElements[S ~[]E, E any](w io.Writer, items S) {
	for _, item := range items {
		fmt.Fprintf(w, "%v\n", item)
	}
}

// ShowGenericPrinter prints slices of three different element types with the
// same generic function.
func ShowGenericPrinter(_ context.Context, w io.Writer) error {
	PrintElements(w, []int{1, 2, 3})
	PrintElements(w, []string{"りんご", "みかん"})
	PrintElements(w, []Status{Active{}, Failure{Code: 404, Message: "見つかりません"}})
	return nil
}
