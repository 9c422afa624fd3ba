package fundamentals

import (
	"context"
	"fmt"
	"io"
	"strconv"
)

// CompareToFive reports how n relates to 5.
func CompareToFive(n int) string {
	if n < 5 {
		return "5より小さい"
	} else if n > 5 {
		return "5より大きい"
	}
	return "5と等しい"
}

// LoopUntil counts up from zero and breaks out of an unconditional loop
// carrying the counter once it reaches limit. A limit below 1 yields 1.
func LoopUntil(limit int) int {
	counter := 0
	for {
		counter++
		if counter >= limit {
			return counter
		}
	}
}

// ShowControlFlow prints an if/else chain, a loop that yields a value,
// a while-style loop and a range loop.
func ShowControlFlow(_ context.Context, w io.Writer) error {
	fmt.Fprintln(w, CompareToFive(7))
	fmt.Fprintf(w, "ループ結果: %d\n", LoopUntil(10))

	n := 0
	for n < 5 {
		fmt.Fprintf(w, "n = %d\n", n)
		n++
	}

	for i := range 5 {
		fmt.Fprintf(w, "i = %d\n", i)
	}
	return nil
}

// ParseNumber converts base-10 text to an int.
func ParseNumber(s string) (int, error) {
	return strconv.Atoi(s)
}

// ShowParse parses a valid and an invalid number. Failures are printed, not
// returned.
func ShowParse(_ context.Context, w io.Writer) error {
	for _, input := range []string{"42", "abc"} {
		num, err := ParseNumber(input)
		if err != nil {
			fmt.Fprintf(w, "パース失敗: %v\n", err)
			continue
		}
		fmt.Fprintf(w, "パース成功: %d\n", num)
	}
	return nil
}

// ClassifyOptional branches on presence, then on whether the value exceeds 5.
func ClassifyOptional(v *int) string {
	switch {
	case v == nil:
		return "値がありません"
	case *v > 5:
		return fmt.Sprintf("大きい値: %d", *v)
	default:
		return fmt.Sprintf("小さい値: %d", *v)
	}
}

// ShowOptional classifies a large value, a small value and an absent one.
func ShowOptional(_ context.Context, w io.Writer) error {
	large, small := 42, 3
	for _, v := range []*int{&large, &small, nil} {
		fmt.Fprintln(w, ClassifyOptional(v))
	}
	return nil
}

// Longest returns x when it is strictly longer than y in bytes, otherwise y.
func Longest(x, y string) string {
	if len(x) > len(y) {
		return x
	}
	return y
}

// ShowLongest prints the longer of an ASCII and a Japanese greeting.
func ShowLongest(_ context.Context, w io.Writer) error {
	fmt.Fprintf(w, "長い方の文字列: %s\n", Longest("Hello", "こんにちは"))
	return nil
}
