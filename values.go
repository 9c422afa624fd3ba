package fundamentals

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// Color is an RGB triple.
type Color struct {
	R, G, B int
}

// ShowVariables prints a reassigned variable next to a constant.
func ShowVariables(_ context.Context, w io.Writer) error {
	mutable := 1
	before := mutable
	mutable = 2
	const immutable = 3

	fmt.Fprintf(w, "可変: %d -> %d\n", before, mutable)
	fmt.Fprintf(w, "不変: %d\n", immutable)
	return nil
}

// ShowBasicTypes prints examples of primitive and compound value types.
func ShowBasicTypes(_ context.Context, w io.Writer) error {
	var (
		integer   int32   = 42
		float     float64 = 3.14
		boolean           = true
		character         = '字'
	)

	tuple := struct {
		A int32
		B float64
		C rune
	}{1, 2.0, '3'}
	array := [5]int32{1, 2, 3, 4, 5}
	color := Color{R: 255, G: 128, B: 0}

	fmt.Fprintf(w, "整数: %d\n", integer)
	fmt.Fprintf(w, "浮動小数点: %g\n", float)
	fmt.Fprintf(w, "真偽値: %t\n", boolean)
	fmt.Fprintf(w, "文字: %c\n", character)
	fmt.Fprintf(w, "タプル: (%d, %.1f, %q)\n", tuple.A, tuple.B, tuple.C)
	fmt.Fprintf(w, "配列: %v\n", array)
	fmt.Fprintf(w, "色: %+v\n", color)
	return nil
}

// ShowCollections builds a slice, a string, a map and a set, then prints
// them. Map and set contents are printed in key order.
func ShowCollections(_ context.Context, w io.Writer) error {
	var vec []int
	vec = append(vec, 1)
	vec = append(vec, 2)

	var sb strings.Builder
	sb.WriteString("こんにちは")
	sb.WriteString("、世界！")

	scores := map[string]int{}
	scores["青チーム"] = 10
	scores["赤チーム"] = 20

	unique := map[int]struct{}{}
	unique[1] = struct{}{}
	unique[2] = struct{}{}
	unique[1] = struct{}{}

	fmt.Fprintf(w, "ベクター: %v\n", vec)
	fmt.Fprintf(w, "文字列: %s\n", sb.String())
	for _, team := range slices.Sorted(maps.Keys(scores)) {
		fmt.Fprintf(w, "%s: %d\n", team, scores[team])
	}
	fmt.Fprintf(w, "セット: %v\n", slices.Sorted(maps.Keys(unique)))
	return nil
}
