package fundamentals

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// ErrUnknownDemo is returned by Select for a name not in the registry.
var ErrUnknownDemo = errors.New("unknown demo")

// DefaultMissingFile is the path the file demonstration tries and fails to read.
const DefaultMissingFile = "does_not_exist.txt"

// Demo is a named, titled demonstration.
type Demo struct {
	Name  string
	Title string
	Run   DemoFunc
}

// Settings holds the few parameters demonstrations take.
type Settings struct {
	// FS is where the file demonstration reads from.
	FS fs.FS
	// MissingFile is the path the file demonstration reads.
	MissingFile string
	Concurrency ConcurrencyOptions
}

// DefaultSettings reads from the working directory and uses the literal
// parameters of every demonstration.
func DefaultSettings() Settings {
	return Settings{
		FS:          os.DirFS("."),
		MissingFile: DefaultMissingFile,
		Concurrency: DefaultConcurrencyOptions(),
	}
}

// Demos returns every demonstration in run order.
func Demos(s Settings) []Demo {
	return []Demo{
		{Name: "variables", Title: "変数と可変性", Run: ShowVariables},
		{Name: "collections", Title: "データ構造", Run: ShowCollections},
		{Name: "control-flow", Title: "制御構造", Run: ShowControlFlow},
		{Name: "status", Title: "列挙型とマッチ", Run: ShowStatus},
		{Name: "parse", Title: "Result型", Run: ShowParse},
		{Name: "optional", Title: "Option型とガード", Run: ShowOptional},
		{Name: "closures", Title: "クロージャ", Run: ShowClosures},
		{Name: "iterators", Title: "イテレータ", Run: ShowIterators},
		{Name: "basic-types", Title: "基本型の例", Run: ShowBasicTypes},
		{Name: "describable", Title: "トレイトの使用", Run: ShowDescribable},
		{Name: "longest", Title: "ライフタイム", Run: ShowLongest},
		{Name: "generic-printer", Title: "ジェネリクス", Run: ShowGenericPrinter},
		{Name: "file-read", Title: "ファイル読み込み", Run: ShowFileRead(s.FS, s.MissingFile)},
		{Name: "box", Title: "ボックス", Run: ShowBox},
		{Name: "shared", Title: "参照カウント", Run: ShowSharedOwnership},
		{Name: "lazy-range", Title: "遅延シーケンス", Run: ShowLazyRange},
		{Name: "concurrency", Title: "並行処理", Run: ShowConcurrency(s.Concurrency)},
		{Name: "sum", Title: "スライスの合計", Run: ShowSum},
	}
}

// Select returns the demos with the given names, in the order requested.
func Select(demos []Demo, names []string) ([]Demo, error) {
	byName := make(map[string]Demo, len(demos))
	for _, d := range demos {
		byName[d.Name] = d
	}

	selected := make([]Demo, 0, len(names))
	for _, name := range names {
		d, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
		}
		selected = append(selected, d)
	}
	return selected, nil
}

// RunAll runs each demo in order under its title. The first error stops
// the run.
func RunAll(ctx context.Context, w io.Writer, logger *zap.Logger, demos []Demo) error {
	var chain DemoFunc
	chain = chain.Empty()
	for _, d := range demos {
		chain = chain.Compose(d.decorated(logger))
	}
	if err := chain.Run(ctx, w); err != nil {
		return err
	}
	logger.Debug("all demos completed", zap.Int("count", len(demos)))
	return nil
}

// decorated titles, guards and logs the demo, and prefixes any error with
// its name.
func (d Demo) decorated(logger *zap.Logger) DemoFunc {
	run := d.Run.
		WithTitle(d.Title).
		Recover(d.Name).
		WithLogging(logger, d.Name)
	return func(ctx context.Context, w io.Writer) error {
		if err := run(ctx, w); err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}
		return nil
	}
}
