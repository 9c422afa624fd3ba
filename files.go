package fundamentals

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"unicode/utf8"
)

// ErrInvalidText is returned when file contents are not valid UTF-8.
var ErrInvalidText = errors.New("contents are not valid UTF-8 text")

// ReadText reads the named file from fsys and returns its contents as text.
// A missing file yields an error matching fs.ErrNotExist.
func ReadText(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", name, ErrInvalidText)
	}
	return string(data), nil
}

// ShowFileRead returns a demonstration that attempts to read name from fsys
// and prints either the contents or the failure.
func ShowFileRead(fsys fs.FS, name string) DemoFunc {
	return func(_ context.Context, w io.Writer) error {
		text, err := ReadText(fsys, name)
		if err != nil {
			fmt.Fprintf(w, "ファイル読み込み失敗: %v\n", err)
			return nil
		}
		fmt.Fprintf(w, "ファイル内容: %s\n", text)
		return nil
	}
}
