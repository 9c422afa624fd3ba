package fundamentals

import "io/fs"

// fsFunc is an fs.FS backed by a function.
type fsFunc func(name string) (fs.File, error)

func (f fsFunc) Open(name string) (fs.File, error) {
	return f(name)
}

// fileFunc is an fs.File whose methods are plain functions. A nil stat
// reports fs.ErrInvalid; a nil close is a no-op.
type fileFunc struct {
	stat  func() (fs.FileInfo, error)
	read  func(p []byte) (int, error)
	close func() error
}

func (f fileFunc) Stat() (fs.FileInfo, error) {
	if f.stat == nil {
		return nil, fs.ErrInvalid
	}
	return f.stat()
}

func (f fileFunc) Read(p []byte) (int, error) {
	return f.read(p)
}

func (f fileFunc) Close() error {
	if f.close == nil {
		return nil
	}
	return f.close()
}
