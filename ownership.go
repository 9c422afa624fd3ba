package fundamentals

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
)

// ErrReleased is returned when a Shared value is used after its last owner
// released it.
var ErrReleased = errors.New("shared value already released")

// Box moves v to the heap and returns the only reference to it.
func Box[T any](v T) *T {
	return &v
}

// ShowBox prints a heap-allocated integer through its pointer.
func ShowBox(_ context.Context, w io.Writer) error {
	b := Box(5)
	fmt.Fprintf(w, "ボックスの値: %d\n", *b)
	return nil
}

// Shared is one owner's handle on a reference-counted value. Every handle
// obtained through NewShared or Clone must call Release once; the release
// callback runs when the last handle is released.
type Shared[T any] struct {
	state    *sharedState[T]
	released atomic.Bool
}

type sharedState[T any] struct {
	value     T
	refs      atomic.Int64
	onRelease func(T)
}

// NewShared returns the first handle on v, with a count of one.
// onRelease may be nil.
func NewShared[T any](v T, onRelease func(T)) *Shared[T] {
	st := &sharedState[T]{value: v, onRelease: onRelease}
	st.refs.Store(1)
	return &Shared[T]{state: st}
}

// Clone registers another owner and returns its own handle.
func (s *Shared[T]) Clone() (*Shared[T], error) {
	if s.released.Load() {
		return nil, ErrReleased
	}
	s.state.refs.Add(1)
	return &Shared[T]{state: s.state}, nil
}

// Value returns the shared value until this handle is released.
func (s *Shared[T]) Value() (T, error) {
	if s.released.Load() {
		var zero T
		return zero, ErrReleased
	}
	return s.state.value, nil
}

// Count reports the number of live owners.
func (s *Shared[T]) Count() int64 {
	return s.state.refs.Load()
}

// Release drops this handle's ownership. A second Release on the same
// handle returns ErrReleased and leaves the count untouched.
func (s *Shared[T]) Release() error {
	if !s.released.CompareAndSwap(false, true) {
		return ErrReleased
	}
	if s.state.refs.Add(-1) == 0 && s.state.onRelease != nil {
		s.state.onRelease(s.state.value)
	}
	return nil
}

// ShowSharedOwnership shares one string between three owners, prints the
// count as owners are added and each owner's view, then releases them all.
func ShowSharedOwnership(_ context.Context, w io.Writer) (err error) {
	shared := NewShared("共有データ", func(v string) {
		fmt.Fprintf(w, "解放済み: %s\n", v)
	})
	owners := []*Shared[string]{shared}
	defer func() {
		for _, owner := range owners {
			if rerr := owner.Release(); rerr != nil && err == nil {
				err = rerr
			}
		}
	}()
	fmt.Fprintf(w, "参照カウント(作成後): %d\n", shared.Count())

	for range 2 {
		owner, err := shared.Clone()
		if err != nil {
			return err
		}
		owners = append(owners, owner)
		fmt.Fprintf(w, "参照カウント(クローン後): %d\n", shared.Count())
	}

	for i, owner := range owners {
		v, err := owner.Value()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "所有者%d: %s\n", i+1, v)
	}
	return nil
}
