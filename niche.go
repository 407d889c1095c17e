// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// NicheField is the capability of a type T whose representation has a
// sentinel that no live value ever holds.
//
// IsNonZero reports false exactly when the value holds the sentinel, and
// SetZero writes the sentinel, after which the value is vacated: it may be
// overwritten but not used. The Go zero value of T must be the sentinel.
//
// A [NicheStorage] uses the sentinel to encode absence, so an [Option] over a
// NicheField type is no larger than the type itself.
type NicheField[T any] interface {
	*T
	IsNonZero() bool
	SetZero()
}

// niche fails to instantiate unless *T satisfies NicheField.
func niche[T any, P NicheField[T]]() {}

// NonNull is a pointer that is never nil while live.
type NonNull[T any] struct {
	p *T
}

var _ = niche[NonNull[int]]

// NewNonNull wraps p, reporting false when p is nil.
func NewNonNull[T any](p *T) (NonNull[T], bool) {
	if p == nil {
		return NonNull[T]{}, false
	}
	return NonNull[T]{p: p}, true
}

// NonNullUnchecked wraps p without checking it. p must not be nil.
func NonNullUnchecked[T any](_ Unsafe, p *T) NonNull[T] {
	return NonNull[T]{p: p}
}

// Ptr returns the wrapped pointer.
func (n NonNull[T]) Ptr() *T { return n.p }

// Deref returns a copy of the pointee.
func (n NonNull[T]) Deref() T { return *n.p }

// IsNonZero implements [NicheField].
func (n *NonNull[T]) IsNonZero() bool { return n.p != nil }

// SetZero implements [NicheField].
func (n *NonNull[T]) SetZero() { n.p = nil }

// TriviallyRelocatable implements [Relocatable].
func (*NonNull[T]) TriviallyRelocatable() bool { return true }

// String renders the address as NonNull(0x...).
func (n NonNull[T]) String() string { return fmt.Sprintf("NonNull(%p)", n.p) }

// NonZero is an integer that is never zero while live.
type NonZero[T constraints.Integer] struct {
	v T
}

var _ = niche[NonZero[uint32]]

// NewNonZero wraps v, reporting false when v is zero.
func NewNonZero[T constraints.Integer](v T) (NonZero[T], bool) {
	if v == 0 {
		return NonZero[T]{}, false
	}
	return NonZero[T]{v: v}, true
}

// NonZeroUnchecked wraps v without checking it. v must not be zero.
func NonZeroUnchecked[T constraints.Integer](_ Unsafe, v T) NonZero[T] {
	return NonZero[T]{v: v}
}

// Get returns the wrapped integer.
func (n NonZero[T]) Get() T { return n.v }

// IsNonZero implements [NicheField].
func (n *NonZero[T]) IsNonZero() bool { return n.v != 0 }

// SetZero implements [NicheField].
func (n *NonZero[T]) SetZero() { n.v = 0 }

// TriviallyRelocatable implements [Relocatable].
func (*NonZero[T]) TriviallyRelocatable() bool { return true }

// String renders the integer.
func (n NonZero[T]) String() string { return fmt.Sprint(n.v) }
