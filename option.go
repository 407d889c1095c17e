// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

import "fmt"

// Maybe is an optional value held in storage S.
//
// Callers name one of the aliases rather than Maybe itself:
//
//   - [Option]: any payload, with a one-byte discriminant
//   - [NicheOption]: payloads with a [NicheField], no discriminant
//   - [Ref]: a borrowed *T, nil encodes absence
//
// The zero value is None. Maybe has value semantics: assignment copies the
// storage bit for bit, [Maybe.Clone] duplicates the payload, and
// [Maybe.Move] transfers it.
//
// Methods with a value receiver consume the receiver. For an [Option] whose
// payload is not relocatable, every copy shares one lease: once any copy is
// consumed, the others read as moved-from and any further use panics.
// Relocatable payloads are plain data and their copies stay readable.
// Methods with a pointer receiver update the Option in place.
type Maybe[T, S any, PS Storage[T, S]] struct {
	s S
}

// Option is an optional T with an explicit discriminant.
type Option[T any] = Maybe[T, TaggedStorage[T], *TaggedStorage[T]]

// NicheOption is an optional T encoded in T's own sentinel.
// It is exactly as large as T.
type NicheOption[T any, P NicheField[T]] = Maybe[T, NicheStorage[T, P], *NicheStorage[T, P]]

// Ref is an optional borrowed *T.
type Ref[T any] = Maybe[*T, RefStorage[T], *RefStorage[T]]

// NonNullOption is an optional [NonNull], the size of one pointer.
type NonNullOption[T any] = NicheOption[NonNull[T], *NonNull[T]]

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	var o Option[T]
	o.s.SetSome(v)
	return o
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// SomeNiche returns a NicheOption holding v.
// Panics if v holds its sentinel.
func SomeNiche[T any, P NicheField[T]](v T) NicheOption[T, P] {
	var o NicheOption[T, P]
	o.s.SetSome(v)
	return o
}

// NoneNiche returns an empty NicheOption.
func NoneNiche[T any, P NicheField[T]]() NicheOption[T, P] {
	var o NicheOption[T, P]
	o.s.reset()
	return o
}

// SomeRef returns a Ref holding p. Panics if p is nil.
func SomeRef[T any](p *T) Ref[T] {
	var o Ref[T]
	o.s.SetSome(p)
	return o
}

// NoneRef returns an empty Ref.
func NoneRef[T any]() Ref[T] {
	return Ref[T]{}
}

// FromPtr returns a Ref holding p, or None when p is nil.
func FromPtr[T any](p *T) Ref[T] {
	return Ref[T]{s: RefStorage[T]{p: p}}
}

// FromPair returns Some(v) when ok, None otherwise.
// It adapts the comma-ok idiom.
func FromPair[T any](v T, ok bool) Option[T] {
	if ok {
		return Some(v)
	}
	return None[T]()
}

func (o *Maybe[T, S, PS]) state() State {
	st := PS(&o.s).State()
	if st == Moved {
		panic("opt: use of moved-from Option")
	}
	return st
}

// wrap returns an Option of the same storage as o holding v.
func (o *Maybe[T, S, PS]) wrap(v T) Maybe[T, S, PS] {
	var m Maybe[T, S, PS]
	PS(&m.s).reset()
	PS(&m.s).SetSome(v)
	return m
}

func (o *Maybe[T, S, PS]) none() Maybe[T, S, PS] {
	var m Maybe[T, S, PS]
	PS(&m.s).reset()
	return m
}

// IsSome reports whether o holds a value.
func (o Maybe[T, S, PS]) IsSome() bool { return o.state() == Present }

// IsNone reports whether o is empty.
func (o Maybe[T, S, PS]) IsNone() bool { return o.state() == Absent }

// IsMoved reports whether o's value was moved out by [Maybe.Move].
// Only Options with an explicit discriminant record it.
func (o Maybe[T, S, PS]) IsMoved() bool { return PS(&o.s).State() == Moved }

// IsSomeAnd reports whether o holds a value satisfying pred.
func (o Maybe[T, S, PS]) IsSomeAnd(pred func(T) bool) bool {
	if o.state() != Present {
		return false
	}
	return pred(*PS(&o.s).payload())
}

// Get returns a copy of the value and true, or zero and false.
// The copy is borrowed: o still owns the value.
func (o Maybe[T, S, PS]) Get() (T, bool) {
	if o.state() != Present {
		var zero T
		return zero, false
	}
	return *PS(&o.s).payload(), true
}

// AsPtr returns a pointer to the held value, or nil when empty.
func (o *Maybe[T, S, PS]) AsPtr() *T {
	if o.state() != Present {
		return nil
	}
	return PS(&o.s).payload()
}

// Unwrap returns the value. Panics if o is empty.
func (o Maybe[T, S, PS]) Unwrap() T {
	if o.state() != Present {
		panic("opt: called Unwrap on a None value")
	}
	return PS(&o.s).TakeAndSetNone()
}

// Expect returns the value. Panics with msg if o is empty.
func (o Maybe[T, S, PS]) Expect(msg string) T {
	if o.state() != Present {
		panic(msg)
	}
	return PS(&o.s).TakeAndSetNone()
}

// UnwrapOr returns the value, or def when empty.
// An unused def is destroyed.
func (o Maybe[T, S, PS]) UnwrapOr(def T) T {
	if o.state() != Present {
		return def
	}
	Destroy(&def)
	return PS(&o.s).TakeAndSetNone()
}

// UnwrapOrElse returns the value, or f() when empty.
func (o Maybe[T, S, PS]) UnwrapOrElse(f func() T) T {
	if o.state() != Present {
		return f()
	}
	return PS(&o.s).TakeAndSetNone()
}

// UnwrapOrDefault returns the value, or the default value of T when empty.
func (o Maybe[T, S, PS]) UnwrapOrDefault() T {
	if o.state() != Present {
		return defaultOf[T]()
	}
	return PS(&o.s).TakeAndSetNone()
}

// UnwrapUnchecked returns the payload without checking presence.
// On an empty Option the result is the storage's vacated bits.
func (o Maybe[T, S, PS]) UnwrapUnchecked(_ Unsafe) T {
	return *PS(&o.s).payload()
}

// Take moves the value out, leaving o empty. Take on an empty Option
// returns None and leaves o unchanged.
func (o *Maybe[T, S, PS]) Take() Maybe[T, S, PS] {
	if o.state() != Present {
		return o.none()
	}
	return o.wrap(PS(&o.s).TakeAndSetNone())
}

// Replace stores v in o and returns the previous contents.
func (o *Maybe[T, S, PS]) Replace(v T) Maybe[T, S, PS] {
	if o.state() != Present {
		PS(&o.s).SetSome(v)
		return o.none()
	}
	return o.wrap(PS(&o.s).ReplaceSome(v))
}

// Insert stores v in o, destroying any previous value,
// and returns a pointer to the stored value. Insert also revives a
// moved-from Option.
func (o *Maybe[T, S, PS]) Insert(v T) *T {
	PS(&o.s).SetSome(v)
	return PS(&o.s).payload()
}

// Set stores v in o, destroying any previous value.
func (o *Maybe[T, S, PS]) Set(v T) {
	PS(&o.s).SetSome(v)
}

// Clear destroys the held value, if any, and leaves o empty.
func (o *Maybe[T, S, PS]) Clear() {
	o.Drop()
}

// GetOrInsertWith stores f() when o is empty and returns a pointer to the
// held value. f is not called when o holds a value.
func (o *Maybe[T, S, PS]) GetOrInsertWith(f func() T) *T {
	if o.state() != Present {
		PS(&o.s).SetSome(f())
	}
	return PS(&o.s).payload()
}

// Filter returns o when it holds a value satisfying pred. A value that
// fails pred is destroyed and None is returned.
func (o Maybe[T, S, PS]) Filter(pred func(T) bool) Maybe[T, S, PS] {
	if o.state() != Present {
		return o
	}
	if pred(*PS(&o.s).payload()) {
		PS(&o.s).handoff()
		return o
	}
	PS(&o.s).SetNone()
	return o
}

// Or returns o when it holds a value, otherwise other.
// An unused other is destroyed.
func (o Maybe[T, S, PS]) Or(other Maybe[T, S, PS]) Maybe[T, S, PS] {
	if o.state() == Present {
		other.Drop()
		PS(&o.s).handoff()
		return o
	}
	PS(&other.s).handoff()
	return other
}

// OrElse returns o when it holds a value, otherwise f().
// f is not called when o holds a value.
func (o Maybe[T, S, PS]) OrElse(f func() Maybe[T, S, PS]) Maybe[T, S, PS] {
	if o.state() == Present {
		PS(&o.s).handoff()
		return o
	}
	return f()
}

// Xor returns whichever of o and other holds a value when exactly one does,
// and None otherwise. Values not returned are destroyed.
func (o Maybe[T, S, PS]) Xor(other Maybe[T, S, PS]) Maybe[T, S, PS] {
	a, b := o.state() == Present, other.state() == Present
	switch {
	case a && !b:
		PS(&o.s).handoff()
		return o
	case b && !a:
		PS(&other.s).handoff()
		return other
	case a && b:
		o.Drop()
		other.Drop()
	}
	return o.none()
}

// Inspect calls f with a borrowed copy of the value, if any, and returns o.
func (o Maybe[T, S, PS]) Inspect(f func(T)) Maybe[T, S, PS] {
	if o.state() == Present {
		f(*PS(&o.s).payload())
		PS(&o.s).handoff()
	}
	return o
}

// Clone returns a duplicate of o. The payload is duplicated through
// [Cloner] when T implements it.
func (o Maybe[T, S, PS]) Clone() Maybe[T, S, PS] {
	if o.state() != Present {
		return o.none()
	}
	return o.wrap(Clone(*PS(&o.s).payload()))
}

// Move transfers o's contents to the returned Option.
//
// For payloads that are not relocatable the value travels through its
// [Mover] hook and o is left in the moved-from state: every later access
// except [Maybe.IsMoved], [Maybe.Drop] and reassignment panics. For
// relocatable payloads Move is a bitwise copy and o is left untouched; its
// moved-from state is indistinguishable from a live value.
func (o *Maybe[T, S, PS]) Move() Maybe[T, S, PS] {
	st := o.state()
	if IsRelocatable[T]() {
		return *o
	}
	out := o.none()
	if st == Present {
		out = o.wrap(PS(&o.s).TakeAndSetNone())
	}
	PS(&o.s).markMoved()
	return out
}

// Drop destroys the held value, if any, and leaves o empty.
// A moved-from Option holds nothing to destroy and simply becomes empty.
func (o *Maybe[T, S, PS]) Drop() {
	PS(&o.s).Drop()
	PS(&o.s).reset()
}

// TriviallyRelocatable implements [Relocatable]: an Option relocates by a
// bitwise copy exactly when its payload does.
func (*Maybe[T, S, PS]) TriviallyRelocatable() bool {
	return IsRelocatable[T]()
}

// String renders None, Some(v) or <moved>.
func (o Maybe[T, S, PS]) String() string {
	switch PS(&o.s).State() {
	case Present:
		return fmt.Sprintf("Some(%v)", *PS(&o.s).payload())
	case Moved:
		return "<moved>"
	default:
		return "None"
	}
}

// GoString renders o as Go syntax.
func (o Maybe[T, S, PS]) GoString() string {
	switch PS(&o.s).State() {
	case Present:
		return fmt.Sprintf("opt.Some(%#v)", *PS(&o.s).payload())
	case Moved:
		return "opt.<moved>"
	default:
		return "opt.None"
	}
}
