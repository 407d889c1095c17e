// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

import (
	"fmt"

	"code.hybscloud.com/kont"
)

type resultTag uint8

const (
	tagConsumed resultTag = iota
	tagOk
	tagErr
)

// Result holds either a success value T (Ok) or a failure value E (Err).
//
// A third state, consumed, marks a Result whose payload was moved out.
// Every accessor panics on a consumed Result. The zero value is consumed:
// a Result must be built by [Ok], [Err] or [Try].
//
// As with [Maybe], value-receiver methods consume the receiver. Unless both
// T and E are relocatable, every copy of a Result shares one lease, and
// consuming any copy leaves the others consumed.
type Result[T, E any] struct {
	ok  T
	err E
	tag resultTag
	l   *lease
}

// Ok returns a Result holding the success value v.
func Ok[T, E any](v T) Result[T, E] {
	var r Result[T, E]
	relocate(&r.ok, &v)
	r.tag, r.l = tagOk, grant(AreRelocatable2[T, E]())
	return r
}

// Err returns a Result holding the failure value e.
func Err[T, E any](e E) Result[T, E] {
	var r Result[T, E]
	relocate(&r.err, &e)
	r.tag, r.l = tagErr, grant(AreRelocatable2[T, E]())
	return r
}

// Try adapts a Go (value, error) pair: Err(err) when err is non-nil,
// Ok(v) otherwise.
func Try[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// FromEither converts a [kont.Either]: Right is Ok, Left is Err.
func FromEither[E, T any](e kont.Either[E, T]) Result[T, E] {
	if v, ok := e.GetRight(); ok {
		return Ok[T, E](v)
	}
	l, _ := e.GetLeft()
	return Err[T](l)
}

// state is the tag as seen by this copy: consumed once any copy
// sharing the lease has been consumed.
func (r *Result[T, E]) state() resultTag {
	if spent(r.l) {
		return tagConsumed
	}
	return r.tag
}

func (r *Result[T, E]) check() resultTag {
	tag := r.state()
	if tag == tagConsumed {
		panic("opt: use of consumed Result")
	}
	return tag
}

func (r *Result[T, E]) takeOk() T {
	claim(r.l, "Result")
	r.tag, r.l = tagConsumed, nil
	return TakeAndDestruct(Unsafe{}, &r.ok)
}

func (r *Result[T, E]) takeErr() E {
	claim(r.l, "Result")
	r.tag, r.l = tagConsumed, nil
	return TakeAndDestruct(Unsafe{}, &r.err)
}

func (r *Result[T, E]) destroy() {
	switch r.state() {
	case tagOk:
		claim(r.l, "Result")
		Destroy(&r.ok)
	case tagErr:
		claim(r.l, "Result")
		Destroy(&r.err)
	}
	*r = Result[T, E]{}
}

// IsOk reports whether r holds a success value.
func (r Result[T, E]) IsOk() bool { return r.check() == tagOk }

// IsErr reports whether r holds a failure value.
func (r Result[T, E]) IsErr() bool { return r.check() == tagErr }

// IsConsumed reports whether r's payload was moved out.
func (r Result[T, E]) IsConsumed() bool { return r.state() == tagConsumed }

// IsOkAnd reports whether r holds a success value satisfying pred.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.check() == tagOk && pred(r.ok)
}

// IsErrAnd reports whether r holds a failure value satisfying pred.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return r.check() == tagErr && pred(r.err)
}

// Get returns a borrowed copy of the success value and true,
// or zero and false.
func (r Result[T, E]) Get() (T, bool) {
	if r.check() != tagOk {
		var zero T
		return zero, false
	}
	return r.ok, true
}

// GetErr returns a borrowed copy of the failure value and true,
// or zero and false.
func (r Result[T, E]) GetErr() (E, bool) {
	if r.check() != tagErr {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Ok converts r into an Option of its success value.
// A failure value is destroyed.
func (r Result[T, E]) Ok() Option[T] {
	if r.check() == tagOk {
		return Some(r.takeOk())
	}
	r.destroy()
	return None[T]()
}

// Err converts r into an Option of its failure value.
// A success value is destroyed.
func (r Result[T, E]) Err() Option[E] {
	if r.check() == tagErr {
		return Some(r.takeErr())
	}
	r.destroy()
	return None[E]()
}

// Unwrap returns the success value. Panics if r holds a failure.
func (r Result[T, E]) Unwrap() T {
	if r.check() != tagOk {
		panic(fmt.Sprintf("opt: called Unwrap on an Err value: %v", r.err))
	}
	return r.takeOk()
}

// UnwrapErr returns the failure value. Panics if r holds a success.
func (r Result[T, E]) UnwrapErr() E {
	if r.check() != tagErr {
		panic(fmt.Sprintf("opt: called UnwrapErr on an Ok value: %v", r.ok))
	}
	return r.takeErr()
}

// Expect returns the success value. Panics with msg if r holds a failure.
func (r Result[T, E]) Expect(msg string) T {
	if r.check() != tagOk {
		panic(fmt.Sprintf("%s: %v", msg, r.err))
	}
	return r.takeOk()
}

// ExpectErr returns the failure value. Panics with msg if r holds a success.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.check() != tagErr {
		panic(fmt.Sprintf("%s: %v", msg, r.ok))
	}
	return r.takeErr()
}

// UnwrapOr returns the success value, or def on failure.
// The failure value, or an unused def, is destroyed.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.check() == tagOk {
		Destroy(&def)
		return r.takeOk()
	}
	r.destroy()
	return def
}

// UnwrapOrElse returns the success value, or f applied to the failure value.
// f is not called on success.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.check() == tagOk {
		return r.takeOk()
	}
	return f(r.takeErr())
}

// UnwrapOrDefault returns the success value, or the default value of T.
func (r Result[T, E]) UnwrapOrDefault() T {
	if r.check() == tagOk {
		return r.takeOk()
	}
	r.destroy()
	return defaultOf[T]()
}

// UnwrapUnchecked returns the success slot without checking the
// discriminant.
func (r Result[T, E]) UnwrapUnchecked(_ Unsafe) T {
	return r.ok
}

// Either converts r into a [kont.Either]: Ok is Right, Err is Left.
func (r Result[T, E]) Either() kont.Either[E, T] {
	if r.check() == tagOk {
		return kont.Right[E](r.takeOk())
	}
	return kont.Left[E, T](r.takeErr())
}

// Clone returns a duplicate of r, duplicating the payload through
// [Cloner] when it implements it.
func (r Result[T, E]) Clone() Result[T, E] {
	if r.check() == tagOk {
		return Ok[T, E](Clone(r.ok))
	}
	return Err[T](Clone(r.err))
}

// Move transfers r's payload to the returned Result.
//
// Unless both T and E are relocatable, the payload travels through its
// [Mover] hook and r, with every copy of it, is left consumed, so that any
// later access panics.
// When both are relocatable Move is a bitwise copy and r is untouched.
func (r *Result[T, E]) Move() Result[T, E] {
	tag := r.check()
	if AreRelocatable2[T, E]() {
		return *r
	}
	if tag == tagOk {
		return Ok[T, E](r.takeOk())
	}
	return Err[T](r.takeErr())
}

// Drop destroys the payload and leaves r consumed.
// Dropping a consumed Result is a no-op.
func (r *Result[T, E]) Drop() {
	r.destroy()
}

// TriviallyRelocatable implements [Relocatable]: a Result relocates by a
// bitwise copy exactly when both of its payload types do.
func (*Result[T, E]) TriviallyRelocatable() bool {
	return AreRelocatable2[T, E]()
}

// String renders Ok(v), Err(e) or <consumed>.
func (r Result[T, E]) String() string {
	switch r.state() {
	case tagOk:
		return fmt.Sprintf("Ok(%v)", r.ok)
	case tagErr:
		return fmt.Sprintf("Err(%v)", r.err)
	default:
		return "<consumed>"
	}
}

// GoString renders r as Go syntax.
func (r Result[T, E]) GoString() string {
	switch r.state() {
	case tagOk:
		return fmt.Sprintf("opt.Ok(%#v)", r.ok)
	case tagErr:
		return fmt.Sprintf("opt.Err(%#v)", r.err)
	default:
		return "opt.<consumed>"
	}
}
