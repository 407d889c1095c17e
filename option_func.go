// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

import (
	"errors"

	"code.hybscloud.com/kont"
	"golang.org/x/exp/constraints"
)

// Combinators that change the payload type.
//
// Go methods cannot introduce type parameters, so these are functions.
// Each consumes its Option argument and returns a plain [Option].

// ErrNone is the error [OkOrNone] reports for an empty Option.
var ErrNone = errors.New("opt: none")

// Map applies f to the value, if any. f is not called on None.
func Map[T, U, S any, PS Storage[T, S]](o Maybe[T, S, PS], f func(T) U) Option[U] {
	if o.state() != Present {
		return None[U]()
	}
	return Some(f(PS(&o.s).TakeAndSetNone()))
}

// MapOr applies f to the value, or returns def when empty.
func MapOr[T, U, S any, PS Storage[T, S]](o Maybe[T, S, PS], def U, f func(T) U) U {
	if o.state() != Present {
		return def
	}
	Destroy(&def)
	return f(PS(&o.s).TakeAndSetNone())
}

// MapOrElse applies f to the value, or returns def() when empty.
func MapOrElse[T, U, S any, PS Storage[T, S]](o Maybe[T, S, PS], def func() U, f func(T) U) U {
	if o.state() != Present {
		return def()
	}
	return f(PS(&o.s).TakeAndSetNone())
}

// AndThen returns f(v) for the held value v, or None. f is not called on None.
func AndThen[T, U, S any, PS Storage[T, S]](o Maybe[T, S, PS], f func(T) Option[U]) Option[U] {
	if o.state() != Present {
		return None[U]()
	}
	return f(PS(&o.s).TakeAndSetNone())
}

// And returns other when o holds a value, and None otherwise.
// Whatever is not returned is destroyed.
func And[T, U, S any, PS Storage[T, S]](o Maybe[T, S, PS], other Option[U]) Option[U] {
	if o.state() != Present {
		other.Drop()
		return None[U]()
	}
	PS(&o.s).SetNone()
	return other
}

// Zip pairs the values of a and b when both hold one. When only one does,
// its value is destroyed.
func Zip[T, U, S1, S2 any, PS1 Storage[T, S1], PS2 Storage[U, S2]](a Maybe[T, S1, PS1], b Maybe[U, S2, PS2]) Option[kont.Pair[T, U]] {
	if a.state() != Present || b.state() != Present {
		a.Drop()
		b.Drop()
		return None[kont.Pair[T, U]]()
	}
	return Some(kont.Pair[T, U]{
		Fst: PS1(&a.s).TakeAndSetNone(),
		Snd: PS2(&b.s).TakeAndSetNone(),
	})
}

// Unzip splits an Option of a pair into a pair of Options.
func Unzip[T, U any](o Option[kont.Pair[T, U]]) (Option[T], Option[U]) {
	if o.state() != Present {
		return None[T](), None[U]()
	}
	p := o.s.TakeAndSetNone()
	return Some(p.Fst), Some(p.Snd)
}

// Flatten removes one level of nesting.
func Flatten[T, S, S2 any, PS Storage[T, S], PS2 Storage[Maybe[T, S, PS], S2]](o Maybe[Maybe[T, S, PS], S2, PS2]) Maybe[T, S, PS] {
	if o.state() != Present {
		var none Maybe[T, S, PS]
		PS(&none.s).reset()
		return none
	}
	return PS2(&o.s).TakeAndSetNone()
}

// OkOr converts o into a Result, using err for None.
// An unused err is destroyed.
func OkOr[T, E, S any, PS Storage[T, S]](o Maybe[T, S, PS], err E) Result[T, E] {
	if o.state() != Present {
		return Err[T](err)
	}
	Destroy(&err)
	return Ok[T, E](PS(&o.s).TakeAndSetNone())
}

// OkOrElse converts o into a Result, using f() for None.
func OkOrElse[T, E, S any, PS Storage[T, S]](o Maybe[T, S, PS], f func() E) Result[T, E] {
	if o.state() != Present {
		return Err[T](f())
	}
	return Ok[T, E](PS(&o.s).TakeAndSetNone())
}

// OkOrNone converts o into a Result[T, error], reporting [ErrNone] for None.
func OkOrNone[T, S any, PS Storage[T, S]](o Maybe[T, S, PS]) Result[T, error] {
	return OkOr[T, error](o, ErrNone)
}

// Transpose turns an Option of a Result into a Result of an Option.
// None maps to Ok(None).
func Transpose[T, E any](o Option[Result[T, E]]) Result[Option[T], E] {
	if o.state() != Present {
		return Ok[Option[T], E](None[T]())
	}
	r := o.s.TakeAndSetNone()
	if r.check() == tagErr {
		return Err[Option[T]](r.takeErr())
	}
	return Ok[Option[T], E](Some(r.takeOk()))
}

// Equal reports whether a and b are both None, or both hold equal values.
func Equal[T comparable, S any, PS Storage[T, S]](a, b Maybe[T, S, PS]) bool {
	sa, sb := a.state(), b.state()
	if sa != sb {
		return false
	}
	if sa != Present {
		return true
	}
	return *PS(&a.s).payload() == *PS(&b.s).payload()
}

// Compare orders a and b: None sorts before every value, values compare
// by their natural order. The result is -1, 0 or +1.
func Compare[T constraints.Ordered, S any, PS Storage[T, S]](a, b Maybe[T, S, PS]) int {
	sa, sb := a.state(), b.state()
	switch {
	case sa != Present && sb != Present:
		return 0
	case sa != Present:
		return -1
	case sb != Present:
		return 1
	}
	x, y := *PS(&a.s).payload(), *PS(&b.s).payload()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Cloned returns an Option holding a duplicate of r's referent.
func Cloned[T any](r Ref[T]) Option[T] {
	if r.state() != Present {
		return None[T]()
	}
	return Some(Clone(*r.s.p))
}
