// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

// MapResult applies f to the success value. f is not called on failure.
func MapResult[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.check() == tagOk {
		return Ok[U, E](f(r.takeOk()))
	}
	return Err[U](r.takeErr())
}

// MapErr applies f to the failure value. f is not called on success.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.check() == tagErr {
		return Err[T](f(r.takeErr()))
	}
	return Ok[T, F](r.takeOk())
}

// AndThenResult returns f(v) for a success value v, and passes a failure
// through. f is not called on failure.
func AndThenResult[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.check() == tagOk {
		return f(r.takeOk())
	}
	return Err[U](r.takeErr())
}

// OrElseResult returns f(e) for a failure value e, and passes a success
// through. f is not called on success.
func OrElseResult[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.check() == tagErr {
		return f(r.takeErr())
	}
	return Ok[T, F](r.takeOk())
}

// MatchResult calls onOk or onErr with the payload and returns its result.
func MatchResult[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	if r.check() == tagOk {
		return onOk(r.takeOk())
	}
	return onErr(r.takeErr())
}

// FlattenResult removes one level of nesting.
func FlattenResult[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.check() == tagOk {
		return r.takeOk()
	}
	return Err[T](r.takeErr())
}

// EqualResult reports whether a and b hold the same side with equal values.
func EqualResult[T, E comparable](a, b Result[T, E]) bool {
	ta, tb := a.check(), b.check()
	if ta != tb {
		return false
	}
	if ta == tagOk {
		return a.ok == b.ok
	}
	return a.err == b.err
}
