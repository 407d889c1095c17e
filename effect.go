// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

import "code.hybscloud.com/kont"

// Bridge to the kont Error effect.
//
// A Result is the reified outcome of a computation that may Throw:
// [RunResult] runs one, [LiftResult] reflects one back.

// RunResult runs an effectful computation under the Error effect and
// returns its outcome: Ok with the result, or Err with the thrown value.
func RunResult[E, A any](m kont.Eff[A]) Result[A, E] {
	return FromEither(kont.RunError[E, A](m))
}

// RunResultExpr is [RunResult] for the defunctionalized representation.
func RunResultExpr[E, A any](m kont.Expr[A]) Result[A, E] {
	return FromEither(kont.RunErrorExpr[E, A](m))
}

// LiftResult returns a computation that yields the success value of r,
// or throws its failure value.
func LiftResult[T, E any](r Result[T, E]) kont.Eff[T] {
	if r.check() == tagOk {
		return kont.Pure(r.takeOk())
	}
	return kont.ThrowError[E, T](r.takeErr())
}

// LiftResultExpr is [LiftResult] for the defunctionalized representation.
func LiftResultExpr[T, E any](r Result[T, E]) kont.Expr[T] {
	if r.check() == tagOk {
		return kont.ExprReturn(r.takeOk())
	}
	return kont.ExprThrowError[E, T](r.takeErr())
}

// LiftOption returns a computation that yields the value of o,
// or throws err when o is empty. An unused err is destroyed.
func LiftOption[T, E, S any, PS Storage[T, S]](o Maybe[T, S, PS], err E) kont.Eff[T] {
	return LiftResult(OkOr(o, err))
}
