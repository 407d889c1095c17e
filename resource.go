// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

import "code.hybscloud.com/kont"

// Scoped ownership.
// Both helpers guarantee the release step runs exactly once.

// Using lends v to use and destroys it afterwards, even when use panics.
// use must not keep the pointer past its return.
func Using[T, R any](v T, use func(*T) R) R {
	defer Destroy(&v)
	return use(&v)
}

// UsingOption is [Using] for an Option: use runs only when o holds a value,
// and the value is destroyed afterwards. An empty o yields None.
func UsingOption[T, R any](o Option[T], use func(*T) R) Option[R] {
	if o.state() != Present {
		return None[R]()
	}
	return Some(Using(o.s.TakeAndSetNone(), use))
}

// BracketResult acquires a resource, hands it to use and releases it
// whether or not use throws E. The outcome of use is reified as a Result.
func BracketResult[E, R, A any](
	acquire kont.Eff[R],
	release func(R) kont.Eff[struct{}],
	use func(R) kont.Eff[A],
) kont.Eff[Result[A, E]] {
	return kont.Map(kont.Bracket[E, R, A](acquire, release, use), FromEither[E, A])
}
