// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

// Mutation primitives.
//
// Each primitive branches on [IsRelocatable]: relocatable payloads move by a
// plain typed copy, everything else moves through its [Mover] hook. Both
// paths leave the destination in the same observable state.
//
// Preconditions are the caller's. Nothing here validates its arguments.

// Cloner is implemented by types that duplicate owned state on copy.
type Cloner[T any] interface {
	Clone() T
}

// Defaulter is implemented by types whose default value is not the Go zero
// value. [Take] uses it to reconstruct the vacated location.
type Defaulter[T any] interface {
	Default() T
}

// Replace stores v in *dst and returns the previous contents.
func Replace[T any](dst *T, v T) T {
	if IsRelocatable[T]() {
		return replaceRelocate(dst, v)
	}
	return replaceMove(dst, v)
}

// ReplaceAndDiscard stores v in *dst and destroys the previous contents.
func ReplaceAndDiscard[T any](dst *T, v T) {
	Destroy(dst)
	if IsRelocatable[T]() {
		*dst = v
		return
	}
	moveConstruct(dst, &v)
}

// Swap exchanges *a and *b.
func Swap[T any](a, b *T) {
	if IsRelocatable[T]() {
		*a, *b = *b, *a
		return
	}
	var tmp T
	moveConstruct(&tmp, a)
	moveConstruct(a, b)
	moveConstruct(b, &tmp)
}

// Take returns *dst and leaves the default value of T in its place.
// The default value is [Defaulter.Default] when T implements it,
// and the zero value otherwise.
func Take[T any](dst *T) T {
	var old T
	relocate(&old, dst)
	*dst = defaultOf[T]()
	return old
}

// TakeAndDestruct returns *dst and leaves dst cleared and not reconstructed.
// The caller must not read dst again until a new value is placed there, and
// must not destroy it.
func TakeAndDestruct[T any](_ Unsafe, dst *T) T {
	var old T
	relocate(&old, dst)
	var zero T
	*dst = zero
	return old
}

// Destroy runs the destructor of *p when T has one.
// *p must be a live value; it is not cleared.
func Destroy[T any](p *T) {
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
	}
}

// Clone duplicates v through [Cloner] when T implements it,
// and by bitwise copy otherwise.
func Clone[T any](v T) T {
	if c, ok := any(&v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

func replaceRelocate[T any](dst *T, v T) T {
	old := *dst
	*dst = v
	return old
}

func replaceMove[T any](dst *T, v T) T {
	var old T
	moveConstruct(&old, dst)
	moveConstruct(dst, &v)
	return old
}

// relocate moves *src into *dst by the cheapest path T allows.
func relocate[T any](dst, src *T) {
	if IsRelocatable[T]() {
		*dst = *src
		return
	}
	moveConstruct(dst, src)
}

// moveConstruct moves *src into *dst through the Mover hook, if any.
func moveConstruct[T any](dst, src *T) {
	if m, ok := any(src).(Mover[T]); ok {
		m.MoveTo(dst)
		return
	}
	*dst = *src
}

func defaultOf[T any]() T {
	var z T
	if d, ok := any(&z).(Defaulter[T]); ok {
		return d.Default()
	}
	return z
}
