// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

import (
	"reflect"
	"sync"
	"sync/atomic"
	"unsafe"

	"code.hybscloud.com/atomix"
)

// Life-cycle protocols.
//
// Go copies every value bit for bit, so the hooks a payload may attach to
// its own life cycle are opt-in method sets. Each is probed through a nil *T:
// the answer depends only on the type, never on a value. Volatile cells
// nested inside a struct or array are found by a structural scan of the
// type, done once per type and cached.

// Relocatable is implemented by types whose author declares whether values
// may be relocated by a bitwise copy with the source abandoned.
//
// TriviallyRelocatable is called on a nil receiver and must not dereference
// it; declare it with a pointer receiver. A declaration returning false is an
// explicit opt-out and wins over the native and fallback rules.
//
//	func (*Handle) TriviallyRelocatable() bool { return true }
//	var _ opt.Relocatable = (*Handle)(nil)
type Relocatable interface {
	TriviallyRelocatable() bool
}

// Volatile marks types whose memory is observed or written outside the
// owning goroutine's program order. Volatile types are never relocatable,
// whatever else they declare.
type Volatile interface {
	Volatile()
}

// Mover is implemented by types whose relocation must do more than copy
// bytes. MoveTo transfers the receiver's state into dst, which is treated as
// uninitialized, and leaves the receiver a husk whose destruction is a no-op.
type Mover[T any] interface {
	MoveTo(dst *T)
}

// Dropper is implemented by types that release something when destroyed.
// Drop runs exactly once per live value that is destroyed by this package.
type Dropper interface {
	Drop()
}

// Signal names the rule that decided a relocation classification.
type Signal uint8

const (
	// SignalVolatile: the type is volatile and never relocatable.
	SignalVolatile Signal = iota + 1
	// SignalDeclared: the type implements [Relocatable].
	SignalDeclared
	// SignalNative: the type is a scalar the toolchain copies by value.
	SignalNative
	// SignalFallback: relocatable iff the type is neither a [Mover] nor a [Dropper].
	SignalFallback
)

// String returns the signal name.
func (s Signal) String() string {
	switch s {
	case SignalVolatile:
		return "volatile"
	case SignalDeclared:
		return "declared"
	case SignalNative:
		return "native"
	case SignalFallback:
		return "fallback"
	default:
		return "?"
	}
}

// Class is the relocation classification of one type.
type Class struct {
	Relocatable bool
	Signal      Signal
}

// Classify reports whether values of T may be relocated by a bitwise copy,
// and which rule decided it. Rules apply in order:
//
//  1. volatile types, and types holding a volatile cell by value, are
//     never relocatable
//  2. an explicit [Relocatable] declaration is taken as given
//  3. scalar types are relocatable
//  4. otherwise T is relocatable iff *T is neither a [Mover] nor a [Dropper]
//
// Rule 4 under-approximates: some relocatable types are reported false,
// no non-relocatable type is reported true.
func Classify[T any]() Class {
	var p *T
	if isVolatile(p) {
		return Class{Relocatable: false, Signal: SignalVolatile}
	}
	if r, ok := any(p).(Relocatable); ok {
		return Class{Relocatable: r.TriviallyRelocatable(), Signal: SignalDeclared}
	}
	if isScalar(p) {
		return Class{Relocatable: true, Signal: SignalNative}
	}
	_, moves := any(p).(Mover[T])
	_, drops := any(p).(Dropper)
	return Class{Relocatable: !moves && !drops, Signal: SignalFallback}
}

// IsRelocatable reports whether values of T may be relocated by a bitwise
// copy with the source abandoned. See [Classify].
func IsRelocatable[T any]() bool {
	return Classify[T]().Relocatable
}

// AreRelocatable2 reports whether both T and U are relocatable.
func AreRelocatable2[T, U any]() bool {
	return IsRelocatable[T]() && IsRelocatable[U]()
}

// AreRelocatable3 reports whether T, U and V are all relocatable.
func AreRelocatable3[T, U, V any]() bool {
	return IsRelocatable[T]() && IsRelocatable[U]() && IsRelocatable[V]()
}

// AllRelocatable folds classifications of a type list with logical AND.
// The empty list is relocatable.
//
//	opt.AllRelocatable(opt.IsRelocatable[A](), opt.IsRelocatable[B]())
func AllRelocatable(classes ...bool) bool {
	for _, c := range classes {
		if !c {
			return false
		}
	}
	return true
}

func isVolatile[T any](p *T) bool {
	switch any(p).(type) {
	case *atomic.Bool, *atomic.Int32, *atomic.Int64, *atomic.Uint32,
		*atomic.Uint64, *atomic.Uintptr, *atomic.Value, *atomix.Uint32,
		*sync.WaitGroup, *sync.Once, *sync.Cond, *sync.Map:
		return true
	}
	if _, ok := any(p).(Volatile); ok {
		return true
	}
	if _, ok := any(p).(sync.Locker); ok {
		return true
	}
	return holdsVolatile(reflect.TypeFor[T]())
}

var (
	volatileType = reflect.TypeFor[Volatile]()
	lockerType   = reflect.TypeFor[sync.Locker]()

	// volatileScans caches holdsVolatile per type.
	volatileScans sync.Map
)

// holdsVolatile reports whether t is, or contains by value, a volatile
// cell: any sync/atomic or atomix type (atomic.Pointer[T] included), a
// sync primitive, or a field whose pointer implements Volatile or
// sync.Locker. Pointers, slices, maps and channels are not followed.
func holdsVolatile(t reflect.Type) bool {
	if v, ok := volatileScans.Load(t); ok {
		return v.(bool)
	}
	v := scanVolatile(t)
	volatileScans.Store(t, v)
	return v
}

func scanVolatile(t reflect.Type) bool {
	switch t.PkgPath() {
	case "sync/atomic", "code.hybscloud.com/atomix":
		return true
	case "sync":
		switch t.Name() {
		case "Mutex", "RWMutex", "WaitGroup", "Once", "Cond", "Map", "Pool":
			return true
		}
	}
	if pt := reflect.PointerTo(t); pt.Implements(volatileType) || pt.Implements(lockerType) {
		return true
	}
	switch t.Kind() {
	case reflect.Array:
		return t.Len() > 0 && scanVolatile(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if scanVolatile(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

func isScalar[T any](p *T) bool {
	switch any(p).(type) {
	case *bool, *string, *uintptr, *unsafe.Pointer,
		*int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64,
		*float32, *float64, *complex64, *complex128:
		return true
	}
	return false
}
