// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

// State is the occupancy of a payload holder.
type State uint8

const (
	// Absent: no live payload.
	Absent State = iota
	// Present: exactly one live payload.
	Present
	// Moved: the payload was relocated out and the holder awaits a new
	// value or disposal. Only [TaggedStorage] records it; niche and
	// reference storages collapse it into Absent.
	Moved
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Moved:
		return "moved"
	default:
		return "?"
	}
}

// Storage is the constraint satisfied by the payload holders of [Maybe].
// The set is closed: [TaggedStorage], [NicheStorage] and [RefStorage].
//
// The zero value of every storage is Absent.
type Storage[T, S any] interface {
	*S

	// State reports the occupancy.
	State() State
	// SetSome places v, destroying any payload already present.
	SetSome(v T)
	// ReplaceSome substitutes v for the present payload and returns the old one.
	ReplaceSome(v T) T
	// TakeAndSetNone moves the present payload out and leaves the storage Absent.
	TakeAndSetNone() T
	// SetNone destroys the present payload and leaves the storage Absent.
	SetNone()
	// Drop destroys the payload if present.
	Drop()

	payload() *T
	reset()
	markMoved()
	handoff()
}

// TaggedStorage holds a payload beside an explicit discriminant.
// It serves every payload type that lacks a [NicheField].
//
// A payload that is not relocatable also carries a lease shared by every
// copy of the storage. Consuming or destroying the payload through one copy
// claims the lease, and the other copies then report Moved.
type TaggedStorage[T any] struct {
	v   T
	tag State
	l   *lease
}

var _ = storage[int, TaggedStorage[int]]

// State implements [Storage].
func (s *TaggedStorage[T]) State() State {
	if s.tag == Present && spent(s.l) {
		return Moved
	}
	return s.tag
}

// SetSome implements [Storage].
func (s *TaggedStorage[T]) SetSome(v T) {
	if s.State() == Present {
		claim(s.l, "payload")
		ReplaceAndDiscard(&s.v, v)
		s.l = grant(IsRelocatable[T]())
		return
	}
	relocate(&s.v, &v)
	s.tag = Present
	s.l = grant(IsRelocatable[T]())
}

// ReplaceSome implements [Storage]. Panics unless Present.
func (s *TaggedStorage[T]) ReplaceSome(v T) T {
	mustPresent(s.State(), "ReplaceSome")
	claim(s.l, "payload")
	s.l = grant(IsRelocatable[T]())
	return Replace(&s.v, v)
}

// TakeAndSetNone implements [Storage]. Panics unless Present.
func (s *TaggedStorage[T]) TakeAndSetNone() T {
	mustPresent(s.State(), "TakeAndSetNone")
	claim(s.l, "payload")
	s.tag, s.l = Absent, nil
	return TakeAndDestruct(Unsafe{}, &s.v)
}

// SetNone implements [Storage]. Panics unless Present.
func (s *TaggedStorage[T]) SetNone() {
	mustPresent(s.State(), "SetNone")
	s.destroy()
}

// Drop implements [Storage]. A copy whose payload was consumed elsewhere
// destroys nothing.
func (s *TaggedStorage[T]) Drop() {
	if s.State() == Present {
		s.destroy()
		return
	}
	*s = TaggedStorage[T]{}
}

func (s *TaggedStorage[T]) destroy() {
	claim(s.l, "payload")
	Destroy(&s.v)
	*s = TaggedStorage[T]{}
}

func (s *TaggedStorage[T]) payload() *T { return &s.v }
func (s *TaggedStorage[T]) reset()      { *s = TaggedStorage[T]{} }

func (s *TaggedStorage[T]) markMoved() {
	*s = TaggedStorage[T]{tag: Moved}
}

// handoff passes ownership to the copy s: earlier copies become moved-from.
func (s *TaggedStorage[T]) handoff() {
	if s.l != nil {
		claim(s.l, "payload")
		s.l = grant(false)
	}
}

// NicheStorage holds a payload with no discriminant: absence is the
// payload's own sentinel, so the storage is exactly as large as T.
type NicheStorage[T any, P NicheField[T]] struct {
	v T
}

var _ = storage[NonNull[int], NicheStorage[NonNull[int], *NonNull[int]]]

// State implements [Storage].
func (s *NicheStorage[T, P]) State() State {
	if P(&s.v).IsNonZero() {
		return Present
	}
	return Absent
}

// SetSome implements [Storage]. Panics if v holds the sentinel, which would
// make the stored value indistinguishable from absence.
func (s *NicheStorage[T, P]) SetSome(v T) {
	if !P(&v).IsNonZero() {
		panic("opt: niche payload holds its sentinel")
	}
	if s.State() == Present {
		ReplaceAndDiscard(&s.v, v)
		return
	}
	relocate(&s.v, &v)
}

// ReplaceSome implements [Storage]. Panics unless Present.
func (s *NicheStorage[T, P]) ReplaceSome(v T) T {
	mustPresent(s.State(), "ReplaceSome")
	if !P(&v).IsNonZero() {
		panic("opt: niche payload holds its sentinel")
	}
	return Replace(&s.v, v)
}

// TakeAndSetNone implements [Storage]. Panics unless Present.
func (s *NicheStorage[T, P]) TakeAndSetNone() T {
	mustPresent(s.State(), "TakeAndSetNone")
	old := TakeAndDestruct(Unsafe{}, &s.v)
	P(&s.v).SetZero()
	return old
}

// SetNone implements [Storage]. Panics unless Present.
func (s *NicheStorage[T, P]) SetNone() {
	mustPresent(s.State(), "SetNone")
	Destroy(&s.v)
	P(&s.v).SetZero()
}

// Drop implements [Storage].
func (s *NicheStorage[T, P]) Drop() {
	if s.State() == Present {
		s.SetNone()
	}
}

func (s *NicheStorage[T, P]) payload() *T { return &s.v }
func (s *NicheStorage[T, P]) reset()      { P(&s.v).SetZero() }
func (s *NicheStorage[T, P]) markMoved()  { P(&s.v).SetZero() }
func (s *NicheStorage[T, P]) handoff()    {}

// RefStorage holds a borrowed *T; nil encodes absence. Copying the storage
// copies the reference, never the referent, and nothing is destroyed.
type RefStorage[T any] struct {
	p *T
}

var _ = storage[*int, RefStorage[int]]

// State implements [Storage].
func (s *RefStorage[T]) State() State {
	if s.p != nil {
		return Present
	}
	return Absent
}

// SetSome implements [Storage]. Panics on a nil reference.
func (s *RefStorage[T]) SetSome(p *T) {
	if p == nil {
		panic("opt: nil reference")
	}
	s.p = p
}

// ReplaceSome implements [Storage]. Panics unless Present.
func (s *RefStorage[T]) ReplaceSome(p *T) *T {
	mustPresent(s.State(), "ReplaceSome")
	if p == nil {
		panic("opt: nil reference")
	}
	old := s.p
	s.p = p
	return old
}

// TakeAndSetNone implements [Storage]. Panics unless Present.
func (s *RefStorage[T]) TakeAndSetNone() *T {
	mustPresent(s.State(), "TakeAndSetNone")
	old := s.p
	s.p = nil
	return old
}

// SetNone implements [Storage]. Panics unless Present.
func (s *RefStorage[T]) SetNone() {
	mustPresent(s.State(), "SetNone")
	s.p = nil
}

// Drop implements [Storage].
func (s *RefStorage[T]) Drop() { s.p = nil }

func (s *RefStorage[T]) payload() **T { return &s.p }
func (s *RefStorage[T]) reset()       { s.p = nil }
func (s *RefStorage[T]) markMoved()   { s.p = nil }
func (s *RefStorage[T]) handoff()     {}

// storage fails to instantiate unless *S satisfies Storage[T, S].
func storage[T, S any, PS Storage[T, S]]() {}

func mustPresent(s State, op string) {
	if s != Present {
		panic("opt: storage " + op + " on " + s.String() + " payload")
	}
}
