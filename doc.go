// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package opt provides optional-value and success/failure sum types with
// value semantics, and the relocation classification that decides how their
// payloads may be moved.
//
// # Design Philosophy
//
// opt provides:
//   - [Option] and [Result] whose payloads are owned, duplicated and moved
//     explicitly rather than shared
//   - A per-type relocation classification that every moving primitive
//     consults to skip payload hooks when it is safe to skip them
//   - Niche-optimized Options that carry no discriminant when the payload
//     has a sentinel representation
//
// Every classification and every storage choice is a function of the type
// parameters alone. Nothing inspects values. The only reflection is a
// per-type scan, cached, for atomic and sync cells nested inside a payload.
//
// # Life-Cycle Protocols
//
// Go copies values bit for bit and has no destructors. Payloads that care
// opt into hooks by method set:
//
//   - [Mover]: MoveTo(dst *T), relocation that must do more than copy bytes
//   - [Dropper]: Drop(), destruction
//   - [Cloner]: Clone() T, duplication
//   - [Defaulter]: Default() T, a default other than the zero value
//   - [Relocatable]: TriviallyRelocatable() bool, an explicit declaration
//   - [Volatile]: Volatile(), never relocatable
//
// # Relocation Classification
//
//   - [Classify]: Classification of T and the rule that decided it
//   - [IsRelocatable]: Whether T relocates by a bitwise copy
//   - [AreRelocatable2], [AreRelocatable3], [AllRelocatable]: AND over a type list
//
// Rules, in order: volatile types (including sync.Locker implementations,
// atomic cells, and structs or arrays holding either by value) are never
// relocatable; a [Relocatable] declaration is taken
// as given; scalars are relocatable; anything else is relocatable iff it is
// neither a [Mover] nor a [Dropper].
//
// A declaration returning false is the explicit opt-out. Declare it for
// payloads whose identity is tied to their address in ways the method sets
// cannot express.
//
// # Mutation Primitives
//
//   - [Replace]: Store a value, return the previous one
//   - [ReplaceAndDiscard]: Store a value, destroy the previous one
//   - [Swap]: Exchange two locations
//   - [Take]: Extract a value, leave the default behind
//   - [TakeAndDestruct]: Extract a value, leave the location cleared (requires [Unsafe])
//   - [Destroy], [Clone]: Run the destructor or duplicate a value
//
// Relocatable payloads move by plain typed copy; the others move through
// their [Mover] hook. Both paths leave the same observable state.
//
// # Storage
//
// [Maybe] is parameterized by its storage; callers name one of the aliases:
//
//   - [Option]: [TaggedStorage], payload plus a one-byte discriminant
//   - [NicheOption]: [NicheStorage], no discriminant; absence is the payload's
//     [NicheField] sentinel, so the Option is as large as the payload
//   - [Ref]: [RefStorage], a borrowed *T; nil is absence
//   - [NonNullOption]: NicheOption of [NonNull], one pointer wide
//
// Provided niche payloads are [NonNull] and [NonZero].
//
// # Option
//
// Construction: [Some], [None], [SomeNiche], [NoneNiche], [SomeRef],
// [NoneRef], [FromPtr], [FromPair].
//
// Methods: IsSome, IsNone, IsSomeAnd, Get, AsPtr, Unwrap, Expect, UnwrapOr,
// UnwrapOrElse, UnwrapOrDefault, UnwrapUnchecked, Take, Replace, Insert,
// Set, Clear, GetOrInsertWith, Filter, Or, OrElse, Xor, Inspect, Clone,
// Move, Drop.
//
// Functions: [Map], [MapOr], [MapOrElse], [AndThen], [And], [Zip], [Unzip],
// [Flatten], [OkOr], [OkOrElse], [OkOrNone], [Transpose], [Equal],
// [Compare], [Cloned].
//
// # Result
//
// Construction: [Ok], [Err], [Try], [FromEither].
//
// Methods: IsOk, IsErr, IsOkAnd, IsErrAnd, Get, GetErr, Ok, Err, Unwrap,
// UnwrapErr, Expect, ExpectErr, UnwrapOr, UnwrapOrElse, UnwrapOrDefault,
// UnwrapUnchecked, Either, Clone, Move, Drop.
//
// Functions: [MapResult], [MapErr], [AndThenResult], [OrElseResult],
// [MatchResult], [FlattenResult], [EqualResult].
//
// # Effects
//
// A Result is the reified outcome of a [code.hybscloud.com/kont] computation
// under the Error effect:
//
//   - [RunResult], [RunResultExpr]: Run a computation, Throw becomes Err
//   - [LiftResult], [LiftResultExpr]: Err becomes Throw
//   - [LiftOption]: None becomes Throw
//   - [BracketResult]: acquire, use and release, with the outcome as a Result
//
// [Using] and [UsingOption] give the same release guarantee to plain
// payloads: the value is destroyed once use returns or panics.
//
// # Misuse
//
// Unwrapping an empty Option or the wrong side of a Result panics, as does
// any access to an Option or Result after [Maybe.Move] or [Result.Move]
// left it moved-from. These are programming errors, not recoverable
// failures: check IsSome/IsOk or use the non-panicking accessors first.
//
// Moved-from detection covers payloads that are not relocatable. Every
// copy of an Option or Result holding such a payload shares a one-shot
// lease; consuming any copy, by Unwrap, Map, Ok, Filter or Move alike,
// spends it, and any later use of another copy panics instead of handing
// out a second owner. A relocatable payload is plain data: its copies stay
// readable and reusing them goes undetected. Niche Options carry no lease;
// the provided niche payloads are relocatable.
//
// Operations that skip a check take [Unsafe] as their first argument.
//
// # Example
//
//	o := opt.Map(opt.Some(3), func(x int) int { return x + 1 })
//	// o.Unwrap() == 4
//
//	r := opt.Err[int]("bad")
//	// r.Ok().IsNone() == true
//
//	n := 42
//	nn, _ := opt.NewNonNull(&n)
//	p := opt.SomeNiche(nn)
//	// unsafe.Sizeof(p) == unsafe.Sizeof(nn)
package opt
