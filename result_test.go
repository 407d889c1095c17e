// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/opt"
)

func TestResultOk(t *testing.T) {
	r := opt.Ok[int, string](42)
	if !r.IsOk() || r.IsErr() {
		t.Fatal("expected Ok")
	}
	if got := r.Unwrap(); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if v, ok := r.Get(); !ok || v != 42 {
		t.Fatalf("Get = %d, %v", v, ok)
	}
	if _, ok := r.GetErr(); ok {
		t.Fatal("GetErr on Ok should report false")
	}
}

func TestResultErr(t *testing.T) {
	r := opt.Err[int]("bad")
	if r.IsOk() || !r.IsErr() {
		t.Fatal("expected Err")
	}
	if got := r.UnwrapErr(); got != "bad" {
		t.Fatalf("got %q, want %q", got, "bad")
	}
	if e, ok := r.GetErr(); !ok || e != "bad" {
		t.Fatalf("GetErr = %q, %v", e, ok)
	}
}

func TestResultErrOkDestroysOnce(t *testing.T) {
	var l ledger
	r := opt.Err[int](newHandle(&l, 1))
	o := r.Ok()
	if !o.IsNone() {
		t.Fatal("Err.Ok() should be None")
	}
	if _, drops, _ := l.counts(); drops != 1 {
		t.Fatalf("drops = %d, want exactly 1", drops)
	}

	var l2 ledger
	e := opt.Ok[handle, string](newHandle(&l2, 1)).Err()
	if !e.IsNone() {
		t.Fatal("Ok.Err() should be None")
	}
	if _, drops, _ := l2.counts(); drops != 1 {
		t.Fatalf("drops = %d, want exactly 1", drops)
	}

	if opt.Ok[int, string](3).Ok().Unwrap() != 3 {
		t.Fatal("Ok.Ok()")
	}
	if opt.Err[int]("e").Err().Unwrap() != "e" {
		t.Fatal("Err.Err()")
	}
}

func TestResultUnwrapWrongSidePanics(t *testing.T) {
	mustPanic(t, "called Unwrap on an Err value: bad", func() {
		opt.Err[int]("bad").Unwrap()
	})
	mustPanic(t, "called UnwrapErr on an Ok value: 1", func() {
		opt.Ok[int, string](1).UnwrapErr()
	})
	mustPanic(t, "reading config: bad", func() {
		opt.Err[int]("bad").Expect("reading config")
	})
	mustPanic(t, "want failure: 1", func() {
		opt.Ok[int, string](1).ExpectErr("want failure")
	})
}

func TestResultUnwrapOr(t *testing.T) {
	if opt.Err[int]("x").UnwrapOr(7) != 7 {
		t.Fatal("Err.UnwrapOr")
	}
	if opt.Ok[int, string](1).UnwrapOr(7) != 1 {
		t.Fatal("Ok.UnwrapOr")
	}
	got := opt.Err[int]("four").UnwrapOrElse(func(e string) int { return len(e) })
	if got != 4 {
		t.Fatalf("UnwrapOrElse = %d, want 4", got)
	}
	called := false
	opt.Ok[int, string](1).UnwrapOrElse(func(string) int { called = true; return 0 })
	if called {
		t.Fatal("UnwrapOrElse called f on Ok")
	}
	if opt.Err[counter]("x").UnwrapOrDefault().n != 1 {
		t.Fatal("UnwrapOrDefault should use the Defaulter")
	}
}

func TestResultPredicates(t *testing.T) {
	pos := func(x int) bool { return x > 0 }
	if !opt.Ok[int, string](1).IsOkAnd(pos) || opt.Ok[int, string](-1).IsOkAnd(pos) || opt.Err[int]("e").IsOkAnd(pos) {
		t.Fatal("IsOkAnd")
	}
	short := func(s string) bool { return len(s) < 3 }
	if !opt.Err[int]("e").IsErrAnd(short) || opt.Ok[int, string](1).IsErrAnd(short) {
		t.Fatal("IsErrAnd")
	}
}

func TestResultZeroValueIsConsumed(t *testing.T) {
	var r opt.Result[int, string]
	if !r.IsConsumed() {
		t.Fatal("zero Result should be consumed")
	}
	mustPanic(t, "consumed Result", func() { r.IsOk() })
	if r.String() != "<consumed>" {
		t.Fatalf("got %q", r.String())
	}
}

func TestResultMoveNonRelocatable(t *testing.T) {
	var l ledger
	r := opt.Ok[handle, string](newHandle(&l, 1))
	m := r.Move()
	if !r.IsConsumed() {
		t.Fatal("source should be consumed")
	}
	mustPanic(t, "consumed Result", func() { r.Unwrap() })
	mustPanic(t, "consumed Result", func() { r.Ok() })
	mustPanic(t, "consumed Result", func() { r.Move() })
	if m.Unwrap().id != 1 {
		t.Fatal("destination should hold the value")
	}

	e := opt.Err[int](newHandle(&l, 2))
	me := e.Move()
	mustPanic(t, "consumed Result", func() { e.UnwrapErr() })
	if me.UnwrapErr().id != 2 {
		t.Fatal("destination should hold the error")
	}
}

func TestResultMoveRelocatable(t *testing.T) {
	r := opt.Ok[int, string](5)
	m := r.Move()
	if m.Unwrap() != 5 || r.IsConsumed() || r.Unwrap() != 5 {
		t.Fatal("relocatable Move is a bitwise copy")
	}
}

func TestResultDrop(t *testing.T) {
	var l ledger
	r := opt.Err[int](newHandle(&l, 1))
	r.Drop()
	r.Drop()
	if _, drops, _ := l.counts(); drops != 1 {
		t.Fatalf("drops = %d, want exactly 1", drops)
	}
	if !r.IsConsumed() {
		t.Fatal("Drop should leave the Result consumed")
	}
}

func TestResultClone(t *testing.T) {
	var l ledger
	r := opt.Ok[handle, string](newHandle(&l, 3))
	c := r.Clone()
	if c.Unwrap().id != 3 {
		t.Fatal("clone value")
	}
	if _, _, clones := l.counts(); clones != 1 {
		t.Fatalf("clones = %d, want 1", clones)
	}
	if opt.Err[int]("e").Clone().UnwrapErr() != "e" {
		t.Fatal("clone of Err")
	}
}

func TestResultMapChain(t *testing.T) {
	r := opt.MapResult(opt.Ok[int, string](2), func(x int) int { return x * 10 })
	if r.Unwrap() != 20 {
		t.Fatal("MapResult on Ok")
	}
	called := false
	r = opt.MapResult(opt.Err[int]("e"), func(x int) int { called = true; return x })
	if called || r.UnwrapErr() != "e" {
		t.Fatal("MapResult on Err must not call f")
	}

	me := opt.MapErr(opt.Err[int]("abc"), func(e string) int { return len(e) })
	if me.UnwrapErr() != 3 {
		t.Fatal("MapErr on Err")
	}
	if opt.MapErr(opt.Ok[int, string](1), func(e string) int { return len(e) }).Unwrap() != 1 {
		t.Fatal("MapErr on Ok")
	}

	parse := func(s string) opt.Result[int, error] { return opt.Try(strconv.Atoi(s)) }
	if opt.AndThenResult(opt.Ok[string, error]("12"), parse).Unwrap() != 12 {
		t.Fatal("AndThenResult on Ok")
	}
	if !opt.AndThenResult(opt.Ok[string, error]("x"), parse).IsErr() {
		t.Fatal("AndThenResult propagates the callback's Err")
	}
	sentinel := errors.New("upstream")
	called = false
	got := opt.AndThenResult(opt.Err[string](sentinel), func(s string) opt.Result[int, error] {
		called = true
		return parse(s)
	})
	if called || got.UnwrapErr() != sentinel {
		t.Fatal("AndThenResult on Err must not call f")
	}

	recovered := opt.OrElseResult(opt.Err[int]("e"), func(e string) opt.Result[int, int] {
		return opt.Ok[int, int](len(e))
	})
	if recovered.Unwrap() != 1 {
		t.Fatal("OrElseResult on Err")
	}
}

func TestResultMatchFlatten(t *testing.T) {
	show := func(r opt.Result[int, string]) string {
		return opt.MatchResult(r,
			func(v int) string { return "ok:" + strconv.Itoa(v) },
			func(e string) string { return "err:" + e },
		)
	}
	if show(opt.Ok[int, string](1)) != "ok:1" || show(opt.Err[int]("x")) != "err:x" {
		t.Fatal("MatchResult")
	}

	nested := opt.Ok[opt.Result[int, string], string](opt.Ok[int, string](9))
	if opt.FlattenResult(nested).Unwrap() != 9 {
		t.Fatal("FlattenResult Ok(Ok)")
	}
	outer := opt.Err[opt.Result[int, string]]("outer")
	if opt.FlattenResult(outer).UnwrapErr() != "outer" {
		t.Fatal("FlattenResult Err")
	}
}

func TestResultEqual(t *testing.T) {
	if !opt.EqualResult(opt.Ok[int, string](1), opt.Ok[int, string](1)) {
		t.Fatal("equal Oks")
	}
	if opt.EqualResult(opt.Ok[int, string](1), opt.Err[int]("1")) {
		t.Fatal("Ok vs Err")
	}
	if opt.EqualResult(opt.Err[int]("a"), opt.Err[int]("b")) {
		t.Fatal("different Errs")
	}
}

func TestResultTry(t *testing.T) {
	if opt.Try(strconv.Atoi("5")).Unwrap() != 5 {
		t.Fatal("Try on success")
	}
	r := opt.Try(strconv.Atoi("five"))
	var ne *strconv.NumError
	if !errors.As(r.UnwrapErr(), &ne) {
		t.Fatal("Try on failure should keep the error")
	}
}

func TestResultEither(t *testing.T) {
	e := opt.Ok[int, string](1).Either()
	if v, ok := e.GetRight(); !ok || v != 1 {
		t.Fatal("Ok becomes Right")
	}
	e = opt.Err[int]("x").Either()
	if l, ok := e.GetLeft(); !ok || l != "x" {
		t.Fatal("Err becomes Left")
	}

	if opt.FromEither(kont.Right[string](3)).Unwrap() != 3 {
		t.Fatal("Right becomes Ok")
	}
	if opt.FromEither(kont.Left[string, int]("y")).UnwrapErr() != "y" {
		t.Fatal("Left becomes Err")
	}
}

func TestResultFormat(t *testing.T) {
	if got := fmt.Sprint(opt.Ok[int, string](1)); got != "Ok(1)" {
		t.Fatalf("got %q", got)
	}
	if got := fmt.Sprint(opt.Err[int]("bad")); got != "Err(bad)" {
		t.Fatalf("got %q", got)
	}
	if got := fmt.Sprintf("%#v", opt.Err[int]("bad")); got != `opt.Err("bad")` {
		t.Fatalf("got %q", got)
	}
}

func TestResultUnwrapUnchecked(t *testing.T) {
	if opt.Ok[int, string](8).UnwrapUnchecked(opt.Unsafe{}) != 8 {
		t.Fatal("UnwrapUnchecked")
	}
}

func TestResultConsumeLeavesCopiesConsumed(t *testing.T) {
	var l ledger
	r := opt.Ok[handle, int](newHandle(&l, 7))
	a := r.Unwrap()
	if !r.IsConsumed() {
		t.Fatal("the caller's copy should read as consumed after Unwrap")
	}
	mustPanic(t, "consumed Result", func() { r.Unwrap() })
	r.Drop()
	a.Drop()
	if _, drops, _ := l.counts(); drops != 1 {
		t.Fatalf("drops of one value = %d, want 1", drops)
	}
}

func TestResultConsumingCombinatorsSpendTheSource(t *testing.T) {
	var l ledger
	e := opt.Err[int](newHandle(&l, 1))
	if !e.Ok().IsNone() {
		t.Fatal("Err.Ok() should be None")
	}
	mustPanic(t, "consumed Result", func() { e.UnwrapErr() })
	e.Drop()
	if _, drops, _ := l.counts(); drops != 1 {
		t.Fatalf("drops = %d, want 1", drops)
	}

	m := opt.Ok[handle, string](newHandle(&l, 2))
	id := func(h handle) int { return h.id }
	if opt.MapResult(m, id).Unwrap() != 2 {
		t.Fatal("MapResult")
	}
	mustPanic(t, "consumed Result", func() { opt.MapResult(m, id) })
	if m.String() != "<consumed>" {
		t.Fatalf("got %q", m.String())
	}

	c := opt.Ok[handle, string](newHandle(&l, 3))
	moved := c.Move()
	copied := moved
	_ = moved.Either()
	mustPanic(t, "consumed Result", func() { copied.Unwrap() })
}

func TestResultRelocatableCopiesStayReadable(t *testing.T) {
	r := opt.Ok[int, string](1)
	_ = r.Unwrap()
	if r.IsConsumed() || r.Unwrap() != 1 {
		t.Fatal("a Result of plain data is not tracked")
	}
}
