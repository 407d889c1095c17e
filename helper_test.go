// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt_test

import (
	"strconv"
	"strings"
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/opt"
)

// ledger counts life-cycle hook invocations across every copy of a payload.
type ledger struct {
	moves  atomix.Uint32
	drops  atomix.Uint32
	clones atomix.Uint32
}

func (l *ledger) counts() (moves, drops, clones uint32) {
	return l.moves.Load(), l.drops.Load(), l.clones.Load()
}

// handle owns an id and reports to its ledger. MoveTo leaves the source
// with id 0, and dropping an id-0 husk reports nothing.
// Neither relocatable by fallback (it moves and drops) nor declared.
type handle struct {
	id  int
	led *ledger
}

func newHandle(l *ledger, id int) handle { return handle{id: id, led: l} }

func (h *handle) MoveTo(dst *handle) {
	*dst = *h
	h.id = 0
	h.led.moves.Add(1)
}

func (h *handle) Drop() {
	if h.id == 0 {
		return
	}
	h.id = 0
	h.led.drops.Add(1)
}

func (h *handle) Clone() handle {
	h.led.clones.Add(1)
	return handle{id: h.id, led: h.led}
}

func (h handle) String() string { return "handle#" + strconv.Itoa(h.id) }

// owned drops like handle but declares itself relocatable: moving it
// is a bitwise copy with the source abandoned.
type owned struct {
	id  int
	led *ledger
}

func (o *owned) Drop() {
	if o.id == 0 {
		return
	}
	o.id = 0
	o.led.drops.Add(1)
}

func (*owned) TriviallyRelocatable() bool { return true }

var (
	_ opt.Mover[handle]  = (*handle)(nil)
	_ opt.Dropper        = (*handle)(nil)
	_ opt.Cloner[handle] = (*handle)(nil)
	_ opt.Relocatable    = (*owned)(nil)
)

// mustPanic runs f and fails unless it panics with a message containing want.
func mustPanic(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, want) {
			t.Fatalf("panic %q, want it to contain %q", msg, want)
		}
	}()
	f()
}
