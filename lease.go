// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

import "code.hybscloud.com/atomix"

// lease is the one-shot ownership token of a payload that is not
// relocatable. Every bitwise copy of the holder shares it. The first
// consumer claims it, and copies that still hold a claimed lease read as
// moved-from, so a stale copy can neither consume nor destroy the payload
// a second time.
//
// Relocatable payloads carry no lease: a nil lease is never spent.
type lease = atomix.Uint32

// grant returns a fresh lease, or nil when the payload needs none.
func grant(relocatable bool) *lease {
	if relocatable {
		return nil
	}
	return new(lease)
}

// spent reports whether l has been claimed.
func spent(l *lease) bool {
	return l != nil && l.Load() != 0
}

// claim marks l used. Panics if it already was.
func claim(l *lease, what string) {
	if l != nil && l.Swap(1) != 0 {
		panic("opt: use of moved-from " + what)
	}
}
