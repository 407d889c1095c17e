// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

// Unsafe is the capability marker for operations that skip a check.
//
// It carries no data. Operations that bypass an invariant (constructing a
// [NonNull] without a nil check, reading a payload without checking its
// discriminant, extracting a value without re-establishing the container)
// take an Unsafe as their first argument so the call site reads
//
//	v := o.UnwrapUnchecked(opt.Unsafe{})
//
// and visibly opts into the skipped check.
type Unsafe struct{}
