// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Cursors returns the slot indices of head and tail.
func (q *MPSC[T]) Cursors() (head, tail uint64) {
	return q.head.LoadAcquire(), q.tail.LoadAcquire() & indexMask
}

// InFlight returns the number of operations registered with the gate.
func (q *MPSC[T]) InFlight() int64 {
	return q.gate.InFlight()
}
