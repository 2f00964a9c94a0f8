// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"fmt"
	"math"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
	"go.uber.org/zap"

	"code.hybscloud.com/ringq/internal/gate"
)

// MPSC is a bounded array-backed multi-producer single-consumer queue.
//
// Producers reserve a slot by advancing tail with CAS, write the element,
// then publish it through the slot's ready flag. The single consumer checks
// the ready flag at head, takes the element, clears the flag and advances
// head. Cursor indices alone cannot tell a reserved slot from a written
// one; the ready flag is the publication point.
//
// One slot is always left unreserved so that next(tail) == head means full:
// a queue of size n holds at most n-1 elements.
//
// Memory: n slots (data + 8 bytes, cache line padded)
type MPSC[T any] struct {
	_      pad
	head   atomix.Uint64 // Slot index, written by the consumer only
	_      pad
	tail   atomix.Uint64 // generation<<32 | slot index, producers CAS here
	_      pad
	gate   gate.Gate
	buffer []mpscSlot[T]
	size   uint64

	backoff bool
	log     *zap.Logger
}

type mpscSlot[T any] struct {
	ready atomix.Bool
	data  T
	_     padShort
}

const (
	indexBits = 32
	indexMask = 1<<indexBits - 1
)

// maxSize is the largest slot count addressable by the tail index half.
const maxSize = math.MaxUint32

// NewMPSC creates a queue with the given number of slots.
// At most capacity-1 elements can be buffered at once.
//
// Returns ErrInvalidCapacity if capacity < 1 or capacity exceeds the
// 32-bit index range. NewMPSC(1) succeeds, but every Enqueue on it fails.
func NewMPSC[T any](capacity int) (*MPSC[T], error) {
	return Build[T](New(capacity))
}

func newMPSC[T any](opts Options) (*MPSC[T], error) {
	if opts.capacity < 1 || uint64(opts.capacity) > maxSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, opts.capacity)
	}
	log := opts.logger
	if log == nil {
		log = zap.NewNop()
	}
	return &MPSC[T]{
		buffer:  make([]mpscSlot[T], opts.capacity),
		size:    uint64(opts.capacity),
		backoff: opts.backoff,
		log:     log,
	}, nil
}

// Enqueue copies *elem into the queue (multiple producers safe).
// Returns ErrWouldBlock if the queue is full, ErrClosed after Shutdown.
func (q *MPSC[T]) Enqueue(elem *T) error {
	return q.enqueue(elem, false)
}

// EnqueueMove transfers *elem into the queue (multiple producers safe).
// On success *elem is reset to the zero value; the consumer receives the
// only live copy. On failure *elem is left untouched.
func (q *MPSC[T]) EnqueueMove(elem *T) error {
	return q.enqueue(elem, true)
}

func (q *MPSC[T]) enqueue(elem *T, move bool) error {
	if !q.gate.Enter() {
		return ErrClosed
	}
	defer q.gate.Leave()

	sw := spin.Wait{}
	for {
		tail := q.tail.LoadRelaxed()
		idx := tail & indexMask
		next := (idx + 1) % q.size

		if next == q.head.LoadAcquire() {
			return ErrWouldBlock
		}
		slot := &q.buffer[idx]
		// A consumer lapped by producers has not released this slot yet.
		if slot.ready.LoadAcquire() {
			return ErrWouldBlock
		}

		gen := tail >> indexBits
		if q.tail.CompareAndSwapAcqRel(tail, (gen+1)<<indexBits|next) {
			slot.data = *elem
			if move {
				var zero T
				*elem = zero
			}
			slot.ready.StoreRelease(true)
			return nil
		}
		sw.Once()
	}
}

// Dequeue removes and returns the oldest element (single consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty and
// (zero-value, ErrClosed) after Shutdown, even if elements remain buffered.
func (q *MPSC[T]) Dequeue() (T, error) {
	var zero T
	if !q.gate.Enter() {
		return zero, ErrClosed
	}
	defer q.gate.Leave()

	elem, ok := q.take()
	if !ok {
		return zero, ErrWouldBlock
	}
	return elem, nil
}

// take runs the consumer side of the protocol without consulting the gate.
func (q *MPSC[T]) take() (T, bool) {
	var zero T
	head := q.head.LoadRelaxed()
	tail := q.tail.LoadAcquire()
	slot := &q.buffer[head]
	if head == tail&indexMask || !slot.ready.LoadAcquire() {
		return zero, false
	}

	elem := slot.data
	slot.data = zero
	slot.ready.StoreRelease(false)
	q.head.StoreRelease((head + 1) % q.size)
	return elem, true
}

// Empty reports whether the cursors coincide.
// The result is a snapshot and may be stale by the time it is used.
func (q *MPSC[T]) Empty() bool {
	return q.head.LoadRelaxed() == q.tail.LoadRelaxed()&indexMask
}

// Cap returns the maximum number of buffered elements (slots - 1).
func (q *MPSC[T]) Cap() int {
	return int(q.size) - 1
}

// Size returns the number of slots the queue was created with.
func (q *MPSC[T]) Size() int {
	return int(q.size)
}

// State returns the queue's lifecycle state.
func (q *MPSC[T]) State() State {
	return q.gate.State()
}

// Shutdown signals that the queue accepts no further operations.
// Enqueue and Dequeue calls that start afterwards return ErrClosed.
// Calls already in progress complete normally. Shutdown is idempotent.
func (q *MPSC[T]) Shutdown() {
	if q.gate.Shutdown() {
		q.log.Debug("ringq: shutdown initiated", zap.Int("size", q.Size()))
	}
}

// Close shuts the queue down and tears it down.
//
// Close waits until every Enqueue and Dequeue in progress has returned,
// then discards all elements still buffered. Discarded elements are not
// delivered; those implementing [Releaser] have Release called once.
// Concurrent and repeated calls return after the first teardown finished.
func (q *MPSC[T]) Close() {
	q.Shutdown()
	wait := q.waiter()
	n := q.gate.Quiesce(wait)
	if !q.gate.BeginDrain() {
		q.gate.AwaitDrained(wait)
		return
	}
	q.log.Debug("ringq: quiescent", zap.Int("waits", n))

	released := q.drain()
	q.gate.EndDrain()
	q.log.Debug("ringq: drained",
		zap.Int("released", released),
		zap.Int("size", q.Size()))
}

// drain empties the buffer after quiescence. Every reserved slot has been
// published by then, so take only stops at the real end of the queue.
func (q *MPSC[T]) drain() int {
	n := 0
	for {
		elem, ok := q.take()
		if !ok {
			return n
		}
		if r, ok := any(elem).(Releaser); ok {
			r.Release()
		}
		n++
	}
}

func (q *MPSC[T]) waiter() func() {
	if q.backoff {
		b := iox.Backoff{}
		return b.Wait
	}
	sw := spin.Wait{}
	return sw.Once
}
