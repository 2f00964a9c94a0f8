// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "code.hybscloud.com/ringq/internal/gate"

// Queue is the combined producer-consumer interface for a FIFO queue.
//
// Queue provides non-blocking Enqueue and Dequeue operations. Both return
// ErrWouldBlock when they cannot proceed (queue full or empty) and
// ErrClosed once the queue has been shut down.
//
// The interface intentionally excludes length because accurate counts in
// lock-free algorithms require expensive cross-core synchronization.
// Track counts in application logic when needed.
//
// Example:
//
//	q, _ := ringq.NewMPSC[int](1024)
//	defer q.Close()
//
//	val := 42
//	if err := q.Enqueue(&val); err != nil {
//	    // Handle full or closed queue
//	}
//
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Closer
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs on the
// call. Enqueue stores a copy, so the original can be modified after it
// returns. EnqueueMove hands the element over and zeroes the original.
type Producer[T any] interface {
	// Enqueue adds a copy of *elem to the queue (non-blocking).
	// Returns nil on success, ErrWouldBlock if the queue is full,
	// ErrClosed after shutdown.
	Enqueue(elem *T) error

	// EnqueueMove adds *elem to the queue and resets *elem to the zero
	// value on success. On failure *elem is unchanged.
	EnqueueMove(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value and its slot is cleared to allow garbage
// collection of referenced objects. Only one goroutine may consume at a
// time; this is not checked.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is empty and
	// (zero-value, ErrClosed) after shutdown.
	Dequeue() (T, error)

	// Empty reports a snapshot of whether the queue holds no elements.
	Empty() bool
}

// Closer tears a queue down in two phases.
//
// Example:
//
//	q.Shutdown()   // new Enqueue/Dequeue calls fail with ErrClosed
//	prodWg.Wait()  // optional: let producers observe ErrClosed and exit
//	q.Close()      // wait for in-flight calls, then discard the rest
type Closer interface {
	// Shutdown stops admitting operations. It never blocks.
	Shutdown()

	// Close calls Shutdown, waits until no operation is in progress and
	// discards buffered elements. Close never fails.
	Close()
}

// Releaser is implemented by elements that hold resources.
//
// Elements still buffered when a queue is closed are never delivered to the
// consumer. If such an element implements Releaser, Close calls Release on
// it exactly once.
type Releaser interface {
	Release()
}

// State is the lifecycle state of a queue.
type State = gate.State

// Lifecycle states. Transitions are one-way.
const (
	StateRunning      = gate.Running
	StateShuttingDown = gate.ShuttingDown
	StateDraining     = gate.Draining
	StateDrained      = gate.Drained
)

var _ Queue[int] = (*MPSC[int])(nil)
