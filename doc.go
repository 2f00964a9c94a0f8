// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringq provides a bounded, array-backed, lock-free
// multi-producer single-consumer FIFO queue with two-phase teardown.
//
// # Quick Start
//
// Direct constructor:
//
//	q, err := ringq.NewMPSC[Event](1024)
//	if err != nil {
//	    return err // ErrInvalidCapacity
//	}
//	defer q.Close()
//
// Builder API for teardown options:
//
//	q, err := ringq.Build[Event](ringq.New(1024).Backoff().Logger(log))
//
// # Basic Usage
//
//	// Enqueue (non-blocking, any number of producers)
//	value := 42
//	err := q.Enqueue(&value)
//	if ringq.IsWouldBlock(err) {
//	    // Queue is full - handle backpressure
//	}
//
//	// Dequeue (non-blocking, one consumer)
//	elem, err := q.Dequeue()
//	if ringq.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// EnqueueMove hands an element over instead of copying it: on success the
// source is reset to its zero value, so the consumer holds the only copy of
// any pointer or slice header it contained.
//
// # Common Patterns
//
// Event Aggregation:
//
//	// Multiple event sources → Single processor
//	q, _ := ringq.NewMPSC[Event](4096)
//
//	for sensor := range slices.Values(sensors) {
//	    go func(s Sensor) {
//	        backoff := iox.Backoff{}
//	        for ev := range s.Events() {
//	            for {
//	                err := q.Enqueue(&ev)
//	                if err == nil || ringq.IsClosed(err) {
//	                    break
//	                }
//	                backoff.Wait()
//	            }
//	            backoff.Reset()
//	        }
//	    }(sensor)
//	}
//
//	go func() {
//	    for {
//	        ev, err := q.Dequeue()
//	        if ringq.IsClosed(err) {
//	            return
//	        }
//	        if err == nil {
//	            aggregate(ev)
//	        }
//	    }
//	}()
//
// # Algorithm
//
// The queue is a ring of n slots. Each slot holds an element and an atomic
// ready flag. Two cursors index the ring: head (next slot to consume) and
// tail (next slot to reserve).
//
//	Enqueue: CAS tail → tail+1, write slot, ready = true (release)
//	Dequeue: ready? (acquire), read slot, ready = false (release), head+1
//
// The CAS hands out each slot index to exactly one producer; losers retry.
// The ready flag, not the cursor, is the point at which the element becomes
// visible to the consumer. A reserved but unwritten slot makes Dequeue
// return ErrWouldBlock, never a stale element.
//
// The tail word keeps a reservation generation next to the slot index, so a
// producer whose view of tail is a full lap old cannot win the CAS.
//
// Enqueue is lock-free but not wait-free: under contention one producer
// wins per round. Dequeue is wait-free.
//
// # Error Handling
//
// Queues return [ErrWouldBlock] when operations cannot proceed. This error
// is sourced from [code.hybscloud.com/iox] for ecosystem consistency.
// [ErrClosed] is returned after shutdown and is terminal.
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Enqueue(&item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if !ringq.IsWouldBlock(err) {
//	        return err // ErrClosed
//	    }
//	    backoff.Wait()
//	}
//
// Constructors return [ErrInvalidCapacity] for a capacity below 1 or above
// the 32-bit index range.
//
// # Capacity
//
// Capacity is the slot count and is not rounded. One slot always stays
// free to tell a full ring from an empty one:
//
//	q, _ := ringq.NewMPSC[int](5)  // q.Cap() == 4
//	q, _ := ringq.NewMPSC[int](1)  // q.Cap() == 0, every Enqueue fails
//
// Length is intentionally not provided. [MPSC.Empty] is an advisory
// snapshot and not a synchronization point.
//
// # Thread Safety
//
// Enqueue and EnqueueMove may be called from any number of goroutines.
// Dequeue must be called from one goroutine at a time. Violating this
// causes undefined behavior including data corruption.
//
// # Graceful Shutdown
//
// Teardown is two-phase:
//
//	q.Shutdown() // Running → ShuttingDown: new calls return ErrClosed
//	q.Close()    // wait for in-flight calls, then drain → Drained
//
// Close alone performs both phases. It spins, yielding the processor on
// every iteration, until no Enqueue or Dequeue is in progress, and only then
// touches the ring. Elements still buffered are discarded, not delivered:
// Dequeue rejects once shutdown starts. Discarded elements implementing
// [Releaser] have Release called once.
//
// Consumers that must see every element should stop producers, drain with
// Dequeue until ErrWouldBlock, and call Close afterwards.
//
// # Race Detection
//
// Go's race detector cannot observe happens-before relationships established
// through atomix acquire-release orderings on separate variables. Element
// data is published through the slot's ready flag, so concurrent tests may
// report false positives. Such tests are skipped when [RaceEnabled] is set.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// backoff, [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, [code.hybscloud.com/spin] for CPU pause instructions,
// and [go.uber.org/zap] for optional lifecycle logging.
package ringq
