// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "go.uber.org/zap"

// Options configures queue creation.
type Options struct {
	// Slot count, used as is (no rounding)
	capacity int

	// Teardown
	backoff bool        // Exponential backoff while waiting for quiescence
	logger  *zap.Logger // Lifecycle events; nil means no logging
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// 1024 slots, 1023 usable
//	q, err := ringq.Build[Event](ringq.New(1024))
//
//	// Log teardown, back off exponentially while Close waits
//	q, err := ringq.Build[*Request](ringq.New(4096).Backoff().Logger(log))
type Builder struct {
	opts Options
}

// New creates a queue builder with the given slot count.
//
// The capacity is not rounded: a queue built with capacity n holds at most
// n-1 elements. Invalid capacities are reported by Build.
func New(capacity int) *Builder {
	return &Builder{opts: Options{capacity: capacity}}
}

// Backoff makes Close wait for in-flight operations with exponential
// backoff ([iox.Backoff]) instead of the default CPU spin ([spin.Wait]).
// Either way the waiting goroutine yields on every iteration.
//
// Prefer Backoff when producers may be descheduled for long periods while
// inside Enqueue, e.g. on oversubscribed machines.
func (b *Builder) Backoff() *Builder {
	b.opts.backoff = true
	return b
}

// Logger sets the logger for shutdown and drain events.
// Enqueue and Dequeue never log.
func (b *Builder) Logger(l *zap.Logger) *Builder {
	b.opts.logger = l
	return b
}

// Build creates an MPSC queue from the builder configuration.
// Returns ErrInvalidCapacity if the configured capacity is out of range.
func Build[T any](b *Builder) (*MPSC[T], error) {
	return newMPSC[T](b.opts)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill the cache line after a slot header.
type padShort [64 - 8]byte
