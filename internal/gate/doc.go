// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gate implements the shutdown and quiescence controller used by
// ringq queues.
//
// A Gate tracks a one-shot lifecycle state and the number of callers
// currently executing inside a queue operation. Teardown moves the state out
// of Running, waits until the in-flight count reaches zero, and only then
// touches the queue's storage.
//
//	Running → ShuttingDown → Draining → Drained
//
// This package is internal to ringq and is not part of the public API.
package gate
