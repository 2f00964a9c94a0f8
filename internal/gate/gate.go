// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gate

import (
	"runtime"

	"code.hybscloud.com/atomix"
)

// State is a lifecycle state of a Gate.
type State uint64

const (
	Running      State = iota // Operations are admitted
	ShuttingDown              // Shutdown signaled, in-flight callers finishing
	Draining                  // Quiescent, a closer is draining storage
	Drained                   // Teardown complete
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting-down"
	case Draining:
		return "draining"
	case Drained:
		return "drained"
	default:
		return "unknown"
	}
}

// Gate admits operations while running and detects quiescence after
// shutdown. The zero value is a running gate.
type Gate struct {
	_        pad
	state    atomix.Uint64
	_        pad
	inflight atomix.Int64
	_        pad
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// Enter registers the caller as in-flight.
// Returns false, with no registration left behind, once shutdown is signaled.
//
// The counter is raised before the state is re-checked so that a caller
// admitted here is always visible to Quiesce.
func (g *Gate) Enter() bool {
	if State(g.state.LoadAcquire()) != Running {
		return false
	}
	g.inflight.AddAcqRel(1)
	if State(g.state.LoadAcquire()) != Running {
		g.inflight.AddAcqRel(-1)
		return false
	}
	return true
}

// Leave deregisters a caller admitted by Enter.
func (g *Gate) Leave() {
	g.inflight.AddAcqRel(-1)
}

// Shutdown moves the gate from Running to ShuttingDown.
// Reports whether this call performed the transition.
func (g *Gate) Shutdown() bool {
	return g.state.CompareAndSwapAcqRel(uint64(Running), uint64(ShuttingDown))
}

// Closed reports whether shutdown has been signaled.
func (g *Gate) Closed() bool {
	return State(g.state.LoadAcquire()) != Running
}

// Quiesce blocks until no caller is in-flight and returns the number of
// wait iterations. Every iteration calls wait (if non-nil) and then yields
// the processor. Quiesce must only be called after Shutdown.
func (g *Gate) Quiesce(wait func()) int {
	n := 0
	for g.inflight.LoadAcquire() > 0 {
		if wait != nil {
			wait()
		}
		runtime.Gosched()
		n++
	}
	return n
}

// BeginDrain claims the drain after quiescence.
// Exactly one caller observes true; the others must call AwaitDrained.
func (g *Gate) BeginDrain() bool {
	return g.state.CompareAndSwapAcqRel(uint64(ShuttingDown), uint64(Draining))
}

// EndDrain marks teardown complete.
func (g *Gate) EndDrain() {
	g.state.StoreRelease(uint64(Drained))
}

// AwaitDrained blocks until EndDrain has been called.
func (g *Gate) AwaitDrained(wait func()) {
	for State(g.state.LoadAcquire()) != Drained {
		if wait != nil {
			wait()
		}
		runtime.Gosched()
	}
}

// State returns the current lifecycle state.
func (g *Gate) State() State {
	return State(g.state.LoadAcquire())
}

// InFlight returns the number of registered callers. Advisory only.
func (g *Gate) InFlight() int64 {
	return g.inflight.LoadRelaxed()
}
