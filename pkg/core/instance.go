package core

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hydra-emu/core/pkg/hc"
)

// Instance is the single live instance of a core module. It owns the
// negotiated environment, the run state, the capability table and, for
// self-driven cores, the loop and its named-resource locks. Instances are
// created and destroyed only through a Module.
type Instance struct {
	delegate Emulator
	env      *hc.EnvironmentInfo
	caps     map[hc.Capability]any

	locks lockSet

	// runState is written by the frontend through SetRunState and read
	// by the loop; both sides bracket access with the run-state lock.
	runState hc.RunState

	mu            sync.Mutex // lifecycle fields below
	contentLoaded bool
	destroyed     bool

	loopStarted atomic.Bool
	loopDone    chan struct{}
}

func newInstance(delegate Emulator, env *hc.EnvironmentInfo) *Instance {
	inst := &Instance{
		delegate: delegate,
		env:      env,
		loopDone: make(chan struct{}),
	}
	inst.caps = capabilitiesOf(delegate, env)
	return inst
}

// DriveMode returns the drive mode fixed at creation.
func (i *Instance) DriveMode() hc.DriveMode { return i.env.DriveMode }

// Environment returns the negotiated environment. The caller must treat
// it as read-only; reconfiguration goes through the frontend's
// reconfigure entry point.
func (i *Instance) Environment() *hc.EnvironmentInfo { return i.env }

// ContentLoaded reports whether content has been loaded at least once.
// Content may load before or after the run state first flips to running,
// so this gates nothing; it exists for frontend bookkeeping.
func (i *Instance) ContentLoaded() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.contentLoaded
}

// Destroyed reports whether the owning module has torn the instance down.
// A frontend holding a stale handle sees true and must discard it.
func (i *Instance) Destroyed() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.destroyed
}

// Has reports whether the instance supports the capability.
func (i *Instance) Has(c hc.Capability) bool {
	_, ok := i.caps[c]
	return ok
}

// Capability returns the surface registered for the tag, or nil. Use the
// package-level As helper for a typed lookup.
func (i *Instance) Capability(c hc.Capability) any {
	return i.caps[c]
}

// As fetches a capability surface as a concrete type: the replacement for
// downcasting in the interface-inheritance revision of this ABI. The
// second return is false when the instance lacks the capability.
func As[T any](i *Instance, c hc.Capability) (T, bool) {
	v, ok := i.caps[c].(T)
	return v, ok
}

// Lock acquires the named resource. Only self-driven instances share
// state across threads, so calling this on a frontend-driven instance is
// a drive-mode conflict.
func (i *Instance) Lock(r hc.LockResource) hc.Result {
	if i.Destroyed() {
		return hc.ResultErrNoSuchInstance
	}
	if !i.env.DriveMode.SelfDriven() {
		return hc.ResultErrWrongDriveMode
	}
	return i.locks.acquire(r)
}

// Unlock releases the named resource.
func (i *Instance) Unlock(r hc.LockResource) hc.Result {
	if i.Destroyed() {
		return hc.ResultErrNoSuchInstance
	}
	if !i.env.DriveMode.SelfDriven() {
		return hc.ResultErrWrongDriveMode
	}
	return i.locks.release(r)
}

// LockStats returns hold-time accounting for the named resource.
func (i *Instance) LockStats(r hc.LockResource) LockStats {
	return i.locks.stats(r)
}

// RunState returns the current run state, read under the run-state lock.
func (i *Instance) RunState() hc.RunState {
	i.locks.acquire(hc.LockResourceRunState)
	s := i.runState
	i.locks.release(hc.LockResourceRunState)
	return s
}

// setRunState mutates the run state under the run-state lock. The quit
// state is terminal; any transition away from it is rejected.
func (i *Instance) setRunState(s hc.RunState) bool {
	i.locks.acquire(hc.LockResourceRunState)
	defer i.locks.release(hc.LockResourceRunState)
	if i.runState == hc.RunStateQuit {
		return false
	}
	i.runState = s
	return true
}

// runFrame is the frontend-driven frame callback. The frontend guarantees
// no concurrent call into the core during the callback, so no locking is
// needed; the run-state check keeps a paused instance from advancing if
// the frontend drives it anyway.
func (i *Instance) runFrame() {
	if i.RunState() != hc.RunStateRunning {
		return
	}
	if runner, ok := i.delegate.(FrameRunner); ok {
		runner.RunFrame()
	}
}

// loopIdleInterval is how long the self-driven loop sleeps while the run
// state is paused or not yet set. It bounds how late a quit can be
// observed.
const loopIdleInterval = time.Millisecond

// runLoop is the self-driven loop body, started by the frontend on a
// thread the instance then owns. Each iteration copies the run state
// under the run-state lock, releases it, and only then does frame work;
// holding the lock across StepFrame would serialize the frontend against
// the loop and defeat self-driven mode.
func (i *Instance) runLoop() {
	if !i.loopStarted.CompareAndSwap(false, true) {
		return
	}
	defer close(i.loopDone)

	stepper, ok := i.delegate.(LoopStepper)
	if !ok {
		return
	}

	for {
		i.locks.acquire(hc.LockResourceRunState)
		state := i.runState
		i.locks.release(hc.LockResourceRunState)

		switch state {
		case hc.RunStateQuit:
			return
		case hc.RunStateRunning:
			stepper.StepFrame()
		default:
			// Paused or not yet started: no forward progress, no
			// video or audio output.
			time.Sleep(loopIdleInterval)
		}
	}
}

// stopLoop makes the loop observe quit and waits for it to exit. Safe to
// call for instances whose loop never started.
func (i *Instance) stopLoop() {
	i.locks.acquire(hc.LockResourceRunState)
	i.runState = hc.RunStateQuit
	i.locks.release(hc.LockResourceRunState)

	if i.loopStarted.Load() {
		<-i.loopDone
	}
}

// capabilitiesOf builds the capability table once at create time. Render
// and drive capabilities derive from the negotiated environment; the
// behavioral ones derive from the interfaces the delegate implements.
// Querying is set membership, fetching is a table lookup; nothing is
// re-derived after creation.
func capabilitiesOf(delegate Emulator, env *hc.EnvironmentInfo) map[hc.Capability]any {
	caps := make(map[hc.Capability]any)

	if env.DriveMode == hc.DriveModeFrontendDriven {
		if v, ok := delegate.(FrameRunner); ok {
			caps[hc.CapabilityFrontendDriven] = v
		}
	} else if env.DriveMode.SelfDriven() {
		if v, ok := delegate.(LoopStepper); ok {
			caps[hc.CapabilitySelfDriven] = v
		}
	}

	if env.Video != nil {
		switch env.Video.RendererType {
		case hc.RendererTypeSoftware:
			caps[hc.CapabilitySoftwareRendered] = delegate
		case hc.RendererTypeOpenGL, hc.RendererTypeOpenGLES, hc.RendererTypeWebGL:
			caps[hc.CapabilityOpenGLRendered] = delegate
		}
	}
	if env.Audio != nil && env.Audio.Valid() {
		caps[hc.CapabilityAudio] = delegate
	}

	if v, ok := delegate.(InputConsumer); ok {
		caps[hc.CapabilityInput] = v
	}
	if v, ok := delegate.(SaveStater); ok {
		caps[hc.CapabilitySaveState] = v
	}
	if v, ok := delegate.(MemoryReader); ok {
		caps[hc.CapabilityReadableMemory] = v
	}
	if v, ok := delegate.(Rewinder); ok {
		caps[hc.CapabilityRewind] = v
	}
	if v, ok := delegate.(Cheater); ok {
		caps[hc.CapabilityCheat] = v
	}
	if v, ok := delegate.(Multiplayer); ok {
		caps[hc.CapabilityMultiplayer] = v
	}
	if v, ok := delegate.(LogSource); ok {
		caps[hc.CapabilityLog] = v
	}

	return caps
}
