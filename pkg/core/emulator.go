// Package core implements the core side of the hydra ABI: the lifecycle
// state machine of the single live instance, the drive-mode loop
// contracts, and the capability table through which a frontend discovers
// what an emulator supports beyond the base lifecycle.
//
// An emulator author implements Emulator plus whichever optional
// interfaces apply, wraps the result in a Module, and exports the module's
// proc table to the frontend.
package core

import "github.com/hydra-emu/core/pkg/hc"

// Emulator is the delegate an actual emulator implements. The Module and
// Instance machinery handles ABI validation, state transitions and
// locking; the delegate only supplies emulation behavior.
type Emulator interface {
	// CoreInfo fills the static identity record: name, version, system,
	// loadable content types.
	CoreInfo(info *hc.CoreInfo)

	// Configure populates the environment during Create: drive mode,
	// renderer family and version, resolution, frame rate, audio layout.
	// A returned error fails the Create with a core error.
	Configure(env *hc.EnvironmentInfo) error

	// LoadContent loads content by name and path. The path's
	// interpretation belongs entirely to the emulator. A returned error
	// maps to a bad-content result and leaves prior state intact.
	LoadContent(name, path string) error

	// Reset reinitializes emulated state. Content and environment are
	// kept.
	Reset(t hc.ResetType) error
}

// FrameRunner is implemented by frontend-driven emulators. RunFrame
// advances emulation by one frame; it is invoked by the frontend at the
// frontend's cadence, and during the call the emulator has exclusive
// access to push video and audio.
type FrameRunner interface {
	RunFrame()
}

// LoopStepper is implemented by self-driven emulators. StepFrame is
// called repeatedly by the instance's loop, outside any lock; the loop
// itself checks run state between steps under the run-state lock.
type LoopStepper interface {
	StepFrame()
}

// InputConsumer is implemented by emulators that query controller input
// from the frontend.
type InputConsumer interface {
	// InputPorts returns how many controller ports the emulated system
	// has.
	InputPorts() uint32
}

// SaveStater is implemented by emulators that can serialize and restore
// their emulated state.
type SaveStater interface {
	SaveState() ([]byte, error)
	LoadState(data []byte) error
}

// MemoryReader is implemented by emulators that let the frontend read
// emulated memory, used for debuggers and achievements.
type MemoryReader interface {
	ReadMemory(address uint32, buf []byte) error
}

// Rewinder is implemented by emulators that support rewinding.
type Rewinder interface {
	RewindFrame() error
	RewindFrameCount() uint32
	// SetRewindFrameCount returns false when the requested depth cannot
	// be honored.
	SetRewindFrameCount(count uint32) bool
}

// Cheater is implemented by emulators that support cheat codes.
type Cheater interface {
	AddCheat(code string) (uint32, error)
	RemoveCheat(id uint32)
	EnableCheat(id uint32)
	DisableCheat(id uint32)
}

// Multiplayer is implemented by emulators that support more than one
// player.
type Multiplayer interface {
	ActivatePlayer(player uint32)
	DeactivatePlayer(player uint32)
	MinimumPlayerCount() uint32
	MaximumPlayerCount() uint32
}

// LogSource is implemented by emulators that route their log output
// through the frontend.
type LogSource interface {
	SetLogOutput(fn func(message string))
}
