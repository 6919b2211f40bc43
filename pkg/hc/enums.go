package hc

// Architecture identifies the CPU architecture the host runs on.
type Architecture int32

const (
	ArchitectureUnknown Architecture = iota
	ArchitectureX86
	ArchitectureX8664
	ArchitectureAarch32
	ArchitectureAarch64
	ArchitectureWasm
	ArchitectureOther
)

// String returns the string representation of the architecture.
func (a Architecture) String() string {
	switch a {
	case ArchitectureX86:
		return "x86"
	case ArchitectureX8664:
		return "x86_64"
	case ArchitectureAarch32:
		return "aarch32"
	case ArchitectureAarch64:
		return "aarch64"
	case ArchitectureWasm:
		return "wasm"
	case ArchitectureOther:
		return "other"
	default:
		return "unknown"
	}
}

// OperatingSystem identifies the host operating system.
type OperatingSystem int32

const (
	OperatingSystemUnknown OperatingSystem = iota
	OperatingSystemLinux
	OperatingSystemWindows
	OperatingSystemMacOS
	OperatingSystemFreeBSD
	OperatingSystemAndroid
	OperatingSystemIOS
	OperatingSystemWeb
	OperatingSystemOther
)

// String returns the string representation of the operating system.
func (o OperatingSystem) String() string {
	switch o {
	case OperatingSystemLinux:
		return "linux"
	case OperatingSystemWindows:
		return "windows"
	case OperatingSystemMacOS:
		return "macos"
	case OperatingSystemFreeBSD:
		return "freebsd"
	case OperatingSystemAndroid:
		return "android"
	case OperatingSystemIOS:
		return "ios"
	case OperatingSystemWeb:
		return "web"
	case OperatingSystemOther:
		return "other"
	default:
		return "unknown"
	}
}

// DriveMode selects which side owns the main execution loop. It is chosen
// by the core during Create and is fixed for the life of the instance.
type DriveMode int32

const (
	// DriveModeNull means the drive mode has not been set yet.
	DriveModeNull DriveMode = iota

	// DriveModeSelfDriven cores run their own loop on a thread they
	// manage. The frontend only provides input, swaps buffers, and sets
	// the run state.
	DriveModeSelfDriven

	// DriveModeSelfDrivenExceptAudio is self-driven except that audio is
	// played by pushing samples to the frontend.
	DriveModeSelfDrivenExceptAudio

	// DriveModeFrontendDriven cores have their frame callback invoked by
	// the frontend at a frontend-controlled cadence.
	DriveModeFrontendDriven
)

// SelfDriven reports whether the mode runs the core's own loop.
func (m DriveMode) SelfDriven() bool {
	return m == DriveModeSelfDriven || m == DriveModeSelfDrivenExceptAudio
}

// String returns the string representation of the drive mode.
func (m DriveMode) String() string {
	switch m {
	case DriveModeNull:
		return "null"
	case DriveModeSelfDriven:
		return "self-driven"
	case DriveModeSelfDrivenExceptAudio:
		return "self-driven-except-audio"
	case DriveModeFrontendDriven:
		return "frontend-driven"
	default:
		return "unknown"
	}
}

// RunState is the execution state of a core instance. It is mutated only
// by the frontend through SetRunState and read by the core's loop.
type RunState int32

const (
	RunStateNull RunState = iota
	RunStateRunning
	RunStatePaused
	// RunStateQuit is terminal: the core stops and will not be resumed.
	RunStateQuit
)

// String returns the string representation of the run state.
func (s RunState) String() string {
	switch s {
	case RunStateNull:
		return "null"
	case RunStateRunning:
		return "running"
	case RunStatePaused:
		return "paused"
	case RunStateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ResetType distinguishes a soft reset (the console's reset button) from a
// hard reset (power cycling the console).
type ResetType int32

const (
	ResetTypeSoft ResetType = 1
	ResetTypeHard ResetType = 2
)

// String returns the string representation of the reset type.
func (t ResetType) String() string {
	switch t {
	case ResetTypeSoft:
		return "soft"
	case ResetTypeHard:
		return "hard"
	default:
		return "unknown"
	}
}

// LockResource names a shared resource protected by the self-driven lock
// exchange. Locks are per resource; acquiring one does not serialize
// access to the others.
type LockResource int32

const (
	LockResourceNull LockResource = iota
	LockResourceAudio
	LockResourceVideo
	LockResourceRunState
)

// String returns the string representation of the lock resource.
func (r LockResource) String() string {
	switch r {
	case LockResourceAudio:
		return "audio"
	case LockResourceVideo:
		return "video"
	case LockResourceRunState:
		return "run-state"
	default:
		return "unknown"
	}
}

// Capability tags the optional surfaces a core may implement beyond the
// base lifecycle. The set an instance supports is fixed at Create time;
// presence is queried by tag and the concrete surface is fetched by table
// lookup.
type Capability int32

const (
	CapabilityFrontendDriven Capability = iota + 1
	CapabilitySelfDriven
	CapabilitySoftwareRendered
	CapabilityOpenGLRendered
	CapabilityAudio
	CapabilityInput
	CapabilitySaveState
	CapabilityMultiplayer
	CapabilityLog
	CapabilityReadableMemory
	CapabilityRewind
	CapabilityCheat
)

// String returns the string representation of the capability.
func (c Capability) String() string {
	switch c {
	case CapabilityFrontendDriven:
		return "frontend-driven"
	case CapabilitySelfDriven:
		return "self-driven"
	case CapabilitySoftwareRendered:
		return "software-rendered"
	case CapabilityOpenGLRendered:
		return "opengl-rendered"
	case CapabilityAudio:
		return "audio"
	case CapabilityInput:
		return "input"
	case CapabilitySaveState:
		return "save-state"
	case CapabilityMultiplayer:
		return "multiplayer"
	case CapabilityLog:
		return "log"
	case CapabilityReadableMemory:
		return "readable-memory"
	case CapabilityRewind:
		return "rewind"
	case CapabilityCheat:
		return "cheat"
	default:
		return "unknown"
	}
}
