// Package host implements the frontend side of the ABI: the platform
// descriptor, renderer negotiation, the audio and video sinks, the
// synchronous input arbiter and the callback registry with its drive
// loop. The package stops at the contract surface; window creation,
// audio device output and file I/O belong to the embedding application,
// which consumes frames and samples through the accessors here.
package host

import (
	"runtime"
	"sync"

	"github.com/hydra-emu/core/pkg/bind"
	"github.com/hydra-emu/core/pkg/hc"
)

// defaultAudioBufferBytes is ~167ms at 48kHz stereo 16-bit.
const defaultAudioBufferBytes = 32768

// InputProvider supplies the current value of one input on one port. The
// frontend's input layer implements it; GetInputsSync calls it once per
// request.
type InputProvider func(port uint32, input hc.InputType) int64

// Config describes the platform capabilities and hooks of a frontend.
// Renderer versions left at VersionNotSupported mean the host cannot
// provide that API family at all.
type Config struct {
	GPUVendor string

	OpenGLVersion   hc.Version
	OpenGLESVersion hc.Version
	WebGLVersion    hc.Version
	VulkanVersion   hc.Version
	MetalVersion    hc.Version
	Direct3DVersion hc.Version

	// AudioBufferBytes is the sample sink capacity. Zero selects the
	// default.
	AudioBufferBytes int

	// InputPorts is how many controller ports the frontend arbitrates.
	// Zero means one.
	InputPorts uint32

	// Input resolves input requests. A nil provider reports every input
	// as zero.
	Input InputProvider

	// GL presentation hooks, supplied by the embedding application when
	// it offers a GL context. All three must be set for GL-rendered
	// cores to work.
	GlMakeCurrent    func()
	GlSwapBuffers    func()
	GlGetProcAddress func(name string) uintptr
}

// DefaultConfig returns a software-only host configuration with a single
// input port.
func DefaultConfig() Config {
	return Config{
		GPUVendor:        "none",
		AudioBufferBytes: defaultAudioBufferBytes,
		InputPorts:       1,
	}
}

// Host is one frontend endpoint. It carries the immutable platform
// descriptor and at most one live session at a time, mirroring the
// single-instance rule on the core side.
type Host struct {
	cfg  Config
	info *hc.HostInfo

	mu sync.Mutex
	// pending holds callbacks registered by the core during Create,
	// validated against the drive mode when the session begins.
	pending *hc.Callbacks
	session *session
}

// New builds a Host for the running platform. Architecture and operating
// system come from the Go runtime; renderer versions and hooks come from
// the configuration.
func New(cfg Config) *Host {
	if cfg.AudioBufferBytes <= 0 {
		cfg.AudioBufferBytes = defaultAudioBufferBytes
	}
	if cfg.InputPorts == 0 {
		cfg.InputPorts = 1
	}

	info := hc.NewHostInfo()
	info.Architecture = hostArchitecture(runtime.GOARCH)
	info.OperatingSystem = hostOperatingSystem(runtime.GOOS)
	info.GPUVendor = cfg.GPUVendor
	info.OpenGLVersion = cfg.OpenGLVersion
	info.OpenGLESVersion = cfg.OpenGLESVersion
	info.WebGLVersion = cfg.WebGLVersion
	info.VulkanVersion = cfg.VulkanVersion
	info.MetalVersion = cfg.MetalVersion
	info.Direct3DVersion = cfg.Direct3DVersion

	return &Host{cfg: cfg, info: info}
}

// GetHostInfo fills info with the platform descriptor. The descriptor is
// produced once at construction and never changes.
func (h *Host) GetHostInfo(info *hc.HostInfo) {
	if info == nil {
		return
	}
	header := info.Header
	*info = *h.info
	info.Header = header
	info.Type = hc.StructureTypeHostInfo
}

// Procs exports the host entry points as a resolved table, for handing
// directly to an in-process core.
func (h *Host) Procs() *bind.HostProcs {
	return &bind.HostProcs{
		GetHostInfo:            h.GetHostInfo,
		GetInputsSync:          h.GetInputsSync,
		ReconfigureEnvironment: h.ReconfigureEnvironment,
		PushSamples:            h.PushSamples,
		SwPushVideoFrame:       h.SwPushVideoFrame,
		GlMakeCurrent:          h.GlMakeCurrent,
		GlSwapBuffers:          h.GlSwapBuffers,
		GlGetProcAddress:       h.GlGetProcAddress,
		SetCallbacks:           h.SetCallbacks,
	}
}

// ProcMap exports the host entry points under their ABI names, in the
// shape a resolver hands to a core's LoadFunctions.
func (h *Host) ProcMap() map[string]any {
	return map[string]any{
		bind.ProcGetHostInfo:            h.GetHostInfo,
		bind.ProcGetInputsSync:          h.GetInputsSync,
		bind.ProcReconfigureEnvironment: h.ReconfigureEnvironment,
		bind.ProcPushSamples:            h.PushSamples,
		bind.ProcSwPushVideoFrame:       h.SwPushVideoFrame,
		bind.ProcGlMakeCurrent:          h.GlMakeCurrent,
		bind.ProcGlSwapBuffers:          h.GlSwapBuffers,
		bind.ProcGlGetProcAddress:       h.GlGetProcAddress,
		bind.ProcSetCallbacks:           h.SetCallbacks,
	}
}

func hostArchitecture(goarch string) hc.Architecture {
	switch goarch {
	case "386":
		return hc.ArchitectureX86
	case "amd64":
		return hc.ArchitectureX8664
	case "arm":
		return hc.ArchitectureAarch32
	case "arm64":
		return hc.ArchitectureAarch64
	case "wasm":
		return hc.ArchitectureWasm
	default:
		return hc.ArchitectureOther
	}
}

func hostOperatingSystem(goos string) hc.OperatingSystem {
	switch goos {
	case "linux":
		return hc.OperatingSystemLinux
	case "windows":
		return hc.OperatingSystemWindows
	case "darwin":
		return hc.OperatingSystemMacOS
	case "freebsd":
		return hc.OperatingSystemFreeBSD
	case "android":
		return hc.OperatingSystemAndroid
	case "ios":
		return hc.OperatingSystemIOS
	case "js":
		return hc.OperatingSystemWeb
	default:
		return hc.OperatingSystemOther
	}
}
