package host

import (
	"testing"

	"github.com/hydra-emu/core/pkg/bind"
	"github.com/hydra-emu/core/pkg/hc"
)

// glHost is a configuration for a host offering OpenGL 3.3 alongside
// software rendering.
func glHostConfig() Config {
	cfg := DefaultConfig()
	cfg.GPUVendor = "test"
	cfg.OpenGLVersion = hc.MakeVersion(3, 3)
	return cfg
}

func testEnv(mode hc.DriveMode) *hc.EnvironmentInfo {
	env := hc.NewEnvironmentInfo()
	env.DriveMode = mode
	video := hc.NewVideoInfo()
	video.RendererType = hc.RendererTypeSoftware
	video.RendererVersion = hc.MakeVersion(1, 0)
	video.Width = 256
	video.Height = 240
	video.FrameRate = 60
	video.Format = hc.PixelFormatRGBA32
	env.Video = video
	audio := hc.NewAudioInfo()
	audio.Format = hc.AudioFormatS16PCM
	audio.Channels = hc.AudioChannelsStereo
	audio.SampleRate = 48000
	env.Audio = audio
	return env
}

func frameCallbacks(fn func()) *hc.Callbacks {
	if fn == nil {
		fn = func() {}
	}
	cb := hc.NewCallbacks()
	cb.FrontendDriven = &hc.FrontendDrivenCallbacks{RunFrame: fn}
	return cb
}

func loopCallbacks(fn func()) *hc.Callbacks {
	if fn == nil {
		fn = func() {}
	}
	cb := hc.NewCallbacks()
	cb.SelfDriven = &hc.SelfDrivenCallbacks{EntryPoint: fn}
	return cb
}

// openHost builds a host with an open session in the given drive mode.
func openHost(t *testing.T, cfg Config, env *hc.EnvironmentInfo) *Host {
	t.Helper()
	h := New(cfg)
	var cb *hc.Callbacks
	if env.DriveMode == hc.DriveModeFrontendDriven {
		cb = frameCallbacks(nil)
	} else {
		cb = loopCallbacks(nil)
	}
	if res := h.SetCallbacks(cb); !res.Ok() {
		t.Fatalf("SetCallbacks: %v", res)
	}
	if _, err := h.BeginSession(env); err != nil {
		t.Fatalf("BeginSession: %v", err)
	}
	return h
}

func TestNew_PlatformDescriptor(t *testing.T) {
	h := New(glHostConfig())

	info := hc.NewHostInfo()
	h.GetHostInfo(info)

	if info.Architecture == hc.ArchitectureUnknown {
		t.Error("architecture not detected")
	}
	if info.OperatingSystem == hc.OperatingSystemUnknown {
		t.Error("operating system not detected")
	}
	if info.GPUVendor != "test" {
		t.Errorf("GPUVendor = %q, want %q", info.GPUVendor, "test")
	}
	if got := info.MaxVersion(hc.RendererTypeOpenGL); got != hc.MakeVersion(3, 3) {
		t.Errorf("OpenGL max = %v, want 3.3", got)
	}
	if got := info.MaxVersion(hc.RendererTypeVulkan); got != hc.VersionNotSupported {
		t.Errorf("Vulkan max = %v, want not-supported", got)
	}
}

func TestGetHostInfo_PreservesCallerChain(t *testing.T) {
	h := New(DefaultConfig())

	ext := hc.NewContentInfo()
	info := hc.NewHostInfo()
	info.Next = ext
	h.GetHostInfo(info)

	if info.Kind() != hc.StructureTypeHostInfo {
		t.Errorf("kind = %v, want host-info", info.Kind())
	}
	if info.Chained() != hc.Record(ext) {
		t.Error("caller's extension chain was overwritten")
	}
}

func TestHostArchitecture(t *testing.T) {
	tests := []struct {
		goarch string
		want   hc.Architecture
	}{
		{"386", hc.ArchitectureX86},
		{"amd64", hc.ArchitectureX8664},
		{"arm", hc.ArchitectureAarch32},
		{"arm64", hc.ArchitectureAarch64},
		{"wasm", hc.ArchitectureWasm},
		{"riscv64", hc.ArchitectureOther},
	}
	for _, tt := range tests {
		if got := hostArchitecture(tt.goarch); got != tt.want {
			t.Errorf("hostArchitecture(%q) = %v, want %v", tt.goarch, got, tt.want)
		}
	}
}

func TestHostOperatingSystem(t *testing.T) {
	tests := []struct {
		goos string
		want hc.OperatingSystem
	}{
		{"linux", hc.OperatingSystemLinux},
		{"windows", hc.OperatingSystemWindows},
		{"darwin", hc.OperatingSystemMacOS},
		{"freebsd", hc.OperatingSystemFreeBSD},
		{"android", hc.OperatingSystemAndroid},
		{"ios", hc.OperatingSystemIOS},
		{"js", hc.OperatingSystemWeb},
		{"plan9", hc.OperatingSystemOther},
	}
	for _, tt := range tests {
		if got := hostOperatingSystem(tt.goos); got != tt.want {
			t.Errorf("hostOperatingSystem(%q) = %v, want %v", tt.goos, got, tt.want)
		}
	}
}

func TestProcMap_ResolvesCompleteTable(t *testing.T) {
	h := New(DefaultConfig())

	procs, err := bind.ResolveHost(bind.MapResolver(h.ProcMap()))
	if err != nil {
		t.Fatalf("ResolveHost: %v", err)
	}

	info := hc.NewHostInfo()
	procs.GetHostInfo(info)
	if info.OperatingSystem == hc.OperatingSystemUnknown {
		t.Error("resolved GetHostInfo did not fill the descriptor")
	}
}
