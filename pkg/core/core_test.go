package core

import (
	"errors"
	"sync/atomic"

	"github.com/hydra-emu/core/pkg/bind"
	"github.com/hydra-emu/core/pkg/hc"
)

// testEmulator is a configurable delegate driving the whole package's
// tests. It implements both runner interfaces; which one the machinery
// uses depends on the drive mode it negotiates.
type testEmulator struct {
	driveMode       hc.DriveMode
	renderer        hc.RendererType
	rendererVersion hc.Version

	configureErr error
	loadErr      error
	resetErr     error
	closeErr     error

	frames atomic.Int64
	steps  atomic.Int64

	loaded []string
	resets []hc.ResetType
	closed bool
}

func newTestEmulator() *testEmulator {
	return &testEmulator{
		driveMode:       hc.DriveModeFrontendDriven,
		renderer:        hc.RendererTypeSoftware,
		rendererVersion: hc.MakeVersion(1, 0),
	}
}

func (e *testEmulator) CoreInfo(info *hc.CoreInfo) {
	info.CoreName = "testcore"
	info.CoreVersion = "1.0.0"
	info.SystemName = "Test System"
	content := hc.NewContentInfo()
	content.Name = "ROM"
	content.Extensions = "bin,rom"
	info.LoadableContent = []*hc.ContentInfo{content}
}

func (e *testEmulator) Configure(env *hc.EnvironmentInfo) error {
	if e.configureErr != nil {
		return e.configureErr
	}
	env.DriveMode = e.driveMode
	video := hc.NewVideoInfo()
	video.RendererType = e.renderer
	video.RendererVersion = e.rendererVersion
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
	return nil
}

func (e *testEmulator) LoadContent(name, path string) error {
	if e.loadErr != nil {
		return e.loadErr
	}
	e.loaded = append(e.loaded, path)
	return nil
}

func (e *testEmulator) Reset(t hc.ResetType) error {
	if e.resetErr != nil {
		return e.resetErr
	}
	e.resets = append(e.resets, t)
	return nil
}

func (e *testEmulator) RunFrame()  { e.frames.Add(1) }
func (e *testEmulator) StepFrame() { e.steps.Add(1) }

func (e *testEmulator) Close() error {
	e.closed = true
	return e.closeErr
}

var errBoom = errors.New("boom")

// hostRecorder is a minimal stand-in for the frontend side: it answers
// the host-info query with a configurable platform and records the
// callbacks the core registers.
type hostRecorder struct {
	openGL    hc.Version
	callbacks *hc.Callbacks
}

func (h *hostRecorder) procMap() map[string]any {
	return map[string]any{
		bind.ProcGetHostInfo: func(info *hc.HostInfo) {
			info.Architecture = hc.ArchitectureX8664
			info.OperatingSystem = hc.OperatingSystemLinux
			info.OpenGLVersion = h.openGL
		},
		bind.ProcGetInputsSync: func(reqs []*hc.InputRequest) ([]int64, hc.Result) {
			return make([]int64, len(reqs)), hc.ResultSuccess
		},
		bind.ProcReconfigureEnvironment: func(*hc.EnvironmentInfo) hc.Result { return hc.ResultSuccess },
		bind.ProcPushSamples:            func(*hc.AudioData) hc.Result { return hc.ResultSuccess },
		bind.ProcSwPushVideoFrame:       func(*hc.ImageData) hc.Result { return hc.ResultSuccess },
		bind.ProcGlMakeCurrent:          func() hc.Result { return hc.ResultSuccess },
		bind.ProcGlSwapBuffers:          func() hc.Result { return hc.ResultSuccess },
		bind.ProcGlGetProcAddress:       func(string) uintptr { return 0 },
		bind.ProcSetCallbacks: func(cb *hc.Callbacks) hc.Result {
			h.callbacks = cb
			return hc.ResultSuccess
		},
	}
}

// newTestModule builds a module bound to a recorder host and returns
// both. The passed emulator is the one Create will wrap.
func newTestModule(emu Emulator) (*Module, *hostRecorder) {
	host := &hostRecorder{openGL: hc.OpenGLVersion46}
	m := NewModule(func() Emulator { return emu })
	if res := m.LoadFunctions(bind.MapResolver(host.procMap())); !res.Ok() {
		panic("test host resolution failed: " + res.String())
	}
	return m, host
}

func createdModule(emu Emulator) (*Module, *hostRecorder) {
	m, host := newTestModule(emu)
	if res := m.Create(hc.NewEnvironmentInfo()); !res.Ok() {
		panic("test create failed: " + res.String())
	}
	return m, host
}
