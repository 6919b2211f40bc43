package e2e

import (
	"errors"
	"testing"

	"github.com/hydra-emu/core/pkg/hc"
	"github.com/hydra-emu/core/pkg/host"
)

func TestSession_CoreIdentity(t *testing.T) {
	hr := newHarness(t, hc.DriveModeFrontendDriven)

	info := hc.NewCoreInfo()
	hr.Module.GetCoreInfo(info)

	if info.CoreName != "pixelcore" {
		t.Errorf("CoreName = %q, want %q", info.CoreName, "pixelcore")
	}
	if info.SystemName != "Pixel Machine" {
		t.Errorf("SystemName = %q, want %q", info.SystemName, "Pixel Machine")
	}
	if len(info.LoadableContent) != 1 || info.LoadableContent[0].Extensions != "img" {
		t.Errorf("LoadableContent = %+v, want one entry with extensions img", info.LoadableContent)
	}
}

func TestSession_FrontendDrivenLifecycle(t *testing.T) {
	hr := newHarness(t, hc.DriveModeFrontendDriven)
	env := hr.open(t)

	if env.DriveMode != hc.DriveModeFrontendDriven {
		t.Fatalf("negotiated drive mode = %v, want frontend-driven", env.DriveMode)
	}
	if _, ok := hr.Host.SessionID(); !ok {
		t.Fatal("no session after BeginSession")
	}

	if res := hr.Module.LoadContent(hc.NewContentLoadInfo("demo", "demo.img")); !res.Ok() {
		t.Fatalf("LoadContent: %v", res)
	}
	hr.setRunState(t, hc.RunStateRunning)

	for i := 0; i < 3; i++ {
		if res := hr.Host.RunFrame(); !res.Ok() {
			t.Fatalf("RunFrame %d: %v", i, res)
		}
	}
	if got := hr.Emu.FrameCount(); got != 3 {
		t.Fatalf("frame count = %d, want 3", got)
	}
	// One video and one audio push per frame, all accepted.
	if got := hr.drainPushes(t); got != 6 {
		t.Errorf("push count = %d, want 6", got)
	}

	pixels, w, h, ok := hr.Host.Frame()
	if !ok {
		t.Fatal("no frame available after three pushes")
	}
	if w != frameWidth || h != frameHeight {
		t.Errorf("frame size = %dx%d, want %dx%d", w, h, frameWidth, frameHeight)
	}
	for i, px := range pixels {
		if px != 3 {
			t.Fatalf("pixel %d = %d, want 3 (last pushed frame)", i, px)
		}
	}

	if got, want := hr.Host.BufferedSamples(), 3*samplesPer*sampleStride; got != want {
		t.Errorf("buffered audio = %d bytes, want %d", got, want)
	}
	buf := make([]byte, samplesPer*sampleStride)
	if got := hr.Host.ReadSamples(buf); got != len(buf) {
		t.Errorf("ReadSamples = %d, want %d", got, len(buf))
	}
}

func TestSession_PauseStopsFrames(t *testing.T) {
	hr := newHarness(t, hc.DriveModeFrontendDriven)
	hr.open(t)
	hr.setRunState(t, hc.RunStateRunning)

	hr.Host.RunFrame()
	hr.setRunState(t, hc.RunStatePaused)
	hr.Host.RunFrame()
	hr.Host.RunFrame()

	if got := hr.Emu.FrameCount(); got != 1 {
		t.Errorf("frame count = %d, want 1 (paused frames must not advance)", got)
	}

	hr.setRunState(t, hc.RunStateRunning)
	hr.Host.RunFrame()
	if got := hr.Emu.FrameCount(); got != 2 {
		t.Errorf("frame count after resume = %d, want 2", got)
	}
}

func TestSession_ResetKeepsInstance(t *testing.T) {
	hr := newHarness(t, hc.DriveModeFrontendDriven)
	hr.open(t)
	hr.setRunState(t, hc.RunStateRunning)
	hr.Host.RunFrame()

	if res := hr.Module.Reset(hc.NewResetInfo(hc.ResetTypeHard)); !res.Ok() {
		t.Fatalf("Reset: %v", res)
	}
	if got := hr.Emu.resets.Load(); got != 1 {
		t.Errorf("reset count = %d, want 1", got)
	}
	if got := hr.Emu.FrameCount(); got != 0 {
		t.Errorf("frame count after hard reset = %d, want 0", got)
	}

	// The instance survives a reset and keeps running.
	hr.Host.RunFrame()
	if got := hr.Emu.FrameCount(); got != 1 {
		t.Errorf("frame count after reset+frame = %d, want 1", got)
	}
}

func TestSession_QuitIsTerminal(t *testing.T) {
	hr := newHarness(t, hc.DriveModeFrontendDriven)
	hr.open(t)
	hr.setRunState(t, hc.RunStateRunning)
	hr.setRunState(t, hc.RunStateQuit)

	res := hr.Module.SetRunState(hc.NewRunStateInfo(hc.RunStateRunning))
	if res != hc.ResultErrCore {
		t.Fatalf("SetRunState after quit = %v, want %v", res, hc.ResultErrCore)
	}
	if msg := hr.Module.GetError(); msg == "" {
		t.Error("GetError is empty after a core error")
	}
}

func TestSession_DestroyThenNoInstance(t *testing.T) {
	hr := newHarness(t, hc.DriveModeFrontendDriven)
	hr.open(t)

	if res := hr.Module.Destroy(hc.NewDestroyInfo()); !res.Ok() {
		t.Fatalf("Destroy: %v", res)
	}
	hr.Host.EndSession()

	if res := hr.Module.Destroy(hc.NewDestroyInfo()); res != hc.ResultErrNoSuchInstance {
		t.Errorf("second Destroy = %v, want %v", res, hc.ResultErrNoSuchInstance)
	}
	if res := hr.Module.SetRunState(hc.NewRunStateInfo(hc.RunStateRunning)); res != hc.ResultErrNoSuchInstance {
		t.Errorf("SetRunState without instance = %v, want %v", res, hc.ResultErrNoSuchInstance)
	}
	if _, ok := hr.Host.SessionID(); ok {
		t.Error("session still open after EndSession")
	}
}

func TestSession_SecondCreateRejected(t *testing.T) {
	hr := newHarness(t, hc.DriveModeFrontendDriven)
	hr.open(t)

	env := hc.NewEnvironmentInfo()
	if res := hr.Module.Create(env); res != hc.ResultErrTooManyInstances {
		t.Errorf("second Create = %v, want %v", res, hc.ResultErrTooManyInstances)
	}
}

func TestSession_InputRoundTrip(t *testing.T) {
	hr := newHarness(t, hc.DriveModeFrontendDriven)
	hr.open(t)

	requests := []*hc.InputRequest{
		hc.NewInputRequest(0, hc.InputTypeButtonA),
		hc.NewInputRequest(0, hc.InputTypeKeypad1Up),
	}
	values, res := hr.Emu.host.GetInputsSync(requests)
	if !res.Ok() {
		t.Fatalf("GetInputsSync: %v", res)
	}
	want := []int64{1, 0}
	for i, v := range values {
		if v != want[i] {
			t.Errorf("value[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestSession_RendererVersionNegotiation(t *testing.T) {
	// A core demanding GL 4.6 from a software-only host fails at
	// BeginSession; the module-side check fails first at Create.
	cfg := host.DefaultConfig()
	h := host.New(cfg)

	env := hc.NewEnvironmentInfo()
	env.DriveMode = hc.DriveModeFrontendDriven
	video := hc.NewVideoInfo()
	video.RendererType = hc.RendererTypeOpenGL
	video.RendererVersion = hc.MakeVersion(4, 6)
	video.Width = frameWidth
	video.Height = frameHeight
	video.FrameRate = frameRate
	video.Format = hc.PixelFormatRGBA32
	env.Video = video

	if _, err := h.BeginSession(env); !errors.Is(err, hc.ErrBadRendererVersion) {
		t.Fatalf("BeginSession = %v, want %v", err, hc.ErrBadRendererVersion)
	}
}
