// Package e2e exercises a complete core/frontend session in one process:
// a host, a module wrapping a real (if tiny) emulator, the resolution
// handshake between them, and the full lifecycle on top.
package e2e

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/hydra-emu/core/pkg/bind"
	"github.com/hydra-emu/core/pkg/core"
	"github.com/hydra-emu/core/pkg/hc"
	"github.com/hydra-emu/core/pkg/host"
)

const (
	frameWidth   = 64
	frameHeight  = 48
	frameRate    = 60
	samplesPer   = 800 // 48000 / 60
	loopTimeout  = 2 * time.Second
	loopSettle   = 20 * time.Millisecond
	sampleStride = 4 // S16 stereo
)

// pixelCore is a minimal but real emulator: every frame it renders a
// solid-color image whose intensity is the frame counter and pushes one
// frame's worth of silence. It backs both drive modes.
type pixelCore struct {
	driveMode hc.DriveMode
	host      *bind.HostProcs

	frames atomic.Int64
	loaded atomic.Int64
	resets atomic.Int64

	pushResults chan hc.Result
}

func newPixelCore(mode hc.DriveMode) *pixelCore {
	return &pixelCore{
		driveMode:   mode,
		pushResults: make(chan hc.Result, 256),
	}
}

func (p *pixelCore) CoreInfo(info *hc.CoreInfo) {
	info.CoreName = "pixelcore"
	info.CoreVersion = "0.1.0"
	info.SystemName = "Pixel Machine"
	info.Author = "e2e"
	content := hc.NewContentInfo()
	content.Name = "Image"
	content.Extensions = "img"
	info.LoadableContent = []*hc.ContentInfo{content}
}

func (p *pixelCore) Configure(env *hc.EnvironmentInfo) error {
	env.DriveMode = p.driveMode
	video := hc.NewVideoInfo()
	video.RendererType = hc.RendererTypeSoftware
	video.RendererVersion = hc.MakeVersion(1, 0)
	video.Width = frameWidth
	video.Height = frameHeight
	video.FrameRate = frameRate
	video.Format = hc.PixelFormatRGBA32
	env.Video = video
	audio := hc.NewAudioInfo()
	audio.Format = hc.AudioFormatS16PCM
	audio.Channels = hc.AudioChannelsStereo
	audio.SampleRate = 48000
	env.Audio = audio
	return nil
}

func (p *pixelCore) LoadContent(name, path string) error {
	p.loaded.Add(1)
	return nil
}

func (p *pixelCore) Reset(t hc.ResetType) error {
	p.frames.Store(0)
	p.resets.Add(1)
	return nil
}

func (p *pixelCore) RunFrame()  { p.emitFrame() }
func (p *pixelCore) StepFrame() { p.emitFrame() }

// emitFrame renders and pushes one frame plus its audio. Push results are
// queued for the test to inspect; emulation itself never fails.
func (p *pixelCore) emitFrame() {
	n := p.frames.Add(1)

	image := hc.NewImageData()
	image.Width = frameWidth
	image.Height = frameHeight
	image.Format = hc.PixelFormatRGBA32
	image.Data = make([]byte, frameWidth*frameHeight*4)
	for i := range image.Data {
		image.Data[i] = byte(n)
	}
	p.record(p.host.SwPushVideoFrame(image))

	want := hc.NewAudioInfo()
	want.Format = hc.AudioFormatS16PCM
	want.Channels = hc.AudioChannelsStereo
	want.SampleRate = 48000
	data := hc.NewAudioData()
	data.Want = want
	data.SampleCount = samplesPer
	data.Data = make([]byte, samplesPer*sampleStride)
	p.record(p.host.PushSamples(data))
}

func (p *pixelCore) record(res hc.Result) {
	select {
	case p.pushResults <- res:
	default:
	}
}

func (p *pixelCore) FrameCount() int64 { return p.frames.Load() }

// harness wires a host and a module together the way a frontend loading a
// shared-object core would, minus the dynamic linker.
type harness struct {
	Host   *host.Host
	Module *core.Module
	Emu    *pixelCore
}

func newHarness(t *testing.T, mode hc.DriveMode) *harness {
	t.Helper()

	cfg := host.DefaultConfig()
	cfg.Input = func(port uint32, input hc.InputType) int64 {
		if input == hc.InputTypeButtonA {
			return 1
		}
		return 0
	}
	h := host.New(cfg)

	emu := newPixelCore(mode)
	mod := core.NewModule(func() core.Emulator { return emu })

	if res := mod.LoadFunctions(bind.MapResolver(h.ProcMap())); !res.Ok() {
		t.Fatalf("LoadFunctions: %v", res)
	}
	procs, err := bind.ResolveHost(bind.MapResolver(h.ProcMap()))
	if err != nil {
		t.Fatalf("ResolveHost: %v", err)
	}
	emu.host = procs

	return &harness{Host: h, Module: mod, Emu: emu}
}

// open runs Create plus BeginSession and registers teardown.
func (hr *harness) open(t *testing.T) *hc.EnvironmentInfo {
	t.Helper()

	env := hc.NewEnvironmentInfo()
	if res := hr.Module.Create(env); !res.Ok() {
		t.Fatalf("Create: %v (core error %q)", res, hr.Module.GetError())
	}
	if _, err := hr.Host.BeginSession(env); err != nil {
		t.Fatalf("BeginSession: %v", err)
	}
	t.Cleanup(func() {
		hr.Module.Destroy(hc.NewDestroyInfo())
		hr.Host.EndSession()
	})
	return env
}

func (hr *harness) setRunState(t *testing.T, s hc.RunState) {
	t.Helper()
	if res := hr.Module.SetRunState(hc.NewRunStateInfo(s)); !res.Ok() {
		t.Fatalf("SetRunState(%v): %v", s, res)
	}
}

// drainPushes asserts every queued push result so far succeeded.
func (hr *harness) drainPushes(t *testing.T) int {
	t.Helper()
	n := 0
	for {
		select {
		case res := <-hr.Emu.pushResults:
			n++
			if !res.Ok() {
				t.Fatalf("push %d failed: %v", n, res)
			}
		default:
			return n
		}
	}
}

// waitFrames polls until the emulator has advanced past n frames.
func waitFrames(t *testing.T, emu *pixelCore, n int64) {
	t.Helper()
	deadline := time.Now().Add(loopTimeout)
	for time.Now().Before(deadline) {
		if emu.FrameCount() > n {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("emulator stuck at frame %d, want > %d", emu.FrameCount(), n)
}
