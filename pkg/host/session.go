package host

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hydra-emu/core/pkg/hc"
)

// session is the live state between BeginSession and EndSession. Renderer
// identity and drive mode are fixed for its lifetime; resolution, frame
// rate and audio layout may change through reconfiguration.
type session struct {
	id        uuid.UUID
	driveMode hc.DriveMode

	renderer        hc.RendererType
	rendererVersion hc.Version

	video hc.VideoInfo
	audio *hc.AudioInfo

	ring *sampleRing
	fb   *framebuffer

	callbacks hc.Callbacks
}

// SetCallbacks registers the core's drive callbacks. It is called by the
// core during Create, before the session begins; the drive-mode match is
// checked once the environment is known. Exactly one callback set must be
// populated.
func (h *Host) SetCallbacks(callbacks *hc.Callbacks) hc.Result {
	if callbacks == nil {
		return hc.ResultErrNullDataPassed
	}
	if res := hc.Expect(callbacks, hc.StructureTypeCallbacks); !res.Ok() {
		return res
	}

	frontend := callbacks.FrontendDriven != nil && callbacks.FrontendDriven.RunFrame != nil
	self := callbacks.SelfDriven != nil && callbacks.SelfDriven.EntryPoint != nil
	if frontend == self {
		return hc.ResultErrNotAllCallbacksSet
	}

	h.mu.Lock()
	h.pending = callbacks
	h.mu.Unlock()
	return hc.ResultSuccess
}

// BeginSession validates the environment the core populated during Create
// and opens the session: renderer version is negotiated against the
// platform descriptor, the registered callbacks are matched to the drive
// mode, and the audio and video sinks are sized. The returned id names
// the session for the frontend's own bookkeeping.
func (h *Host) BeginSession(env *hc.EnvironmentInfo) (uuid.UUID, error) {
	if env == nil {
		return uuid.Nil, hc.ErrNullDataPassed
	}
	if res := hc.Expect(env, hc.StructureTypeEnvironmentInfo); !res.Ok() {
		return uuid.Nil, res.Err()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session != nil {
		return uuid.Nil, fmt.Errorf("%w: a session is already open", hc.ErrTooManyInstances)
	}

	switch env.DriveMode {
	case hc.DriveModeSelfDriven, hc.DriveModeSelfDrivenExceptAudio, hc.DriveModeFrontendDriven:
	default:
		return uuid.Nil, fmt.Errorf("%w: drive mode %v", hc.ErrBadEnvironmentInfo, env.DriveMode)
	}

	if env.Video == nil {
		return uuid.Nil, fmt.Errorf("%w: no video parameters", hc.ErrBadEnvironmentInfo)
	}
	if env.Video.Width == 0 || env.Video.Height == 0 {
		return uuid.Nil, fmt.Errorf("%w: zero resolution", hc.ErrBadEnvironmentInfo)
	}
	want := env.Video.RendererVersion
	if !want.Supported() {
		return uuid.Nil, fmt.Errorf("%w: renderer version not set", hc.ErrBadEnvironmentInfo)
	}
	if max := h.info.MaxVersion(env.Video.RendererType); !max.AtLeast(want) {
		return uuid.Nil, fmt.Errorf("%w: %v %v requested, host provides %v",
			hc.ErrBadRendererVersion, env.Video.RendererType, want, max)
	}

	if env.Audio != nil && !env.Audio.Valid() {
		return uuid.Nil, fmt.Errorf("%w: incomplete audio parameters", hc.ErrBadEnvironmentInfo)
	}

	if h.pending == nil {
		return uuid.Nil, fmt.Errorf("%w: core registered no callbacks", hc.ErrNotAllCallbacksSet)
	}
	if env.DriveMode == hc.DriveModeFrontendDriven {
		if h.pending.FrontendDriven == nil {
			return uuid.Nil, fmt.Errorf("%w: frontend-driven core registered a self-driven loop", hc.ErrWrongDriveMode)
		}
	} else if h.pending.SelfDriven == nil {
		return uuid.Nil, fmt.Errorf("%w: self-driven core registered a frame callback", hc.ErrWrongDriveMode)
	}

	s := &session{
		id:              uuid.New(),
		driveMode:       env.DriveMode,
		renderer:        env.Video.RendererType,
		rendererVersion: env.Video.RendererVersion,
		video:           *env.Video,
		callbacks:       *h.pending,
	}
	if env.Audio != nil && env.DriveMode != hc.DriveModeSelfDriven {
		audio := *env.Audio
		s.audio = &audio
		s.ring = newSampleRing(h.cfg.AudioBufferBytes)
	}
	if env.Video.RendererType == hc.RendererTypeSoftware {
		s.fb = newFramebuffer(env.Video.Width, env.Video.Height, env.Video.Format)
	}

	h.session = s
	return s.id, nil
}

// EndSession closes the live session and forgets the registered
// callbacks. Ending a host with no session is a no-op.
func (h *Host) EndSession() {
	h.mu.Lock()
	h.session = nil
	h.pending = nil
	h.mu.Unlock()
}

// SessionID returns the live session's identity.
func (h *Host) SessionID() (uuid.UUID, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.session == nil {
		return uuid.Nil, false
	}
	return h.session.id, true
}

// ReconfigureEnvironment applies a changed environment to the live
// session. Drive mode and renderer identity are immutable; resolution,
// frame rate, pixel format and audio layout may change. A changed audio
// layout discards buffered samples.
func (h *Host) ReconfigureEnvironment(env *hc.EnvironmentInfo) hc.Result {
	if env == nil {
		return hc.ResultErrNullDataPassed
	}
	if res := hc.Expect(env, hc.StructureTypeEnvironmentInfo); !res.Ok() {
		return res
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.session
	if s == nil {
		return hc.ResultErrNoSuchInstance
	}
	if env.DriveMode != s.driveMode {
		return hc.ResultErrBadEnvironmentInfo
	}
	if env.Video == nil || env.Video.Width == 0 || env.Video.Height == 0 {
		return hc.ResultErrBadEnvironmentInfo
	}
	if env.Video.RendererType != s.renderer || env.Video.RendererVersion != s.rendererVersion {
		return hc.ResultErrBadEnvironmentInfo
	}
	if env.Audio != nil && !env.Audio.Valid() {
		return hc.ResultErrBadEnvironmentInfo
	}

	resized := env.Video.Width != s.video.Width || env.Video.Height != s.video.Height ||
		env.Video.Format != s.video.Format
	s.video = *env.Video
	if s.fb != nil && resized {
		s.fb = newFramebuffer(env.Video.Width, env.Video.Height, env.Video.Format)
	}

	if env.Audio != nil && s.ring != nil {
		if !sameAudioLayout(env.Audio, s.audio) {
			audio := *env.Audio
			s.audio = &audio
			s.ring.Clear()
		}
	}
	return hc.ResultSuccess
}

// RunFrame advances a frontend-driven core by one frame. During the call
// the core has exclusive access to push video and audio; the frontend
// must not call into the core concurrently.
func (h *Host) RunFrame() hc.Result {
	h.mu.Lock()
	s := h.session
	h.mu.Unlock()

	if s == nil {
		return hc.ResultErrNoSuchInstance
	}
	if s.driveMode != hc.DriveModeFrontendDriven {
		return hc.ResultErrWrongDriveMode
	}
	s.callbacks.FrontendDriven.RunFrame()
	return hc.ResultSuccess
}

// Drive invokes the frame callback at the session's negotiated frame
// rate until done is closed or a call fails. It returns the first
// non-success result, or success when stopped through done.
func (h *Host) Drive(done <-chan struct{}) hc.Result {
	h.mu.Lock()
	s := h.session
	h.mu.Unlock()
	if s == nil {
		return hc.ResultErrNoSuchInstance
	}

	rate := s.video.FrameRate
	if rate == 0 {
		rate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return hc.ResultSuccess
		case <-ticker.C:
			if res := h.RunFrame(); !res.Ok() {
				return res
			}
		}
	}
}

// StartLoop launches a self-driven core's loop on its own goroutine. The
// returned channel closes when the loop exits; the frontend sets the
// core's run state to quit and then waits on it.
func (h *Host) StartLoop() (<-chan struct{}, hc.Result) {
	h.mu.Lock()
	s := h.session
	h.mu.Unlock()

	if s == nil {
		return nil, hc.ResultErrNoSuchInstance
	}
	if s.driveMode == hc.DriveModeFrontendDriven {
		return nil, hc.ResultErrWrongDriveMode
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.callbacks.SelfDriven.EntryPoint()
	}()
	return done, hc.ResultSuccess
}
