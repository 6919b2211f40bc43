package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hydra-emu/core/pkg/bind"
	"github.com/hydra-emu/core/pkg/hc"
)

// Closer is implemented by emulators that hold resources needing explicit
// release at destroy time.
type Closer interface {
	Close() error
}

// Module is the core side of a loaded plugin: it owns the resolved
// frontend bindings, the cached identity record, the last-error string
// and the at-most-one live Instance. Its methods are the core-exported
// entry points of the ABI; Procs and ProcMap expose them as a resolvable
// table.
type Module struct {
	factory func() Emulator

	mu      sync.Mutex
	host    *bind.HostProcs
	info    *hc.CoreInfo
	inst    *Instance
	lastErr string
}

// NewModule wraps an emulator factory. The factory is invoked once per
// Create; a fresh delegate also backs the static info query.
func NewModule(factory func() Emulator) *Module {
	return &Module{factory: factory}
}

// LoadFunctions is the resolution handshake. It must succeed before any
// other entry point is used; on failure the frontend must abandon the
// load attempt entirely, since no safe degraded mode exists.
func (m *Module) LoadFunctions(resolve bind.Resolver) hc.Result {
	procs, err := bind.ResolveHost(resolve)
	if err != nil {
		switch {
		case errors.Is(err, hc.ErrBadResolver):
			return hc.ResultErrBadResolver
		default:
			return hc.ResultErrMissingFunction
		}
	}
	m.mu.Lock()
	m.host = procs
	m.mu.Unlock()
	return hc.ResultSuccess
}

// GetCoreInfo fills info with the module's static identity. The identity
// is queried from a delegate once and cached; repeated calls return the
// same data.
func (m *Module) GetCoreInfo(info *hc.CoreInfo) {
	if info == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.info == nil {
		m.info = hc.NewCoreInfo()
		m.factory().CoreInfo(m.info)
	}
	header := info.Header
	*info = *m.info
	info.Header = header
}

// Create builds the single live instance. The delegate populates env; the
// module then validates drive mode, renderer support and the runner
// contract before the instance exists. A failed Create leaves no instance
// behind.
func (m *Module) Create(env *hc.EnvironmentInfo) hc.Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.host == nil {
		return hc.ResultErrNotInitialized
	}
	if env == nil {
		return hc.ResultErrNullDataPassed
	}
	if res := hc.Expect(env, hc.StructureTypeEnvironmentInfo); !res.Ok() {
		return res
	}
	if m.inst != nil {
		return hc.ResultErrTooManyInstances
	}

	delegate := m.factory()
	if err := delegate.Configure(env); err != nil {
		return m.coreErr(fmt.Sprintf("configure: %v", err))
	}
	if env.DriveMode == hc.DriveModeNull || env.Video == nil || env.Video.RendererType == hc.RendererTypeNull {
		return hc.ResultErrBadEnvironmentInfo
	}

	hostInfo := hc.NewHostInfo()
	m.host.GetHostInfo(hostInfo)
	max := hostInfo.MaxVersion(env.Video.RendererType)
	if !max.AtLeast(env.Video.RendererVersion) {
		return hc.ResultErrBadRendererVersion
	}

	callbacks := hc.NewCallbacks()
	switch {
	case env.DriveMode == hc.DriveModeFrontendDriven:
		if _, ok := delegate.(FrameRunner); !ok {
			return hc.ResultErrNotAllCallbacksSet
		}
	case env.DriveMode.SelfDriven():
		if _, ok := delegate.(LoopStepper); !ok {
			return hc.ResultErrNotAllCallbacksSet
		}
	}

	inst := newInstance(delegate, env)
	if env.DriveMode == hc.DriveModeFrontendDriven {
		callbacks.FrontendDriven = &hc.FrontendDrivenCallbacks{RunFrame: inst.runFrame}
	} else {
		callbacks.SelfDriven = &hc.SelfDrivenCallbacks{EntryPoint: inst.runLoop}
	}
	if res := m.host.SetCallbacks(callbacks); !res.Ok() {
		return res
	}

	m.inst = inst
	return hc.ResultSuccess
}

// Destroy tears down the live instance: the loop is made to observe quit
// and joined, delegate resources are released, and the instance slot is
// cleared. Destroying when no instance exists is the no-such-instance
// error, never undefined behavior.
func (m *Module) Destroy(info *hc.DestroyInfo) hc.Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	if info != nil {
		if res := hc.Expect(info, hc.StructureTypeDestroyInfo); !res.Ok() {
			return res
		}
	}
	if m.inst == nil {
		return hc.ResultErrNoSuchInstance
	}

	inst := m.inst
	inst.stopLoop()
	inst.mu.Lock()
	inst.destroyed = true
	inst.mu.Unlock()
	m.inst = nil

	if closer, ok := inst.delegate.(Closer); ok {
		if err := closer.Close(); err != nil {
			// The instance is gone either way; the error is only
			// reported.
			return m.coreErr(fmt.Sprintf("destroy: %v", err))
		}
	}
	return hc.ResultSuccess
}

// Reset reinitializes emulated state while keeping the instance, loaded
// content and environment. A failed reset leaves prior state intact.
func (m *Module) Reset(info *hc.ResetInfo) hc.Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	if info == nil {
		return hc.ResultErrNullDataPassed
	}
	if res := hc.Expect(info, hc.StructureTypeResetInfo); !res.Ok() {
		return res
	}
	if m.inst == nil {
		return hc.ResultErrNoSuchInstance
	}
	switch info.ResetType {
	case hc.ResetTypeSoft, hc.ResetTypeHard:
	default:
		return hc.ResultErrNullDataPassed
	}

	if err := m.inst.delegate.Reset(info.ResetType); err != nil {
		return m.coreErr(fmt.Sprintf("reset: %v", err))
	}
	return hc.ResultSuccess
}

// SetRunState moves the instance between running, paused and quit. Quit
// is terminal; any later transition is rejected.
func (m *Module) SetRunState(info *hc.RunStateInfo) hc.Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	if info == nil {
		return hc.ResultErrNullDataPassed
	}
	if res := hc.Expect(info, hc.StructureTypeRunStateInfo); !res.Ok() {
		return res
	}
	if m.inst == nil {
		return hc.ResultErrNoSuchInstance
	}
	switch info.RunState {
	case hc.RunStateRunning, hc.RunStatePaused, hc.RunStateQuit:
	default:
		return hc.ResultErrNullDataPassed
	}

	if !m.inst.setRunState(info.RunState) {
		return m.coreErr("run state is quit and cannot change")
	}
	return hc.ResultSuccess
}

// LoadContent loads content by reference. Each call validates the
// reference independently; a failure leaves previously loaded content
// running.
func (m *Module) LoadContent(info *hc.ContentLoadInfo) hc.Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	if info == nil {
		return hc.ResultErrNullDataPassed
	}
	if res := hc.Expect(info, hc.StructureTypeContentLoadInfo); !res.Ok() {
		return res
	}
	if m.inst == nil {
		return hc.ResultErrNoSuchInstance
	}
	if info.Path == "" {
		return hc.ResultErrBadContent
	}

	if err := m.inst.delegate.LoadContent(info.Name, info.Path); err != nil {
		return hc.ResultErrBadContent
	}
	m.inst.mu.Lock()
	m.inst.contentLoaded = true
	m.inst.mu.Unlock()
	return hc.ResultSuccess
}

// GetError returns the message of the most recent generic core failure,
// or the empty string.
func (m *Module) GetError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// Instance returns the live instance, or nil.
func (m *Module) Instance() *Instance {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inst
}

// Procs returns the module's entry points as a core table, for frontends
// living in the same process.
func (m *Module) Procs() *bind.CoreProcs {
	return &bind.CoreProcs{
		GetCoreInfo:   m.GetCoreInfo,
		Create:        m.Create,
		Destroy:       m.Destroy,
		Reset:         m.Reset,
		SetRunState:   m.SetRunState,
		LoadContent:   m.LoadContent,
		GetError:      m.GetError,
		LoadFunctions: m.LoadFunctions,
	}
}

// ProcMap exposes the entry points under their ABI names, mirroring the
// symbol table an independently compiled core would export.
func (m *Module) ProcMap() map[string]any {
	return map[string]any{
		bind.ProcGetCoreInfo:   m.GetCoreInfo,
		bind.ProcCreate:        m.Create,
		bind.ProcDestroy:       m.Destroy,
		bind.ProcReset:         m.Reset,
		bind.ProcSetRunState:   m.SetRunState,
		bind.ProcLoadContent:   m.LoadContent,
		bind.ProcGetError:      m.GetError,
		bind.ProcLoadFunctions: m.LoadFunctions,
	}
}

// coreErr records the message behind a generic core failure; callers must
// hold m.mu.
func (m *Module) coreErr(msg string) hc.Result {
	m.lastErr = msg
	return hc.ResultErrCore
}
