package nativecore

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/hydra-emu/core/internal/dl"
	"github.com/hydra-emu/core/pkg/bind"
	"github.com/hydra-emu/core/pkg/hc"
)

// Core is a loaded native core library. Its methods mirror the core
// entry-point table, translating between Go records and the C layouts at
// each call.
type Core struct {
	path   string
	handle uintptr
	closed bool

	getCoreInfo   func(info *rawCoreInfo)
	create        func(env *rawEnvironmentInfo) int32
	destroy       func(info *rawDestroyInfo) int32
	reset         func(info *rawResetInfo) int32
	setRunState   func(info *rawRunStateInfo) int32
	loadContent   func(info *rawContentLoadInfo) int32
	getError      func() uintptr
	loadFunctions func(loader uintptr) int32

	host *hostBridge
}

// Load opens the core library at path and binds its exported entry
// points. Every export must be present; a partially exported library
// fails the load.
func Load(path string) (*Core, error) {
	handle, err := dl.Open(path, dl.RTLD_NOW|dl.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	c := &Core{path: path, handle: handle}
	if err := c.register(); err != nil {
		_ = dl.Close(handle)
		return nil, err
	}
	return c, nil
}

func (c *Core) register() error {
	exports := []struct {
		name string
		fptr any
	}{
		{bind.ProcGetCoreInfo, &c.getCoreInfo},
		{bind.ProcCreate, &c.create},
		{bind.ProcDestroy, &c.destroy},
		{bind.ProcReset, &c.reset},
		{bind.ProcSetRunState, &c.setRunState},
		{bind.ProcLoadContent, &c.loadContent},
		{bind.ProcGetError, &c.getError},
		{bind.ProcLoadFunctions, &c.loadFunctions},
	}
	for _, e := range exports {
		addr, err := dl.Sym(c.handle, e.name)
		if err != nil || addr == 0 {
			return fmt.Errorf("%w: %s in %s", hc.ErrMissingFunction, e.name, c.path)
		}
		purego.RegisterFunc(e.fptr, addr)
	}
	return nil
}

// Path returns the library path the core was loaded from.
func (c *Core) Path() string { return c.path }

// Close unloads the library. The core must already be destroyed; entry
// points called afterwards fail instead of jumping into unmapped code.
// Closing twice returns ErrCoreClosed.
func (c *Core) Close() error {
	if c.closed {
		return ErrCoreClosed
	}
	c.closed = true
	return dl.Close(c.handle)
}

// LoadFunctions performs the resolution handshake: the frontend-exported
// table is resolved through resolve, bridged to native callbacks, and
// handed to the core's loader export. It must be called once before any
// other core entry point.
func (c *Core) LoadFunctions(resolve bind.Resolver) hc.Result {
	if resolve == nil {
		return hc.ResultErrBadResolver
	}
	procs, err := bind.ResolveHost(resolve)
	if err != nil {
		if errors.Is(err, hc.ErrBadResolver) {
			return hc.ResultErrBadResolver
		}
		return hc.ResultErrMissingFunction
	}
	return c.ConnectHost(procs)
}

// ConnectHost bridges an already resolved frontend table to the native
// side and runs the core's loader export against it.
func (c *Core) ConnectHost(procs *bind.HostProcs) hc.Result {
	if c.closed {
		return hc.ResultErrNotInitialized
	}
	if procs == nil {
		return hc.ResultErrBadResolver
	}
	if c.host == nil {
		c.host = newHostBridge()
	}
	c.host.procs = procs
	return hc.Result(c.loadFunctions(c.host.resolver))
}

// GetCoreInfo queries the core's static identity.
func (c *Core) GetCoreInfo(info *hc.CoreInfo) {
	if info == nil || c.closed {
		return
	}

	raw := rawCoreInfo{Type: int32(hc.StructureTypeCoreInfo)}
	c.getCoreInfo(&raw)

	info.CoreName = goString(raw.CoreName)
	info.CoreVersion = goString(raw.CoreVersion)
	info.SystemName = goString(raw.SystemName)
	info.Author = goString(raw.Author)
	info.Description = goString(raw.Description)
	info.Website = goString(raw.Website)
	info.Settings = goString(raw.Settings)
	info.License = goString(raw.License)

	info.LoadableContent = nil
	if raw.LoadableContentInfo != nil && raw.LoadableContentInfoCount > 0 {
		entries := unsafe.Slice(raw.LoadableContentInfo, raw.LoadableContentInfoCount)
		info.LoadableContent = make([]*hc.ContentInfo, len(entries))
		for i := range entries {
			content := hc.NewContentInfo()
			content.Name = goString(entries[i].Name)
			content.Description = goString(entries[i].Description)
			content.Extensions = goString(entries[i].Extensions)
			info.LoadableContent[i] = content
		}
	}

	info.Icon = nil
	if raw.Icon != nil {
		icon := imageDataOfRaw(raw.Icon)
		// The raw pixels belong to the core; copy since the caller keeps
		// the descriptor.
		icon.Data = append([]byte(nil), icon.Data...)
		info.Icon = icon
	}
}

// Create initializes the core instance. On success env carries the
// environment the core populated.
func (c *Core) Create(env *hc.EnvironmentInfo) hc.Result {
	if c.closed {
		return hc.ResultErrNotInitialized
	}
	if env == nil {
		return hc.ResultErrNullDataPassed
	}

	raw := rawEnvironmentInfo{Type: int32(hc.StructureTypeEnvironmentInfo)}
	res := hc.Result(c.create(&raw))
	if res.Ok() {
		populated := environmentOfRaw(&raw)
		env.DriveMode = populated.DriveMode
		env.Video = populated.Video
		env.Audio = populated.Audio
	}
	return res
}

// Destroy tears down the core instance.
func (c *Core) Destroy(info *hc.DestroyInfo) hc.Result {
	if c.closed {
		return hc.ResultErrNotInitialized
	}
	raw := rawDestroyInfo{Type: int32(hc.StructureTypeDestroyInfo)}
	return hc.Result(c.destroy(&raw))
}

// Reset reinitializes emulated state.
func (c *Core) Reset(info *hc.ResetInfo) hc.Result {
	if c.closed {
		return hc.ResultErrNotInitialized
	}
	if info == nil {
		return hc.ResultErrNullDataPassed
	}
	raw := rawResetInfo{
		Type:      int32(hc.StructureTypeResetInfo),
		ResetType: int32(info.ResetType),
	}
	return hc.Result(c.reset(&raw))
}

// SetRunState moves the core between running, paused and quit.
func (c *Core) SetRunState(info *hc.RunStateInfo) hc.Result {
	if c.closed {
		return hc.ResultErrNotInitialized
	}
	if info == nil {
		return hc.ResultErrNullDataPassed
	}
	raw := rawRunStateInfo{
		Type:     int32(hc.StructureTypeRunStateInfo),
		RunState: int32(info.RunState),
	}
	return hc.Result(c.setRunState(&raw))
}

// LoadContent loads content by reference.
func (c *Core) LoadContent(info *hc.ContentLoadInfo) hc.Result {
	if c.closed {
		return hc.ResultErrNotInitialized
	}
	if info == nil {
		return hc.ResultErrNullDataPassed
	}

	name := cString(info.Name)
	path := cString(info.Path)
	raw := rawContentLoadInfo{
		Type: int32(hc.StructureTypeContentLoadInfo),
		Name: cStringPtr(name),
		Path: cStringPtr(path),
	}
	res := hc.Result(c.loadContent(&raw))
	runtime.KeepAlive(name)
	runtime.KeepAlive(path)
	return res
}

// GetError returns the core's last-error string.
func (c *Core) GetError() string {
	if c.closed {
		return ""
	}
	ptr := c.getError()
	if ptr == 0 {
		return ""
	}
	return goString((*byte)(unsafe.Pointer(ptr)))
}

// Procs exports the native core as a resolved core table, in the same
// shape an in-process core provides.
func (c *Core) Procs() *bind.CoreProcs {
	return &bind.CoreProcs{
		GetCoreInfo:   c.GetCoreInfo,
		Create:        c.Create,
		Destroy:       c.Destroy,
		Reset:         c.Reset,
		SetRunState:   c.SetRunState,
		LoadContent:   c.LoadContent,
		GetError:      c.GetError,
		LoadFunctions: c.LoadFunctions,
	}
}
