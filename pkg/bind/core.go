package bind

import (
	"fmt"

	"github.com/hydra-emu/core/pkg/hc"
)

// CoreProcs is the resolved table of core-exported entry points, the
// mirror image of HostProcs. A frontend obtains one after loading a core
// module and drives the whole session through it.
type CoreProcs struct {
	// GetCoreInfo fills info with the core's static identity. Called
	// once, before any instance exists.
	GetCoreInfo func(info *hc.CoreInfo)

	// Create builds the core's single live instance. The core populates
	// env (drive mode, renderer choice, audio layout) and validates it
	// against the host. A failed Create leaves no instance behind.
	Create func(env *hc.EnvironmentInfo) hc.Result

	// Destroy tears the instance down and releases everything it held.
	// No call against the instance is legal afterwards.
	Destroy func(info *hc.DestroyInfo) hc.Result

	// Reset reinitializes emulated state while keeping the instance,
	// its loaded content and its environment.
	Reset func(info *hc.ResetInfo) hc.Result

	// SetRunState moves the instance between running, paused and quit.
	SetRunState func(info *hc.RunStateInfo) hc.Result

	// LoadContent loads content by reference. May be called repeatedly,
	// e.g. for multi-disk content.
	LoadContent func(info *hc.ContentLoadInfo) hc.Result

	// GetError returns the message of the most recent core-internal
	// failure, or the empty string.
	GetError func() string

	// LoadFunctions is the resolution handshake: the frontend passes a
	// resolver for its own table and the core binds every frontend entry
	// point before any other call is made.
	LoadFunctions func(resolve Resolver) hc.Result
}

// ResolveCore builds the core table through resolve, with the same
// all-or-nothing failure behavior as ResolveHost.
func ResolveCore(resolve Resolver) (*CoreProcs, error) {
	if resolve == nil {
		return nil, fmt.Errorf("%w: resolving core entry points", hc.ErrBadResolver)
	}

	var p CoreProcs
	if err := resolveAs(resolve, ProcGetCoreInfo, &p.GetCoreInfo); err != nil {
		return nil, err
	}
	if err := resolveAs(resolve, ProcCreate, &p.Create); err != nil {
		return nil, err
	}
	if err := resolveAs(resolve, ProcDestroy, &p.Destroy); err != nil {
		return nil, err
	}
	if err := resolveAs(resolve, ProcReset, &p.Reset); err != nil {
		return nil, err
	}
	if err := resolveAs(resolve, ProcSetRunState, &p.SetRunState); err != nil {
		return nil, err
	}
	if err := resolveAs(resolve, ProcLoadContent, &p.LoadContent); err != nil {
		return nil, err
	}
	if err := resolveAs(resolve, ProcGetError, &p.GetError); err != nil {
		return nil, err
	}
	if err := resolveAs(resolve, ProcLoadFunctions, &p.LoadFunctions); err != nil {
		return nil, err
	}
	return &p, nil
}
