package bind

import (
	"fmt"

	"github.com/hydra-emu/core/pkg/hc"
)

// HostProcs is the resolved table of frontend-exported entry points. A
// core obtains one during initialization and uses it for every call it
// makes back into the frontend. The zero value is unusable; construct one
// with ResolveHost.
type HostProcs struct {
	// GetHostInfo fills info with the host platform descriptor.
	GetHostInfo func(info *hc.HostInfo)

	// GetInputsSync resolves the requested inputs and returns one value
	// per request, in request order. The call blocks until the frontend
	// has produced the values.
	GetInputsSync func(requests []*hc.InputRequest) ([]int64, hc.Result)

	// ReconfigureEnvironment applies a changed environment, e.g. after a
	// window resize. Renderer identity changes are rejected.
	ReconfigureEnvironment func(env *hc.EnvironmentInfo) hc.Result

	// PushSamples hands PCM samples to the frontend. Not legal for fully
	// self-driven cores.
	PushSamples func(data *hc.AudioData) hc.Result

	// SwPushVideoFrame hands a rendered frame to the frontend. Only
	// legal for software-rendered cores.
	SwPushVideoFrame func(image *hc.ImageData) hc.Result

	// GlMakeCurrent binds the frontend's GL context to the calling
	// thread. Only legal for OpenGL-rendered cores.
	GlMakeCurrent func() hc.Result

	// GlSwapBuffers presents the frame the core just rendered. Only
	// legal for OpenGL-rendered cores.
	GlSwapBuffers func() hc.Result

	// GlGetProcAddress resolves a GL function by name, for use with a GL
	// loader. Returns 0 when the function is unknown.
	GlGetProcAddress func(name string) uintptr

	// SetCallbacks registers the core's drive callbacks with the
	// frontend.
	SetCallbacks func(callbacks *hc.Callbacks) hc.Result
}

// ResolveHost builds the frontend table through resolve. It fails with
// hc.ErrBadResolver when resolve is nil and hc.ErrMissingFunction when any
// entry point cannot be resolved; on failure no table is returned and the
// load attempt must be abandoned.
func ResolveHost(resolve Resolver) (*HostProcs, error) {
	if resolve == nil {
		return nil, fmt.Errorf("%w: resolving host entry points", hc.ErrBadResolver)
	}

	var p HostProcs
	if err := resolveAs(resolve, ProcGetHostInfo, &p.GetHostInfo); err != nil {
		return nil, err
	}
	if err := resolveAs(resolve, ProcGetInputsSync, &p.GetInputsSync); err != nil {
		return nil, err
	}
	if err := resolveAs(resolve, ProcReconfigureEnvironment, &p.ReconfigureEnvironment); err != nil {
		return nil, err
	}
	if err := resolveAs(resolve, ProcPushSamples, &p.PushSamples); err != nil {
		return nil, err
	}
	if err := resolveAs(resolve, ProcSwPushVideoFrame, &p.SwPushVideoFrame); err != nil {
		return nil, err
	}
	if err := resolveAs(resolve, ProcGlMakeCurrent, &p.GlMakeCurrent); err != nil {
		return nil, err
	}
	if err := resolveAs(resolve, ProcGlSwapBuffers, &p.GlSwapBuffers); err != nil {
		return nil, err
	}
	if err := resolveAs(resolve, ProcGlGetProcAddress, &p.GlGetProcAddress); err != nil {
		return nil, err
	}
	if err := resolveAs(resolve, ProcSetCallbacks, &p.SetCallbacks); err != nil {
		return nil, err
	}
	return &p, nil
}
