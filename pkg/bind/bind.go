// Package bind defines the two named entry-point tables of the core ABI:
// the functions a frontend exposes to a core and the functions a core
// exports to a frontend. Either table is constructed once, through a
// Resolver, and the construction fails outright if the resolver is nil or
// any required entry point is missing; a partially resolved table is never
// returned, so later calls can never hit an unresolved entry point.
package bind

import (
	"fmt"

	"github.com/hydra-emu/core/pkg/hc"
)

// Resolver looks up an entry point by name. It returns nil when the name
// is unknown. The concrete type behind the returned value must match the
// table field being resolved; a mismatch is treated the same as a missing
// entry point.
type Resolver func(name string) any

// MapResolver adapts a name-to-function map into a Resolver.
func MapResolver(procs map[string]any) Resolver {
	return func(name string) any {
		return procs[name]
	}
}

// Entry point names of the frontend-exported table.
const (
	ProcGetHostInfo            = "hcGetHostInfo"
	ProcGetInputsSync          = "hcGetInputsSync"
	ProcReconfigureEnvironment = "hcReconfigureEnvironment"
	ProcPushSamples            = "hcPushSamples"
	ProcSwPushVideoFrame       = "hcSwPushVideoFrame"
	ProcGlMakeCurrent          = "hcGlMakeCurrent"
	ProcGlSwapBuffers          = "hcGlSwapBuffers"
	ProcGlGetProcAddress       = "hcGlGetProcAddress"
	ProcSetCallbacks           = "hcSetCallbacks"
)

// Entry point names of the core-exported table.
const (
	ProcGetCoreInfo   = "hcGetCoreInfo"
	ProcCreate        = "hcCreate"
	ProcDestroy       = "hcDestroy"
	ProcReset         = "hcReset"
	ProcSetRunState   = "hcSetRunState"
	ProcLoadContent   = "hcLoadContent"
	ProcGetError      = "hcGetError"
	ProcLoadFunctions = "hcInternalLoadFunctions"
)

// resolveAs resolves one named entry point and stores it in dst. Missing
// names and type mismatches both yield hc.ErrMissingFunction so a caller
// cannot tell a half-exported table from an unexported one.
func resolveAs[T any](resolve Resolver, name string, dst *T) error {
	v := resolve(name)
	if v == nil {
		return fmt.Errorf("%w: %s", hc.ErrMissingFunction, name)
	}
	fn, ok := v.(T)
	if !ok {
		return fmt.Errorf("%w: %s has type %T", hc.ErrMissingFunction, name, v)
	}
	*dst = fn
	return nil
}
