package hc

import (
	"errors"
	"fmt"
)

// Result is the code returned by every boundary-crossing call. Zero means
// success; failures are negative and grouped by kind: -1001 for generic
// core failures (see the core's last-error string for detail), the -2001
// block for protocol and negotiation failures, the -3001 block for
// resource failures, and the -5001 block for fatal resolution failures.
// Values match the wire ABI and must not be renumbered.
type Result int32

const (
	ResultSuccess Result = 0

	// ResultErrCore reports a core-internal failure. The core's
	// last-error string carries a human-readable description.
	ResultErrCore Result = -1001

	ResultErrNotAllCallbacksSet   Result = -2001
	ResultErrWrongDriveMode       Result = -2000
	ResultErrNullDataPassed       Result = -1999
	ResultErrBadRendererVersion   Result = -1998
	ResultErrBadContent           Result = -1997
	ResultErrBadInputRequest      Result = -1996
	ResultErrBadEnvironmentInfo   Result = -1995
	ResultErrBadAudioDataWant     Result = -1994
	ResultErrBadAudioDataHave     Result = -1993
	ResultErrAudioOverrun         Result = -1992
	ResultErrAudioFullySelfDriven Result = -1991
	ResultErrNotSoftwareRendered  Result = -1990
	ResultErrNotOpenGLRendered    Result = -1989
	ResultErrNotVulkanRendered    Result = -1988
	ResultErrNotMetalRendered     Result = -1987
	ResultErrNotDirect3DRendered  Result = -1986
	ResultErrBadStructureType     Result = -1985

	ResultErrTooManyInstances Result = -3001
	ResultErrNoSuchInstance   Result = -3000

	ResultErrBadResolver     Result = -5001
	ResultErrMissingFunction Result = -5002
	ResultErrNotInitialized  Result = -5003
)

// Sentinel errors corresponding to Result codes. They support errors.Is
// so callers can test for a specific failure without inspecting codes.
var (
	ErrCore                 = errors.New("core error")
	ErrNotAllCallbacksSet   = errors.New("not all callbacks set")
	ErrWrongDriveMode       = errors.New("wrong drive mode")
	ErrNullDataPassed       = errors.New("null data passed")
	ErrBadRendererVersion   = errors.New("renderer version not supported")
	ErrBadContent           = errors.New("bad content")
	ErrBadInputRequest      = errors.New("bad input request")
	ErrBadEnvironmentInfo   = errors.New("bad environment info")
	ErrBadAudioDataWant     = errors.New("bad audio data want format")
	ErrBadAudioDataHave     = errors.New("bad audio data have format")
	ErrAudioOverrun         = errors.New("audio buffer overrun")
	ErrAudioFullySelfDriven = errors.New("core is fully self-driven, frontend does not accept audio")
	ErrNotSoftwareRendered  = errors.New("core is not software rendered")
	ErrNotOpenGLRendered    = errors.New("core is not OpenGL rendered")
	ErrNotVulkanRendered    = errors.New("core is not Vulkan rendered")
	ErrNotMetalRendered     = errors.New("core is not Metal rendered")
	ErrNotDirect3DRendered  = errors.New("core is not Direct3D rendered")
	ErrBadStructureType     = errors.New("record kind does not match call")
	ErrTooManyInstances     = errors.New("an instance already exists")
	ErrNoSuchInstance       = errors.New("no such instance")
	ErrBadResolver          = errors.New("missing resolver")
	ErrMissingFunction      = errors.New("missing entry point")
	ErrNotInitialized       = errors.New("bindings not initialized")
)

// Err converts a Result to a Go error. Success maps to nil; every failure
// code maps to its sentinel so errors.Is comparisons work.
func (r Result) Err() error {
	switch r {
	case ResultSuccess:
		return nil
	case ResultErrCore:
		return ErrCore
	case ResultErrNotAllCallbacksSet:
		return ErrNotAllCallbacksSet
	case ResultErrWrongDriveMode:
		return ErrWrongDriveMode
	case ResultErrNullDataPassed:
		return ErrNullDataPassed
	case ResultErrBadRendererVersion:
		return ErrBadRendererVersion
	case ResultErrBadContent:
		return ErrBadContent
	case ResultErrBadInputRequest:
		return ErrBadInputRequest
	case ResultErrBadEnvironmentInfo:
		return ErrBadEnvironmentInfo
	case ResultErrBadAudioDataWant:
		return ErrBadAudioDataWant
	case ResultErrBadAudioDataHave:
		return ErrBadAudioDataHave
	case ResultErrAudioOverrun:
		return ErrAudioOverrun
	case ResultErrAudioFullySelfDriven:
		return ErrAudioFullySelfDriven
	case ResultErrNotSoftwareRendered:
		return ErrNotSoftwareRendered
	case ResultErrNotOpenGLRendered:
		return ErrNotOpenGLRendered
	case ResultErrNotVulkanRendered:
		return ErrNotVulkanRendered
	case ResultErrNotMetalRendered:
		return ErrNotMetalRendered
	case ResultErrNotDirect3DRendered:
		return ErrNotDirect3DRendered
	case ResultErrBadStructureType:
		return ErrBadStructureType
	case ResultErrTooManyInstances:
		return ErrTooManyInstances
	case ResultErrNoSuchInstance:
		return ErrNoSuchInstance
	case ResultErrBadResolver:
		return ErrBadResolver
	case ResultErrMissingFunction:
		return ErrMissingFunction
	case ResultErrNotInitialized:
		return ErrNotInitialized
	default:
		return fmt.Errorf("unknown result code: %d", int32(r))
	}
}

// Ok reports whether the result is a success.
func (r Result) Ok() bool { return r == ResultSuccess }

// String returns the result's error text, or "success".
func (r Result) String() string {
	if r == ResultSuccess {
		return "success"
	}
	return r.Err().Error()
}
