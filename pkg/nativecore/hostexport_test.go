package nativecore

import (
	"testing"
	"unsafe"

	"github.com/hydra-emu/core/pkg/bind"
	"github.com/hydra-emu/core/pkg/hc"
)

// inputBridge builds a bridge whose input proc is the given function. The
// trampoline methods are called directly; no native core is involved.
func inputBridge(fn func(requests []*hc.InputRequest) ([]int64, hc.Result)) *hostBridge {
	return &hostBridge{procs: &bind.HostProcs{GetInputsSync: fn}}
}

func TestHostBridge_GetInputsSync(t *testing.T) {
	b := inputBridge(func(requests []*hc.InputRequest) ([]int64, hc.Result) {
		values := make([]int64, len(requests))
		for i, req := range requests {
			if req.Input == hc.InputTypeButtonA {
				values[i] = 1
			}
		}
		return values, hc.ResultSuccess
	})

	reqs := []rawInputRequest{
		{Type: int32(hc.StructureTypeInputRequest), Port: 0, InputType: int32(hc.InputTypeButtonA)},
		{Type: int32(hc.StructureTypeInputRequest), Port: 0, InputType: int32(hc.InputTypeKeypad1Up)},
	}
	reqPtrs := []*rawInputRequest{&reqs[0], &reqs[1]}
	values := make([]int64, 2)
	valPtrs := []*int64{&values[0], &values[1]}

	got := b.getInputsSync(
		uintptr(unsafe.Pointer(&reqPtrs[0])), 2,
		uintptr(unsafe.Pointer(&valPtrs[0])))
	if got != cbResult(hc.ResultSuccess) {
		t.Fatalf("getInputsSync = %#x, want success", got)
	}
	if values[0] != 1 || values[1] != 0 {
		t.Errorf("values = %v, want [1 0]", values)
	}
}

func TestHostBridge_GetInputsSyncPropagatesFailure(t *testing.T) {
	b := inputBridge(func([]*hc.InputRequest) ([]int64, hc.Result) {
		return nil, hc.ResultErrBadInputRequest
	})

	req := rawInputRequest{Type: int32(hc.StructureTypeInputRequest)}
	reqPtrs := []*rawInputRequest{&req}
	var value int64
	valPtrs := []*int64{&value}

	got := b.getInputsSync(
		uintptr(unsafe.Pointer(&reqPtrs[0])), 1,
		uintptr(unsafe.Pointer(&valPtrs[0])))
	if got != cbResult(hc.ResultErrBadInputRequest) {
		t.Errorf("getInputsSync = %#x, want bad-input-request", got)
	}
}

func TestHostBridge_GetInputsSyncNullArguments(t *testing.T) {
	b := inputBridge(func([]*hc.InputRequest) ([]int64, hc.Result) {
		t.Fatal("proc called with null arguments")
		return nil, hc.ResultSuccess
	})

	if got := b.getInputsSync(0, 1, 0); got != cbResult(hc.ResultErrNullDataPassed) {
		t.Errorf("null pointers = %#x, want null-data-passed", got)
	}
	req := rawInputRequest{Type: int32(hc.StructureTypeInputRequest)}
	reqPtrs := []*rawInputRequest{&req}
	if got := b.getInputsSync(uintptr(unsafe.Pointer(&reqPtrs[0])), 0, 0); got != cbResult(hc.ResultErrNullDataPassed) {
		t.Errorf("zero count = %#x, want null-data-passed", got)
	}
}

func TestHostBridge_RecoversCallbackPanic(t *testing.T) {
	b := inputBridge(func([]*hc.InputRequest) ([]int64, hc.Result) {
		panic("input layer fault")
	})

	req := rawInputRequest{Type: int32(hc.StructureTypeInputRequest)}
	reqPtrs := []*rawInputRequest{&req}
	var value int64
	valPtrs := []*int64{&value}

	got := b.getInputsSync(
		uintptr(unsafe.Pointer(&reqPtrs[0])), 1,
		uintptr(unsafe.Pointer(&valPtrs[0])))
	if got != cbResult(hc.ResultErrCore) {
		t.Errorf("panicking proc = %#x, want core error", got)
	}
}
