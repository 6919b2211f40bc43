package nativecore

import (
	"log"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/hydra-emu/core/pkg/bind"
	"github.com/hydra-emu/core/pkg/hc"
)

// hostBridge exports a resolved frontend table to the native side. Each
// entry point becomes a C-callable trampoline, and the resolver callback
// hands their addresses to the core's loader export by name. Callback
// trampolines are never released, so one bridge is built per Core and
// reused across handshakes.
type hostBridge struct {
	procs *bind.HostProcs

	// vendor pins the GPU vendor string for the native side between
	// calls.
	vendor []byte

	table    map[string]uintptr
	resolver uintptr
}

// cbResult truncates a result code to the 32 bits a C caller reads.
func cbResult(res hc.Result) uintptr {
	return uintptr(uint32(res))
}

// recoverCallback stops a panic from unwinding through the native
// caller's stack frames, which would be undefined behavior. The failed
// call reports a generic core error.
func recoverCallback(res *uintptr) {
	if r := recover(); r != nil {
		log.Printf("[nativecore] panic recovered in host callback: %v", r)
		*res = cbResult(hc.ResultErrCore)
	}
}

func newHostBridge() *hostBridge {
	b := &hostBridge{}
	b.table = map[string]uintptr{
		bind.ProcGetHostInfo:            purego.NewCallback(b.getHostInfo),
		bind.ProcGetInputsSync:          purego.NewCallback(b.getInputsSync),
		bind.ProcReconfigureEnvironment: purego.NewCallback(b.reconfigureEnvironment),
		bind.ProcPushSamples:            purego.NewCallback(b.pushSamples),
		bind.ProcSwPushVideoFrame:       purego.NewCallback(b.swPushVideoFrame),
		bind.ProcGlMakeCurrent:          purego.NewCallback(b.glMakeCurrent),
		bind.ProcGlSwapBuffers:          purego.NewCallback(b.glSwapBuffers),
		bind.ProcGlGetProcAddress:       purego.NewCallback(b.glGetProcAddress),
		bind.ProcSetCallbacks:           purego.NewCallback(b.setCallbacks),
	}
	b.resolver = purego.NewCallback(func(namePtr uintptr) uintptr {
		name := goString((*byte)(unsafe.Pointer(namePtr)))
		return b.table[name]
	})
	return b
}

func (b *hostBridge) getHostInfo(infoPtr uintptr) {
	var res uintptr
	defer recoverCallback(&res)
	raw := (*rawHostInfo)(unsafe.Pointer(infoPtr))
	if raw == nil {
		return
	}

	info := hc.NewHostInfo()
	b.procs.GetHostInfo(info)

	b.vendor = cString(info.GPUVendor)
	raw.Architecture = int32(info.Architecture)
	raw.OperatingSystem = int32(info.OperatingSystem)
	raw.GPUVendor = cStringPtr(b.vendor)
	raw.OpenGLVersion = uint32(info.OpenGLVersion)
	raw.OpenGLESVersion = uint32(info.OpenGLESVersion)
	raw.WebGLVersion = wireVersion(hc.RendererTypeWebGL, info.WebGLVersion)
	raw.VulkanVersion = uint32(info.VulkanVersion)
	raw.MetalVersion = uint32(info.MetalVersion)
	raw.Direct3DVersion = wireVersion(hc.RendererTypeDirect3D, info.Direct3DVersion)
}

func (b *hostBridge) getInputsSync(requestsPtr uintptr, count int32, valuesPtr uintptr) (res uintptr) {
	defer recoverCallback(&res)
	if requestsPtr == 0 || valuesPtr == 0 || count <= 0 {
		return cbResult(hc.ResultErrNullDataPassed)
	}

	reqPtrs := unsafe.Slice((**rawInputRequest)(unsafe.Pointer(requestsPtr)), int(count))
	valPtrs := unsafe.Slice((**int64)(unsafe.Pointer(valuesPtr)), int(count))

	requests := make([]*hc.InputRequest, count)
	for i, rp := range reqPtrs {
		if rp == nil {
			return cbResult(hc.ResultErrNullDataPassed)
		}
		requests[i] = hc.NewInputRequest(rp.Port, hc.InputType(rp.InputType))
	}

	values, ires := b.procs.GetInputsSync(requests)
	if !ires.Ok() {
		return cbResult(ires)
	}
	for i := range values {
		if valPtrs[i] != nil {
			*valPtrs[i] = values[i]
		}
	}
	return cbResult(hc.ResultSuccess)
}

func (b *hostBridge) reconfigureEnvironment(envPtr uintptr) (res uintptr) {
	defer recoverCallback(&res)
	raw := (*rawEnvironmentInfo)(unsafe.Pointer(envPtr))
	if raw == nil {
		return cbResult(hc.ResultErrNullDataPassed)
	}
	return cbResult(b.procs.ReconfigureEnvironment(environmentOfRaw(raw)))
}

func (b *hostBridge) pushSamples(dataPtr uintptr) (res uintptr) {
	defer recoverCallback(&res)
	raw := (*rawAudioData)(unsafe.Pointer(dataPtr))
	if raw == nil {
		return cbResult(hc.ResultErrNullDataPassed)
	}

	data := hc.NewAudioData()
	data.SampleCount = raw.SampleCount
	data.Want = audioInfoOfRaw(&raw.Want)
	if raw.Have.Format != 0 || raw.Have.Channels != 0 || raw.Have.SampleRate != 0 {
		data.Have = audioInfoOfRaw(&raw.Have)
	}
	if raw.Data != nil && data.Want != nil {
		frame := data.Want.Format.BytesPerSample() * data.Want.Channels.Count()
		size := int(raw.SampleCount) * frame
		if size > 0 {
			data.Data = unsafe.Slice(raw.Data, size)
		}
	}
	return cbResult(b.procs.PushSamples(data))
}

func (b *hostBridge) swPushVideoFrame(imagePtr uintptr) (res uintptr) {
	defer recoverCallback(&res)
	raw := (*rawImageData)(unsafe.Pointer(imagePtr))
	if raw == nil {
		return cbResult(hc.ResultErrNullDataPassed)
	}
	return cbResult(b.procs.SwPushVideoFrame(imageDataOfRaw(raw)))
}

func (b *hostBridge) glMakeCurrent() (res uintptr) {
	defer recoverCallback(&res)
	return cbResult(b.procs.GlMakeCurrent())
}

func (b *hostBridge) glSwapBuffers() (res uintptr) {
	defer recoverCallback(&res)
	return cbResult(b.procs.GlSwapBuffers())
}

func (b *hostBridge) glGetProcAddress(namePtr uintptr) (addr uintptr) {
	// This trampoline returns an address, not a result code, so a
	// recovered panic yields the unknown-function answer instead.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[nativecore] panic recovered in host callback: %v", r)
			addr = 0
		}
	}()
	name := goString((*byte)(unsafe.Pointer(namePtr)))
	return b.procs.GlGetProcAddress(name)
}

func (b *hostBridge) setCallbacks(callbacksPtr uintptr) (res uintptr) {
	defer recoverCallback(&res)
	raw := (*rawCallbacks)(unsafe.Pointer(callbacksPtr))
	if raw == nil {
		return cbResult(hc.ResultErrNullDataPassed)
	}

	cb := hc.NewCallbacks()
	if raw.FrontendDriven != nil && raw.FrontendDriven.RunFrame != 0 {
		fn := raw.FrontendDriven.RunFrame
		cb.FrontendDriven = &hc.FrontendDrivenCallbacks{
			RunFrame: func() { purego.SyscallN(fn) },
		}
	}
	if raw.SelfDriven != nil && raw.SelfDriven.EntryPoint != 0 {
		fn := raw.SelfDriven.EntryPoint
		cb.SelfDriven = &hc.SelfDrivenCallbacks{
			EntryPoint: func() { purego.SyscallN(fn) },
		}
	}
	return cbResult(b.procs.SetCallbacks(cb))
}
