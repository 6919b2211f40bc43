package nativecore

import (
	"unsafe"

	"github.com/hydra-emu/core/pkg/hc"
)

// Raw structs mirror the C ABI layouts field for field. Every struct
// leads with the int32 discriminator and the next pointer; Go's natural
// alignment rules match the C compiler's here, so no explicit padding is
// needed.

type rawVideoInfo struct {
	Type            int32
	Next            unsafe.Pointer
	RendererType    int32
	RendererVersion uint32
	Width           uint32
	Height          uint32
	FrameRate       uint32
	Format          int32
}

type rawAudioInfo struct {
	Type       int32
	Next       unsafe.Pointer
	Format     int32
	Channels   int32
	SampleRate uint32
}

type rawImageData struct {
	Type     int32
	Next     unsafe.Pointer
	Data     *byte
	Width    uint32
	Height   uint32
	Channels uint32
	Stride   uint32
	Format   int32
}

type rawAudioData struct {
	Type        int32
	Next        unsafe.Pointer
	Data        *byte
	SampleCount uint32
	Want        rawAudioInfo
	Have        rawAudioInfo
}

type rawContentInfo struct {
	Type        int32
	Next        unsafe.Pointer
	Name        *byte
	Description *byte
	Extensions  *byte
}

type rawCoreInfo struct {
	Type                     int32
	Next                     unsafe.Pointer
	CoreName                 *byte
	CoreVersion              *byte
	SystemName               *byte
	Author                   *byte
	Description              *byte
	Website                  *byte
	Settings                 *byte
	License                  *byte
	LoadableContentInfo      *rawContentInfo
	LoadableContentInfoCount int32
	Icon                     *rawImageData
}

type rawEnvironmentInfo struct {
	Type      int32
	Next      unsafe.Pointer
	DriveMode int32
	Video     *rawVideoInfo
	Audio     *rawAudioInfo
}

type rawDestroyInfo struct {
	Type int32
	Next unsafe.Pointer
}

type rawResetInfo struct {
	Type      int32
	Next      unsafe.Pointer
	ResetType int32
}

type rawHostInfo struct {
	Type            int32
	Next            unsafe.Pointer
	Architecture    int32
	OperatingSystem int32
	GPUVendor       *byte
	OpenGLVersion   uint32
	OpenGLESVersion uint32
	WebGLVersion    uint32
	VulkanVersion   uint32
	MetalVersion    uint32
	Direct3DVersion uint32
}

type rawInputRequest struct {
	Type      int32
	Next      unsafe.Pointer
	Port      uint32
	InputType int32
}

type rawRunStateInfo struct {
	Type     int32
	Next     unsafe.Pointer
	RunState int32
}

type rawContentLoadInfo struct {
	Type int32
	Next unsafe.Pointer
	Name *byte
	Path *byte
}

type rawFrontendDrivenCallbacks struct {
	Type     int32
	Next     unsafe.Pointer
	RunFrame uintptr
}

type rawSelfDrivenCallbacks struct {
	Type       int32
	Next       unsafe.Pointer
	EntryPoint uintptr
}

type rawCallbacks struct {
	Type           int32
	Next           unsafe.Pointer
	FrontendDriven *rawFrontendDrivenCallbacks
	SelfDriven     *rawSelfDrivenCallbacks
}

// cString allocates a NUL-terminated byte buffer from a Go string. The
// caller keeps the slice alive for as long as the native side may read
// it.
func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

func cStringPtr(b []byte) *byte {
	if len(b) == 0 {
		return nil
	}
	return &b[0]
}

// goString copies a NUL-terminated native string into Go memory.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

func rawAudioInfoOf(a *hc.AudioInfo) rawAudioInfo {
	if a == nil {
		return rawAudioInfo{Type: int32(hc.StructureTypeAudioInfo)}
	}
	return rawAudioInfo{
		Type:       int32(hc.StructureTypeAudioInfo),
		Format:     int32(a.Format),
		Channels:   int32(a.Channels),
		SampleRate: a.SampleRate,
	}
}

func audioInfoOfRaw(raw *rawAudioInfo) *hc.AudioInfo {
	if raw == nil {
		return nil
	}
	info := hc.NewAudioInfo()
	info.Format = hc.AudioFormat(raw.Format)
	info.Channels = hc.AudioChannels(raw.Channels)
	info.SampleRate = raw.SampleRate
	return info
}

// The in-process hc.Version packs every family as major<<16|minor, but
// the C enums encode WebGL as 1,2 and Direct3D as 1..6 (ordinal past
// HC_DIRECT3D_VERSION_7_0). These two translate at the boundary; the
// remaining families are packed on both sides. Zero stays zero, meaning
// not supported.

func wireVersion(family hc.RendererType, v hc.Version) uint32 {
	if !v.Supported() {
		return 0
	}
	switch family {
	case hc.RendererTypeWebGL:
		return uint32(v.Major())
	case hc.RendererTypeDirect3D:
		return uint32(v.Major()) - 6
	default:
		return uint32(v)
	}
}

func versionOfWire(family hc.RendererType, raw uint32) hc.Version {
	if raw == 0 {
		return hc.VersionNotSupported
	}
	switch family {
	case hc.RendererTypeWebGL:
		return hc.MakeVersion(uint16(raw), 0)
	case hc.RendererTypeDirect3D:
		return hc.MakeVersion(uint16(raw)+6, 0)
	default:
		return hc.Version(raw)
	}
}

func rawVideoInfoOf(v *hc.VideoInfo) rawVideoInfo {
	if v == nil {
		return rawVideoInfo{Type: int32(hc.StructureTypeVideoInfo)}
	}
	return rawVideoInfo{
		Type:            int32(hc.StructureTypeVideoInfo),
		RendererType:    int32(v.RendererType),
		RendererVersion: wireVersion(v.RendererType, v.RendererVersion),
		Width:           v.Width,
		Height:          v.Height,
		FrameRate:       v.FrameRate,
		Format:          int32(v.Format),
	}
}

func videoInfoOfRaw(raw *rawVideoInfo) *hc.VideoInfo {
	if raw == nil {
		return nil
	}
	info := hc.NewVideoInfo()
	info.RendererType = hc.RendererType(raw.RendererType)
	info.RendererVersion = versionOfWire(info.RendererType, raw.RendererVersion)
	info.Width = raw.Width
	info.Height = raw.Height
	info.FrameRate = raw.FrameRate
	info.Format = hc.PixelFormat(raw.Format)
	return info
}

func environmentOfRaw(raw *rawEnvironmentInfo) *hc.EnvironmentInfo {
	env := hc.NewEnvironmentInfo()
	env.DriveMode = hc.DriveMode(raw.DriveMode)
	env.Video = videoInfoOfRaw(raw.Video)
	env.Audio = audioInfoOfRaw(raw.Audio)
	return env
}

// imageDataOfRaw converts without copying pixels; the result is only
// valid for the duration of the call it was received in.
func imageDataOfRaw(raw *rawImageData) *hc.ImageData {
	if raw == nil {
		return nil
	}
	img := hc.NewImageData()
	img.Width = raw.Width
	img.Height = raw.Height
	img.Channels = raw.Channels
	img.Stride = raw.Stride
	img.Format = hc.PixelFormat(raw.Format)
	if raw.Data != nil {
		size := int(raw.Stride) * int(raw.Height)
		if size > 0 {
			img.Data = unsafe.Slice(raw.Data, size)
		}
	}
	return img
}
