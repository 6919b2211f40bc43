package hc

// HostInfo describes the platform the frontend runs on. It is produced
// once at startup and is read-only to the core. Each renderer API field is
// the newest version the host can provide, or VersionNotSupported.
// Extendable.
type HostInfo struct {
	Header
	Architecture    Architecture
	OperatingSystem OperatingSystem
	GPUVendor       string
	OpenGLVersion   Version
	OpenGLESVersion Version
	WebGLVersion    Version
	VulkanVersion   Version
	MetalVersion    Version
	Direct3DVersion Version
}

// NewHostInfo returns a HostInfo with its discriminator set.
func NewHostInfo() *HostInfo {
	return &HostInfo{Header: Header{Type: StructureTypeHostInfo}}
}

// MaxVersion returns the newest version the host supports for the given
// renderer family. Software rendering is always available and reports
// version 1.0.
func (h *HostInfo) MaxVersion(t RendererType) Version {
	switch t {
	case RendererTypeSoftware:
		return MakeVersion(1, 0)
	case RendererTypeOpenGL:
		return h.OpenGLVersion
	case RendererTypeOpenGLES:
		return h.OpenGLESVersion
	case RendererTypeWebGL:
		return h.WebGLVersion
	case RendererTypeVulkan:
		return h.VulkanVersion
	case RendererTypeMetal:
		return h.MetalVersion
	case RendererTypeDirect3D:
		return h.Direct3DVersion
	default:
		return VersionNotSupported
	}
}

// ContentInfo describes one kind of loadable content: a display name, a
// description, and a comma-separated list of file extensions.
type ContentInfo struct {
	Header
	Name        string
	Description string
	Extensions  string
}

// NewContentInfo returns a ContentInfo with its discriminator set.
func NewContentInfo() *ContentInfo {
	return &ContentInfo{Header: Header{Type: StructureTypeContentInfo}}
}

// CoreInfo is the core's static identity, produced once in response to the
// info query and immutable thereafter. Settings carries the core's
// settings schema in whatever format the core documents. Extendable.
type CoreInfo struct {
	Header
	CoreName        string
	CoreVersion     string
	SystemName      string
	Author          string
	Description     string
	Website         string
	Settings        string
	License         string
	LoadableContent []*ContentInfo
	Icon            *ImageData
}

// NewCoreInfo returns a CoreInfo with its discriminator set.
func NewCoreInfo() *CoreInfo {
	return &CoreInfo{Header: Header{Type: StructureTypeCoreInfo}}
}

// VideoInfo is the video half of the negotiated environment. RendererType
// and RendererVersion are fixed after Create; the remaining fields may
// change through reconfiguration. Extendable.
type VideoInfo struct {
	Header
	RendererType    RendererType
	RendererVersion Version
	Width           uint32
	Height          uint32
	FrameRate       uint32
	Format          PixelFormat
}

// NewVideoInfo returns a VideoInfo with its discriminator set.
func NewVideoInfo() *VideoInfo {
	return &VideoInfo{Header: Header{Type: StructureTypeVideoInfo}}
}

// AudioInfo is the audio half of the negotiated environment. Extendable.
type AudioInfo struct {
	Header
	Format     AudioFormat
	Channels   AudioChannels
	SampleRate uint32
}

// NewAudioInfo returns an AudioInfo with its discriminator set.
func NewAudioInfo() *AudioInfo {
	return &AudioInfo{Header: Header{Type: StructureTypeAudioInfo}}
}

// Valid reports whether the format, channel layout and sample rate are all
// set to usable values.
func (a *AudioInfo) Valid() bool {
	return a.Format.BytesPerSample() > 0 && a.Channels.Count() > 0 && a.SampleRate > 0
}

// ImageData is a transient buffer of raw pixels plus its layout. Data is
// owned by the producing side for the duration of the call only; a
// receiver that needs the pixels longer must copy them.
type ImageData struct {
	Header
	Data     []byte
	Width    uint32
	Height   uint32
	Channels uint32
	Stride   uint32
	Format   PixelFormat
}

// NewImageData returns an ImageData with its discriminator set.
func NewImageData() *ImageData {
	return &ImageData{Header: Header{Type: StructureTypeImageData}}
}

// AudioData is a transient buffer of PCM samples. Want describes the
// format the core produced; Have describes the format the frontend plays.
// The frontend bridges the two where it can and rejects the push where it
// cannot. Ownership of Data follows the same single-call rule as
// ImageData.
type AudioData struct {
	Header
	Data        []byte
	SampleCount uint32
	Want        *AudioInfo
	Have        *AudioInfo
}

// NewAudioData returns an AudioData with its discriminator set.
func NewAudioData() *AudioData {
	return &AudioData{Header: Header{Type: StructureTypeAudioData}}
}

// EnvironmentInfo is the negotiated runtime configuration. The core
// populates it during Create; either side may re-submit it to
// reconfigure, though renderer identity and drive mode are immutable after
// creation. Extendable.
type EnvironmentInfo struct {
	Header
	DriveMode DriveMode
	Video     *VideoInfo
	Audio     *AudioInfo
}

// NewEnvironmentInfo returns an EnvironmentInfo with its discriminator set.
func NewEnvironmentInfo() *EnvironmentInfo {
	return &EnvironmentInfo{Header: Header{Type: StructureTypeEnvironmentInfo}}
}

// DestroyInfo accompanies the Destroy call. It carries no fields of its
// own today; extensions chain through the header.
type DestroyInfo struct {
	Header
}

// NewDestroyInfo returns a DestroyInfo with its discriminator set.
func NewDestroyInfo() *DestroyInfo {
	return &DestroyInfo{Header: Header{Type: StructureTypeDestroyInfo}}
}

// ResetInfo accompanies the Reset call.
type ResetInfo struct {
	Header
	ResetType ResetType
}

// NewResetInfo returns a ResetInfo with its discriminator set.
func NewResetInfo(t ResetType) *ResetInfo {
	return &ResetInfo{Header: Header{Type: StructureTypeResetInfo}, ResetType: t}
}

// RunStateInfo accompanies the SetRunState call.
type RunStateInfo struct {
	Header
	RunState RunState
}

// NewRunStateInfo returns a RunStateInfo with its discriminator set.
func NewRunStateInfo(s RunState) *RunStateInfo {
	return &RunStateInfo{Header: Header{Type: StructureTypeRunStateInfo}, RunState: s}
}

// ContentLoadInfo names content for the core to load: a logical name plus
// a path whose interpretation belongs entirely to the core.
type ContentLoadInfo struct {
	Header
	Name string
	Path string
}

// NewContentLoadInfo returns a ContentLoadInfo with its discriminator set.
func NewContentLoadInfo(name, path string) *ContentLoadInfo {
	return &ContentLoadInfo{Header: Header{Type: StructureTypeContentLoadInfo}, Name: name, Path: path}
}

// InputRequest asks for the current value of one input on one port.
type InputRequest struct {
	Header
	Port  uint32
	Input InputType
}

// NewInputRequest returns an InputRequest with its discriminator set.
func NewInputRequest(port uint32, input InputType) *InputRequest {
	return &InputRequest{Header: Header{Type: StructureTypeInputRequest}, Port: port, Input: input}
}

// LockRequest names a shared resource for the self-driven lock exchange.
type LockRequest struct {
	Header
	Resource LockResource
}

// NewLockRequest returns a LockRequest with its discriminator set.
func NewLockRequest(r LockResource) *LockRequest {
	return &LockRequest{Header: Header{Type: StructureTypeLockRequest}, Resource: r}
}

// FrontendDrivenCallbacks carries the callbacks a frontend-driven core
// registers. RunFrame is invoked once per frame by the frontend; during
// the call the core has exclusive access to push one video frame and any
// audio.
type FrontendDrivenCallbacks struct {
	RunFrame func()
}

// SelfDrivenCallbacks carries the entry point of a self-driven core's
// loop. The frontend starts it once on a thread the core then owns.
type SelfDrivenCallbacks struct {
	EntryPoint func()
}

// Callbacks is the registration record passed to SetCallbacks. Exactly one
// of the two callback sets must be populated, matching the instance's
// drive mode.
type Callbacks struct {
	Header
	FrontendDriven *FrontendDrivenCallbacks
	SelfDriven     *SelfDrivenCallbacks
}

// NewCallbacks returns a Callbacks record with its discriminator set.
func NewCallbacks() *Callbacks {
	return &Callbacks{Header: Header{Type: StructureTypeCallbacks}}
}
