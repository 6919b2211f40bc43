package hc

// PixelFormat describes the layout of a software-rendered pixel.
type PixelFormat int32

const (
	PixelFormatNull PixelFormat = iota
	PixelFormatRGBA32
	PixelFormatBGRA32
	PixelFormatARGB32
	PixelFormatABGR32
	PixelFormatRGB24
	PixelFormatBGR24
	PixelFormatRGB565
	PixelFormatBGR565
	PixelFormatRGBA5551
	PixelFormatBGRA5551
	PixelFormatARGB1555
	PixelFormatABGR1555
)

// BytesPerPixel returns the storage size of one pixel, or 0 for the null
// format.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGBA32, PixelFormatBGRA32, PixelFormatARGB32, PixelFormatABGR32:
		return 4
	case PixelFormatRGB24, PixelFormatBGR24:
		return 3
	case PixelFormatRGB565, PixelFormatBGR565,
		PixelFormatRGBA5551, PixelFormatBGRA5551,
		PixelFormatARGB1555, PixelFormatABGR1555:
		return 2
	default:
		return 0
	}
}

// String returns the string representation of the pixel format.
func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGBA32:
		return "RGBA32"
	case PixelFormatBGRA32:
		return "BGRA32"
	case PixelFormatARGB32:
		return "ARGB32"
	case PixelFormatABGR32:
		return "ABGR32"
	case PixelFormatRGB24:
		return "RGB24"
	case PixelFormatBGR24:
		return "BGR24"
	case PixelFormatRGB565:
		return "RGB565"
	case PixelFormatBGR565:
		return "BGR565"
	case PixelFormatRGBA5551:
		return "RGBA5551"
	case PixelFormatBGRA5551:
		return "BGRA5551"
	case PixelFormatARGB1555:
		return "ARGB1555"
	case PixelFormatABGR1555:
		return "ABGR1555"
	default:
		return "null"
	}
}

// AudioFormat describes the PCM sample encoding.
type AudioFormat int32

const (
	AudioFormatNull AudioFormat = iota
	AudioFormatU8PCM
	AudioFormatS8PCM
	AudioFormatS16PCM
	AudioFormatS24PCM
	AudioFormatS32PCM
	AudioFormatFloat32
	AudioFormatFloat64
)

// BytesPerSample returns the storage size of one sample, or 0 for the
// null format.
func (f AudioFormat) BytesPerSample() int {
	switch f {
	case AudioFormatU8PCM, AudioFormatS8PCM:
		return 1
	case AudioFormatS16PCM:
		return 2
	case AudioFormatS24PCM:
		return 3
	case AudioFormatS32PCM, AudioFormatFloat32:
		return 4
	case AudioFormatFloat64:
		return 8
	default:
		return 0
	}
}

// String returns the string representation of the audio format.
func (f AudioFormat) String() string {
	switch f {
	case AudioFormatU8PCM:
		return "u8"
	case AudioFormatS8PCM:
		return "s8"
	case AudioFormatS16PCM:
		return "s16"
	case AudioFormatS24PCM:
		return "s24"
	case AudioFormatS32PCM:
		return "s32"
	case AudioFormatFloat32:
		return "f32"
	case AudioFormatFloat64:
		return "f64"
	default:
		return "null"
	}
}

// AudioChannels is the channel layout of an audio stream. The value is the
// channel count.
type AudioChannels int32

const (
	AudioChannelsNull       AudioChannels = 0
	AudioChannelsMono       AudioChannels = 1
	AudioChannelsStereo     AudioChannels = 2
	AudioChannels31Surround AudioChannels = 4
	AudioChannels51Surround AudioChannels = 6
	AudioChannels71Surround AudioChannels = 8
)

// Count returns the number of channels in the layout.
func (c AudioChannels) Count() int { return int(c) }

// String returns the string representation of the channel layout.
func (c AudioChannels) String() string {
	switch c {
	case AudioChannelsMono:
		return "mono"
	case AudioChannelsStereo:
		return "stereo"
	case AudioChannels31Surround:
		return "3.1 surround"
	case AudioChannels51Surround:
		return "5.1 surround"
	case AudioChannels71Surround:
		return "7.1 surround"
	default:
		return "null"
	}
}
