package hc

import "fmt"

// Version is a packed renderer API version: major in the high 16 bits,
// minor in the low 16 bits. Zero always means "not supported", so a single
// numeric comparison answers "at least version X.Y" and an unsupported API
// orders below every supported version of the same family.
//
// A Version is only meaningful within one renderer family; comparing an
// OpenGL version against a Vulkan version is a caller bug the type cannot
// catch.
type Version uint32

// VersionNotSupported is the zero version, shared by every API family.
const VersionNotSupported Version = 0

// MakeVersion packs a major/minor pair.
func MakeVersion(major, minor uint16) Version {
	return Version(uint32(major)<<16 | uint32(minor))
}

// Major returns the major component.
func (v Version) Major() uint16 { return uint16(v >> 16) }

// Minor returns the minor component.
func (v Version) Minor() uint16 { return uint16(v) }

// Supported reports whether the version denotes a supported API.
func (v Version) Supported() bool { return v != VersionNotSupported }

// AtLeast reports whether v is a supported version not older than want.
func (v Version) AtLeast(want Version) bool {
	return v.Supported() && v >= want
}

// String formats the version as "major.minor", or "not supported".
func (v Version) String() string {
	if !v.Supported() {
		return "not supported"
	}
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// OpenGL versions.
const (
	OpenGLVersion10 Version = 1<<16 | 0
	OpenGLVersion11 Version = 1<<16 | 1
	OpenGLVersion12 Version = 1<<16 | 2
	OpenGLVersion13 Version = 1<<16 | 3
	OpenGLVersion14 Version = 1<<16 | 4
	OpenGLVersion15 Version = 1<<16 | 5
	OpenGLVersion20 Version = 2<<16 | 0
	OpenGLVersion21 Version = 2<<16 | 1
	OpenGLVersion30 Version = 3<<16 | 0
	OpenGLVersion31 Version = 3<<16 | 1
	OpenGLVersion32 Version = 3<<16 | 2
	OpenGLVersion33 Version = 3<<16 | 3
	OpenGLVersion40 Version = 4<<16 | 0
	OpenGLVersion41 Version = 4<<16 | 1
	OpenGLVersion42 Version = 4<<16 | 2
	OpenGLVersion43 Version = 4<<16 | 3
	OpenGLVersion44 Version = 4<<16 | 4
	OpenGLVersion45 Version = 4<<16 | 5
	OpenGLVersion46 Version = 4<<16 | 6
)

// OpenGL ES versions.
const (
	OpenGLESVersion10 Version = 1<<16 | 0
	OpenGLESVersion11 Version = 1<<16 | 1
	OpenGLESVersion20 Version = 2<<16 | 0
	OpenGLESVersion30 Version = 3<<16 | 0
	OpenGLESVersion31 Version = 3<<16 | 1
	OpenGLESVersion32 Version = 3<<16 | 2
)

// WebGL versions. The C interface lists these as bare ordinals (1, 2);
// the nativecore boundary translates to and from the packed form.
const (
	WebGLVersion10 Version = 1<<16 | 0
	WebGLVersion20 Version = 2<<16 | 0
)

// Vulkan versions.
const (
	VulkanVersion10 Version = 1<<16 | 0
	VulkanVersion11 Version = 1<<16 | 1
	VulkanVersion12 Version = 1<<16 | 2
	VulkanVersion13 Version = 1<<16 | 3
)

// Metal versions.
const (
	MetalVersion10 Version = 1<<16 | 0
	MetalVersion20 Version = 2<<16 | 0
	MetalVersion30 Version = 3<<16 | 0
)

// Direct3D versions. The C interface lists these as ordinals 1 through
// 6; the nativecore boundary translates to and from the packed form.
const (
	Direct3DVersion7  Version = 7<<16 | 0
	Direct3DVersion8  Version = 8<<16 | 0
	Direct3DVersion9  Version = 9<<16 | 0
	Direct3DVersion10 Version = 10<<16 | 0
	Direct3DVersion11 Version = 11<<16 | 0
	Direct3DVersion12 Version = 12<<16 | 0
)

// RendererType identifies the renderer family a core draws with. The
// family and the Version within it are orthogonal: a video configuration
// names both.
type RendererType int32

const (
	RendererTypeNull RendererType = iota
	RendererTypeSoftware
	RendererTypeOpenGL
	RendererTypeOpenGLES
	RendererTypeWebGL
	RendererTypeVulkan
	RendererTypeMetal
	RendererTypeDirect3D
)

// String returns the string representation of the renderer type.
func (t RendererType) String() string {
	switch t {
	case RendererTypeNull:
		return "null"
	case RendererTypeSoftware:
		return "software"
	case RendererTypeOpenGL:
		return "OpenGL"
	case RendererTypeOpenGLES:
		return "OpenGL ES"
	case RendererTypeWebGL:
		return "WebGL"
	case RendererTypeVulkan:
		return "Vulkan"
	case RendererTypeMetal:
		return "Metal"
	case RendererTypeDirect3D:
		return "Direct3D"
	default:
		return "unknown"
	}
}
