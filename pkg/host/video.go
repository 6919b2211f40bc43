package host

import (
	"sync"

	"github.com/hydra-emu/core/pkg/hc"
)

// framebuffer holds pixels pushed by the core and read by the frontend's
// draw path. Separate write and read buffers let the core push a new
// frame while the frontend presents the previous snapshot.
type framebuffer struct {
	mu     sync.Mutex
	write  []byte
	read   []byte
	width  uint32
	height uint32
	format hc.PixelFormat
	stride int
}

func newFramebuffer(width, height uint32, format hc.PixelFormat) *framebuffer {
	size := int(width) * int(height) * format.BytesPerPixel()
	return &framebuffer{
		write:  make([]byte, size),
		read:   make([]byte, size),
		width:  width,
		height: height,
		format: format,
	}
}

func (f *framebuffer) update(pixels []byte, stride int) {
	f.mu.Lock()
	n := len(pixels)
	if n > len(f.write) {
		n = len(f.write)
	}
	copy(f.write[:n], pixels[:n])
	f.stride = stride
	f.mu.Unlock()
}

// snapshot copies the write buffer into the read buffer under the lock
// and returns the read buffer, which is safe to use without holding it.
func (f *framebuffer) snapshot() (pixels []byte, width, height uint32) {
	f.mu.Lock()
	copy(f.read, f.write)
	pixels = f.read
	width, height = f.width, f.height
	f.mu.Unlock()
	return
}

// SwPushVideoFrame accepts a rendered frame from a software-rendered
// core. The pixel format must match the negotiated video parameters;
// dimensions are clamped to the negotiated resolution.
func (h *Host) SwPushVideoFrame(image *hc.ImageData) hc.Result {
	if image == nil {
		return hc.ResultErrNullDataPassed
	}
	if res := hc.Expect(image, hc.StructureTypeImageData); !res.Ok() {
		return res
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.session
	if s == nil {
		return hc.ResultErrNoSuchInstance
	}
	if s.renderer != hc.RendererTypeSoftware {
		return hc.ResultErrNotSoftwareRendered
	}
	if len(image.Data) == 0 {
		return hc.ResultErrNullDataPassed
	}
	if image.Format != s.video.Format {
		return hc.ResultErrBadEnvironmentInfo
	}

	stride := int(image.Stride)
	if stride == 0 {
		stride = int(image.Width) * image.Format.BytesPerPixel()
	}
	s.fb.update(image.Data, stride)
	return hc.ResultSuccess
}

// Frame returns a snapshot of the most recently pushed software frame.
// The slice stays valid until the next call; a frontend that needs it
// longer must copy it.
func (h *Host) Frame() (pixels []byte, width, height uint32, ok bool) {
	var fb *framebuffer
	h.mu.Lock()
	if h.session != nil {
		fb = h.session.fb
	}
	h.mu.Unlock()
	if fb == nil {
		return nil, 0, 0, false
	}
	pixels, width, height = fb.snapshot()
	return pixels, width, height, true
}

func (h *Host) glSession() (*session, hc.Result) {
	h.mu.Lock()
	s := h.session
	h.mu.Unlock()

	if s == nil {
		return nil, hc.ResultErrNoSuchInstance
	}
	switch s.renderer {
	case hc.RendererTypeOpenGL, hc.RendererTypeOpenGLES, hc.RendererTypeWebGL:
	default:
		return nil, hc.ResultErrNotOpenGLRendered
	}
	return s, hc.ResultSuccess
}

// GlMakeCurrent binds the frontend's GL context to the calling thread.
func (h *Host) GlMakeCurrent() hc.Result {
	if _, res := h.glSession(); !res.Ok() {
		return res
	}
	if h.cfg.GlMakeCurrent == nil {
		return hc.ResultErrNotOpenGLRendered
	}
	h.cfg.GlMakeCurrent()
	return hc.ResultSuccess
}

// GlSwapBuffers presents the frame the core just rendered.
func (h *Host) GlSwapBuffers() hc.Result {
	if _, res := h.glSession(); !res.Ok() {
		return res
	}
	if h.cfg.GlSwapBuffers == nil {
		return hc.ResultErrNotOpenGLRendered
	}
	h.cfg.GlSwapBuffers()
	return hc.ResultSuccess
}

// GlGetProcAddress resolves a GL function by name. It returns 0 when the
// host has no GL context or the function is unknown.
func (h *Host) GlGetProcAddress(name string) uintptr {
	if h.cfg.GlGetProcAddress == nil {
		return 0
	}
	return h.cfg.GlGetProcAddress(name)
}
