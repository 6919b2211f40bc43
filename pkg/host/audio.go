package host

import (
	"sync"

	"github.com/hydra-emu/core/pkg/hc"
)

// sampleRing is a fixed-capacity byte ring between the core's audio
// pushes and the frontend's audio device. A write that does not fit is
// rejected whole rather than dropping buffered data; the core treats the
// rejection as non-fatal and retries with fewer samples once the
// frontend has drained.
type sampleRing struct {
	mu   sync.Mutex
	buf  []byte
	head int
	size int
}

func newSampleRing(capacity int) *sampleRing {
	return &sampleRing{buf: make([]byte, capacity)}
}

// write appends p atomically. It reports false, leaving the ring
// untouched, when p does not fit in the free space.
func (r *sampleRing) write(p []byte) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(p) > len(r.buf)-r.size {
		return false
	}
	tail := (r.head + r.size) % len(r.buf)
	n := copy(r.buf[tail:], p)
	copy(r.buf, p[n:])
	r.size += len(p)
	return true
}

// read drains up to len(p) buffered bytes into p and returns how many
// were copied.
func (r *sampleRing) read(p []byte) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	want := len(p)
	if want > r.size {
		want = r.size
	}
	n := copy(p[:want], r.buf[r.head:])
	copy(p[n:want], r.buf)
	r.head = (r.head + want) % len(r.buf)
	r.size -= want
	return want
}

func (r *sampleRing) buffered() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

func (r *sampleRing) free() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buf) - r.size
}

// Clear discards all buffered bytes.
func (r *sampleRing) Clear() {
	r.mu.Lock()
	r.head = 0
	r.size = 0
	r.mu.Unlock()
}

func sameAudioLayout(a, b *hc.AudioInfo) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Format == b.Format && a.Channels == b.Channels && a.SampleRate == b.SampleRate
}

// PushSamples accepts PCM samples from the core. The want format must
// match the session's negotiated audio layout; the host does not
// resample. An overrun leaves the buffer untouched and is non-fatal: the
// core may retry with a smaller buffer after the frontend drains.
func (h *Host) PushSamples(data *hc.AudioData) hc.Result {
	if data == nil {
		return hc.ResultErrNullDataPassed
	}
	if res := hc.Expect(data, hc.StructureTypeAudioData); !res.Ok() {
		return res
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.session
	if s == nil {
		return hc.ResultErrNoSuchInstance
	}
	if s.driveMode == hc.DriveModeSelfDriven {
		return hc.ResultErrAudioFullySelfDriven
	}
	if s.ring == nil {
		return hc.ResultErrBadAudioDataWant
	}

	if data.Want == nil || !data.Want.Valid() {
		return hc.ResultErrBadAudioDataWant
	}
	if !sameAudioLayout(data.Want, s.audio) {
		return hc.ResultErrBadAudioDataWant
	}
	if data.Have != nil && !sameAudioLayout(data.Have, s.audio) {
		return hc.ResultErrBadAudioDataHave
	}

	if len(data.Data) == 0 || data.SampleCount == 0 {
		return hc.ResultErrNullDataPassed
	}
	frame := data.Want.Format.BytesPerSample() * data.Want.Channels.Count()
	if len(data.Data) != int(data.SampleCount)*frame {
		return hc.ResultErrBadAudioDataWant
	}

	if !s.ring.write(data.Data) {
		return hc.ResultErrAudioOverrun
	}
	return hc.ResultSuccess
}

// ReadSamples drains buffered PCM bytes into p for the frontend's audio
// device and returns how many bytes were copied.
func (h *Host) ReadSamples(p []byte) int {
	h.mu.Lock()
	s := h.session
	h.mu.Unlock()
	if s == nil || s.ring == nil {
		return 0
	}
	return s.ring.read(p)
}

// BufferedSamples returns how many PCM bytes are queued for the
// frontend's audio device.
func (h *Host) BufferedSamples() int {
	h.mu.Lock()
	s := h.session
	h.mu.Unlock()
	if s == nil || s.ring == nil {
		return 0
	}
	return s.ring.buffered()
}

// FreeSampleSpace returns how many PCM bytes the host can currently
// accept without overrunning.
func (h *Host) FreeSampleSpace() int {
	h.mu.Lock()
	s := h.session
	h.mu.Unlock()
	if s == nil || s.ring == nil {
		return 0
	}
	return s.ring.free()
}
