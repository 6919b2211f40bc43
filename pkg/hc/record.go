// Package hc declares the hydra core ABI surface: the records exchanged
// between a frontend and a core, the result codes returned by every
// boundary-crossing call, and the capability and version descriptors used
// during negotiation.
//
// Records follow Vulkan-style struct chaining. Every record begins with a
// Header holding a structure-type discriminator and an optional link to the
// next record in a chain of extensions. A consumer walking a chain must skip
// nodes whose type it does not recognize; this is how fields introduced in
// later protocol revisions coexist with consumers built against older ones.
package hc

// StructureType discriminates the concrete layout of a Record.
// Values are stable across protocol revisions; new record kinds are only
// ever appended.
type StructureType int32

const (
	StructureTypeCoreInfo StructureType = iota + 1
	StructureTypeHostInfo
	StructureTypeVideoInfo
	StructureTypeAudioInfo
	StructureTypeImageData
	StructureTypeAudioData
	StructureTypeDestroyInfo
	StructureTypeResetInfo
	StructureTypeInputRequest
	StructureTypeLockRequest
	StructureTypeRunStateInfo
	StructureTypeContentInfo
	StructureTypeCallbacks
	StructureTypeContentLoadInfo
	StructureTypeEnvironmentInfo
)

// String returns the string representation of the structure type.
func (t StructureType) String() string {
	switch t {
	case StructureTypeCoreInfo:
		return "core-info"
	case StructureTypeHostInfo:
		return "host-info"
	case StructureTypeVideoInfo:
		return "video-info"
	case StructureTypeAudioInfo:
		return "audio-info"
	case StructureTypeImageData:
		return "image-data"
	case StructureTypeAudioData:
		return "audio-data"
	case StructureTypeDestroyInfo:
		return "destroy-info"
	case StructureTypeResetInfo:
		return "reset-info"
	case StructureTypeInputRequest:
		return "input-request"
	case StructureTypeLockRequest:
		return "lock-request"
	case StructureTypeRunStateInfo:
		return "run-state-info"
	case StructureTypeContentInfo:
		return "content-info"
	case StructureTypeCallbacks:
		return "callbacks"
	case StructureTypeContentLoadInfo:
		return "content-load-info"
	case StructureTypeEnvironmentInfo:
		return "environment-info"
	default:
		return "unknown"
	}
}

// Record is the interface satisfied by every chainable ABI record.
// Concrete records embed Header, which provides both methods.
type Record interface {
	// Kind returns the structure-type discriminator. It is safe to call
	// on any record, including kinds introduced after the caller was
	// built.
	Kind() StructureType

	// Chained returns the next record in the extension chain, or nil.
	Chained() Record
}

// Header is the leading portion shared by every record. The discriminator
// is set by the record's constructor and should not be changed afterwards.
// Next may point to further extension records; the chain's memory belongs
// to whichever side constructed it and must not be retained or mutated by
// the receiver beyond the call it was passed in.
type Header struct {
	Type StructureType
	Next Record
}

// Kind implements Record.
func (h *Header) Kind() StructureType { return h.Type }

// Chained implements Record.
func (h *Header) Chained() Record { return h.Next }

// Walk visits r and every record chained behind it, in order, calling fn
// for each. Walking stops early if fn returns false. Unrecognized kinds are
// visited like any other node; it is the caller's job to ignore what it
// does not understand.
func Walk(r Record, fn func(Record) bool) {
	for ; r != nil; r = r.Chained() {
		if !fn(r) {
			return
		}
	}
}

// Find walks the chain starting at r and returns the first record whose
// kind equals t, or nil if the chain ends without a match. Nodes of other
// kinds, including kinds unknown to this build, are skipped.
func Find(r Record, t StructureType) Record {
	var found Record
	Walk(r, func(n Record) bool {
		if n.Kind() == t {
			found = n
			return false
		}
		return true
	})
	return found
}

// Expect validates the primary record passed to a boundary call: r must be
// non-nil and its kind must match want. A nil record yields
// ResultErrNullDataPassed and a mismatched kind yields
// ResultErrBadStructureType, mirroring the checks every entry point
// performs before reading past the header.
func Expect(r Record, want StructureType) Result {
	if r == nil {
		return ResultErrNullDataPassed
	}
	if r.Kind() != want {
		return ResultErrBadStructureType
	}
	return ResultSuccess
}
