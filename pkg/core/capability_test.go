package core

import (
	"testing"

	"github.com/hydra-emu/core/pkg/hc"
)

// fullFeaturedEmulator adds the optional surfaces on top of the base
// test delegate.
type fullFeaturedEmulator struct {
	*testEmulator
	states   [][]byte
	cheatSeq uint32
}

func (e *fullFeaturedEmulator) SaveState() ([]byte, error) {
	state := []byte("state")
	e.states = append(e.states, state)
	return state, nil
}

func (e *fullFeaturedEmulator) LoadState(data []byte) error { return nil }

func (e *fullFeaturedEmulator) ReadMemory(address uint32, buf []byte) error {
	for i := range buf {
		buf[i] = byte(address)
	}
	return nil
}

func (e *fullFeaturedEmulator) AddCheat(code string) (uint32, error) {
	e.cheatSeq++
	return e.cheatSeq, nil
}

func (e *fullFeaturedEmulator) RemoveCheat(id uint32)  {}
func (e *fullFeaturedEmulator) EnableCheat(id uint32)  {}
func (e *fullFeaturedEmulator) DisableCheat(id uint32) {}

func (e *fullFeaturedEmulator) InputPorts() uint32 { return 2 }

func TestInstance_CapabilityTable(t *testing.T) {
	emu := &fullFeaturedEmulator{testEmulator: newTestEmulator()}
	m, _ := createdModule(emu)
	inst := m.Instance()

	has := []hc.Capability{
		hc.CapabilityFrontendDriven,
		hc.CapabilitySoftwareRendered,
		hc.CapabilityAudio,
		hc.CapabilityInput,
		hc.CapabilitySaveState,
		hc.CapabilityReadableMemory,
		hc.CapabilityCheat,
	}
	for _, c := range has {
		if !inst.Has(c) {
			t.Errorf("Has(%v) = false, want true", c)
		}
	}

	hasNot := []hc.Capability{
		hc.CapabilitySelfDriven,
		hc.CapabilityOpenGLRendered,
		hc.CapabilityRewind,
		hc.CapabilityMultiplayer,
		hc.CapabilityLog,
	}
	for _, c := range hasNot {
		if inst.Has(c) {
			t.Errorf("Has(%v) = true, want false", c)
		}
	}
}

func TestInstance_CapabilityLookup(t *testing.T) {
	emu := &fullFeaturedEmulator{testEmulator: newTestEmulator()}
	m, _ := createdModule(emu)
	inst := m.Instance()

	saver, ok := As[SaveStater](inst, hc.CapabilitySaveState)
	if !ok {
		t.Fatal("save-state capability not retrievable")
	}
	if _, err := saver.SaveState(); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	if _, ok := As[Rewinder](inst, hc.CapabilityRewind); ok {
		t.Error("rewind lookup succeeded on a core without rewind")
	}

	// A present capability fetched as the wrong surface is a miss, not
	// a panic.
	if _, ok := As[Rewinder](inst, hc.CapabilitySaveState); ok {
		t.Error("mistyped lookup succeeded")
	}
}

func TestInstance_CapabilitiesFixedAtCreate(t *testing.T) {
	emu := newTestEmulator()
	emu.driveMode = hc.DriveModeSelfDriven
	m, _ := createdModule(emu)
	inst := m.Instance()

	if !inst.Has(hc.CapabilitySelfDriven) {
		t.Error("self-driven capability missing")
	}
	if inst.Has(hc.CapabilityFrontendDriven) {
		t.Error("frontend-driven capability present on a self-driven instance")
	}
}
