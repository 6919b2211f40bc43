package core

import (
	"testing"
	"time"

	"github.com/hydra-emu/core/pkg/hc"
)

// selfDrivenEmulator steps at a fixed per-frame cost.
type selfDrivenEmulator struct {
	*testEmulator
	frameCost time.Duration
}

func newSelfDrivenEmulator(frameCost time.Duration) *selfDrivenEmulator {
	emu := newTestEmulator()
	emu.driveMode = hc.DriveModeSelfDrivenExceptAudio
	return &selfDrivenEmulator{testEmulator: emu, frameCost: frameCost}
}

func (e *selfDrivenEmulator) StepFrame() {
	if e.frameCost > 0 {
		time.Sleep(e.frameCost)
	}
	e.steps.Add(1)
}

func startLoop(t *testing.T, host *hostRecorder) {
	t.Helper()
	if host.callbacks == nil || host.callbacks.SelfDriven == nil {
		t.Fatal("core registered no self-driven entry point")
	}
	go host.callbacks.SelfDriven.EntryPoint()
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached before timeout")
}

func loopExited(i *Instance) bool {
	select {
	case <-i.loopDone:
		return true
	default:
		return false
	}
}

func TestSelfDrivenLoop_RunsAndQuitsCleanly(t *testing.T) {
	emu := newSelfDrivenEmulator(0)
	m, host := createdModule(emu)
	inst := m.Instance()

	if inst.DriveMode() != hc.DriveModeSelfDrivenExceptAudio {
		t.Fatalf("drive mode = %v", inst.DriveMode())
	}

	startLoop(t, host)

	if res := m.SetRunState(hc.NewRunStateInfo(hc.RunStateRunning)); !res.Ok() {
		t.Fatalf("SetRunState: %v", res)
	}
	waitFor(t, time.Second, func() bool { return emu.steps.Load() > 10 })

	// Quit must be observed at the next run-state check, and the loop
	// must emit nothing after observing it.
	if res := m.SetRunState(hc.NewRunStateInfo(hc.RunStateQuit)); !res.Ok() {
		t.Fatalf("SetRunState(quit): %v", res)
	}
	waitFor(t, time.Second, func() bool { return loopExited(inst) })

	after := emu.steps.Load()
	time.Sleep(20 * time.Millisecond)
	if got := emu.steps.Load(); got != after {
		t.Errorf("loop stepped %d more times after quit", got-after)
	}
}

func TestSelfDrivenLoop_PauseStopsProgress(t *testing.T) {
	emu := newSelfDrivenEmulator(0)
	m, host := createdModule(emu)
	inst := m.Instance()

	startLoop(t, host)
	m.SetRunState(hc.NewRunStateInfo(hc.RunStateRunning))
	waitFor(t, time.Second, func() bool { return emu.steps.Load() > 0 })

	m.SetRunState(hc.NewRunStateInfo(hc.RunStatePaused))
	// One in-flight step may complete after the pause lands.
	time.Sleep(5 * time.Millisecond)
	paused := emu.steps.Load()
	time.Sleep(20 * time.Millisecond)
	if got := emu.steps.Load(); got != paused {
		t.Errorf("loop stepped %d more times while paused", got-paused)
	}

	m.SetRunState(hc.NewRunStateInfo(hc.RunStateRunning))
	waitFor(t, time.Second, func() bool { return emu.steps.Load() > paused })

	m.SetRunState(hc.NewRunStateInfo(hc.RunStateQuit))
	waitFor(t, time.Second, func() bool { return loopExited(inst) })
}

func TestSelfDrivenLoop_LockHoldExcludesFrameWork(t *testing.T) {
	// Frames cost ~2ms each; the run-state lock is only held around the
	// state check, so its longest hold must stay well below the frame
	// cost.
	const frameCost = 2 * time.Millisecond
	emu := newSelfDrivenEmulator(frameCost)
	m, host := createdModule(emu)
	inst := m.Instance()

	startLoop(t, host)
	m.SetRunState(hc.NewRunStateInfo(hc.RunStateRunning))
	waitFor(t, 2*time.Second, func() bool { return emu.steps.Load() >= 20 })
	m.SetRunState(hc.NewRunStateInfo(hc.RunStateQuit))
	waitFor(t, time.Second, func() bool { return loopExited(inst) })

	stats := inst.LockStats(hc.LockResourceRunState)
	if stats.Acquisitions == 0 {
		t.Fatal("run-state lock never acquired")
	}
	if stats.MaxHold >= frameCost {
		t.Errorf("max lock hold %v not below frame cost %v", stats.MaxHold, frameCost)
	}
}

func TestModule_DestroyJoinsRunningLoop(t *testing.T) {
	emu := newSelfDrivenEmulator(0)
	m, host := createdModule(emu)
	inst := m.Instance()

	startLoop(t, host)
	m.SetRunState(hc.NewRunStateInfo(hc.RunStateRunning))
	waitFor(t, time.Second, func() bool { return emu.steps.Load() > 0 })

	if res := m.Destroy(hc.NewDestroyInfo()); !res.Ok() {
		t.Fatalf("Destroy: %v", res)
	}
	if !loopExited(inst) {
		t.Error("Destroy returned before the loop exited")
	}
}
