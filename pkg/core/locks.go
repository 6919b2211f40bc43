package core

import (
	"sync"
	"time"

	"github.com/hydra-emu/core/pkg/hc"
)

// lockSet is the named-resource mutual exclusion used by self-driven
// instances: one independent mutex per resource (audio, video,
// run-state). Acquire/release pairs must be strictly nested per resource,
// and the critical section is meant to cover only the read or write of
// the shared field, never frame work; the set records hold durations so
// tests can assert the discipline is respected.
type lockSet struct {
	resources [4]resourceLock // indexed by hc.LockResource
}

type resourceLock struct {
	mu sync.Mutex

	// stateMu guards the bookkeeping below, not the resource itself.
	stateMu      sync.Mutex
	held         bool
	acquiredAt   time.Time
	acquisitions uint64
	totalHold    time.Duration
	maxHold      time.Duration
}

// LockStats is a snapshot of one resource lock's accounting.
type LockStats struct {
	Acquisitions uint64
	TotalHold    time.Duration
	MaxHold      time.Duration
}

func validLockResource(r hc.LockResource) bool {
	switch r {
	case hc.LockResourceAudio, hc.LockResourceVideo, hc.LockResourceRunState:
		return true
	default:
		return false
	}
}

// acquire blocks until the resource is held by the caller.
func (s *lockSet) acquire(r hc.LockResource) hc.Result {
	if !validLockResource(r) {
		return hc.ResultErrNullDataPassed
	}
	l := &s.resources[r]
	l.mu.Lock()

	l.stateMu.Lock()
	l.held = true
	l.acquiredAt = time.Now()
	l.acquisitions++
	l.stateMu.Unlock()
	return hc.ResultSuccess
}

// release returns the resource. Releasing a resource that is not held
// violates strict nesting and is rejected rather than corrupting the
// mutex.
func (s *lockSet) release(r hc.LockResource) hc.Result {
	if !validLockResource(r) {
		return hc.ResultErrNullDataPassed
	}
	l := &s.resources[r]

	l.stateMu.Lock()
	if !l.held {
		l.stateMu.Unlock()
		return hc.ResultErrNullDataPassed
	}
	hold := time.Since(l.acquiredAt)
	l.held = false
	l.totalHold += hold
	if hold > l.maxHold {
		l.maxHold = hold
	}
	l.stateMu.Unlock()

	l.mu.Unlock()
	return hc.ResultSuccess
}

func (s *lockSet) stats(r hc.LockResource) LockStats {
	if !validLockResource(r) {
		return LockStats{}
	}
	l := &s.resources[r]
	l.stateMu.Lock()
	defer l.stateMu.Unlock()
	return LockStats{
		Acquisitions: l.acquisitions,
		TotalHold:    l.totalHold,
		MaxHold:      l.maxHold,
	}
}
