// ABOUTME: Tests for the trailing-edge debouncer
// ABOUTME: Verifies coalescing, synchronous zero-window mode, and cancellation

package auth

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	for i := 0; i < 3; i++ {
		d.Trigger(func() { calls.Add(1) })
	}

	time.Sleep(150 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("expected 1 call after burst, got %d", got)
	}
}

func TestDebouncer_LastTriggerWins(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var got atomic.Int32
	d.Trigger(func() { got.Store(1) })
	d.Trigger(func() { got.Store(2) })
	d.Trigger(func() { got.Store(3) })

	time.Sleep(150 * time.Millisecond)
	if got.Load() != 3 {
		t.Errorf("expected the last trigger's function to run, got marker %d", got.Load())
	}
}

func TestDebouncer_ZeroWindowRunsSynchronously(t *testing.T) {
	d := NewDebouncer(0)

	ran := false
	d.Trigger(func() { ran = true })
	if !ran {
		t.Error("expected zero-window trigger to run synchronously")
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(150 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("expected no calls after Stop, got %d", got)
	}
}
