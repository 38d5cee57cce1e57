// ABOUTME: Tests for the session expiry monitor
// ABOUTME: Drives check() directly with an injected clock instead of waiting on tickers

package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

type monitorHarness struct {
	monitor      *Monitor
	refreshCalls int
	refreshErr   error
	expiredCalls int
}

func newMonitorHarness(snap sessionSnapshot, now time.Time) *monitorHarness {
	h := &monitorHarness{}
	h.monitor = NewMonitor(
		MonitorConfig{
			Interval:         time.Hour,
			WarnThreshold:    10 * time.Minute,
			RefreshThreshold: 5 * time.Minute,
		},
		func() sessionSnapshot { return snap },
		func(ctx context.Context) error {
			h.refreshCalls++
			return h.refreshErr
		},
		func() { h.expiredCalls++ },
	)
	h.monitor.now = func() time.Time { return now }
	return h
}

func TestMonitorCheck_NoSession(t *testing.T) {
	now := time.Now()
	h := newMonitorHarness(sessionSnapshot{}, now)

	if expired := h.monitor.check(context.Background()); expired {
		t.Error("expected check without a session to report not expired")
	}
	if h.refreshCalls != 0 || h.expiredCalls != 0 {
		t.Error("expected no refresh or expiry callbacks without a session")
	}
}

func TestMonitorCheck_HealthySession(t *testing.T) {
	now := time.Now()
	h := newMonitorHarness(sessionSnapshot{present: true, expiresAt: now.Add(time.Hour)}, now)

	if expired := h.monitor.check(context.Background()); expired {
		t.Error("expected healthy session to report not expired")
	}
	if h.refreshCalls != 0 {
		t.Errorf("expected no proactive refresh with an hour left, got %d calls", h.refreshCalls)
	}
}

func TestMonitorCheck_WarnWindowDoesNotRefresh(t *testing.T) {
	// 8 minutes left: inside the warn threshold but outside the refresh one.
	now := time.Now()
	h := newMonitorHarness(sessionSnapshot{present: true, expiresAt: now.Add(8 * time.Minute)}, now)

	if expired := h.monitor.check(context.Background()); expired {
		t.Error("expected not expired")
	}
	if h.refreshCalls != 0 {
		t.Errorf("expected warn-only pass to skip refresh, got %d calls", h.refreshCalls)
	}
}

func TestMonitorCheck_RefreshThresholdTriggersRefresh(t *testing.T) {
	// 200 seconds left: under the 5-minute refresh threshold.
	now := time.Now()
	h := newMonitorHarness(sessionSnapshot{present: true, expiresAt: now.Add(200 * time.Second)}, now)

	if expired := h.monitor.check(context.Background()); expired {
		t.Error("expected not expired")
	}
	if h.refreshCalls != 1 {
		t.Errorf("expected exactly 1 proactive refresh, got %d", h.refreshCalls)
	}
	if h.expiredCalls != 0 {
		t.Error("expected no expiry callback for a refreshable session")
	}
}

func TestMonitorCheck_RefreshFailureIsNotFatal(t *testing.T) {
	now := time.Now()
	h := newMonitorHarness(sessionSnapshot{present: true, expiresAt: now.Add(200 * time.Second)}, now)
	h.refreshErr = errors.New("provider unreachable")

	if expired := h.monitor.check(context.Background()); expired {
		t.Error("expected a failed proactive refresh to leave the session running")
	}
	if h.expiredCalls != 0 {
		t.Error("expected no expiry callback on refresh failure")
	}
}

func TestMonitorCheck_HardExpiry(t *testing.T) {
	now := time.Now()
	h := newMonitorHarness(sessionSnapshot{present: true, expiresAt: now.Add(-time.Second)}, now)

	if expired := h.monitor.check(context.Background()); !expired {
		t.Error("expected expired session to report true")
	}
	if h.expiredCalls != 1 {
		t.Errorf("expected exactly 1 expiry callback, got %d", h.expiredCalls)
	}
	if h.refreshCalls != 0 {
		t.Error("expected no refresh attempt on a hard-expired session")
	}
}

func TestMonitor_StartStopIdempotent(t *testing.T) {
	h := newMonitorHarness(sessionSnapshot{}, time.Now())

	h.monitor.Start(context.Background())
	h.monitor.Start(context.Background())
	if !h.monitor.Running() {
		t.Error("expected monitor to be running after Start")
	}

	h.monitor.Stop()
	h.monitor.Stop()
	if h.monitor.Running() {
		t.Error("expected monitor to be stopped after Stop")
	}
}
