// ABOUTME: Session monitor that watches token expiry on a recurring ticker
// ABOUTME: Warns near expiry, refreshes proactively, and reports hard expiry upstream

package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// MonitorConfig carries the monitor's timing knobs.
type MonitorConfig struct {
	Interval         time.Duration // tick period
	WarnThreshold    time.Duration // log a warning under this much time left
	RefreshThreshold time.Duration // proactively refresh under this much time left
}

// Monitor periodically inspects the current session and reacts to approaching
// expiry. It has two states, stopped and running; Start clears any previous
// interval first, so repeated starts are safe.
type Monitor struct {
	cfg MonitorConfig

	// session returns the current session snapshot, or nil when signed out.
	session func() sessionSnapshot
	// refresh performs a proactive token refresh.
	refresh func(ctx context.Context) error
	// onExpired fires once when a session is found hard-expired.
	onExpired func()

	now func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
}

// sessionSnapshot is the slice of session state the monitor needs.
type sessionSnapshot struct {
	present   bool
	expiresAt time.Time
}

// NewMonitor wires a monitor to its session source and refresh/expiry hooks.
func NewMonitor(cfg MonitorConfig, session func() sessionSnapshot, refresh func(ctx context.Context) error, onExpired func()) *Monitor {
	return &Monitor{
		cfg:       cfg,
		session:   session,
		refresh:   refresh,
		onExpired: onExpired,
		now:       time.Now,
	}
}

// Start begins monitoring. Any previously running loop is stopped first.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.mu.Unlock()

	slog.Debug("session monitoring started", "interval", m.cfg.Interval)
	go m.run(runCtx)
}

// Stop halts monitoring. Safe to call when already stopped.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
		slog.Debug("session monitoring stopped")
	}
}

// Running reports whether the monitor loop is active.
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancel != nil
}

func (m *Monitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if expired := m.check(ctx); expired {
				m.Stop()
				return
			}
		}
	}
}

// check runs one monitoring pass and reports whether the session hard-expired.
func (m *Monitor) check(ctx context.Context) bool {
	snap := m.session()
	if !snap.present {
		slog.Debug("no session found during monitoring")
		return false
	}

	remaining := snap.expiresAt.Sub(m.now())
	if remaining <= 0 {
		slog.Warn("session has expired during monitoring")
		if m.onExpired != nil {
			m.onExpired()
		}
		return true
	}

	if remaining < m.cfg.WarnThreshold {
		slog.Warn("session expires soon", "minutes_left", int(remaining.Minutes()))
	}

	if remaining < m.cfg.RefreshThreshold {
		slog.Debug("attempting proactive session refresh")
		if err := m.refresh(ctx); err != nil {
			// Log only: the next tick or the hard-expiry path handles it.
			slog.Warn("proactive session refresh failed", "error", err.Error())
		} else {
			slog.Debug("session refreshed proactively")
		}
	}

	return false
}
