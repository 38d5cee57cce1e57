// ABOUTME: Auth manager: single source of truth for session, profile, and loading state
// ABOUTME: Debounces auth events, serializes session writes, and single-flights profile fetches

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/krishisahai/krishi-cli/internal/models"
)

// profileFlightKey is the singleflight key shared by every profile fetch
// trigger, so overlapping triggers collapse into one network call.
const profileFlightKey = "profile"

const forcedSignOutTimeout = 5 * time.Second

// ProfileFetcher retrieves the farmer profile from the backend.
// models.ErrNotFound means "no profile yet", the normal pre-onboarding state.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context) (*models.Profile, error)
}

// Subscriber receives auth state changes. Events inside one debounce window
// coalesce: only the last one is delivered, with the state derived after it.
type Subscriber func(ev models.AuthEvent, state models.AuthState)

// ManagerConfig carries the manager's timing knobs.
type ManagerConfig struct {
	ProfileTimeout time.Duration
	DebounceWindow time.Duration
	Monitor        MonitorConfig
}

// Manager owns all auth-derived state. Session writes are serialized by a
// monotonic generation counter: a refresh that started against an older
// session generation is discarded instead of clobbering newer state.
type Manager struct {
	store    Store
	storage  SessionStorage
	profiles ProfileFetcher
	cfg      ManagerConfig
	now      func() time.Time

	mu        sync.RWMutex
	state     models.AuthState
	gen       uint64
	lastEvent models.AuthEvent
	subs      []Subscriber

	debouncer *Debouncer
	monitor   *Monitor
	sf        singleflight.Group
}

// NewManager wires a manager to its collaborators. profiles may be nil when
// the caller has no profile backend (some tests, pure-auth tooling).
func NewManager(store Store, storage SessionStorage, profiles ProfileFetcher, cfg ManagerConfig) *Manager {
	m := &Manager{
		store:     store,
		storage:   storage,
		profiles:  profiles,
		cfg:       cfg,
		now:       time.Now,
		debouncer: NewDebouncer(cfg.DebounceWindow),
	}
	m.monitor = NewMonitor(cfg.Monitor, m.monitorSnapshot, m.RefreshSession, m.handleExpired)
	return m
}

// Initialize resolves the persisted session, reactively refreshing an expired
// one. Profile fetching is kicked off asynchronously and never blocks
// session-derived readiness.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	m.state.Loading = true
	m.mu.Unlock()

	sess, err := m.storage.Load()
	if err != nil {
		slog.Warn("failed to load persisted session", "error", err.Error())
		if cerr := m.storage.Clear(); cerr != nil {
			slog.Warn("failed to clear session file", "error", cerr.Error())
		}
		sess = nil
	}

	if sess != nil && !sess.Valid(m.now()) {
		sess = m.refreshAtStartup(ctx, sess)
	}

	m.mu.Lock()
	m.gen++
	m.state.Session = sess
	if sess == nil {
		m.state.Profile = nil
	}
	m.state.Loading = false
	m.mu.Unlock()

	if sess != nil {
		m.monitor.Start(context.Background())
		m.triggerProfileRefresh()
	}
	return nil
}

// refreshAtStartup tries to revive an expired persisted session. Failure
// degrades to signed-out; the user just logs in again.
func (m *Manager) refreshAtStartup(ctx context.Context, sess *models.Session) *models.Session {
	if sess.RefreshToken == "" {
		m.clearStorage()
		return nil
	}
	refreshed, err := m.store.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		slog.Warn("session refresh at startup failed", "error", err.Error())
		m.clearStorage()
		return nil
	}
	m.persist(refreshed)
	return refreshed
}

// SignIn authenticates with the provider and installs the new session.
func (m *Manager) SignIn(ctx context.Context, creds Credentials) error {
	sess, err := m.store.SignIn(ctx, creds)
	if err != nil {
		return err
	}
	m.installSession(sess)
	m.dispatch(models.AuthEventSignedIn)
	return nil
}

// SignUp registers an account and installs the resulting session.
func (m *Manager) SignUp(ctx context.Context, creds Credentials) error {
	sess, err := m.store.SignUp(ctx, creds)
	if err != nil {
		return err
	}
	m.installSession(sess)
	m.dispatch(models.AuthEventSignedIn)
	return nil
}

// SignOut revokes the session with the provider and clears all local state.
// Provider failure is logged; local state clears regardless.
func (m *Manager) SignOut(ctx context.Context) error {
	m.mu.RLock()
	sess := m.state.Session
	m.mu.RUnlock()

	if sess != nil {
		if err := m.store.SignOut(ctx, sess.AccessToken); err != nil {
			slog.Warn("provider sign-out failed", "error", err.Error())
		}
	}

	m.clearSession()
	m.dispatch(models.AuthEventSignedOut)
	return nil
}

// ForceSignOut is the 401 path: the backend no longer accepts our token, so
// the session is invalid no matter what the local expiry says.
func (m *Manager) ForceSignOut(reason string) {
	slog.Warn("forcing sign-out", "reason", reason)

	ctx, cancel := context.WithTimeout(context.Background(), forcedSignOutTimeout)
	defer cancel()
	_ = m.SignOut(ctx)
}

// RefreshSession exchanges the refresh token for a new session. If another
// write landed while the exchange was in flight, the result is discarded:
// last-writer-wins races are resolved by the generation counter instead.
func (m *Manager) RefreshSession(ctx context.Context) error {
	m.mu.RLock()
	sess := m.state.Session
	startGen := m.gen
	m.mu.RUnlock()

	if sess == nil {
		return models.ErrNoSession
	}

	refreshed, err := m.store.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		slog.Warn("session refresh failed", "error", err.Error())
		return err
	}

	m.mu.Lock()
	if m.gen != startGen {
		m.mu.Unlock()
		slog.Debug("discarding stale session refresh result")
		return nil
	}
	m.gen++
	m.state.Session = refreshed
	m.mu.Unlock()

	m.persist(refreshed)
	m.dispatch(models.AuthEventTokenRefreshed)
	return nil
}

// AccessToken returns a token usable for backend calls, refreshing reactively
// when the current one has expired.
func (m *Manager) AccessToken(ctx context.Context) (string, error) {
	m.mu.RLock()
	sess := m.state.Session
	m.mu.RUnlock()

	if sess == nil {
		return "", models.ErrNoSession
	}
	if !sess.Valid(m.now()) {
		if err := m.RefreshSession(ctx); err != nil {
			return "", fmt.Errorf("%w: %v", models.ErrSessionExpired, err)
		}
		m.mu.RLock()
		sess = m.state.Session
		m.mu.RUnlock()
		if sess == nil {
			return "", models.ErrNoSession
		}
	}
	return sess.AccessToken, nil
}

// State returns the current auth snapshot.
func (m *Manager) State() models.AuthState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Session returns the current session, or nil when signed out.
func (m *Manager) Session() *models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Session
}

// SetProfileFetcher installs the profile backend after construction. The API
// client needs the manager as its token source, so the two are wired in two
// steps at startup.
func (m *Manager) SetProfileFetcher(p ProfileFetcher) {
	m.mu.Lock()
	m.profiles = p
	m.mu.Unlock()
}

// Subscribe registers a callback for auth changes. Callback panics are
// contained and logged; they never take down the dispatch loop.
func (m *Manager) Subscribe(fn Subscriber) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// EnsureProfile fetches the profile synchronously, joining any in-flight
// fetch. It returns nil both for "no profile yet" and for fetch failures;
// the profile is non-critical and failures only degrade.
func (m *Manager) EnsureProfile() *models.Profile {
	m.mu.Lock()
	if m.profiles == nil || m.state.Session == nil {
		m.mu.Unlock()
		return nil
	}
	startGen := m.gen
	m.state.ProfileLoading = true
	m.mu.Unlock()

	v, _, _ := m.sf.Do(profileFlightKey, func() (any, error) {
		return m.fetchProfile(startGen), nil
	})
	profile, _ := v.(*models.Profile)
	return profile
}

// Close stops background work. The manager is not reusable afterwards.
func (m *Manager) Close() {
	m.monitor.Stop()
	m.debouncer.Stop()
}

// installSession replaces the session wholesale and persists it.
func (m *Manager) installSession(sess *models.Session) {
	m.mu.Lock()
	m.gen++
	m.state.Session = sess
	m.state.Loading = false
	m.mu.Unlock()

	m.persist(sess)
}

// clearSession drops all auth-derived state. Profile always clears with the
// session: signed out implies no profile.
func (m *Manager) clearSession() {
	m.mu.Lock()
	m.gen++
	m.state.Session = nil
	m.state.Profile = nil
	m.state.Loading = false
	m.state.ProfileLoading = false
	m.mu.Unlock()

	m.monitor.Stop()
	m.clearStorage()
}

func (m *Manager) persist(sess *models.Session) {
	if err := m.storage.Save(sess); err != nil {
		slog.Warn("failed to persist session", "error", err.Error())
	}
}

func (m *Manager) clearStorage() {
	if err := m.storage.Clear(); err != nil {
		slog.Warn("failed to clear persisted session", "error", err.Error())
	}
}

// dispatch records the event and schedules the debounced state derivation.
// Bursts of events collapse: only the last event in the window is processed.
func (m *Manager) dispatch(ev models.AuthEvent) {
	m.mu.Lock()
	m.lastEvent = ev
	m.mu.Unlock()

	m.debouncer.Trigger(m.handleAuthChange)
}

// handleAuthChange re-derives state from the current session and fans the
// coalesced event out to subscribers.
func (m *Manager) handleAuthChange() {
	m.mu.Lock()
	if m.state.Session == nil {
		m.state.Profile = nil
	}
	ev := m.lastEvent
	state := m.state
	subs := slices.Clone(m.subs)
	m.mu.Unlock()

	if state.Session == nil {
		m.monitor.Stop()
	} else {
		if !m.monitor.Running() {
			m.monitor.Start(context.Background())
		}
		m.triggerProfileRefresh()
	}

	for _, fn := range subs {
		m.notify(fn, ev, state)
	}
}

func (m *Manager) notify(fn Subscriber, ev models.AuthEvent, state models.AuthState) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("auth subscriber panicked", "event", string(ev), "panic", fmt.Sprint(r))
		}
	}()
	fn(ev, state)
}

// triggerProfileRefresh starts a profile fetch without waiting for it.
// Concurrent triggers share one flight, so exactly one request goes out.
func (m *Manager) triggerProfileRefresh() {
	m.mu.Lock()
	if m.profiles == nil || m.state.Session == nil {
		m.mu.Unlock()
		return
	}
	startGen := m.gen
	m.state.ProfileLoading = true
	m.mu.Unlock()

	ch := m.sf.DoChan(profileFlightKey, func() (any, error) {
		return m.fetchProfile(startGen), nil
	})
	go func() { <-ch }()
}

// fetchProfile performs the guarded fetch and applies the result. All failure
// modes degrade to a nil profile; nothing propagates to callers.
func (m *Manager) fetchProfile(startGen uint64) *models.Profile {
	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.ProfileTimeout)
	defer cancel()

	m.mu.RLock()
	fetcher := m.profiles
	m.mu.RUnlock()

	profile, err := fetcher.FetchProfile(ctx)
	switch {
	case err == nil:
	case errors.Is(err, models.ErrNotFound):
		// Fresh account that has not completed onboarding. Normal, not an error.
		profile = nil
	default:
		slog.Warn("profile fetch failed", "error", err.Error())
		profile = nil
	}

	m.mu.Lock()
	if m.gen == startGen && m.state.Session != nil {
		m.state.Profile = profile
	} else {
		profile = nil
	}
	m.state.ProfileLoading = false
	m.mu.Unlock()

	return profile
}

// monitorSnapshot gives the monitor the minimal view it needs.
func (m *Manager) monitorSnapshot() sessionSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state.Session == nil {
		return sessionSnapshot{}
	}
	return sessionSnapshot{present: true, expiresAt: m.state.Session.ExpiresAt}
}

// handleExpired is the hard-expiry path. No provider call: the token is
// already dead, only local state needs clearing.
func (m *Manager) handleExpired() {
	m.clearSession()
	m.dispatch(models.AuthEventSignedOut)
}
