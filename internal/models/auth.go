// ABOUTME: Session and user models for the auth provider
// ABOUTME: A session is an opaque token bundle; it is replaced wholesale on refresh

package models

import "time"

// User is the auth provider's identity record, read-only on this side.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// Session is the proof of a logged-in user issued by the auth provider.
// It is created by sign-in or token refresh and destroyed by sign-out or an
// irrecoverable refresh failure; it is never mutated in place.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         User      `json:"user"`
}

// Valid reports whether the session can still authenticate requests at the
// given instant.
func (s *Session) Valid(now time.Time) bool {
	return s != nil && s.AccessToken != "" && now.Before(s.ExpiresAt)
}

// TimeUntilExpiry returns how long the access token remains valid.
// Negative values mean the token is already expired.
func (s *Session) TimeUntilExpiry(now time.Time) time.Duration {
	if s == nil {
		return 0
	}
	return s.ExpiresAt.Sub(now)
}

// AuthEvent identifies a change in authentication state.
type AuthEvent string

const (
	AuthEventSignedIn       AuthEvent = "signed_in"
	AuthEventSignedOut      AuthEvent = "signed_out"
	AuthEventTokenRefreshed AuthEvent = "token_refreshed"
)

// AuthState is the composite snapshot exposed to the rest of the application.
// Loading covers session resolution only; ProfileLoading is independent so the
// profile fetch never blocks session-derived readiness.
type AuthState struct {
	Session        *Session
	Profile        *Profile
	Loading        bool
	ProfileLoading bool
}

// SignedIn reports whether the snapshot carries a usable session.
func (s AuthState) SignedIn() bool {
	return s.Session != nil
}
