// ABOUTME: Shared error sentinels for the client SDK
// ABOUTME: Lets callers classify failures with errors.Is across package boundaries

package models

import "errors"

var (
	// ErrNoSession indicates an operation that requires a signed-in user
	// was attempted without one.
	ErrNoSession = errors.New("no active session")

	// ErrSessionExpired indicates the stored session's access token is past
	// its expiry and could not be refreshed.
	ErrSessionExpired = errors.New("session expired")

	// ErrUnauthorized indicates the backend rejected our token (HTTP 401).
	// Receiving it forces a sign-out.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates the requested resource does not exist (HTTP 404).
	// For profiles this is the normal pre-onboarding state, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrRefreshRejected indicates the auth provider refused to exchange the
	// refresh token for a new session.
	ErrRefreshRejected = errors.New("refresh rejected")
)
