// ABOUTME: Unverified JWT claim extraction from access tokens
// ABOUTME: Used only to derive expiry for refresh scheduling; the backend verifies signatures

package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// TokenClaims are the claims this client reads out of an access token.
type TokenClaims struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Exp     int64  `json:"exp"`
}

// ParseTokenClaims decodes the payload of a JWT without verifying its
// signature. The token never authorizes anything locally — the only consumer
// is refresh scheduling when the token endpoint omits an explicit expiry.
func ParseTokenClaims(token string) (*TokenClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed token: expected 3 parts, got %d", len(parts))
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("failed to decode token payload: %w", err)
	}

	var claims TokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("failed to parse token claims: %w", err)
	}

	return &claims, nil
}
