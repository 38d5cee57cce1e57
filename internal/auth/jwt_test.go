// ABOUTME: Tests for unverified JWT claim extraction
// ABOUTME: Verifies payload decoding and rejection of malformed tokens

package auth

import (
	"encoding/base64"
	"encoding/json"
	"testing"
)

// makeToken builds a structurally valid JWT with the given claims. The
// signature part is garbage; nothing here verifies it.
func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("failed to marshal claims: %v", err)
	}
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

func TestParseTokenClaims_ValidToken(t *testing.T) {
	token := makeToken(t, map[string]any{
		"sub":   "user-123",
		"email": "farmer@example.com",
		"exp":   1767225600,
	})

	claims, err := ParseTokenClaims(token)
	if err != nil {
		t.Fatalf("ParseTokenClaims returned error: %v", err)
	}

	if claims.Subject != "user-123" {
		t.Errorf("expected subject 'user-123', got %q", claims.Subject)
	}
	if claims.Email != "farmer@example.com" {
		t.Errorf("expected email 'farmer@example.com', got %q", claims.Email)
	}
	if claims.Exp != 1767225600 {
		t.Errorf("expected exp 1767225600, got %d", claims.Exp)
	}
}

func TestParseTokenClaims_WrongPartCount(t *testing.T) {
	if _, err := ParseTokenClaims("only.two"); err == nil {
		t.Error("expected error for token with 2 parts")
	}
	if _, err := ParseTokenClaims("notatoken"); err == nil {
		t.Error("expected error for token with 1 part")
	}
}

func TestParseTokenClaims_BadPayloadEncoding(t *testing.T) {
	if _, err := ParseTokenClaims("header.!!!not-base64!!!.sig"); err == nil {
		t.Error("expected error for non-base64 payload")
	}
}

func TestParseTokenClaims_PayloadNotJSON(t *testing.T) {
	payload := base64.RawURLEncoding.EncodeToString([]byte("not json"))
	if _, err := ParseTokenClaims("header." + payload + ".sig"); err == nil {
		t.Error("expected error for non-JSON payload")
	}
}
