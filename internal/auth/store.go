// ABOUTME: Session store wrapping a GoTrue-compatible auth provider REST API
// ABOUTME: Password/refresh-token grants, signup, and sign-out; no retries at this layer

package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/krishisahai/krishi-cli/internal/models"
)

const clientInfo = "krishi-cli/1.0.0"

// Credentials identify a user to the auth provider.
type Credentials struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// Validate checks that the credentials are sendable.
func (c Credentials) Validate() error {
	if c.Email == "" && c.Phone == "" {
		return fmt.Errorf("email or phone is required")
	}
	if c.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// Store is the session store contract. A failed refresh surfaces as an error;
// upstream treats it as "no session". Retry lives in the monitor's tick, not here.
type Store interface {
	SignIn(ctx context.Context, creds Credentials) (*models.Session, error)
	SignUp(ctx context.Context, creds Credentials) (*models.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*models.Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

// GoTrueStore talks to a Supabase/GoTrue auth endpoint.
type GoTrueStore struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	now        func() time.Time
}

// NewGoTrueStore creates a store for the given project URL and anon key.
func NewGoTrueStore(baseURL, anonKey string, httpClient *http.Client) *GoTrueStore {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &GoTrueStore{
		baseURL:    baseURL,
		anonKey:    anonKey,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// tokenResponse is the GoTrue token/signup payload.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"` // unix seconds; may be absent
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		Phone        string `json:"phone"`
		UserMetadata struct {
			FullName string `json:"full_name"`
		} `json:"user_metadata"`
	} `json:"user"`
}

// errorResponse is GoTrue's error payload; field names vary across versions.
type errorResponse struct {
	Message          string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e errorResponse) text() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.ErrorDescription != "":
		return e.ErrorDescription
	default:
		return e.Error
	}
}

// SignIn performs a password grant.
func (s *GoTrueStore) SignIn(ctx context.Context, creds Credentials) (*models.Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return s.tokenRequest(ctx, "/auth/v1/token?grant_type=password", creds)
}

// SignUp registers a new account. GoTrue signs the user in immediately when
// email confirmation is disabled, which is how the assistant deployment runs.
func (s *GoTrueStore) SignUp(ctx context.Context, creds Credentials) (*models.Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return s.tokenRequest(ctx, "/auth/v1/signup", creds)
}

// Refresh exchanges a refresh token for a fresh session.
func (s *GoTrueStore) Refresh(ctx context.Context, refreshToken string) (*models.Session, error) {
	if refreshToken == "" {
		return nil, models.ErrNoSession
	}
	body := map[string]string{"refresh_token": refreshToken}
	sess, err := s.tokenRequest(ctx, "/auth/v1/token?grant_type=refresh_token", body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrRefreshRejected, err)
	}
	return sess, nil
}

// SignOut revokes the session server-side. A failure here is logged by the
// caller; local state is cleared regardless.
func (s *GoTrueStore) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return fmt.Errorf("failed to create sign-out request: %w", err)
	}
	s.setHeaders(req)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sign-out request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusUnauthorized {
		return fmt.Errorf("auth provider returned status %d on sign-out", resp.StatusCode)
	}
	return nil
}

func (s *GoTrueStore) tokenRequest(ctx context.Context, path string, payload any) (*models.Session, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if json.Unmarshal(data, &errResp) == nil && errResp.text() != "" {
			return nil, fmt.Errorf("auth provider rejected request: %s", errResp.text())
		}
		return nil, fmt.Errorf("auth provider returned status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("invalid response from auth provider: %w", err)
	}

	return s.toSession(&tr)
}

// toSession converts a token response, resolving expiry from expires_at,
// expires_in, or the token's own exp claim, in that order.
func (s *GoTrueStore) toSession(tr *tokenResponse) (*models.Session, error) {
	if tr.AccessToken == "" {
		return nil, fmt.Errorf("auth provider returned no access token")
	}

	var expiresAt time.Time
	switch {
	case tr.ExpiresAt > 0:
		expiresAt = time.Unix(tr.ExpiresAt, 0)
	case tr.ExpiresIn > 0:
		expiresAt = s.now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	default:
		claims, err := ParseTokenClaims(tr.AccessToken)
		if err != nil {
			return nil, fmt.Errorf("cannot determine token expiry: %w", err)
		}
		expiresAt = time.Unix(claims.Exp, 0)
	}

	sess := &models.Session{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		TokenType:    tr.TokenType,
		ExpiresAt:    expiresAt,
		User: models.User{
			ID:       tr.User.ID,
			Email:    tr.User.Email,
			Phone:    tr.User.Phone,
			FullName: tr.User.UserMetadata.FullName,
		},
	}

	// A session is only accepted if its expiry is in the future.
	if !sess.Valid(s.now()) {
		return nil, models.ErrSessionExpired
	}
	return sess, nil
}

func (s *GoTrueStore) setHeaders(req *http.Request) {
	req.Header.Set("apikey", s.anonKey)
	req.Header.Set("X-Client-Info", clientInfo)
}
