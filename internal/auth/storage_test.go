// ABOUTME: Tests for file-backed session persistence
// ABOUTME: Verifies roundtrip, missing-file, corrupt-file, and clear behavior

package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/krishisahai/krishi-cli/internal/models"
)

func testSessionFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "krishi", "session.json")
}

func TestFileStorage_MissingFileIsSignedOut(t *testing.T) {
	fs := NewFileStorage(testSessionFile(t))

	sess, err := fs.Load()
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	if sess != nil {
		t.Error("expected nil session for missing file")
	}
}

func TestFileStorage_SaveLoadRoundtrip(t *testing.T) {
	fs := NewFileStorage(testSessionFile(t))

	want := &models.Session{
		AccessToken:  "access-abc",
		RefreshToken: "refresh-xyz",
		TokenType:    "bearer",
		ExpiresAt:    time.Now().Add(time.Hour).Truncate(time.Second),
		User:         models.User{ID: "user-1", Email: "farmer@example.com"},
	}

	if err := fs.Save(want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := fs.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got == nil {
		t.Fatal("expected a session back")
	}
	if got.AccessToken != want.AccessToken {
		t.Errorf("access token mismatch: got %q", got.AccessToken)
	}
	if got.RefreshToken != want.RefreshToken {
		t.Errorf("refresh token mismatch: got %q", got.RefreshToken)
	}
	if !got.ExpiresAt.Equal(want.ExpiresAt) {
		t.Errorf("expiry mismatch: got %v, want %v", got.ExpiresAt, want.ExpiresAt)
	}
	if got.User.ID != "user-1" {
		t.Errorf("user ID mismatch: got %q", got.User.ID)
	}
}

func TestFileStorage_FilePermissions(t *testing.T) {
	path := testSessionFile(t)
	fs := NewFileStorage(path)

	if err := fs.Save(&models.Session{AccessToken: "tok", ExpiresAt: time.Now()}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected file mode 0600, got %o", perm)
	}
}

func TestFileStorage_CorruptFileIsError(t *testing.T) {
	path := testSessionFile(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileStorage(path)
	if _, err := fs.Load(); err == nil {
		t.Error("expected error for corrupt session file")
	}
}

func TestFileStorage_EmptyTokenIsSignedOut(t *testing.T) {
	path := testSessionFile(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"access_token":""}`), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileStorage(path)
	sess, err := fs.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if sess != nil {
		t.Error("expected nil session for empty access token")
	}
}

func TestFileStorage_SaveNilClears(t *testing.T) {
	path := testSessionFile(t)
	fs := NewFileStorage(path)

	if err := fs.Save(&models.Session{AccessToken: "tok", ExpiresAt: time.Now()}); err != nil {
		t.Fatal(err)
	}
	if err := fs.Save(nil); err != nil {
		t.Fatalf("Save(nil) returned error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected session file to be removed after Save(nil)")
	}
}

func TestFileStorage_ClearMissingFileIsOK(t *testing.T) {
	fs := NewFileStorage(testSessionFile(t))
	if err := fs.Clear(); err != nil {
		t.Errorf("Clear on missing file returned error: %v", err)
	}
}
