package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "session.json"))
}

func TestIssueThenCurrent(t *testing.T) {
	s := newTestStore(t)
	if err := s.Issue("tok-123"); err != nil {
		t.Fatalf("issue: %v", err)
	}

	tok, ok := s.Current()
	if !ok {
		t.Fatal("expected a session")
	}
	if tok != "tok-123" {
		t.Errorf("token: got %q", tok)
	}
}

func TestCurrentSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := New(path).Issue("tok-restart"); err != nil {
		t.Fatalf("issue: %v", err)
	}

	// fresh store over the same file = new process
	tok, ok := New(path).Current()
	if !ok || tok != "tok-restart" {
		t.Fatalf("expected persisted session, got (%q, %v)", tok, ok)
	}
}

func TestCurrentExpiry(t *testing.T) {
	s := newTestStore(t)
	issued := time.Now()
	s.now = func() time.Time { return issued }
	if err := s.Issue("tok-exp"); err != nil {
		t.Fatalf("issue: %v", err)
	}

	tests := []struct {
		name  string
		at    time.Time
		valid bool
	}{
		{"just issued", issued, true},
		{"one second before expiry", issued.Add(TTL - time.Second), true},
		{"exactly at expiry", issued.Add(TTL), false},
		{"well past expiry", issued.Add(2 * TTL), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// reissue since an expired check purges the file
			s.now = func() time.Time { return issued }
			if err := s.Issue("tok-exp"); err != nil {
				t.Fatalf("issue: %v", err)
			}
			s.now = func() time.Time { return tt.at }
			_, ok := s.Current()
			if ok != tt.valid {
				t.Errorf("valid at %v: got %v, want %v", tt.at.Sub(issued), ok, tt.valid)
			}
		})
	}
}

func TestExpiryPurgesFile(t *testing.T) {
	s := newTestStore(t)
	issued := time.Now()
	s.now = func() time.Time { return issued }
	s.Issue("tok")

	s.now = func() time.Time { return issued.Add(TTL + time.Minute) }
	if _, ok := s.Current(); ok {
		t.Fatal("expected expired session")
	}
	if _, err := os.Stat(s.path); !os.IsNotExist(err) {
		t.Error("expected expired session file to be removed")
	}
}

func TestCorruptFileMeansAbsent(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"garbage", "{{{not json"},
		{"empty object", "{}"},
		{"token without expiry", `{"token":"tok"}`},
		{"expiry without token", `{"expires_at":"2099-01-01T00:00:00Z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "session.json")
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatalf("write: %v", err)
			}
			s := New(path)
			if _, ok := s.Current(); ok {
				t.Error("corrupt storage must read as absent, not as a session")
			}
			if _, err := os.Stat(path); !os.IsNotExist(err) {
				t.Error("corrupt storage should be purged")
			}
		})
	}
}

func TestRevokeIdempotent(t *testing.T) {
	s := newTestStore(t)
	s.Issue("tok")
	s.Revoke()
	s.Revoke() // second revoke must not blow up
	if _, ok := s.Current(); ok {
		t.Fatal("expected no session after revoke")
	}
}

func TestMissingFileMeansAbsent(t *testing.T) {
	s := newTestStore(t)
	if _, ok := s.Current(); ok {
		t.Fatal("expected no session before issue")
	}
}
