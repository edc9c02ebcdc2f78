package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// TTL is the client-trusted lifetime of an issued token. The server's own
// token validity is authoritative and independent of this bookkeeping.
const TTL = time.Hour

// state is the persisted form: both keys are written and cleared together.
type state struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store keeps the authentication token and its absolute expiry in a single
// JSON file so a session survives process restarts. A corrupt or
// partially-written file is treated as "no session", never as an error.
type Store struct {
	path string
	now  func() time.Time
}

func New(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// DefaultPath is $HOME/.pracd/session.json.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pracd-session.json"
	}
	return filepath.Join(home, ".pracd", "session.json")
}

// Issue stores the token with expiry = now + TTL.
func (s *Store) Issue(token string) error {
	st := state{Token: token, ExpiresAt: s.now().Add(TTL)}
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o600)
}

// Current returns the stored token iff it is present, parseable and not yet
// expired. Any violation purges the file and reports an absent session.
// Holding a token here does not imply it is still valid server-side.
func (s *Store) Current() (string, bool) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	var st state
	if err := json.Unmarshal(b, &st); err != nil || st.Token == "" || st.ExpiresAt.IsZero() {
		s.Revoke()
		return "", false
	}
	if !s.now().Before(st.ExpiresAt) {
		s.Revoke()
		return "", false
	}
	return st.Token, true
}

// Revoke clears the session unconditionally. Safe to call repeatedly.
func (s *Store) Revoke() {
	_ = os.Remove(s.path)
}
