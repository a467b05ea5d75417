// Package session persists the signed-in identity between runs of the
// client: the bearer token and the account snapshot returned by login,
// stored as a JSON file in the user's config directory.
package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
)

// ErrNotSignedIn is returned by Load when no session file exists.
var ErrNotSignedIn = errors.New("not signed in")

// User is the account snapshot captured at login. It may go stale; the
// server revalidates the token on every request regardless.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// Session is what the client knows about the signed-in user.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Attach puts the session's bearer token on an outgoing request.
func (s *Session) Attach(req *http.Request) {
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
}

// Store reads and writes the session file.
type Store struct {
	path string
}

// NewStore returns a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath places the session file under the OS user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ahlihub", "session.json"), nil
}

// Load reads the saved session. Returns ErrNotSignedIn when the file
// does not exist or holds no token.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotSignedIn
	}
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	if sess.Token == "" {
		return nil, ErrNotSignedIn
	}
	return &sess, nil
}

// Save writes the session, creating the parent directory if needed.
// The file is not world-readable: it holds a live token.
func (s *Store) Save(sess *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear signs out by removing the session file. Clearing an absent
// session is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
