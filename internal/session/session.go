// Package session handles the login stub and the persisted session file.
// Authentication is deliberately not a credential system: any email with
// a long-enough password is accepted, and the admin role is inferred from
// the address.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Roles a logged-in user can hold.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

const minPasswordLen = 6

// Session is the persisted login state: who logged in and which staff
// identity they picked.
type Session struct {
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
	Staff string `yaml:"staff,omitempty"`
}

// Login validates the stub credentials and returns a fresh session.
func Login(email, password string) (Session, error) {
	if strings.TrimSpace(email) == "" || len(password) < minPasswordLen {
		return Session{}, fmt.Errorf("invalid email or password (password must be at least %d characters)", minPasswordLen)
	}
	role := RoleEmployee
	if strings.Contains(email, "admin") {
		role = RoleAdmin
	}
	return Session{Email: email, Role: role}, nil
}

// DefaultPath returns the session file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fondctl", "session.yml")
}

// Load reads the persisted session. A missing file is not an error: it
// just means nobody is logged in.
func Load(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("reading session: %w", err)
	}
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("parsing session: %w", err)
	}
	return s, nil
}

// Save writes the session to disk.
func Save(path string, s Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// Clear removes the session file (logout).
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Active reports whether a session represents a logged-in user.
func (s Session) Active() bool { return s.Email != "" }
