package session_test

import (
	"path/filepath"
	"testing"

	"github.com/jizpi-library/fondctl/internal/session"
)

func TestLogin_Stub(t *testing.T) {
	s, err := session.Login("xodim@jizpi.uz", "sirlisoz")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if s.Role != session.RoleEmployee {
		t.Errorf("role = %q, want employee", s.Role)
	}

	s, err = session.Login("admin@jizpi.uz", "sirlisoz")
	if err != nil {
		t.Fatalf("Login admin: %v", err)
	}
	if s.Role != session.RoleAdmin {
		t.Errorf("role = %q, want admin", s.Role)
	}
}

func TestLogin_Rejects(t *testing.T) {
	if _, err := session.Login("", "sirlisoz"); err == nil {
		t.Error("empty email accepted")
	}
	if _, err := session.Login("xodim@jizpi.uz", "12345"); err == nil {
		t.Error("short password accepted")
	}
}

func TestSaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yml")

	// Missing file: empty, inactive session.
	s, err := session.Load(path)
	if err != nil {
		t.Fatalf("Load missing: %v", err)
	}
	if s.Active() {
		t.Error("missing session reported active")
	}

	want := session.Session{Email: "xodim@jizpi.uz", Role: session.RoleEmployee, Staff: "Dilnoza"}
	if err := session.Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := session.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round-trip: %+v vs %+v", got, want)
	}
	if !got.Active() {
		t.Error("saved session reported inactive")
	}

	if err := session.Clear(path); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, _ = session.Load(path)
	if got.Active() {
		t.Error("session survives Clear")
	}
	// Clearing twice is fine.
	if err := session.Clear(path); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}
