package localstate

import (
	"errors"
	"path/filepath"
	"testing"
)

func open(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestDeviceID_StableAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	first := open(t, path)
	if first.DeviceID() == "" {
		t.Fatal("fresh state must generate a device ID")
	}

	second := open(t, path)
	if second.DeviceID() != first.DeviceID() {
		t.Fatalf("device ID changed: %q then %q", first.DeviceID(), second.DeviceID())
	}
}

func TestKeyFor_Precedence(t *testing.T) {
	tests := []struct {
		id, idNo, email string
		want            string
		ok              bool
	}{
		{"u1", "PAK-0001", "a@x.com", "id:u1", true},
		{"", "PAK-0001", "a@x.com", "idno:PAK-0001", true},
		{"", "", "a@x.com", "email:a@x.com", true},
		{"", "", "", "", false},
	}
	for _, tc := range tests {
		got, ok := KeyFor(tc.id, tc.idNo, tc.email)
		if got != tc.want || ok != tc.ok {
			t.Errorf("KeyFor(%q, %q, %q) = %q, %v; want %q, %v",
				tc.id, tc.idNo, tc.email, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMark_PersistsAndClears(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := open(t, path)

	key, ok := KeyFor("", "PAK-0001", "")
	if !ok {
		t.Fatal("KeyFor failed")
	}
	if err := s.Mark(key, AttendancePresent); err != nil {
		t.Fatalf("Mark: %v", err)
	}

	// Marks survive a reopen.
	s2 := open(t, path)
	if got := s2.MarkOf(key); got != AttendancePresent {
		t.Fatalf("MarkOf = %q, want %q", got, AttendancePresent)
	}

	// Unset removes the entry.
	if err := s2.Mark(key, AttendanceUnset); err != nil {
		t.Fatalf("Mark unset: %v", err)
	}
	if got := s2.MarkOf(key); got != AttendanceUnset {
		t.Fatalf("MarkOf after unset = %q", got)
	}
}

func TestMark_RejectsUnknown(t *testing.T) {
	s := open(t, filepath.Join(t.TempDir(), "state.json"))
	if err := s.Mark("id:u1", "maybe"); !errors.Is(err, ErrBadMark) {
		t.Fatalf("expected ErrBadMark, got %v", err)
	}
}

func TestRememberRSVP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := open(t, path)

	if err := s.RememberRSVP("m1", "attending"); err != nil {
		t.Fatalf("RememberRSVP: %v", err)
	}
	if err := s.RememberRSVP("m1", "not_attending"); err != nil {
		t.Fatalf("RememberRSVP: %v", err)
	}

	s2 := open(t, path)
	if got := s2.LastRSVP("m1"); got != "not_attending" {
		t.Fatalf("LastRSVP = %q, want latest answer", got)
	}
	if got := s2.LastRSVP("m2"); got != "" {
		t.Fatalf("LastRSVP for unknown meeting = %q, want empty", got)
	}
}

func TestReset_KeepsDeviceID(t *testing.T) {
	s := open(t, filepath.Join(t.TempDir(), "state.json"))
	dev := s.DeviceID()

	if err := s.Mark("id:u1", AttendanceAbsent); err != nil {
		t.Fatalf("Mark: %v", err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if s.MarkOf("id:u1") != AttendanceUnset {
		t.Fatal("Reset did not clear marks")
	}
	if s.DeviceID() != dev {
		t.Fatal("Reset changed the device ID")
	}
}
