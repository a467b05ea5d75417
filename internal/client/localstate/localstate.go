// Package localstate keeps per-device client data that the server never
// sees: a stable device identifier and locally-tracked attendance marks
// taken during a meeting (roll call happens offline; the marks are not
// the server-side RSVPs).
package localstate

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Attendance marks. Unset means no mark has been taken.
const (
	AttendanceUnset   = ""
	AttendancePresent = "hadir"
	AttendanceAbsent  = "tidak"
)

// ErrBadMark is returned for a mark outside the three known values.
var ErrBadMark = errors.New("attendance mark must be hadir, tidak, or empty")

// State is the persisted per-device data.
type State struct {
	// DeviceID is generated once per device and never changes.
	DeviceID string `json:"deviceId"`
	// Attendance maps a member key (see KeyFor) to a mark.
	Attendance map[string]string `json:"attendance"`
	// RSVP remembers the last answer submitted per meeting ID, so the
	// UI can preselect it. The server copy is authoritative.
	RSVP map[string]string `json:"rsvp"`
}

// Store reads and writes the state file.
type Store struct {
	path  string
	state State
}

// Open loads the state file, creating fresh state with a new device ID
// when the file does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		s.state = State{
			DeviceID:   uuid.NewString(),
			Attendance: map[string]string{},
			RSVP:       map[string]string{},
		}
		return s, s.save()
	case err != nil:
		return nil, err
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		return nil, err
	}
	if s.state.DeviceID == "" {
		s.state.DeviceID = uuid.NewString()
	}
	if s.state.Attendance == nil {
		s.state.Attendance = map[string]string{}
	}
	if s.state.RSVP == nil {
		s.state.RSVP = map[string]string{}
	}
	return s, nil
}

// DeviceID returns this device's stable identifier.
func (s *Store) DeviceID() string { return s.state.DeviceID }

// KeyFor derives the attendance-map key for a member record: the server
// ID when present, else the membership number, else the email. A record
// with none of the three cannot be keyed; positions in a list are not a
// stable identity, so there is deliberately no index-based fallback.
func KeyFor(id, idNo, email string) (string, bool) {
	switch {
	case id != "":
		return "id:" + id, true
	case idNo != "":
		return "idno:" + idNo, true
	case email != "":
		return "email:" + email, true
	default:
		return "", false
	}
}

// Mark records an attendance mark under key and persists immediately.
// Marking AttendanceUnset removes the entry.
func (s *Store) Mark(key, mark string) error {
	switch mark {
	case AttendancePresent, AttendanceAbsent:
		s.state.Attendance[key] = mark
	case AttendanceUnset:
		delete(s.state.Attendance, key)
	default:
		return ErrBadMark
	}
	return s.save()
}

// MarkOf returns the stored mark for key, AttendanceUnset if none.
func (s *Store) MarkOf(key string) string {
	return s.state.Attendance[key]
}

// RememberRSVP stores the answer last submitted for a meeting.
func (s *Store) RememberRSVP(meetingID, status string) error {
	s.state.RSVP[meetingID] = status
	return s.save()
}

// LastRSVP returns the remembered answer for a meeting, "" if none.
func (s *Store) LastRSVP(meetingID string) string {
	return s.state.RSVP[meetingID]
}

// Reset clears every attendance mark and remembered answer but keeps
// the device ID.
func (s *Store) Reset() error {
	s.state.Attendance = map[string]string{}
	s.state.RSVP = map[string]string{}
	return s.save()
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
