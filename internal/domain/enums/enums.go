// Package enums holds the fixed value sets shared by the server-side
// validation layer and the client. Both sides must consume these constants
// rather than carrying their own copies, so the two layers cannot drift.
package enums

import "strings"

// Roles. RoleAdmin is the canonical top-admin identifier; the legacy
// spelling "admin" still exists in stored records from before the
// migration and is accepted as equivalent by IsAdminRole.
const (
	RoleAdmin     = "Pentadbir"
	RoleSecretary = "Setiausaha"
	RoleTreasurer = "Bendahari"
	RoleMember    = "Ahli"

	// LegacyAdminRole is the pre-migration spelling of RoleAdmin.
	// New records are never written with it.
	LegacyAdminRole = "admin"
)

// Roles lists the assignable roles. LegacyAdminRole is deliberately
// absent: it is read-compatible only.
var Roles = []string{RoleAdmin, RoleSecretary, RoleTreasurer, RoleMember}

// Occupations is the fixed job-category set. It is shared between the
// User occupation field and the Ahli job field.
var Occupations = []string{
	"Keselamatan",
	"Perkhidmatan & Hospitaliti",
	"Pertanian & Alam Sekitar",
	"Undang-Undang & Pendtadbiran",
	"Seni & Kreatif",
	"Perniagaan & Kewangan",
	"Pendidikan & Latihan",
	"Sains & Kesihatan",
	"Teknologi Maklumat",
	"Teknikal & Kejuruteraan",
}

// Genders for Ahli records.
const (
	GenderMale   = "Lelaki"
	GenderFemale = "Perempuan"
)

var Genders = []string{GenderMale, GenderFemale}

// RSVP statuses. RSVPPending is the stored default; only the other two
// may be submitted through the RSVP endpoint.
const (
	RSVPAttending    = "attending"
	RSVPNotAttending = "not_attending"
	RSVPPending      = "pending"
)

// Meeting lifecycle statuses.
const (
	MeetingUpcoming  = "upcoming"
	MeetingOngoing   = "ongoing"
	MeetingCompleted = "completed"
	MeetingCancelled = "cancelled"
)

var MeetingStatuses = []string{MeetingUpcoming, MeetingOngoing, MeetingCompleted, MeetingCancelled}

// IsAdminRole reports whether role grants top-admin access. Both the
// canonical and the legacy spelling qualify, case-insensitively, so
// records written before the role migration keep working.
func IsAdminRole(role string) bool {
	r := strings.ToLower(strings.TrimSpace(role))
	return r == strings.ToLower(RoleAdmin) || r == LegacyAdminRole
}

// ValidRole reports whether role is one of the assignable roles.
func ValidRole(role string) bool { return contains(Roles, role) }

// ValidOccupation reports whether v is in the fixed occupation set.
func ValidOccupation(v string) bool { return contains(Occupations, v) }

// ValidGender reports whether v is in the fixed gender set.
func ValidGender(v string) bool { return contains(Genders, v) }

// ValidSubmittedRSVP reports whether v may be submitted as an RSVP.
// RSVPPending is a stored default, not a submittable answer.
func ValidSubmittedRSVP(v string) bool {
	return v == RSVPAttending || v == RSVPNotAttending
}

// SanitizeRole returns role if assignable, else RoleMember.
func SanitizeRole(role string) string {
	if ValidRole(role) {
		return role
	}
	return RoleMember
}

// SanitizeOccupation returns v if it is in the fixed set, else "".
// Writes drop unknown enum values instead of rejecting the whole
// request; callers are expected to log the dropped value.
func SanitizeOccupation(v string) string {
	if ValidOccupation(v) {
		return v
	}
	return ""
}

// SanitizeGender returns v if it is in the fixed set, else "".
func SanitizeGender(v string) string {
	if ValidGender(v) {
		return v
	}
	return ""
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
