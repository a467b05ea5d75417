package enums

import "testing"

func TestIsAdminRole(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{"Pentadbir", true},
		{"pentadbir", true},
		{"admin", true},
		{"Admin", true},
		{" Pentadbir ", true},
		{"Setiausaha", false},
		{"Bendahari", false},
		{"Ahli", false},
		{"", false},
		{"administrator", false},
	}
	for _, tc := range tests {
		if got := IsAdminRole(tc.role); got != tc.want {
			t.Errorf("IsAdminRole(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestSanitizeRole(t *testing.T) {
	if got := SanitizeRole("Bendahari"); got != "Bendahari" {
		t.Errorf("SanitizeRole(Bendahari) = %q", got)
	}
	// Unknown roles fall back to the default member role.
	if got := SanitizeRole("superuser"); got != RoleMember {
		t.Errorf("SanitizeRole(superuser) = %q, want %q", got, RoleMember)
	}
	// The legacy admin spelling is not assignable to new records.
	if got := SanitizeRole(LegacyAdminRole); got != RoleMember {
		t.Errorf("SanitizeRole(admin) = %q, want %q", got, RoleMember)
	}
}

func TestSanitizeOccupation(t *testing.T) {
	if got := SanitizeOccupation("Teknologi Maklumat"); got != "Teknologi Maklumat" {
		t.Errorf("valid occupation was dropped: %q", got)
	}
	if got := SanitizeOccupation("Astronaut"); got != "" {
		t.Errorf("unknown occupation should be dropped, got %q", got)
	}
	if got := SanitizeOccupation(""); got != "" {
		t.Errorf("empty occupation should stay empty, got %q", got)
	}
}

func TestSanitizeGender(t *testing.T) {
	if got := SanitizeGender("Lelaki"); got != "Lelaki" {
		t.Errorf("valid gender was dropped: %q", got)
	}
	if got := SanitizeGender("other"); got != "" {
		t.Errorf("unknown gender should be dropped, got %q", got)
	}
}

func TestValidSubmittedRSVP(t *testing.T) {
	if !ValidSubmittedRSVP(RSVPAttending) || !ValidSubmittedRSVP(RSVPNotAttending) {
		t.Error("attending/not_attending must be submittable")
	}
	if ValidSubmittedRSVP(RSVPPending) {
		t.Error("pending is a stored default, not a submittable status")
	}
	if ValidSubmittedRSVP("maybe") {
		t.Error("unknown RSVP status must be rejected")
	}
}
