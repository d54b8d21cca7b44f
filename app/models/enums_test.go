package models

import "testing"

func TestValidRole(t *testing.T) {
	for _, s := range []string{"student", "teacher", "admin"} {
		if !ValidRole(s) {
			t.Errorf("ValidRole(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "Student", "parent", "superadmin"} {
		if ValidRole(s) {
			t.Errorf("ValidRole(%q) = true, want false", s)
		}
	}
}

func TestValidAttendanceStatus(t *testing.T) {
	for _, s := range []string{"present", "absent", "late"} {
		if !ValidAttendanceStatus(s) {
			t.Errorf("ValidAttendanceStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "Present", "excused", "p"} {
		if ValidAttendanceStatus(s) {
			t.Errorf("ValidAttendanceStatus(%q) = true, want false", s)
		}
	}
}
