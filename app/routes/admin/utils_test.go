package admin

import "testing"

func TestDeriveGrade(t *testing.T) {
	tests := []struct {
		name      string
		className string
		want      string
	}{
		{name: "grade number", className: "Grade 10", want: "10"},
		{name: "word grade", className: "Senior One", want: "One"},
		{name: "extra tokens", className: "Grade 7 Blue", want: "7"},
		{name: "single token", className: "Nursery", want: ""},
		{name: "empty", className: "", want: ""},
		{name: "surrounding space", className: "  Grade 3  ", want: "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveGrade(tt.className); got != tt.want {
				t.Errorf("DeriveGrade(%q) = %q, want %q", tt.className, got, tt.want)
			}
		})
	}
}
