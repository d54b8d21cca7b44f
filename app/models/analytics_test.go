package models

import "testing"

func TestPercent(t *testing.T) {
	tests := []struct {
		name  string
		part  int
		total int
		want  int
	}{
		{name: "zero total", part: 5, total: 0, want: 0},
		{name: "negative total", part: 5, total: -1, want: 0},
		{name: "zero part", part: 0, total: 20, want: 0},
		{name: "all present", part: 20, total: 20, want: 100},
		{name: "half", part: 10, total: 20, want: 50},
		{name: "rounds up", part: 2, total: 3, want: 67},
		{name: "rounds down", part: 1, total: 3, want: 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.part, tt.total); got != tt.want {
				t.Errorf("Percent(%d, %d) = %d, want %d", tt.part, tt.total, got, tt.want)
			}
		})
	}
}
