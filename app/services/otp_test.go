package services

import (
	"regexp"
	"testing"
)

func TestGenerateOTP(t *testing.T) {
	format := regexp.MustCompile(`^\d{6}$`)

	for i := 0; i < 100; i++ {
		code := GenerateOTP()
		if !format.MatchString(code) {
			t.Fatalf("GenerateOTP() = %q, want 6 digits", code)
		}
	}
}
