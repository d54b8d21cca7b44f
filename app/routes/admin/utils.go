package admin

import "strings"

// DeriveGrade extracts the grade from a class name like "Grade 10": the
// second whitespace token. Names without one yield an empty grade.
func DeriveGrade(className string) string {
	fields := strings.Fields(className)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}
