package models

import "testing"

func testClass() *Class {
	teacherID := "t-1"
	return &Class{
		ID:        "c-1",
		Name:      "Grade 10",
		Section:   "A",
		TeacherID: &teacherID,
		Subjects: []*ClassSubject{
			{ClassID: "c-1", SubjectID: "s-math", TeacherID: "t-2"},
			{ClassID: "c-1", SubjectID: "s-eng", TeacherID: "t-3"},
		},
	}
}

func TestClassTaughtBy(t *testing.T) {
	class := testClass()

	tests := []struct {
		name   string
		userID string
		want   bool
	}{
		{name: "class teacher", userID: "t-1", want: true},
		{name: "subject teacher", userID: "t-2", want: true},
		{name: "other subject teacher", userID: "t-3", want: true},
		{name: "unrelated teacher", userID: "t-9", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := class.TaughtBy(tt.userID); got != tt.want {
				t.Errorf("TaughtBy(%q) = %v, want %v", tt.userID, got, tt.want)
			}
		})
	}

	class.TeacherID = nil
	if class.TaughtBy("t-1") {
		t.Error("TaughtBy() should be false after class teacher is cleared")
	}
}

func TestClassTeachesSubject(t *testing.T) {
	class := testClass()

	tests := []struct {
		name      string
		userID    string
		subjectID string
		want      bool
	}{
		{name: "assigned subject teacher", userID: "t-2", subjectID: "s-math", want: true},
		{name: "wrong subject", userID: "t-2", subjectID: "s-eng", want: false},
		{name: "class teacher covers any subject", userID: "t-1", subjectID: "s-eng", want: true},
		{name: "unrelated teacher", userID: "t-9", subjectID: "s-math", want: false},
		{name: "unknown subject", userID: "t-2", subjectID: "s-physics", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := class.TeachesSubject(tt.userID, tt.subjectID); got != tt.want {
				t.Errorf("TeachesSubject(%q, %q) = %v, want %v", tt.userID, tt.subjectID, got, tt.want)
			}
		})
	}
}
