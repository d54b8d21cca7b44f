package models

import "time"

// Attendance is one student's record for a subject on a calendar day.
// The (student, subject, date) triple is unique.
type Attendance struct {
	ID           string           `json:"id"`
	StudentID    string           `json:"student_id" validate:"required,uuid"`
	ClassID      string           `json:"class_id" validate:"required,uuid"`
	SubjectID    string           `json:"subject_id" validate:"required,uuid"`
	Date         time.Time        `json:"date" validate:"required"`
	Status       AttendanceStatus `json:"status" validate:"required,oneof=present absent late"`
	MarkedBy     string           `json:"marked_by"`
	Remarks      string           `json:"remarks,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	Student      *User            `json:"student,omitempty"`
	Class        *Class           `json:"class,omitempty"`
	Subject      *Subject         `json:"subject,omitempty"`
	MarkedByUser *User            `json:"marked_by_user,omitempty"`
}
