package models

import "time"

type Class struct {
	ID           string          `json:"id" validate:"required,uuid"`
	Name         string          `json:"name" validate:"required"`
	Section      string          `json:"section" validate:"required"`
	Grade        string          `json:"grade"`
	TeacherID    *string         `json:"teacher_id,omitempty"`
	StudentCount int             `json:"student_count"`
	CreatedAt    time.Time       `json:"created_at"`
	Teacher      *User           `json:"teacher,omitempty"`
	Subjects     []*ClassSubject `json:"subjects,omitempty"`
	Students     []*User         `json:"students,omitempty"`
}

// ClassSubject is one entry of a class's subject list: which subject is
// taught in the class and by whom. There is at most one entry per subject.
type ClassSubject struct {
	ID        string    `json:"id"`
	ClassID   string    `json:"class_id"`
	SubjectID string    `json:"subject_id"`
	TeacherID string    `json:"teacher_id"`
	CreatedAt time.Time `json:"created_at"`
	Subject   *Subject  `json:"subject,omitempty"`
	Teacher   *User     `json:"teacher,omitempty"`
}

// TaughtBy reports whether userID is the class teacher or teaches any
// subject in this class.
func (c *Class) TaughtBy(userID string) bool {
	if c.TeacherID != nil && *c.TeacherID == userID {
		return true
	}
	for _, cs := range c.Subjects {
		if cs.TeacherID == userID {
			return true
		}
	}
	return false
}

// TeachesSubject reports whether userID is assigned to subjectID in this
// class, or is the class teacher.
func (c *Class) TeachesSubject(userID, subjectID string) bool {
	if c.TeacherID != nil && *c.TeacherID == userID {
		return true
	}
	for _, cs := range c.Subjects {
		if cs.SubjectID == subjectID && cs.TeacherID == userID {
			return true
		}
	}
	return false
}
