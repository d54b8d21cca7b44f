package models

import "time"

type User struct {
	ID        string    `json:"id" validate:"required,uuid"`
	FirstName string    `json:"first_name" validate:"required"`
	LastName  string    `json:"last_name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone" validate:"required"`
	Password  string    `json:"-" validate:"required,min=3"`
	Role      Role      `json:"role" validate:"required,oneof=student teacher admin"`
	IsActive  bool      `json:"is_active"`
	StudentID *string   `json:"student_id,omitempty"`
	TeacherID *string   `json:"teacher_id,omitempty"`
	ClassID   *string   `json:"class_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Class     *Class    `json:"class,omitempty"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
