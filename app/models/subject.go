package models

import "time"

type Subject struct {
	ID          string    `json:"id" validate:"required,uuid"`
	Name        string    `json:"name" validate:"required"`
	Code        string    `json:"code" validate:"required"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Classes     []*Class  `json:"classes,omitempty"`
}
