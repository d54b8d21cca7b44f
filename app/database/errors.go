package database

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateUser    = errors.New("user with this email, phone, or ID already exists")
	ErrDuplicateClass   = errors.New("class already exists")
	ErrDuplicateSubject = errors.New("subject already exists")
	ErrDuplicateRecord  = errors.New("record already exists")
)

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
