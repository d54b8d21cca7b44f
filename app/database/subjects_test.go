package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteSubjectOrdering(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id, name, code, description, created_at FROM subjects`).
		WithArgs("subject-1").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "code", "description", "created_at"}).
			AddRow("subject-1", "Mathematics", "MATH101", "", time.Now()))

	// Class entries must go before the subject row.
	mock.ExpectExec(`DELETE FROM class_subjects WHERE subject_id = \$1`).
		WithArgs("subject-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM subjects WHERE id = \$1`).
		WithArgs("subject-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := DeleteSubject(db, "subject-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSubjectNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id, name, code, description, created_at FROM subjects`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "code", "description", "created_at"}))

	err := DeleteSubject(db, "missing")
	assert.Equal(t, ErrNotFound, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
