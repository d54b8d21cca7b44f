package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// expectClassLookup satisfies the GetClassByID pre-check: the class row plus
// its (empty) subject entries.
func expectClassLookup(mock sqlmock.Sqlmock, classID string) {
	mock.ExpectQuery(`SELECT id, name, section, grade, teacher_id, created_at FROM classes`).
		WithArgs(classID).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "section", "grade", "teacher_id", "created_at"}).
			AddRow(classID, "Grade 10", "A", "10", nil, time.Now()))
	mock.ExpectQuery(`FROM class_subjects cs`).
		WithArgs(classID).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "class_id", "subject_id", "teacher_id", "created_at",
				"name", "code", "first_name", "last_name"}))
}

func TestAssignTeacherToClassUpserts(t *testing.T) {
	db, mock := newMockDB(t)

	// One entry per (class, subject): a re-assignment replaces the teacher
	// on the existing row instead of adding a second one.
	mock.ExpectExec(`(?s)INSERT INTO class_subjects.*ON CONFLICT \(class_id, subject_id\).*DO UPDATE SET teacher_id = EXCLUDED\.teacher_id`).
		WithArgs("class-1", "subject-1", "teacher-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := AssignTeacherToClass(db, "teacher-1", "class-1", "subject-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignStudentToClassSingleWrite(t *testing.T) {
	db, mock := newMockDB(t)

	expectClassLookup(mock, "class-1")

	// Membership is the student's class reference alone, so one UPDATE both
	// removes the old membership and records the new one.
	mock.ExpectExec(`UPDATE users SET class_id = \$2, updated_at = NOW\(\) WHERE id = \$1 AND role = 'student'`).
		WithArgs("student-1", "class-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := AssignStudentToClass(db, "student-1", "class-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignStudentToClassUnknownStudent(t *testing.T) {
	db, mock := newMockDB(t)

	expectClassLookup(mock, "class-1")
	mock.ExpectExec(`UPDATE users SET class_id = \$2`).
		WithArgs("nobody", "class-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := AssignStudentToClass(db, "nobody", "class-1")
	assert.Equal(t, ErrNotFound, err)
}

func TestAssignStudentToClassUnknownClass(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id, name, section, grade, teacher_id, created_at FROM classes`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "section", "grade", "teacher_id", "created_at"}))

	err := AssignStudentToClass(db, "student-1", "missing")
	assert.Equal(t, ErrNotFound, err)
	// No UPDATE may run when the class does not exist.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClassOrdering(t *testing.T) {
	db, mock := newMockDB(t)

	expectClassLookup(mock, "class-1")

	// Subject entries first, then student memberships, then the class row.
	// Expectations are ordered, so a reordered delete fails the test.
	mock.ExpectExec(`DELETE FROM class_subjects WHERE class_id = \$1`).
		WithArgs("class-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE users SET class_id = NULL, updated_at = NOW\(\) WHERE class_id = \$1`).
		WithArgs("class-1").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(`DELETE FROM classes WHERE id = \$1`).
		WithArgs("class-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := DeleteClass(db, "class-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClassNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id, name, section, grade, teacher_id, created_at FROM classes`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "section", "grade", "teacher_id", "created_at"}))

	err := DeleteClass(db, "missing")
	assert.Equal(t, ErrNotFound, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
