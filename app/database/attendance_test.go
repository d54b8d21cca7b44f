package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waseemakhtar47/a-m-s-1/app/models"
)

func TestUpsertAttendanceConflictClause(t *testing.T) {
	db, mock := newMockDB(t)

	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	created := day.Add(8 * time.Hour)

	// Re-marking the same (student, subject, date) must update in place,
	// never insert a second row.
	mock.ExpectQuery(`(?s)INSERT INTO attendance.*ON CONFLICT \(student_id, subject_id, date\).*DO UPDATE SET status = EXCLUDED\.status, marked_by = EXCLUDED\.marked_by`).
		WithArgs("student-1", "class-1", "subject-1", day, "present", "teacher-1", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("att-1", created, created))

	record := &models.Attendance{
		StudentID: "student-1",
		ClassID:   "class-1",
		SubjectID: "subject-1",
		Date:      day,
		Status:    models.Present,
		MarkedBy:  "teacher-1",
	}
	err := UpsertAttendance(db, record)
	require.NoError(t, err)
	assert.Equal(t, "att-1", record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAttendanceDuplicate(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`INSERT INTO attendance`).
		WillReturnError(&pq.Error{Code: "23505"})

	record := &models.Attendance{
		StudentID: "student-1",
		ClassID:   "class-1",
		SubjectID: "subject-1",
		Date:      time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
		Status:    models.Present,
		MarkedBy:  "teacher-1",
	}
	err := InsertAttendance(db, record)
	assert.Equal(t, ErrDuplicateRecord, err)
}
