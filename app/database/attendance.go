package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/waseemakhtar47/a-m-s-1/app/models"
)

// UpsertAttendance writes one attendance record. A record already existing
// for the (student, subject, date) triple is updated in place, which makes
// re-submitting a day's roster safe.
func UpsertAttendance(db *sql.DB, a *models.Attendance) error {
	query := `INSERT INTO attendance (student_id, class_id, subject_id, date, status, marked_by, remarks)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (student_id, subject_id, date)
			  DO UPDATE SET status = EXCLUDED.status, marked_by = EXCLUDED.marked_by, updated_at = NOW()
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		a.StudentID, a.ClassID, a.SubjectID, a.Date, a.Status, a.MarkedBy, a.Remarks,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// InsertAttendance writes a record only if the triple is not marked yet.
// Used by the QR self-marking path, which must not overwrite an existing
// record.
func InsertAttendance(db *sql.DB, a *models.Attendance) error {
	query := `INSERT INTO attendance (student_id, class_id, subject_id, date, status, marked_by, remarks)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		a.StudentID, a.ClassID, a.SubjectID, a.Date, a.Status, a.MarkedBy, a.Remarks,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateRecord
	}
	return err
}

// GetAttendanceByStudent returns a student's full history, newest day first,
// with subject, class and marker identities populated.
func GetAttendanceByStudent(db *sql.DB, studentID string) ([]*models.Attendance, error) {
	query := `SELECT a.id, a.student_id, a.class_id, a.subject_id, a.date, a.status,
			  a.marked_by, a.remarks, a.created_at, a.updated_at,
			  s.name, s.code, c.name, c.section, m.first_name, m.last_name
			  FROM attendance a
			  JOIN subjects s ON a.subject_id = s.id
			  JOIN classes c ON a.class_id = c.id
			  JOIN users m ON a.marked_by = m.id
			  WHERE a.student_id = $1
			  ORDER BY a.date DESC, a.created_at DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendanceRows(rows, false)
}

// AttendanceFilters narrows an attendance report. Zero values mean
// "no constraint"; the date range, when set, is inclusive at day
// granularity.
type AttendanceFilters struct {
	ClassID   string
	SubjectID string
	MarkedBy  string
	StartDate *time.Time
	EndDate   *time.Time
}

// GetAttendanceReport returns the records matching the filters, newest day
// first, with student, subject and class identities populated.
func GetAttendanceReport(db *sql.DB, filters AttendanceFilters) ([]*models.Attendance, error) {
	query := `SELECT a.id, a.student_id, a.class_id, a.subject_id, a.date, a.status,
			  a.marked_by, a.remarks, a.created_at, a.updated_at,
			  s.name, s.code, c.name, c.section, m.first_name, m.last_name,
			  st.first_name, st.last_name, st.student_id
			  FROM attendance a
			  JOIN subjects s ON a.subject_id = s.id
			  JOIN classes c ON a.class_id = c.id
			  JOIN users m ON a.marked_by = m.id
			  JOIN users st ON a.student_id = st.id
			  WHERE 1=1`

	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return placeholder(len(args))
	}

	if filters.ClassID != "" {
		query += ` AND a.class_id = ` + arg(filters.ClassID)
	}
	if filters.SubjectID != "" {
		query += ` AND a.subject_id = ` + arg(filters.SubjectID)
	}
	if filters.MarkedBy != "" {
		query += ` AND a.marked_by = ` + arg(filters.MarkedBy)
	}
	if filters.StartDate != nil {
		query += ` AND a.date >= ` + arg(*filters.StartDate)
	}
	if filters.EndDate != nil {
		query += ` AND a.date <= ` + arg(*filters.EndDate)
	}
	query += ` ORDER BY a.date DESC, a.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendanceRows(rows, true)
}

func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

func scanAttendanceRows(rows *sql.Rows, withStudent bool) ([]*models.Attendance, error) {
	records := []*models.Attendance{}
	for rows.Next() {
		a := &models.Attendance{}
		var subjectName, subjectCode, className, classSection string
		var markerFirst, markerLast string
		dest := []interface{}{
			&a.ID, &a.StudentID, &a.ClassID, &a.SubjectID, &a.Date, &a.Status,
			&a.MarkedBy, &a.Remarks, &a.CreatedAt, &a.UpdatedAt,
			&subjectName, &subjectCode, &className, &classSection, &markerFirst, &markerLast,
		}
		var studentFirst, studentLast string
		var studentNo *string
		if withStudent {
			dest = append(dest, &studentFirst, &studentLast, &studentNo)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		a.Subject = &models.Subject{ID: a.SubjectID, Name: subjectName, Code: subjectCode}
		a.Class = &models.Class{ID: a.ClassID, Name: className, Section: classSection}
		a.MarkedByUser = &models.User{ID: a.MarkedBy, FirstName: markerFirst, LastName: markerLast}
		if withStudent {
			a.Student = &models.User{ID: a.StudentID, FirstName: studentFirst, LastName: studentLast, StudentID: studentNo}
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// AttendanceExists reports whether a record already exists for the student
// and subject on the given day.
func AttendanceExists(db *sql.DB, studentID, subjectID string, date time.Time) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM attendance WHERE student_id = $1 AND subject_id = $2 AND date = $3)`,
		studentID, subjectID, date,
	).Scan(&exists)
	return exists, err
}
