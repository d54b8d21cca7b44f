package database

import (
	"database/sql"
	"time"

	"github.com/waseemakhtar47/a-m-s-1/app/models"
)

// CountActiveUsersByRole counts active accounts of one role.
func CountActiveUsersByRole(db *sql.DB, role models.Role) (int, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM users WHERE role = $1 AND is_active = true`, role,
	).Scan(&count)
	return count, err
}

func CountClasses(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM classes`).Scan(&count)
	return count, err
}

// CountAttendance returns total and present record counts over all
// attendance.
func CountAttendance(db *sql.DB) (total, present int, err error) {
	err = db.QueryRow(
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'present') FROM attendance`,
	).Scan(&total, &present)
	return total, present, err
}

// CountAttendanceBetween returns total and present counts for records whose
// date falls within [start, end).
func CountAttendanceBetween(db *sql.DB, start, end time.Time) (total, present int, err error) {
	err = db.QueryRow(
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'present')
		 FROM attendance WHERE date >= $1 AND date < $2`,
		start, end,
	).Scan(&total, &present)
	return total, present, err
}

// GetSubjectAttendance returns every subject's present/total percentage.
// Subjects without records report 0.
func GetSubjectAttendance(db *sql.DB) ([]models.SubjectAttendance, error) {
	query := `SELECT s.name, COUNT(a.id), COUNT(a.id) FILTER (WHERE a.status = 'present')
			  FROM subjects s
			  LEFT JOIN attendance a ON a.subject_id = s.id
			  GROUP BY s.id, s.name
			  ORDER BY s.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.SubjectAttendance{}
	for rows.Next() {
		var name string
		var total, present int
		if err := rows.Scan(&name, &total, &present); err != nil {
			return nil, err
		}
		result = append(result, models.SubjectAttendance{
			Subject:    name,
			Percentage: models.Percent(present, total),
		})
	}
	return result, rows.Err()
}

// GetClassPerformance returns every class's attendance ratio and student
// count.
func GetClassPerformance(db *sql.DB) ([]models.ClassPerformance, error) {
	query := `SELECT c.name, c.section,
			  COUNT(a.id), COUNT(a.id) FILTER (WHERE a.status = 'present'),
			  (SELECT COUNT(*) FROM users u WHERE u.class_id = c.id AND u.role = 'student')
			  FROM classes c
			  LEFT JOIN attendance a ON a.class_id = c.id
			  GROUP BY c.id, c.name, c.section
			  ORDER BY c.name, c.section`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.ClassPerformance{}
	for rows.Next() {
		var name, section string
		var total, present, students int
		if err := rows.Scan(&name, &section, &total, &present, &students); err != nil {
			return nil, err
		}
		result = append(result, models.ClassPerformance{
			ClassName:  name + " - " + section,
			Attendance: models.Percent(present, total),
			Students:   students,
		})
	}
	return result, rows.Err()
}

// MonthCounts holds per-calendar-month attendance tallies keyed by the
// month's first day.
type MonthCounts struct {
	Month   time.Time
	Total   int
	Present int
}

// GetMonthlyAttendanceCounts returns per-month tallies for records dated on
// or after `since`.
func GetMonthlyAttendanceCounts(db *sql.DB, since time.Time) ([]MonthCounts, error) {
	query := `SELECT date_trunc('month', date)::date AS month,
			  COUNT(*), COUNT(*) FILTER (WHERE status = 'present')
			  FROM attendance
			  WHERE date >= $1
			  GROUP BY month
			  ORDER BY month`

	rows, err := db.Query(query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []MonthCounts{}
	for rows.Next() {
		var mc MonthCounts
		if err := rows.Scan(&mc.Month, &mc.Total, &mc.Present); err != nil {
			return nil, err
		}
		counts = append(counts, mc)
	}
	return counts, rows.Err()
}

// GetRecentAttendanceActivity returns the latest marked records, newest
// first, rendered for the dashboard feed.
func GetRecentAttendanceActivity(db *sql.DB, limit int) ([]models.AttendanceActivity, error) {
	query := `SELECT st.first_name, st.last_name, s.name, a.status, a.created_at
			  FROM attendance a
			  JOIN users st ON a.student_id = st.id
			  JOIN subjects s ON a.subject_id = s.id
			  ORDER BY a.created_at DESC
			  LIMIT $1`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activity := []models.AttendanceActivity{}
	for rows.Next() {
		var firstName, lastName, subjectName string
		var status models.AttendanceStatus
		var createdAt time.Time
		if err := rows.Scan(&firstName, &lastName, &subjectName, &status, &createdAt); err != nil {
			return nil, err
		}
		code := "A"
		if status == models.Present {
			code = "P"
		}
		activity = append(activity, models.AttendanceActivity{
			StudentName: firstName + " " + lastName,
			SubjectName: subjectName,
			Status:      code,
			Time:        createdAt,
		})
	}
	return activity, rows.Err()
}
