package database

import (
	"database/sql"

	"github.com/waseemakhtar47/a-m-s-1/app/models"
)

// CreateClass stores a new class. The (name, section) pair is unique.
func CreateClass(db *sql.DB, class *models.Class) error {
	query := `INSERT INTO classes (name, section, grade)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at`

	err := db.QueryRow(query, class.Name, class.Section, class.Grade).
		Scan(&class.ID, &class.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateClass
	}
	return err
}

// GetClassByID returns a class with its subject entries populated.
func GetClassByID(db *sql.DB, classID string) (*models.Class, error) {
	class := &models.Class{}
	query := `SELECT id, name, section, grade, teacher_id, created_at FROM classes WHERE id = $1`

	err := db.QueryRow(query, classID).Scan(
		&class.ID, &class.Name, &class.Section, &class.Grade, &class.TeacherID, &class.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	subjects, err := getClassSubjects(db, classID)
	if err != nil {
		return nil, err
	}
	class.Subjects = subjects
	return class, nil
}

func getClassSubjects(db *sql.DB, classID string) ([]*models.ClassSubject, error) {
	query := `SELECT cs.id, cs.class_id, cs.subject_id, cs.teacher_id, cs.created_at,
			  s.name, s.code, u.first_name, u.last_name
			  FROM class_subjects cs
			  JOIN subjects s ON cs.subject_id = s.id
			  JOIN users u ON cs.teacher_id = u.id
			  WHERE cs.class_id = $1
			  ORDER BY cs.created_at`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*models.ClassSubject{}
	for rows.Next() {
		cs := &models.ClassSubject{}
		var subjectName, subjectCode, firstName, lastName string
		err := rows.Scan(
			&cs.ID, &cs.ClassID, &cs.SubjectID, &cs.TeacherID, &cs.CreatedAt,
			&subjectName, &subjectCode, &firstName, &lastName,
		)
		if err != nil {
			return nil, err
		}
		cs.Subject = &models.Subject{ID: cs.SubjectID, Name: subjectName, Code: subjectCode}
		cs.Teacher = &models.User{ID: cs.TeacherID, FirstName: firstName, LastName: lastName}
		entries = append(entries, cs)
	}
	return entries, rows.Err()
}

// GetAllClasses lists every class, newest first, with teacher identity,
// subject entries and student counts populated.
func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT c.id, c.name, c.section, c.grade, c.teacher_id, c.created_at,
			  u.first_name, u.last_name,
			  COALESCE(s.student_count, 0)
			  FROM classes c
			  LEFT JOIN users u ON c.teacher_id = u.id
			  LEFT JOIN (
				  SELECT class_id, COUNT(*) AS student_count
				  FROM users
				  WHERE role = 'student' AND class_id IS NOT NULL
				  GROUP BY class_id
			  ) s ON c.id = s.class_id
			  ORDER BY c.created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []*models.Class{}
	for rows.Next() {
		class := &models.Class{}
		var firstName, lastName *string
		err := rows.Scan(
			&class.ID, &class.Name, &class.Section, &class.Grade, &class.TeacherID,
			&class.CreatedAt, &firstName, &lastName, &class.StudentCount,
		)
		if err != nil {
			return nil, err
		}
		if class.TeacherID != nil && firstName != nil {
			class.Teacher = &models.User{ID: *class.TeacherID, FirstName: *firstName, LastName: *lastName}
		}
		classes = append(classes, class)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, class := range classes {
		subjects, err := getClassSubjects(db, class.ID)
		if err != nil {
			return nil, err
		}
		class.Subjects = subjects
	}
	return classes, nil
}

// AssignStudentToClass moves a student into a class. Membership lives on the
// student's class reference, so the same write removes any previous
// membership.
func AssignStudentToClass(db *sql.DB, studentID, classID string) error {
	if _, err := GetClassByID(db, classID); err != nil {
		return err
	}

	res, err := db.Exec(
		`UPDATE users SET class_id = $2, updated_at = NOW() WHERE id = $1 AND role = 'student'`,
		studentID, classID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// UnassignStudent clears the student's class reference.
func UnassignStudent(db *sql.DB, studentID string) error {
	res, err := db.Exec(
		`UPDATE users SET class_id = NULL, updated_at = NOW() WHERE id = $1 AND role = 'student'`,
		studentID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// AssignTeacherToClass records that teacherID teaches subjectID in classID.
// Re-assigning the same subject replaces the teacher on the existing entry,
// never adding a second one.
func AssignTeacherToClass(db *sql.DB, teacherID, classID, subjectID string) error {
	query := `INSERT INTO class_subjects (class_id, subject_id, teacher_id)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (class_id, subject_id)
			  DO UPDATE SET teacher_id = EXCLUDED.teacher_id`

	_, err := db.Exec(query, classID, subjectID, teacherID)
	return err
}

// UnassignTeacher removes the subject entry from the class.
func UnassignTeacher(db *sql.DB, classID, subjectID string) error {
	if _, err := GetClassByID(db, classID); err != nil {
		return err
	}
	_, err := db.Exec(
		`DELETE FROM class_subjects WHERE class_id = $1 AND subject_id = $2`,
		classID, subjectID,
	)
	return err
}

// DeleteClass removes a class after detaching everything that references it:
// subject entries first, then student memberships, then the class row. The
// ordering keeps a crash mid-way recoverable by re-running the delete.
func DeleteClass(db *sql.DB, classID string) error {
	if _, err := GetClassByID(db, classID); err != nil {
		return err
	}

	if _, err := db.Exec(`DELETE FROM class_subjects WHERE class_id = $1`, classID); err != nil {
		return err
	}
	if _, err := db.Exec(`UPDATE users SET class_id = NULL, updated_at = NOW() WHERE class_id = $1`, classID); err != nil {
		return err
	}
	_, err := db.Exec(`DELETE FROM classes WHERE id = $1`, classID)
	return err
}

// GetStudentsByClass lists the active students of a class.
func GetStudentsByClass(db *sql.DB, classID string) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
			  WHERE class_id = $1 AND role = 'student' AND is_active = true
			  ORDER BY first_name, last_name`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.User{}
	for rows.Next() {
		student, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// GetClassesByTeacher lists classes where the teacher is either the class
// teacher or assigned to one of the class's subjects, with students and
// subject entries populated.
func GetClassesByTeacher(db *sql.DB, teacherID string) ([]*models.Class, error) {
	query := `SELECT DISTINCT c.id, c.name, c.section, c.grade, c.teacher_id, c.created_at
			  FROM classes c
			  LEFT JOIN class_subjects cs ON c.id = cs.class_id
			  WHERE c.teacher_id = $1 OR cs.teacher_id = $1
			  ORDER BY c.name, c.section`

	rows, err := db.Query(query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []*models.Class{}
	for rows.Next() {
		class := &models.Class{}
		err := rows.Scan(&class.ID, &class.Name, &class.Section, &class.Grade, &class.TeacherID, &class.CreatedAt)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, class := range classes {
		if class.Subjects, err = getClassSubjects(db, class.ID); err != nil {
			return nil, err
		}
		if class.Students, err = GetStudentsByClass(db, class.ID); err != nil {
			return nil, err
		}
		class.StudentCount = len(class.Students)
	}
	return classes, nil
}

// GetClassesByStudent lists the classes containing the student (at most one
// under the single-membership invariant), with teacher and subjects
// populated.
func GetClassesByStudent(db *sql.DB, studentID string) ([]*models.Class, error) {
	query := `SELECT c.id, c.name, c.section, c.grade, c.teacher_id, c.created_at,
			  u.first_name, u.last_name
			  FROM classes c
			  JOIN users st ON st.class_id = c.id
			  LEFT JOIN users u ON c.teacher_id = u.id
			  WHERE st.id = $1`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []*models.Class{}
	for rows.Next() {
		class := &models.Class{}
		var firstName, lastName *string
		err := rows.Scan(
			&class.ID, &class.Name, &class.Section, &class.Grade, &class.TeacherID,
			&class.CreatedAt, &firstName, &lastName,
		)
		if err != nil {
			return nil, err
		}
		if class.TeacherID != nil && firstName != nil {
			class.Teacher = &models.User{ID: *class.TeacherID, FirstName: *firstName, LastName: *lastName}
		}
		classes = append(classes, class)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, class := range classes {
		if class.Subjects, err = getClassSubjects(db, class.ID); err != nil {
			return nil, err
		}
	}
	return classes, nil
}

// StudentInClass reports whether the student currently belongs to the class.
func StudentInClass(db *sql.DB, studentID, classID string) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1 AND class_id = $2 AND role = 'student')`,
		studentID, classID,
	).Scan(&exists)
	return exists, err
}
