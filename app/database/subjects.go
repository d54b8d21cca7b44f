package database

import (
	"database/sql"

	"github.com/waseemakhtar47/a-m-s-1/app/models"
)

// CreateSubject stores a new subject. Name and code are both unique.
func CreateSubject(db *sql.DB, subject *models.Subject) error {
	query := `INSERT INTO subjects (name, code, description)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at`

	err := db.QueryRow(query, subject.Name, subject.Code, subject.Description).
		Scan(&subject.ID, &subject.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateSubject
	}
	return err
}

func GetSubjectByID(db *sql.DB, subjectID string) (*models.Subject, error) {
	subject := &models.Subject{}
	query := `SELECT id, name, code, description, created_at FROM subjects WHERE id = $1`

	err := db.QueryRow(query, subjectID).Scan(
		&subject.ID, &subject.Name, &subject.Code, &subject.Description, &subject.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return subject, err
}

// GetAllSubjects lists every subject, newest first, with the classes that
// teach it populated from the class_subjects relation.
func GetAllSubjects(db *sql.DB) ([]*models.Subject, error) {
	query := `SELECT id, name, code, description, created_at FROM subjects ORDER BY created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := []*models.Subject{}
	for rows.Next() {
		subject := &models.Subject{}
		err := rows.Scan(&subject.ID, &subject.Name, &subject.Code, &subject.Description, &subject.CreatedAt)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, subject := range subjects {
		if subject.Classes, err = GetClassesBySubject(db, subject.ID); err != nil {
			return nil, err
		}
	}
	return subjects, nil
}

// GetClassesBySubject lists the classes whose subject list references the
// subject. This is the mirrored side of the class⇄subject relation.
func GetClassesBySubject(db *sql.DB, subjectID string) ([]*models.Class, error) {
	query := `SELECT c.id, c.name, c.section, c.grade, c.teacher_id, c.created_at
			  FROM classes c
			  JOIN class_subjects cs ON cs.class_id = c.id
			  WHERE cs.subject_id = $1
			  ORDER BY c.name, c.section`

	rows, err := db.Query(query, subjectID)
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
	return classes, rows.Err()
}

// DeleteSubject removes a subject after removing every class's entry for it.
func DeleteSubject(db *sql.DB, subjectID string) error {
	if _, err := GetSubjectByID(db, subjectID); err != nil {
		return err
	}

	if _, err := db.Exec(`DELETE FROM class_subjects WHERE subject_id = $1`, subjectID); err != nil {
		return err
	}
	_, err := db.Exec(`DELETE FROM subjects WHERE id = $1`, subjectID)
	return err
}
