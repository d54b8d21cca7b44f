package database

import (
	"database/sql"
	"log"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		phone VARCHAR(20) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(10) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT false,
		student_id VARCHAR(50) UNIQUE,
		teacher_id VARCHAR(50) UNIQUE,
		class_id UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS classes (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(100) NOT NULL,
		section VARCHAR(20) NOT NULL,
		grade VARCHAR(20) NOT NULL DEFAULT '',
		teacher_id UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (name, section)
	)`,
	`CREATE TABLE IF NOT EXISTS subjects (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(100) NOT NULL UNIQUE,
		code VARCHAR(50) NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS class_subjects (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		class_id UUID NOT NULL REFERENCES classes(id),
		subject_id UUID NOT NULL REFERENCES subjects(id),
		teacher_id UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (class_id, subject_id)
	)`,
	// Attendance carries no foreign keys: records stay as history after
	// their class, subject, or marker is deleted.
	`CREATE TABLE IF NOT EXISTS attendance (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		student_id UUID NOT NULL,
		class_id UUID NOT NULL,
		subject_id UUID NOT NULL,
		date DATE NOT NULL,
		status VARCHAR(10) NOT NULL,
		marked_by UUID NOT NULL,
		remarks TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (student_id, subject_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_class_id ON users (class_id)`,
	`CREATE INDEX IF NOT EXISTS idx_class_subjects_subject_id ON class_subjects (subject_id)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_class_id ON attendance (class_id)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance (date)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_marked_by ON attendance (marked_by)`,
}

// RunMigrations creates the schema if it does not exist yet. Statements are
// idempotent so the service can re-run them on every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
