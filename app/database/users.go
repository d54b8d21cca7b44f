package database

import (
	"database/sql"

	"github.com/waseemakhtar47/a-m-s-1/app/models"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a password using bcrypt. Every stored password goes
// through here, so the cost lives in one place.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

const userColumns = `id, first_name, last_name, email, phone, password, role, is_active, student_id, teacher_id, class_id, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Phone,
		&user.Password, &user.Role, &user.IsActive, &user.StudentID,
		&user.TeacherID, &user.ClassID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser stores a new user with a hashed password. It reports
// ErrDuplicateUser when email, phone, student_id or teacher_id is already
// taken.
func CreateUser(db *sql.DB, user *models.User) error {
	hashed, err := HashPassword(user.Password)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (first_name, last_name, email, phone, password, role, is_active, student_id, teacher_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, created_at, updated_at`

	err = db.QueryRow(query,
		user.FirstName, user.LastName, user.Email, user.Phone, hashed,
		user.Role, user.IsActive, user.StudentID, user.TeacherID,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicateUser
	}
	if err != nil {
		return err
	}
	user.Password = hashed
	return nil
}

// CountAdmins returns how many admin accounts exist.
func CountAdmins(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM users WHERE role = 'admin'`).Scan(&count)
	return count, err
}

// GetUserByContact looks a user up by email or phone, constrained to role.
func GetUserByContact(db *sql.DB, contact string, role models.Role) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE (email = $1 OR phone = $1) AND role = $2`
	user, err := scanUser(db.QueryRow(query, contact, role))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return user, err
}

// GetUserByEmailOrPhone looks a user up by either contact field, any role.
func GetUserByEmailOrPhone(db *sql.DB, contact string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR phone = $1`
	user, err := scanUser(db.QueryRow(query, contact))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return user, err
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(db.QueryRow(query, userID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return user, err
}

// GetPendingUsers lists inactive students and teachers awaiting approval.
func GetPendingUsers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
			  WHERE is_active = false AND role IN ('student', 'teacher')
			  ORDER BY created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// SetUserActive flips the activation flag and returns the updated user.
func SetUserActive(db *sql.DB, userID string, active bool) (*models.User, error) {
	query := `UPDATE users SET is_active = $2, updated_at = NOW() WHERE id = $1
			  RETURNING ` + userColumns
	user, err := scanUser(db.QueryRow(query, userID, active))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return user, err
}

// DeleteUser removes a user record. Used for rejecting pending
// registrations; callers must unassign active users from the roster first.
func DeleteUser(db *sql.DB, userID string) error {
	res, err := db.Exec(`DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateUserPassword rehashes and stores a new password.
func UpdateUserPassword(db *sql.DB, userID, password string) error {
	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	_, err = db.Exec(`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`, hashed, userID)
	return err
}

// GetAllUsers lists every user, newest first, with the student's class
// identity populated.
func GetAllUsers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT u.id, u.first_name, u.last_name, u.email, u.phone, u.role, u.is_active,
			  u.student_id, u.teacher_id, u.class_id, u.created_at, u.updated_at,
			  c.name, c.section
			  FROM users u
			  LEFT JOIN classes c ON u.class_id = c.id
			  ORDER BY u.created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		var className, classSection *string
		err := rows.Scan(
			&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Phone,
			&user.Role, &user.IsActive, &user.StudentID, &user.TeacherID,
			&user.ClassID, &user.CreatedAt, &user.UpdatedAt,
			&className, &classSection,
		)
		if err != nil {
			return nil, err
		}
		if user.ClassID != nil && className != nil {
			user.Class = &models.Class{ID: *user.ClassID, Name: *className, Section: *classSection}
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// GetActiveUsersByRole lists active users of one role, newest first. Student
// rows carry their class identity.
func GetActiveUsersByRole(db *sql.DB, role models.Role) ([]*models.User, error) {
	query := `SELECT u.id, u.first_name, u.last_name, u.email, u.phone, u.role, u.is_active,
			  u.student_id, u.teacher_id, u.class_id, u.created_at, u.updated_at,
			  c.name, c.section
			  FROM users u
			  LEFT JOIN classes c ON u.class_id = c.id
			  WHERE u.role = $1 AND u.is_active = true
			  ORDER BY u.created_at DESC`

	rows, err := db.Query(query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		var className, classSection *string
		err := rows.Scan(
			&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Phone,
			&user.Role, &user.IsActive, &user.StudentID, &user.TeacherID,
			&user.ClassID, &user.CreatedAt, &user.UpdatedAt,
			&className, &classSection,
		)
		if err != nil {
			return nil, err
		}
		if user.ClassID != nil && className != nil {
			user.Class = &models.Class{ID: *user.ClassID, Name: *className, Section: *classSection}
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
