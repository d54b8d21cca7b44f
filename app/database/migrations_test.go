package database

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Attendance rows must survive class, subject, and user deletion, so the
// table cannot reference those tables. A foreign key here would make
// DeleteClass/DeleteSubject fail for any entity with marked history.
func TestAttendanceSchemaHasNoForeignKeys(t *testing.T) {
	for _, stmt := range migrations {
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS attendance") {
			assert.NotContains(t, stmt, "REFERENCES")
			return
		}
	}
	t.Fatal("attendance table statement not found in migrations")
}

func TestRunMigrationsExecutesAllStatements(t *testing.T) {
	db, mock := newMockDB(t)

	for range migrations {
		mock.ExpectExec(``).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	err := RunMigrations(db)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
