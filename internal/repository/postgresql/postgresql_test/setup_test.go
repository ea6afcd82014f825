package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/presensia/hris-backend-go/internal/pkg/database"
)

// TestDatabaseSetup wraps the connection to the integration test database.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to the test database, or skips the calling test
// when TEST_DATABASE_URL is not set.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping repository integration test")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	return &TestDatabaseSetup{DB: db}
}

// TruncateAllTables removes all data from the tables this module owns.
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tables := []string{
		"attendances",
		"leave_requests",
		"users",
	}

	for _, table := range tables {
		if _, err := s.DB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}

	return nil
}

// CreateTestUser inserts a minimal user row for identity joins.
func (s *TestDatabaseSetup) CreateTestUser(ctx context.Context, fullName, email, employeeCode string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
		INSERT INTO users (id, full_name, email, employee_code, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, NOW())
		RETURNING id
	`, fullName, email, employeeCode).Scan(&id)
	return id, err
}
