package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/hrportal/hr-backend-go/internal/pkg/database"
)

var (
	testDB     *database.DB
	testDBErr  error
	testDBOnce sync.Once
)

// testDatabase connects to the database named by TEST_DATABASE_URL, or skips
// the test when the variable is unset. The schema from migrations/0001_init.sql
// must already be applied.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database integration test")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = database.NewPostgreSQLDB(dsn, 4, 1)
	})
	if testDBErr != nil {
		t.Fatalf("failed to connect to test database: %v", testDBErr)
	}

	return testDB
}

// truncateTables clears all data between tests.
func truncateTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	tables := []string{
		"attendance",
		"work_locations",
		"employees",
	}

	for _, table := range tables {
		if _, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}

// seedEmployee inserts an active employee row for foreign data the attendance
// jobs expect.
func seedEmployee(t *testing.T, db *database.DB, code, name string) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO employees (employee_code, name, status) VALUES ($1, $2, 'active')`,
		code, name,
	)
	if err != nil {
		t.Fatalf("failed to seed employee %s: %v", code, err)
	}
}
