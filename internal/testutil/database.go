package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

const defaultTestDSN = "root:@tcp(localhost:3306)/catalog_test?parseTime=true"

// SetupTestDB opens the integration database named by CATALOG_TEST_DSN and
// skips the test when it cannot be reached.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("CATALOG_TEST_DSN")
	if dsn == "" {
		dsn = defaultTestDSN
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the catalog tables and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	t.Helper()

	if db == nil {
		return
	}

	for _, table := range []string{"Product"} {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the catalog schema if it is missing.
func SetupTestTables(t *testing.T, db *sql.DB) {
	t.Helper()

	createProductTable := `
	CREATE TABLE IF NOT EXISTS Product (
		id INT NOT NULL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		price DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		description TEXT,
		category VARCHAR(100),
		image VARCHAR(512) NOT NULL DEFAULT '',
		rating_rate DECIMAL(3,1) NOT NULL DEFAULT 0.0,
		rating_count INT NOT NULL DEFAULT 0
	)`

	if _, err := db.Exec(createProductTable); err != nil {
		t.Fatalf("failed to create table Product: %v", err)
	}
}
