package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestApplyMigrationsRunsFilesInOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	dir := t.TempDir()
	first := "CREATE TABLE IF NOT EXISTS users (id BIGINT);\nCREATE TABLE IF NOT EXISTS travels (id BIGINT);\n"
	second := "CREATE TABLE IF NOT EXISTS cities (id BIGINT);\n"
	if err := os.WriteFile(filepath.Join(dir, "001_init.sql"), []byte(first), 0o644); err != nil {
		t.Fatalf("write migration: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "002_cities.sql"), []byte(second), 0o644); err != nil {
		t.Fatalf("write migration: %v", err)
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS travels").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS cities").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := ApplyMigrations(db, dir); err != nil {
		t.Fatalf("ApplyMigrations returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplyMigrationsEmptyDir(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	if err := ApplyMigrations(db, t.TempDir()); err != nil {
		t.Fatalf("no migrations should be a no-op, got %v", err)
	}
}
