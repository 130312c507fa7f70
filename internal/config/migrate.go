package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ApplyMigrations executes every *.sql file under dir in name order. The
// schema files only use CREATE TABLE IF NOT EXISTS, so re-running at every
// startup is safe. Statements are split on ";" since the MySQL driver does
// not accept multi-statement Exec by default.
func ApplyMigrations(db *sql.DB, dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", filepath.Base(file), err)
		}
		for _, stmt := range strings.Split(string(raw), ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("migration %s: %w", filepath.Base(file), err)
			}
		}
		log.Printf("Applied migration %s", filepath.Base(file))
	}
	return nil
}
