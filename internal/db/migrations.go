package db

import (
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/terraincognita07/foodt/migrations"
	"gorm.io/gorm"
)

// Migration files are named NNNN_description.sql and run once each, in
// numeric order, inside a transaction. Applied versions are recorded in
// schema_migrations so reopening an existing database is a no-op.
var migrationNamePattern = regexp.MustCompile(`^(\d+)_.*\.sql$`)

type schemaMigration struct {
	version int
	name    string
	sql     string
}

func migrate(database *gorm.DB) error {
	const bootstrap = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(bootstrap).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	pending, err := readEmbeddedMigrations()
	if err != nil {
		return err
	}
	applied, err := appliedVersions(database)
	if err != nil {
		return err
	}

	for _, migration := range pending {
		if applied[strconv.Itoa(migration.version)] {
			continue
		}
		if err := runMigration(database, migration); err != nil {
			return err
		}
	}
	return nil
}

func readEmbeddedMigrations() ([]schemaMigration, error) {
	entries, err := fs.ReadDir(migrations.Files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	found := make([]schemaMigration, 0, len(entries))
	byVersion := make(map[int]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matches := migrationNamePattern.FindStringSubmatch(entry.Name())
		if matches == nil {
			continue
		}

		version, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("parse version of migration %s: %w", entry.Name(), err)
		}
		if clashing, taken := byVersion[version]; taken {
			return nil, fmt.Errorf("migrations %s and %s share version %d", clashing, entry.Name(), version)
		}
		byVersion[version] = entry.Name()

		body, err := fs.ReadFile(migrations.Files, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		found = append(found, schemaMigration{version: version, name: entry.Name(), sql: string(body)})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].version < found[j].version })
	return found, nil
}

func appliedVersions(database *gorm.DB) (map[string]bool, error) {
	versions := make([]string, 0)
	if err := database.Raw(`SELECT version FROM schema_migrations`).Scan(&versions).Error; err != nil {
		return nil, fmt.Errorf("load applied migration versions: %w", err)
	}

	applied := make(map[string]bool, len(versions))
	for _, version := range versions {
		applied[version] = true
	}
	return applied, nil
}

func runMigration(database *gorm.DB, migration schemaMigration) error {
	return database.Transaction(func(tx *gorm.DB) error {
		applied := 0
		for _, statement := range strings.Split(migration.sql, ";") {
			statement = strings.TrimSpace(statement)
			if statement == "" {
				continue
			}
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("migration %s: %w", migration.name, err)
			}
			applied++
		}
		if applied == 0 {
			return fmt.Errorf("migration %s has no statements", migration.name)
		}

		return tx.Exec(
			`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`,
			strconv.Itoa(migration.version),
			migration.name,
		).Error
	})
}
