// Package migrations evolves the history database schema.
//
// Each embedded file sql/NN_name.sql is one step. The number of the last
// applied step is kept in SQLite's user_version header, so a database
// opened by an older binary than the one that wrote it is detected instead
// of silently misread.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"path"
	"slices"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Step is one schema change.
type Step struct {
	Version int
	Name    string
	SQL     string
}

// Steps returns the embedded steps ordered by version. Versions must be
// unique and contiguous from 1.
func Steps() ([]Step, error) {
	entries, err := sqlFiles.ReadDir("sql")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	steps := make([]Step, 0, len(entries))
	for _, entry := range entries {
		prefix, name, ok := strings.Cut(strings.TrimSuffix(entry.Name(), ".sql"), "_")
		version, err := strconv.Atoi(prefix)
		if !ok || err != nil {
			return nil, fmt.Errorf("migration %s: want NN_name.sql", entry.Name())
		}

		content, err := sqlFiles.ReadFile(path.Join("sql", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		steps = append(steps, Step{Version: version, Name: name, SQL: string(content)})
	}

	slices.SortFunc(steps, func(a, b Step) int { return a.Version - b.Version })
	for i, s := range steps {
		if s.Version != i+1 {
			return nil, fmt.Errorf("migration %02d_%s: expected version %d", s.Version, s.Name, i+1)
		}
	}
	return steps, nil
}

// Latest returns the schema version this binary writes.
func Latest() int {
	steps, err := Steps()
	if err != nil || len(steps) == 0 {
		return 0
	}
	return steps[len(steps)-1].Version
}

// Version returns the schema version recorded in db.
func Version(db *sql.DB) (int, error) {
	var v int
	if err := db.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}

// Run applies the steps db has not seen yet. A database newer than this
// binary is refused.
func Run(db *sql.DB) error {
	steps, err := Steps()
	if err != nil {
		return err
	}

	current, err := Version(db)
	if err != nil {
		return err
	}
	if latest := len(steps); current > latest {
		return fmt.Errorf("history schema version %d is newer than supported version %d", current, latest)
	}

	for _, s := range steps[current:] {
		if err := apply(db, s); err != nil {
			return fmt.Errorf("migration %02d_%s: %w", s.Version, s.Name, err)
		}
	}
	return nil
}

// apply runs one step and bumps user_version in the same transaction.
func apply(db *sql.DB, s Step) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(s.SQL); err != nil {
		return err
	}
	// PRAGMA takes no bind parameters; Version is an int from Steps.
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", s.Version)); err != nil {
		return err
	}
	return tx.Commit()
}
