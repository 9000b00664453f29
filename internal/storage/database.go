// Package storage provides the operator-maintained reference database:
// the bond alias registry mapping non-ISIN identifiers to real ISINs.
package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the reference database connection.
type DB struct {
	*sql.DB
}

// New opens the reference database at path, creating it if absent.
func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference database: %w", err)
	}
	return &DB{db}, nil
}

// Migrate creates the reference tables.
func (db *DB) Migrate() error {
	if _, err := db.Exec(createBondAliasesTable); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// Aliases are reference data, not code: operators add mappings as the
// trustee introduces identifiers that are not ISINs. No defaults are
// seeded; an unmapped alias passes through the pipeline unchanged.
const createBondAliasesTable = `
CREATE TABLE IF NOT EXISTS bond_aliases (
	alias TEXT PRIMARY KEY,
	isin TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`
