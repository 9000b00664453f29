package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// AliasRepository reads and maintains the bond alias registry.
type AliasRepository struct {
	db  *DB
	log *logrus.Logger
}

// NewAliasRepository creates an alias repository. logger may be nil.
func NewAliasRepository(db *DB, logger *logrus.Logger) *AliasRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &AliasRepository{db: db, log: logger}
}

// Resolve returns the ISIN mapped to alias and whether a mapping exists.
// Database failures are logged and treated as no mapping, matching the
// pipeline's rule that unknown aliases pass through unchanged.
func (r *AliasRepository) Resolve(alias string) (string, bool) {
	var isin string
	err := r.db.QueryRow(`SELECT isin FROM bond_aliases WHERE alias = ?`, alias).Scan(&isin)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			r.log.WithError(err).WithField("alias", alias).Error("alias lookup failed")
		}
		return "", false
	}
	return isin, true
}

// Upsert inserts or replaces one alias mapping.
func (r *AliasRepository) Upsert(alias, isin string) error {
	_, err := r.db.Exec(`
		INSERT INTO bond_aliases (alias, isin) VALUES (?, ?)
		ON CONFLICT(alias) DO UPDATE SET isin = excluded.isin, updated_at = CURRENT_TIMESTAMP`,
		alias, isin)
	if err != nil {
		return fmt.Errorf("upsert alias %q: %w", alias, err)
	}
	return nil
}

// List returns every alias mapping ordered by alias.
func (r *AliasRepository) List() (map[string]string, error) {
	rows, err := r.db.Query(`SELECT alias, isin FROM bond_aliases ORDER BY alias`)
	if err != nil {
		return nil, fmt.Errorf("list aliases: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var alias, isin string
		if err := rows.Scan(&alias, &isin); err != nil {
			return nil, fmt.Errorf("scan alias: %w", err)
		}
		out[alias] = isin
	}
	return out, rows.Err()
}
