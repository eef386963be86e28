package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// whole list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS entries (
		id           TEXT PRIMARY KEY,
		sector       TEXT NOT NULL
		             CHECK(sector IN ('projeto','corte','solda','pintura')),
		operator     TEXT NOT NULL DEFAULT '',
		equipment    TEXT NOT NULL DEFAULT '',
		oven         TEXT NOT NULL DEFAULT '',
		color        TEXT NOT NULL DEFAULT '',
		paint_kg     REAL NOT NULL DEFAULT 0,
		project_type TEXT NOT NULL DEFAULT '',
		sku          TEXT NOT NULL DEFAULT '',
		order_ref    TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		started_at   TEXT NOT NULL,
		ended_at     TEXT,
		extra_hours  REAL NOT NULL DEFAULT 0,
		total_hours  REAL,
		status       TEXT NOT NULL DEFAULT 'ativo'
		             CHECK(status IN ('ativo','inativo')),
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entries_sector ON entries(sector)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_open ON entries(ended_at) WHERE ended_at IS NULL`,

	`CREATE TABLE IF NOT EXISTS entry_items (
		id             TEXT PRIMARY KEY,
		entry_id       TEXT NOT NULL REFERENCES entries(id) ON DELETE CASCADE,
		position       INTEGER NOT NULL,
		sku            TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		order_ref      TEXT NOT NULL DEFAULT '',
		quantity       REAL NOT NULL DEFAULT 0 CHECK(quantity >= 0),
		rationed_hours REAL,
		rationed_kg    REAL,
		status         TEXT NOT NULL DEFAULT 'ativo'
		               CHECK(status IN ('ativo','inativo'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entry_items_entry ON entry_items(entry_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_entry_items_sku ON entry_items(sku)`,

	`CREATE TABLE IF NOT EXISTS catalog_entries (
		id          TEXT PRIMARY KEY,
		kind        TEXT NOT NULL
		            CHECK(kind IN ('operadores','equipamentos','cores','fornos','tipos')),
		name        TEXT NOT NULL,
		sector      TEXT NOT NULL DEFAULT '',
		cost_per_kg REAL,
		status      TEXT NOT NULL DEFAULT 'ativo'
		            CHECK(status IN ('ativo','inativo')),
		created_at  TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_catalog_kind_name_sector ON catalog_entries(kind, name, sector)`,
}
