package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mariaiw8/apontamentos/internal/db"
	"github.com/mariaiw8/apontamentos/internal/domain"
)

const catalogColumns = `id, kind, name, sector, cost_per_kg, status, created_at`

// SQLiteCatalogRepo implements CatalogRepo using a SQLite database.
type SQLiteCatalogRepo struct {
	db db.DBTX
}

func NewSQLiteCatalogRepo(db db.DBTX) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{db: db}
}

func (r *SQLiteCatalogRepo) Create(ctx context.Context, c *domain.CatalogEntry) error {
	query := `INSERT INTO catalog_entries (` + catalogColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		string(c.Kind),
		c.Name,
		string(c.Sector),
		nullableFloatToValue(c.CostPerKg),
		string(c.Status),
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting catalog entry: %w", err)
	}
	return nil
}

func (r *SQLiteCatalogRepo) GetByID(ctx context.Context, id string) (*domain.CatalogEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+catalogColumns+` FROM catalog_entries WHERE id = ?`, id)
	c, err := scanCatalogEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("catalog entry %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

// List returns the entries of one kind ordered by name. An empty kind lists
// every kind.
func (r *SQLiteCatalogRepo) List(ctx context.Context, kind domain.CatalogKind, includeInactive bool) ([]*domain.CatalogEntry, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalog_entries WHERE 1=1`
	var args []any
	if kind != "" {
		query += ` AND kind = ?`
		args = append(args, string(kind))
	}
	if !includeInactive {
		query += ` AND status = 'ativo'`
	}
	query += ` ORDER BY kind, name COLLATE NOCASE, sector`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing catalog entries: %w", err)
	}
	defer rows.Close()

	var out []*domain.CatalogEntry
	for rows.Next() {
		c, err := scanCatalogEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog entries: %w", err)
	}
	return out, nil
}

// Update rewrites the name, sector and cost of an entry. Its kind is fixed.
func (r *SQLiteCatalogRepo) Update(ctx context.Context, c *domain.CatalogEntry) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE catalog_entries SET name = ?, sector = ?, cost_per_kg = ? WHERE id = ?`,
		c.Name, string(c.Sector), nullableFloatToValue(c.CostPerKg), c.ID)
	if err != nil {
		return fmt.Errorf("updating catalog entry: %w", err)
	}
	return requireAffected(res, "catalog entry "+c.ID)
}

func (r *SQLiteCatalogRepo) SetStatus(ctx context.Context, id string, status domain.RecordStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE catalog_entries SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("setting catalog status: %w", err)
	}
	return requireAffected(res, "catalog entry "+id)
}

func (r *SQLiteCatalogRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting catalog entries: %w", err)
	}
	return n, nil
}

func scanCatalogEntry(s rowScanner) (*domain.CatalogEntry, error) {
	var c domain.CatalogEntry
	var kind, sector, status, createdAt string
	var cost sql.NullFloat64
	if err := s.Scan(&c.ID, &kind, &c.Name, &sector, &cost, &status, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning catalog entry: %w", err)
	}
	c.Kind = domain.CatalogKind(kind)
	c.Sector = domain.Sector(sector)
	c.Status = domain.RecordStatus(status)
	c.CostPerKg = floatFromNull(cost)
	var err error
	if c.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &c, nil
}
