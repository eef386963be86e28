package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mariaiw8/apontamentos/internal/db"
	"github.com/mariaiw8/apontamentos/internal/domain"
)

// entryColumns is the canonical SELECT column list for entries.
const entryColumns = `id, sector, operator, equipment, oven, color, paint_kg,
		project_type, sku, order_ref, description,
		started_at, ended_at, extra_hours, total_hours, status, created_at, updated_at`

// SQLiteEntryRepo implements EntryRepo using a SQLite database.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo over a database or transaction.
func NewSQLiteEntryRepo(db db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: db}
}

func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.Entry) error {
	query := `INSERT INTO entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		string(e.Sector),
		e.Operator,
		e.Equipment,
		e.Oven,
		e.Color,
		e.PaintKg,
		e.ProjectType,
		e.SKU,
		e.OrderRef,
		e.Description,
		e.StartedAt.Format(wallClockLayout),
		nullableTimeToString(e.EndedAt, wallClockLayout),
		e.ExtraHours,
		nullableFloatToValue(e.TotalHours),
		string(e.Status),
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}
	return nil
}

func (r *SQLiteEntryRepo) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	e, err := scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("entry %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLiteEntryRepo) List(ctx context.Context, f EntryFilter) ([]*domain.Entry, error) {
	var where []string
	var args []any
	if f.Sector != "" {
		where = append(where, "sector = ?")
		args = append(args, string(f.Sector))
	}
	if f.InProgressOnly {
		where = append(where, "ended_at IS NULL")
	}
	if f.FinalizedOnly {
		where = append(where, "ended_at IS NOT NULL")
	}
	if !f.IncludeInactive {
		where = append(where, "status = 'ativo'")
	}

	query := `SELECT ` + entryColumns + ` FROM entries`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY started_at DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteEntryRepo) Update(ctx context.Context, e *domain.Entry) error {
	query := `UPDATE entries SET operator = ?, equipment = ?, oven = ?, color = ?, paint_kg = ?,
		project_type = ?, sku = ?, order_ref = ?, description = ?,
		started_at = ?, ended_at = ?, extra_hours = ?, total_hours = ?, status = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Operator,
		e.Equipment,
		e.Oven,
		e.Color,
		e.PaintKg,
		e.ProjectType,
		e.SKU,
		e.OrderRef,
		e.Description,
		e.StartedAt.Format(wallClockLayout),
		nullableTimeToString(e.EndedAt, wallClockLayout),
		e.ExtraHours,
		nullableFloatToValue(e.TotalHours),
		string(e.Status),
		e.UpdatedAt.Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}
	return requireAffected(res, "entry "+e.ID)
}

func (r *SQLiteEntryRepo) SetStatus(ctx context.Context, id string, status domain.RecordStatus) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := r.db.ExecContext(ctx, `UPDATE entries SET status = ?, updated_at = ? WHERE id = ?`, string(status), now, id)
	if err != nil {
		return fmt.Errorf("setting entry status: %w", err)
	}
	if err := requireAffected(res, "entry "+id); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `UPDATE entry_items SET status = ? WHERE entry_id = ?`, string(status), id); err != nil {
		return fmt.Errorf("setting entry item status: %w", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(s rowScanner) (*domain.Entry, error) {
	var e domain.Entry
	var sector, status, startedAt, createdAt, updatedAt string
	var endedAt sql.NullString
	var total sql.NullFloat64

	err := s.Scan(
		&e.ID, &sector, &e.Operator, &e.Equipment, &e.Oven, &e.Color, &e.PaintKg,
		&e.ProjectType, &e.SKU, &e.OrderRef, &e.Description,
		&startedAt, &endedAt, &e.ExtraHours, &total, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning entry: %w", err)
	}

	e.Sector = domain.Sector(sector)
	e.Status = domain.RecordStatus(status)
	e.TotalHours = floatFromNull(total)
	e.EndedAt = parseNullableTime(endedAt, wallClockLayout)

	var parseErr error
	if e.StartedAt, parseErr = parseWallClock(startedAt); parseErr != nil {
		return nil, fmt.Errorf("parsing started_at: %w", parseErr)
	}
	if e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &e, nil
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
