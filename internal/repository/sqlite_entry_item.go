package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mariaiw8/apontamentos/internal/db"
	"github.com/mariaiw8/apontamentos/internal/domain"
)

const entryItemColumns = `id, entry_id, sku, description, order_ref, quantity, rationed_hours, rationed_kg, status`

// SQLiteEntryItemRepo implements EntryItemRepo using a SQLite database.
type SQLiteEntryItemRepo struct {
	db db.DBTX
}

func NewSQLiteEntryItemRepo(db db.DBTX) *SQLiteEntryItemRepo {
	return &SQLiteEntryItemRepo{db: db}
}

// CreateAll inserts the items in order. Items without an ID get one, and the
// IDs are written back into the slice.
func (r *SQLiteEntryItemRepo) CreateAll(ctx context.Context, entryID string, items []domain.EntryItem) error {
	query := `INSERT INTO entry_items (id, entry_id, position, sku, description, order_ref, quantity, rationed_hours, rationed_kg, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i := range items {
		it := &items[i]
		if it.ID == "" {
			it.ID = uuid.New().String()
		}
		it.EntryID = entryID
		if it.Status == "" {
			it.Status = domain.StatusActive
		}
		_, err := r.db.ExecContext(ctx, query,
			it.ID, entryID, i, it.SKU, it.Description, it.OrderRef, it.Quantity,
			nullableFloatToValue(it.RationedHours),
			nullableFloatToValue(it.RationedKg),
			string(it.Status),
		)
		if err != nil {
			return fmt.Errorf("inserting entry item %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteEntryItemRepo) ListByEntry(ctx context.Context, entryID string) ([]domain.EntryItem, error) {
	return r.query(ctx, `SELECT `+entryItemColumns+` FROM entry_items WHERE entry_id = ? ORDER BY position`, entryID)
}

// ListByEntries loads the items of several entries in one query, keyed by entry ID.
func (r *SQLiteEntryItemRepo) ListByEntries(ctx context.Context, entryIDs []string) (map[string][]domain.EntryItem, error) {
	out := make(map[string][]domain.EntryItem, len(entryIDs))
	if len(entryIDs) == 0 {
		return out, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(entryIDs)), ",")
	args := make([]any, len(entryIDs))
	for i, id := range entryIDs {
		args[i] = id
	}
	items, err := r.query(ctx, `SELECT `+entryItemColumns+` FROM entry_items
		WHERE entry_id IN (`+placeholders+`) ORDER BY entry_id, position`, args...)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		out[it.EntryID] = append(out[it.EntryID], it)
	}
	return out, nil
}

func (r *SQLiteEntryItemRepo) query(ctx context.Context, query string, args ...any) ([]domain.EntryItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entry items: %w", err)
	}
	defer rows.Close()

	var items []domain.EntryItem
	for rows.Next() {
		it, err := scanEntryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entry items: %w", err)
	}
	return items, nil
}

// UpdateRationing writes the rationed hours and kg of each item.
func (r *SQLiteEntryItemRepo) UpdateRationing(ctx context.Context, items []domain.EntryItem) error {
	for _, it := range items {
		res, err := r.db.ExecContext(ctx,
			`UPDATE entry_items SET rationed_hours = ?, rationed_kg = ? WHERE id = ?`,
			nullableFloatToValue(it.RationedHours), nullableFloatToValue(it.RationedKg), it.ID)
		if err != nil {
			return fmt.Errorf("updating entry item rationing: %w", err)
		}
		if err := requireAffected(res, "entry item "+it.ID); err != nil {
			return err
		}
	}
	return nil
}

func scanEntryItem(s rowScanner) (domain.EntryItem, error) {
	var it domain.EntryItem
	var status string
	var hours, kg sql.NullFloat64
	if err := s.Scan(&it.ID, &it.EntryID, &it.SKU, &it.Description, &it.OrderRef,
		&it.Quantity, &hours, &kg, &status); err != nil {
		return it, fmt.Errorf("scanning entry item: %w", err)
	}
	it.RationedHours = floatFromNull(hours)
	it.RationedKg = floatFromNull(kg)
	it.Status = domain.RecordStatus(status)
	return it, nil
}
