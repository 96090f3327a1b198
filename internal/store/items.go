package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/erazemk/lostfound/internal/model"
	"github.com/erazemk/lostfound/internal/query"
)

const itemColumns = `id, type, title, description, category, location, date, storage_location,
	contact_name, contact_email, contact_phone, image, status, created_at`

// itemOrder sorts newest first; id breaks ties between equal timestamps.
const itemOrder = `ORDER BY created_at DESC, id DESC`

// CreateItem inserts a new item and returns it with its assigned ID.
// CreatedAt defaults to now and Status to active when unset.
func CreateItem(ctx context.Context, db *sql.DB, item *model.Item) (*model.Item, error) {
	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	status := item.Status
	if status == "" {
		status = model.ItemStatusActive
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO items (type, title, description, category, location, date, storage_location,
		                    contact_name, contact_email, contact_phone, image, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.Type, item.Title, item.Description, item.Category, item.Location, item.Date, item.StorageLocation,
		item.ContactInfo.Name, item.ContactInfo.Email, item.ContactInfo.Phone, item.Image, status, createdAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, or nil if it does not exist.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	row := db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// FindItems returns items matching where, newest first. A limit of zero or
// less returns every match from offset on.
func FindItems(ctx context.Context, db *sql.DB, where query.Pred, offset, limit int) ([]model.Item, error) {
	cond, args := query.SQL(where)
	q := `SELECT ` + itemColumns + ` FROM items WHERE ` + cond + ` ` + itemOrder

	if offset < 0 {
		offset = 0
	}
	if limit > 0 {
		q += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	} else if offset > 0 {
		q += ` LIMIT -1 OFFSET ?`
		args = append(args, offset)
	}

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("finding items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// CountItems returns the number of items matching where.
func CountItems(ctx context.Context, db *sql.DB, where query.Pred) (int, error) {
	cond, args := query.SQL(where)

	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items WHERE `+cond, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting items: %w", err)
	}
	return n, nil
}

// UpdateItemStatus sets an item's status and returns the updated item, or
// nil if no item has that ID.
func UpdateItemStatus(ctx context.Context, db *sql.DB, id int64, status string) (*model.Item, error) {
	result, err := db.ExecContext(ctx, `UPDATE items SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return nil, fmt.Errorf("updating item status: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking updated rows: %w", err)
	}
	if n == 0 {
		return nil, nil
	}

	return GetItem(ctx, db, id)
}

// DeleteItem permanently removes an item together with its contact
// requests. It reports whether the item existed.
func DeleteItem(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM contact_requests WHERE item_id = ?`, id); err != nil {
		return false, fmt.Errorf("deleting item requests: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting item: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking deleted rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing item deletion: %w", err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*model.Item, error) {
	item := &model.Item{}
	err := row.Scan(
		&item.ID, &item.Type, &item.Title, &item.Description, &item.Category, &item.Location,
		&item.Date, &item.StorageLocation, &item.ContactInfo.Name, &item.ContactInfo.Email,
		&item.ContactInfo.Phone, &item.Image, &item.Status, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}
