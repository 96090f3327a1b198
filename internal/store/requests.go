package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/erazemk/lostfound/internal/model"
)

// CreateContactRequest stores a contact or claim request for an item.
// CreatedAt defaults to now.
func CreateContactRequest(ctx context.Context, db *sql.DB, req *model.ContactRequest) (*model.ContactRequest, error) {
	createdAt := req.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO contact_requests (item_id, kind, name, email, phone, message, student_id, proof, collection_time, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ItemID, req.Kind, req.Name, req.Email, req.Phone, req.Message, req.StudentID, req.Proof, req.CollectionTime,
		createdAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating contact request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting contact request id: %w", err)
	}

	out := *req
	out.ID = id
	out.CreatedAt = createdAt.UTC()
	return &out, nil
}

// ListContactRequests returns all requests left on an item, newest first.
func ListContactRequests(ctx context.Context, db *sql.DB, itemID int64) ([]model.ContactRequest, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, item_id, kind, name, email, phone, message, student_id, proof, collection_time, created_at
		 FROM contact_requests WHERE item_id = ?
		 ORDER BY created_at DESC, id DESC`, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing contact requests: %w", err)
	}
	defer rows.Close()

	var reqs []model.ContactRequest
	for rows.Next() {
		var r model.ContactRequest
		if err := rows.Scan(&r.ID, &r.ItemID, &r.Kind, &r.Name, &r.Email, &r.Phone, &r.Message,
			&r.StudentID, &r.Proof, &r.CollectionTime, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning contact request: %w", err)
		}
		reqs = append(reqs, r)
	}
	return reqs, rows.Err()
}
