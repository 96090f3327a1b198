package lostfound

import (
	"context"
	"database/sql"
	"io"

	"github.com/erazemk/lostfound/internal/model"
	"github.com/erazemk/lostfound/internal/query"
	"github.com/erazemk/lostfound/internal/store"
)

// Store persists items. Lookups of missing IDs return a nil item and no error.
type Store interface {
	Find(ctx context.Context, where query.Pred, offset, limit int) ([]model.Item, error)
	Count(ctx context.Context, where query.Pred) (int, error)
	FindByID(ctx context.Context, id int64) (*model.Item, error)
	Insert(ctx context.Context, item *model.Item) (*model.Item, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Item, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// RequestStore persists contact and claim requests.
type RequestStore interface {
	InsertRequest(ctx context.Context, req *model.ContactRequest) (*model.ContactRequest, error)
	ListRequests(ctx context.Context, itemID int64) ([]model.ContactRequest, error)
}

// Images stores uploaded photos and returns their reference paths.
type Images interface {
	Save(r io.Reader) (string, error)
	Remove(ref string) error
}

// SQLStore implements Store and RequestStore on the SQLite database.
type SQLStore struct {
	DB *sql.DB
}

// NewSQLStore returns a SQLStore backed by db.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{DB: db}
}

func (s *SQLStore) Find(ctx context.Context, where query.Pred, offset, limit int) ([]model.Item, error) {
	return store.FindItems(ctx, s.DB, where, offset, limit)
}

func (s *SQLStore) Count(ctx context.Context, where query.Pred) (int, error) {
	return store.CountItems(ctx, s.DB, where)
}

func (s *SQLStore) FindByID(ctx context.Context, id int64) (*model.Item, error) {
	return store.GetItem(ctx, s.DB, id)
}

func (s *SQLStore) Insert(ctx context.Context, item *model.Item) (*model.Item, error) {
	return store.CreateItem(ctx, s.DB, item)
}

func (s *SQLStore) UpdateStatus(ctx context.Context, id int64, status string) (*model.Item, error) {
	return store.UpdateItemStatus(ctx, s.DB, id, status)
}

func (s *SQLStore) Delete(ctx context.Context, id int64) (bool, error) {
	return store.DeleteItem(ctx, s.DB, id)
}

func (s *SQLStore) InsertRequest(ctx context.Context, req *model.ContactRequest) (*model.ContactRequest, error) {
	return store.CreateContactRequest(ctx, s.DB, req)
}

func (s *SQLStore) ListRequests(ctx context.Context, itemID int64) ([]model.ContactRequest, error) {
	return store.ListContactRequests(ctx, s.DB, itemID)
}
