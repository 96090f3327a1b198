package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/erazemk/lostfound/internal/model"
	"github.com/erazemk/lostfound/internal/query"
)

func TestFindItemsQueryShape(t *testing.T) {
	database, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer database.Close()

	l := query.Listing{Category: "Bags", Search: "pack", Page: 2, Limit: 9}

	mock.ExpectQuery(regexp.QuoteMeta(`FROM items WHERE (status = ? AND category = ? AND (instr(lower(title), lower(?)) > 0 OR instr(lower(description), lower(?)) > 0)) ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`)).
		WithArgs(model.ItemStatusActive, "Bags", "pack", "pack", 9, 9).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "type", "title", "description", "category", "location", "date", "storage_location",
			"contact_name", "contact_email", "contact_phone", "image", "status", "created_at",
		}).AddRow(7, "found", "Backpack", "grey", "Bags", "Gym", "2024-03-01", "", "Ana", "ana@uni.si", "", "", "active", baseTime))

	items, err := FindItems(context.Background(), database, l.Pred(), l.Offset(), l.Limit)
	if err != nil {
		t.Fatalf("FindItems: %v", err)
	}
	if len(items) != 1 || items[0].ID != 7 {
		t.Errorf("unexpected items: %+v", items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCountItemsWrapsDriverError(t *testing.T) {
	database, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer database.Close()

	cause := errors.New("database is locked")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM items WHERE status = ?`)).
		WithArgs(model.ItemStatusActive).
		WillReturnError(cause)

	_, err = CountItems(context.Background(), database, query.Listing{}.Pred())
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped driver error, got %v", err)
	}
}

func TestUpdateItemStatusNoRows(t *testing.T) {
	database, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer database.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE items SET status = ? WHERE id = ?`)).
		WithArgs(model.ItemStatusResolved, 42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	item, err := UpdateItemStatus(context.Background(), database, 42, model.ItemStatusResolved)
	if err != nil {
		t.Fatalf("UpdateItemStatus: %v", err)
	}
	if item != nil {
		t.Errorf("expected nil item, got %+v", item)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
