package db

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpenAndEnsureSchemaIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lostfound.sqlite3")

	database, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer database.Close()

	for i := 0; i < 2; i++ {
		if err := EnsureSchema(database); err != nil {
			t.Fatalf("EnsureSchema run %d: %v", i+1, err)
		}
	}

	var count int
	err = database.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('items', 'users', 'contact_requests', 'settings', 'revoked_tokens')`,
	).Scan(&count)
	if err != nil {
		t.Fatalf("querying tables: %v", err)
	}
	if count != 5 {
		t.Errorf("expected 5 tables, got %d", count)
	}
}

func TestItemStatusConstraint(t *testing.T) {
	database := NewTestDB(t)

	_, err := database.Exec(
		`INSERT INTO items (type, title, description, category, date, contact_name, contact_email, status, created_at)
		 VALUES ('lost', 't', 'd', 'c', '2024-01-01', 'n', 'e', 'archived', CURRENT_TIMESTAMP)`,
	)
	if err == nil {
		t.Error("expected CHECK constraint to reject unknown status")
	}
}

func TestPragmasApplyToEveryConnection(t *testing.T) {
	database, err := Open(filepath.Join(t.TempDir(), "pragmas.sqlite3"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer database.Close()
	database.SetMaxOpenConns(3)

	// Hold connections open so each query below gets a fresh one.
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		conn, err := database.Conn(ctx)
		if err != nil {
			t.Fatalf("Conn: %v", err)
		}
		defer conn.Close()

		var fk int
		if err := conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk); err != nil {
			t.Fatalf("reading foreign_keys: %v", err)
		}
		if fk != 1 {
			t.Errorf("connection %d: expected foreign_keys=1, got %d", i, fk)
		}
	}
}
