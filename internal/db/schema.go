package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS items (
    id               INTEGER PRIMARY KEY,
    type             TEXT NOT NULL CHECK (type IN ('lost', 'found')),
    title            TEXT NOT NULL,
    description      TEXT NOT NULL,
    category         TEXT NOT NULL,
    location         TEXT NOT NULL DEFAULT '',
    date             TEXT NOT NULL,
    storage_location TEXT NOT NULL DEFAULT '',
    contact_name     TEXT NOT NULL,
    contact_email    TEXT NOT NULL,
    contact_phone    TEXT NOT NULL DEFAULT '',
    image            TEXT NOT NULL DEFAULT '',
    status           TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'pending', 'resolved')),
    created_at       DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_status_created
    ON items(status, created_at DESC, id DESC);

CREATE INDEX IF NOT EXISTS idx_items_type_category
    ON items(type, category);

CREATE TABLE IF NOT EXISTS contact_requests (
    id              INTEGER PRIMARY KEY,
    item_id         INTEGER NOT NULL REFERENCES items(id) ON DELETE CASCADE,
    kind            TEXT NOT NULL CHECK (kind IN ('contact', 'claim')),
    name            TEXT NOT NULL,
    email           TEXT NOT NULL,
    phone           TEXT NOT NULL DEFAULT '',
    message         TEXT NOT NULL DEFAULT '',
    student_id      TEXT NOT NULL DEFAULT '',
    proof           TEXT NOT NULL DEFAULT '',
    collection_time TEXT NOT NULL DEFAULT '',
    created_at      DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_contact_requests_item
    ON contact_requests(item_id);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
