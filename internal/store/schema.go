package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    started_at TEXT NOT NULL,
    mode TEXT,
    domain TEXT,
    detect_only INTEGER,
    documents INTEGER,
    failures INTEGER
);

CREATE TABLE IF NOT EXISTS documents (
    id INTEGER PRIMARY KEY,
    run_id TEXT NOT NULL REFERENCES runs(id),
    source TEXT,
    output TEXT,
    markers INTEGER,
    occurrences INTEGER,
    recommended TEXT,
    input_bytes INTEGER,
    output_bytes INTEGER,
    error TEXT
);

CREATE INDEX IF NOT EXISTS documents_run_id ON documents(run_id);
`

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
