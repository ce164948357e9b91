package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeLayout is fixed width so started_at sorts as text in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run is one invocation of the tool over one or more documents.
type Run struct {
	ID         string
	StartedAt  time.Time
	Mode       string
	Domain     string
	DetectOnly bool
	Documents  int
	Failures   int
}

// Document is the per-file outcome inside a run.
type Document struct {
	Source      string
	Output      string
	Markers     int
	Occurrences int
	Recommended string
	InputBytes  int64
	OutputBytes int64
	Err         string
}

// History records runs in a local sqlite database.
type History struct {
	db *sql.DB
}

func Open(path string) (*History, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	return &History{db: db}, nil
}

func (h *History) Close() error {
	return h.db.Close()
}

// RecordRun stores run and its documents in one transaction and returns the
// run id. An empty run.ID is filled with a fresh UUID; Documents and Failures
// are derived from docs.
func (h *History) RecordRun(ctx context.Context, run Run, docs []Document) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	run.Documents = len(docs)
	run.Failures = 0
	for _, d := range docs {
		if d.Err != "" {
			run.Failures++
		}
	}

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs(id, started_at, mode, domain, detect_only, documents, failures) VALUES(?,?,?,?,?,?,?)`,
		run.ID,
		run.StartedAt.UTC().Format(timeLayout),
		run.Mode,
		run.Domain,
		run.DetectOnly,
		run.Documents,
		run.Failures,
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, d := range docs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO documents(run_id, source, output, markers, occurrences, recommended, input_bytes, output_bytes, error) VALUES(?,?,?,?,?,?,?,?,?)`,
			run.ID,
			d.Source,
			d.Output,
			d.Markers,
			d.Occurrences,
			d.Recommended,
			d.InputBytes,
			d.OutputBytes,
			d.Err,
		); err != nil {
			return "", fmt.Errorf("insert document: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit tx: %w", err)
	}
	return run.ID, nil
}

// RecentRuns returns up to limit runs, newest first.
func (h *History) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, started_at, mode, domain, detect_only, documents, failures FROM runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r       Run
			started string
		)
		if err := rows.Scan(&r.ID, &started, &r.Mode, &r.Domain, &r.DetectOnly, &r.Documents, &r.Failures); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartedAt, err = time.Parse(timeLayout, started)
		if err != nil {
			return nil, fmt.Errorf("parse started_at %q: %w", started, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

func (h *History) CountRows(ctx context.Context, table string) (int, error) {
	switch table {
	case "runs", "documents":
	default:
		return 0, fmt.Errorf("unknown table %q", table)
	}
	row := h.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
