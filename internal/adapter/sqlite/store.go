package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/couchcryptid/cloud-top-etl/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS estimates (
	id           TEXT PRIMARY KEY,
	pixel_id     TEXT NOT NULL,
	tier         TEXT NOT NULL,
	payload      BLOB NOT NULL,
	processed_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_estimates_pixel ON estimates (pixel_id);
`

// Store archives published estimates in a local SQLite database.
// It implements pipeline.BatchLoader and is intended as the archive side of a
// TeeLoader, never as the primary sink.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewStore opens (or creates) the archive database at path and ensures the
// schema exists.
func NewStore(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping archive %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init archive schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// LoadBatch inserts a batch of estimates in one transaction. Estimate IDs are
// deterministic, so INSERT OR IGNORE makes replays idempotent.
func (s *Store) LoadBatch(ctx context.Context, events []domain.OutputEvent) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO estimates (id, pixel_id, tier, payload, processed_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare archive insert: %w", err)
	}
	defer stmt.Close()

	for _, event := range events {
		var est domain.Estimate
		if err := json.Unmarshal(event.Value, &est); err != nil {
			s.logger.Warn("archive skipping unparsable event", "error", err, "key", string(event.Key))
			continue
		}
		if _, err := stmt.ExecContext(ctx, est.ID, est.PixelID, est.Tier, event.Value,
			est.ProcessedAt.UTC().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("archive estimate %s: %w", est.ID, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of archived estimates.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM estimates`).Scan(&n)
	return n, err
}

func (s *Store) Close() error {
	return s.db.Close()
}
