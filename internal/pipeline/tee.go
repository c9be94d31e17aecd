package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/cloud-top-etl/internal/domain"
)

// TeeLoader writes every batch to a primary loader and, best effort, to an
// archive loader. Archive failures are logged but never fail the batch: the
// sink topic is the source of truth, the archive is a convenience copy.
type TeeLoader struct {
	primary BatchLoader
	archive BatchLoader
	logger  *slog.Logger
}

// NewTeeLoader wraps primary with a best-effort archive loader.
func NewTeeLoader(primary, archive BatchLoader, logger *slog.Logger) *TeeLoader {
	return &TeeLoader{
		primary: primary,
		archive: archive,
		logger:  logger,
	}
}

func (t *TeeLoader) LoadBatch(ctx context.Context, events []domain.OutputEvent) error {
	if err := t.primary.LoadBatch(ctx, events); err != nil {
		return err
	}
	if err := t.archive.LoadBatch(ctx, events); err != nil {
		t.logger.Warn("archive write failed", "error", err, "batch_size", len(events))
	}
	return nil
}
