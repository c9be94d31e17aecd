package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/cloud-top-etl/internal/domain"
	"github.com/couchcryptid/cloud-top-etl/internal/observability"
)

// PixelTransformer implements Transformer by solving each pixel observation
// against a single moist adiabat model resolved at startup.
type PixelTransformer struct {
	model   *domain.AdiabatModel
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewTransformer creates a PixelTransformer for the given adiabat model.
func NewTransformer(model *domain.AdiabatModel, metrics *observability.Metrics, logger *slog.Logger) *PixelTransformer {
	return &PixelTransformer{
		model:   model,
		metrics: metrics,
		logger:  logger,
	}
}

func (t *PixelTransformer) Transform(_ context.Context, raw domain.RawObservation) (domain.OutputEvent, error) {
	obs, err := domain.ParseRawObservation(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	ct, source := domain.SolveObservation(t.model, obs)
	if !ct.Valid {
		t.metrics.InvalidEstimates.Inc()
		t.logger.Warn("estimate invalid, publishing with nil fields",
			"pixel_id", obs.PixelID, "source", source, "bt_c", obs.BrightnessTemp)
	}
	if !ct.InEnvelope {
		t.metrics.OutOfEnvelopePixels.Inc()
	}

	est := domain.NewEstimate(obs, t.model.Name(), source, ct)

	value, err := json.Marshal(est)
	if err != nil {
		return domain.OutputEvent{}, fmt.Errorf("marshal estimate %s: %w", est.ID, err)
	}

	return domain.OutputEvent{
		Key:   []byte(est.ID),
		Value: value,
		Headers: map[string]string{
			"tier":         est.Tier,
			"processed_at": est.ProcessedAt.UTC().Format(time.RFC3339),
		},
	}, nil
}
