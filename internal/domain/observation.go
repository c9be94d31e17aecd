package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Parcel is the thermodynamic starting point of a hypothetical convective
// updraft. Dewpoint not exceeding Temp is a physical assumption of the
// caller and is not validated here, matching the upstream data contract.
type Parcel struct {
	Temp     float64 `json:"temp_c"`
	Dewpoint float64 `json:"dewpoint_c"`
	Pressure float64 `json:"pressure_hpa"`
}

// RawObservation represents an unprocessed message from the source topic.
type RawObservation struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Geo is a WGS-84 pixel center.
type Geo struct {
	Lat float64 `json:"lat,omitempty"`
	Lon float64 `json:"lon,omitempty"`
}

// PixelObservation is a single satellite pixel paired with its representative
// parcel state, as published by the ingest service. Either the full parcel
// or a precomputed theta-e maximum [K] must be present; BrightnessTemp is the
// raw, uncorrected 10.8 µm value [°C].
type PixelObservation struct {
	PixelID        string    `json:"pixel_id"`
	Geo            Geo       `json:"geo,omitempty"`
	Parcel         *Parcel   `json:"parcel,omitempty"`
	ThetaEMax      *float64  `json:"theta_e_max_k,omitempty"`
	BrightnessTemp float64   `json:"bt_c"`
	ObservedAt     time.Time `json:"observed_at,omitempty"`
}

// ParseRawObservation deserializes a RawObservation's value into a
// PixelObservation. An observation with neither a parcel nor a theta-e
// maximum has nothing to solve and is rejected. A missing observed_at falls
// back to the message timestamp.
func ParseRawObservation(raw RawObservation) (PixelObservation, error) {
	var obs PixelObservation
	if err := json.Unmarshal(raw.Value, &obs); err != nil {
		return PixelObservation{}, fmt.Errorf("parse raw observation: %w", err)
	}
	if obs.Parcel == nil && obs.ThetaEMax == nil {
		return PixelObservation{}, fmt.Errorf("observation %q carries neither a parcel nor a theta-e maximum", obs.PixelID)
	}
	if obs.ObservedAt.IsZero() {
		obs.ObservedAt = raw.Timestamp
	}
	return obs, nil
}

// Estimate is the serialized cloud top estimate destined for the sink topic.
// Invalid estimates keep nil numeric fields so a NaN never reaches the JSON
// encoder; Valid carries the signal instead.
type Estimate struct {
	ID          string    `json:"id"`
	PixelID     string    `json:"pixel_id,omitempty"`
	Geo         Geo       `json:"geo,omitempty"`
	Tier        string    `json:"tier"`
	Source      string    `json:"source"` // "parcel" or "theta_e"
	Pressure    *float64  `json:"pressure_hpa,omitempty"`
	Height      *float64  `json:"height_m,omitempty"`
	FlightLevel *int      `json:"flight_level,omitempty"`
	Valid       bool      `json:"valid"`
	InEnvelope  bool      `json:"in_envelope"`
	ObservedAt  time.Time `json:"observed_at"`
	ProcessedAt time.Time `json:"processed_at"`
}

// NewEstimate assembles the wire form of a solved cloud top.
func NewEstimate(obs PixelObservation, tier, source string, ct CloudTop) Estimate {
	est := Estimate{
		ID:          estimateID(obs, tier),
		PixelID:     obs.PixelID,
		Geo:         obs.Geo,
		Tier:        tier,
		Source:      source,
		Valid:       ct.Valid,
		InEnvelope:  ct.InEnvelope,
		ObservedAt:  obs.ObservedAt,
		ProcessedAt: clock.Now(),
	}
	if ct.Valid {
		pressure, height, fl := ct.Pressure, ct.Height, ct.FlightLevel
		est.Pressure = &pressure
		est.Height = &height
		est.FlightLevel = &fl
	}
	return est
}

// estimateID produces a deterministic ID from the observation's key fields.
// Replaying the same pixel yields the same estimate ID, which enables
// idempotent archiving downstream (INSERT OR IGNORE).
func estimateID(obs PixelObservation, tier string) string {
	input := fmt.Sprintf("%s|%.4f|%.4f|%g|%s|%s",
		obs.PixelID, obs.Geo.Lat, obs.Geo.Lon, obs.BrightnessTemp,
		obs.ObservedAt.UTC().Format(time.RFC3339), tier)
	hash := sha256.Sum256([]byte(input))
	short := hex.EncodeToString(hash[:8])
	if obs.PixelID == "" {
		return short
	}
	return obs.PixelID + "-" + short
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
