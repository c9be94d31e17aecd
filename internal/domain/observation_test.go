package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRawObservation(t *testing.T) {
	msgTime := time.Date(2025, 6, 12, 14, 30, 0, 0, time.UTC)

	t.Run("parcel observation", func(t *testing.T) {
		data := []byte(`{"pixel_id":"px-104","geo":{"lat":45.81,"lon":15.98},"parcel":{"temp_c":15,"dewpoint_c":10,"pressure_hpa":1000},"bt_c":-60,"observed_at":"2025-06-12T14:15:00Z"}`)
		raw := RawObservation{Value: data, Timestamp: msgTime}

		obs, err := ParseRawObservation(raw)
		require.NoError(t, err)

		assert.Equal(t, "px-104", obs.PixelID)
		assert.Equal(t, 45.81, obs.Geo.Lat)
		require.NotNil(t, obs.Parcel)
		assert.Equal(t, Parcel{Temp: 15, Dewpoint: 10, Pressure: 1000}, *obs.Parcel)
		assert.Nil(t, obs.ThetaEMax)
		assert.Equal(t, -60.0, obs.BrightnessTemp)
		assert.Equal(t, time.Date(2025, 6, 12, 14, 15, 0, 0, time.UTC), obs.ObservedAt)
	})

	t.Run("theta-e observation", func(t *testing.T) {
		data := []byte(`{"pixel_id":"px-105","theta_e_max_k":341.57,"bt_c":-65}`)
		raw := RawObservation{Value: data, Timestamp: msgTime}

		obs, err := ParseRawObservation(raw)
		require.NoError(t, err)

		require.NotNil(t, obs.ThetaEMax)
		assert.Equal(t, 341.57, *obs.ThetaEMax)
		assert.Nil(t, obs.Parcel)
	})

	t.Run("missing observed_at falls back to message timestamp", func(t *testing.T) {
		data := []byte(`{"pixel_id":"px-106","theta_e_max_k":320,"bt_c":-50}`)
		raw := RawObservation{Value: data, Timestamp: msgTime}

		obs, err := ParseRawObservation(raw)
		require.NoError(t, err)
		assert.Equal(t, msgTime, obs.ObservedAt)
	})

	t.Run("neither parcel nor theta-e", func(t *testing.T) {
		data := []byte(`{"pixel_id":"px-107","bt_c":-50}`)
		_, err := ParseRawObservation(RawObservation{Value: data})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "neither a parcel nor a theta-e maximum")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := ParseRawObservation(RawObservation{Value: []byte("{not json")})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse raw observation")
	})
}

func TestNewEstimate(t *testing.T) {
	frozen := time.Date(2025, 6, 12, 15, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	defer SetClock(nil)

	obs := PixelObservation{
		PixelID:        "px-104",
		Geo:            Geo{Lat: 45.81, Lon: 15.98},
		Parcel:         &Parcel{Temp: 15, Dewpoint: 10, Pressure: 1000},
		BrightnessTemp: -60,
		ObservedAt:     time.Date(2025, 6, 12, 14, 15, 0, 0, time.UTC),
	}

	t.Run("valid estimate", func(t *testing.T) {
		ct := EstimateCloudTop(HighPrecisionAdiabat, 15, 10, 1000, -60)
		est := NewEstimate(obs, "high_precision", "parcel", ct)

		assert.Equal(t, "px-104", est.PixelID)
		assert.Equal(t, "high_precision", est.Tier)
		assert.Equal(t, "parcel", est.Source)
		assert.True(t, est.Valid)
		require.NotNil(t, est.Pressure)
		assert.InDelta(t, 249.26052533530208, *est.Pressure, 1e-8)
		require.NotNil(t, est.FlightLevel)
		assert.Equal(t, 341, *est.FlightLevel)
		assert.Equal(t, frozen, est.ProcessedAt)
		assert.True(t, len(est.ID) > len("px-104-"))
	})

	t.Run("invalid estimate has nil numeric fields", func(t *testing.T) {
		ct := EstimateCloudTop(HighPrecisionAdiabat, 15, -300, 1000, -60)
		est := NewEstimate(obs, "high_precision", "parcel", ct)

		assert.False(t, est.Valid)
		assert.Nil(t, est.Pressure)
		assert.Nil(t, est.Height)
		assert.Nil(t, est.FlightLevel)
	})

	t.Run("deterministic ID", func(t *testing.T) {
		ct := EstimateCloudTop(HighPrecisionAdiabat, 15, 10, 1000, -60)
		first := NewEstimate(obs, "high_precision", "parcel", ct)
		second := NewEstimate(obs, "high_precision", "parcel", ct)

		assert.Equal(t, first.ID, second.ID)

		other := obs
		other.BrightnessTemp = -61
		third := NewEstimate(other, "high_precision", "parcel", ct)
		assert.NotEqual(t, first.ID, third.ID)
	})
}
