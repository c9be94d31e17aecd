// Command genmock generates a synthetic satellite scene as pixel observation
// fixtures for the ETL and integration test suites. It uses the actual domain
// package to pick the most unstable parcel per pixel, so the fixtures match
// real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock -pixels 100 -seed 42 \
//	  -obs-out data/mock/scene_observations.json \
//	  -est-out data/mock/scene_estimates.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/cloud-top-etl/internal/domain"
	"github.com/jonboulle/clockwork"
)

var sceneTime = time.Date(2025, time.June, 12, 14, 15, 0, 0, time.UTC)

// Sampled pressure levels for the most-unstable-parcel search, surface upward.
var levels = []float64{1000, 900, 850, 800}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	pixels := flag.Int("pixels", 100, "number of pixels in the synthetic scene")
	seed := flag.Int64("seed", 42, "random seed for reproducible scenes")
	tier := flag.String("tier", "high_precision", "adiabat approximation tier")
	obsOut := flag.String("obs-out", "", "output path for the observation fixture")
	estOut := flag.String("est-out", "", "output path for the expected estimate fixture")
	flag.Parse()

	if *obsOut == "" || *estOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -obs-out, -est-out")
	}

	model, err := domain.TierByName(*tier)
	if err != nil {
		return err
	}

	// Fix the clock for reproducible ProcessedAt timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2025, time.June, 12, 15, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	rng := rand.New(rand.NewSource(*seed))

	observations := make([]domain.PixelObservation, 0, *pixels)
	estimates := make([]domain.Estimate, 0, *pixels)

	for i := 0; i < *pixels; i++ {
		obs := makeObservation(rng, i)
		observations = append(observations, obs)

		ct, source := domain.SolveObservation(model, obs)
		estimates = append(estimates, domain.NewEstimate(obs, model.Name(), source, ct))
	}

	log.Printf("generated %d pixels", len(observations))

	if err := writeJSON(*obsOut, observations); err != nil {
		return fmt.Errorf("writing observation fixture: %w", err)
	}
	log.Printf("wrote observation fixture: %s", *obsOut)

	if err := writeJSON(*estOut, estimates); err != nil {
		return fmt.Errorf("writing estimate fixture: %w", err)
	}
	log.Printf("wrote estimate fixture: %s", *estOut)

	printStats(estimates)
	return nil
}

// makeObservation builds one pixel: a small vertical profile of plausible
// warm-sector parcels, reduced to the most unstable one via the theta-e
// maximum. Roughly a third of pixels carry the precomputed theta-e instead of
// the parcel, matching the mix the ingest service produces.
func makeObservation(rng *rand.Rand, i int) domain.PixelObservation {
	parcels := make([]domain.Parcel, len(levels))
	for j, p := range levels {
		// Temperature falls off with height; dewpoint stays a few degrees below.
		t := 28 - (1000-p)*0.008 + rng.Float64()*4 - 2
		td := t - 2 - rng.Float64()*6
		parcels[j] = domain.Parcel{Temp: t, Dewpoint: td, Pressure: p}
	}

	_, idx := domain.MaxThetaE(parcels)
	mu := parcels[idx]

	obs := domain.PixelObservation{
		PixelID:        fmt.Sprintf("px-%03d", i),
		Geo:            domain.Geo{Lat: 44 + rng.Float64()*4, Lon: 14 + rng.Float64()*6},
		BrightnessTemp: -20 - rng.Float64()*50,
		ObservedAt:     sceneTime,
	}

	if i%3 == 0 {
		the := domain.ThetaE(mu.Temp, mu.Dewpoint, mu.Pressure)
		obs.ThetaEMax = &the
	} else {
		obs.Parcel = &mu
	}
	return obs
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(estimates []domain.Estimate) {
	var valid, inEnvelope, fromThetaE int
	minFL, maxFL := 0, 0
	for i := range estimates {
		e := &estimates[i]
		if e.Source == "theta_e" {
			fromThetaE++
		}
		if !e.Valid {
			continue
		}
		valid++
		if e.InEnvelope {
			inEnvelope++
		}
		fl := *e.FlightLevel
		if valid == 1 || fl < minFL {
			minFL = fl
		}
		if valid == 1 || fl > maxFL {
			maxFL = fl
		}
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(estimates))
	fmt.Printf("Valid: %d\n", valid)
	fmt.Printf("In envelope: %d\n", inEnvelope)
	fmt.Printf("From theta-e: %d\n", fromThetaE)
	if valid > 0 {
		fmt.Printf("Flight level range: FL%03d - FL%03d\n", minFL, maxFL)
	}
}
