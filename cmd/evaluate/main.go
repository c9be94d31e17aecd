// Command evaluate runs the cloud top estimation chain offline, without Kafka.
// It accepts either a single parcel on the command line or a JSON file of
// pixel observations, and prints the solved pressure, ISA height, and flight
// level for each.
//
// Usage:
//
//	go run ./cmd/evaluate -temp 15 -dewpoint 10 -pressure 1000 -bt -60
//	go run ./cmd/evaluate -theta-e 341.57 -bt -60 -tier standard
//	go run ./cmd/evaluate -input observations.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/couchcryptid/cloud-top-etl/internal/domain"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	temp := flag.Float64("temp", math.NaN(), "parcel temperature [°C]")
	dewpoint := flag.Float64("dewpoint", math.NaN(), "parcel dewpoint [°C]")
	pressure := flag.Float64("pressure", math.NaN(), "parcel pressure level [hPa]")
	thetaE := flag.Float64("theta-e", math.NaN(), "equivalent potential temperature [K], overrides the parcel flags")
	bt := flag.Float64("bt", math.NaN(), "raw IR brightness temperature [°C]")
	tier := flag.String("tier", "high_precision", "adiabat approximation tier (standard or high_precision)")
	input := flag.String("input", "", "JSON file with an array of pixel observations")
	flag.Parse()

	model, err := domain.TierByName(*tier)
	if err != nil {
		return err
	}

	if *input != "" {
		return evaluateFile(model, *input)
	}

	if math.IsNaN(*bt) {
		flag.Usage()
		return fmt.Errorf("-bt is required")
	}

	var (
		ct     domain.CloudTop
		source string
	)
	switch {
	case !math.IsNaN(*thetaE):
		ct = domain.EstimateCloudTopFromThetaE(model, *thetaE, *bt)
		source = "theta_e"
	case !math.IsNaN(*temp) && !math.IsNaN(*dewpoint) && !math.IsNaN(*pressure):
		ct = domain.EstimateCloudTop(model, *temp, *dewpoint, *pressure, *bt)
		source = "parcel"
	default:
		flag.Usage()
		return fmt.Errorf("provide -theta-e, or all of -temp, -dewpoint, -pressure")
	}

	printResult(model, source, "", ct)
	return nil
}

func evaluateFile(model *domain.AdiabatModel, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var observations []domain.PixelObservation
	if err := json.Unmarshal(data, &observations); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	for i := range observations {
		obs := observations[i]
		if obs.Parcel == nil && obs.ThetaEMax == nil {
			fmt.Printf("%-12s SKIP  no parcel or theta-e\n", obs.PixelID)
			continue
		}
		ct, source := domain.SolveObservation(model, obs)
		printResult(model, source, obs.PixelID, ct)
	}
	return nil
}

func printResult(model *domain.AdiabatModel, source, pixelID string, ct domain.CloudTop) {
	label := pixelID
	if label == "" {
		label = "-"
	}
	if !ct.Valid {
		fmt.Printf("%-12s INVALID  tier=%s source=%s\n", label, model.Name(), source)
		return
	}
	note := ""
	if !ct.InEnvelope {
		note = "  [outside fit envelope]"
	}
	fmt.Printf("%-12s %8.2f hPa  %8.1f m  FL%03d  tier=%s source=%s%s\n",
		label, ct.Pressure, ct.Height, ct.FlightLevel, model.Name(), source, note)
}
