// Package main implements a mock NHTSA API server for local development.
// It serves canned responses from a JSON fixture to simulate the vPIC VIN
// decoder and the recall campaign API without hitting the real endpoints.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// fixtureVehicle is one canned vehicle: its decoded vPIC fields plus any
// recall campaigns filed against its make/model/year.
type fixtureVehicle struct {
	VIN     string            `json:"vin"`
	Fields  map[string]string `json:"fields"`
	Recalls []json.RawMessage `json:"recalls"`
}

type fixtureFile struct {
	Vehicles []fixtureVehicle `json:"vehicles"`
}

// decodeResult mirrors a single vPIC Variable/Value pair.
type decodeResult struct {
	Variable string `json:"Variable"`
	Value    string `json:"Value"`
}

type decodeResponse struct {
	Count   int            `json:"Count"`
	Message string         `json:"Message"`
	Results []decodeResult `json:"Results"`
}

type recallsResponse struct {
	Count   int               `json:"Count"`
	Results []json.RawMessage `json:"results"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFlag := flag.String("fixture", "tools/mock-server/testdata/vehicles.json", "path to vehicle fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFlag)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFlag, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "vehicles", len(fixture.Vehicles))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/vehicles/DecodeVin/{vin}", decodeHandler(logger, fixture))
	mux.HandleFunc("GET /recalls/recallsByVehicle", recallsHandler(logger, fixture))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock NHTSA server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*fixtureFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f fixtureFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func decodeHandler(logger *slog.Logger, fixture *fixtureFile) http.HandlerFunc {
	// Index vehicles by VIN for lookup.
	byVIN := make(map[string]*fixtureVehicle, len(fixture.Vehicles))
	for i := range fixture.Vehicles {
		v := &fixture.Vehicles[i]
		byVIN[strings.ToUpper(v.VIN)] = v
	}

	return func(w http.ResponseWriter, r *http.Request) {
		vin := strings.ToUpper(r.PathValue("vin"))

		v, ok := byVIN[vin]
		if !ok {
			// vPIC still returns 200 for unknown VINs; the decoded fields
			// just come back empty.
			writeJSON(w, decodeResponse{
				Count:   1,
				Message: "Results returned successfully",
				Results: []decodeResult{{Variable: "Error Code", Value: "8"}},
			})
			logger.Info("decode miss", "vin", vin)
			return
		}

		results := make([]decodeResult, 0, len(v.Fields))
		for variable, value := range v.Fields {
			results = append(results, decodeResult{Variable: variable, Value: value})
		}
		writeJSON(w, decodeResponse{
			Count:   len(results),
			Message: "Results returned successfully",
			Results: results,
		})
		logger.Info("decode", "vin", vin, "fields", len(results))
	}
}

func recallsHandler(logger *slog.Logger, fixture *fixtureFile) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleMake := r.URL.Query().Get("make")
		model := r.URL.Query().Get("model")
		year := r.URL.Query().Get("modelYear")

		var matched []json.RawMessage
		for i := range fixture.Vehicles {
			v := &fixture.Vehicles[i]
			if strings.EqualFold(v.Fields["Make"], vehicleMake) &&
				strings.EqualFold(v.Fields["Model"], model) &&
				v.Fields["Model Year"] == year {
				matched = append(matched, v.Recalls...)
			}
		}

		// Return empty array instead of null when no campaigns match.
		if matched == nil {
			matched = []json.RawMessage{}
		}

		writeJSON(w, recallsResponse{Count: len(matched), Results: matched})
		logger.Info("recalls", "make", vehicleMake, "model", model, "year", year, "count", len(matched))
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}
