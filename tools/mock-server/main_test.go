package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadTestFixture(t *testing.T) *fixtureFile {
	t.Helper()
	path := filepath.Join("testdata", "vehicles.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	var f fixtureFile
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return &f
}

func TestLoadFixture(t *testing.T) {
	fixture := loadTestFixture(t)
	if len(fixture.Vehicles) == 0 {
		t.Fatal("expected vehicles in fixture")
	}
	for _, v := range fixture.Vehicles {
		if v.VIN == "" {
			t.Error("expected non-empty VIN")
		}
		if v.Fields["Make"] == "" || v.Fields["Model"] == "" || v.Fields["Model Year"] == "" {
			t.Errorf("vehicle %s missing make, model, or model year", v.VIN)
		}
	}
}

func TestDecodeHandler_KnownVIN(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := decodeHandler(testLogger(), fixture)
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/DecodeVin/4T1C11AK5LU123456", http.NoBody)
	req.SetPathValue("vin", "4T1C11AK5LU123456")
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp decodeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	fields := make(map[string]string, len(resp.Results))
	for _, r := range resp.Results {
		fields[r.Variable] = r.Value
	}
	if fields["Make"] != "TOYOTA" {
		t.Errorf("Make=%s, want TOYOTA", fields["Make"])
	}
	if fields["Model"] != "Camry" {
		t.Errorf("Model=%s, want Camry", fields["Model"])
	}
	if fields["Model Year"] != "2020" {
		t.Errorf("Model Year=%s, want 2020", fields["Model Year"])
	}
}

func TestDecodeHandler_CaseInsensitiveVIN(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := decodeHandler(testLogger(), fixture)
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/DecodeVin/4t1c11ak5lu123456", http.NoBody)
	req.SetPathValue("vin", "4t1c11ak5lu123456")
	w := httptest.NewRecorder()

	handler(w, req)

	var resp decodeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Results) < 3 {
		t.Errorf("results=%d, want decoded fields for lowercase VIN", len(resp.Results))
	}
}

func TestDecodeHandler_UnknownVIN(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := decodeHandler(testLogger(), fixture)
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/DecodeVin/ZZZZZZZZZZZZZZZZZ", http.NoBody)
	req.SetPathValue("vin", "ZZZZZZZZZZZZZZZZZ")
	w := httptest.NewRecorder()

	handler(w, req)

	// Unknown VINs still answer 200 with no usable fields, matching vPIC.
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp decodeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	for _, r := range resp.Results {
		if r.Variable == "Make" && r.Value != "" {
			t.Errorf("Make=%s, want empty for unknown VIN", r.Value)
		}
	}
}

func TestRecallsHandler_Match(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := recallsHandler(testLogger(), fixture)
	req := httptest.NewRequest(http.MethodGet,
		"/recalls/recallsByVehicle?make=toyota&model=camry&modelYear=2020", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp recallsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("count=%d, want 2", resp.Count)
	}
	if len(resp.Results) != 2 {
		t.Errorf("results=%d, want 2", len(resp.Results))
	}
}

func TestRecallsHandler_NoMatch(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := recallsHandler(testLogger(), fixture)
	req := httptest.NewRequest(http.MethodGet,
		"/recalls/recallsByVehicle?make=ford&model=f-150&modelYear=2018", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	var resp recallsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 0 {
		t.Errorf("count=%d, want 0", resp.Count)
	}
	if resp.Results == nil {
		t.Error("results should be an empty array, not null")
	}
}

func TestRecallsHandler_VehicleWithNoCampaigns(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := recallsHandler(testLogger(), fixture)
	req := httptest.NewRequest(http.MethodGet,
		"/recalls/recallsByVehicle?make=HONDA&model=Accord&modelYear=2020", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	var resp recallsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 0 {
		t.Errorf("count=%d, want 0", resp.Count)
	}
}
