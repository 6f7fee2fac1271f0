package nhtsa_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealwise/car-price-advisor/internal/nhtsa"
)

const decodeBody = `{
	"Count": 136,
	"Results": [
		{"Variable": "Make", "Value": "TOYOTA"},
		{"Variable": "Model", "Value": "Camry"},
		{"Variable": "Model Year", "Value": "2020"},
		{"Variable": "Trim", "Value": "LE"},
		{"Variable": "Body Class", "Value": "Sedan/Saloon"},
		{"Variable": "Engine Model", "Value": "A25A-FKS"},
		{"Variable": "Fuel Type - Primary", "Value": "Gasoline"},
		{"Variable": "Drive Type", "Value": "FWD"},
		{"Variable": "Manufacturer Name", "Value": "TOYOTA MOTOR MANUFACTURING, KENTUCKY, INC."},
		{"Variable": "Doors", "Value": "4"},
		{"Variable": "Plant Country", "Value": "UNITED STATES (USA)"},
		{"Variable": "Error Code", "Value": "0"},
		{"Variable": "Suggested VIN", "Value": ""},
		{"Variable": "Note", "Value": "   "}
	]
}`

func TestHTTPClient_DecodeVIN(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/4T1C11AK5LU123456", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(decodeBody))
	}))
	defer srv.Close()

	client := nhtsa.NewHTTPClient(nhtsa.WithDecodeURL(srv.URL))

	v, err := client.DecodeVIN(context.Background(), "  4t1c11ak5lu123456 ")
	require.NoError(t, err)

	assert.Equal(t, "4T1C11AK5LU123456", v.VIN)
	assert.Equal(t, "TOYOTA", v.Make)
	assert.Equal(t, "Camry", v.Model)
	assert.Equal(t, 2020, v.ModelYear)
	assert.Equal(t, "LE", v.Trim)
	assert.Equal(t, "Sedan/Saloon", v.BodyClass)
	assert.Equal(t, "FWD", v.DriveType)
	assert.Equal(t, "4", v.Doors)

	// Blank and whitespace-only values are dropped from the raw map.
	assert.NotContains(t, v.Raw, "Suggested VIN")
	assert.NotContains(t, v.Raw, "Note")
	assert.Equal(t, "0", v.Raw["Error Code"])
}

func TestHTTPClient_DecodeVIN_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		vin        string
		handler    http.HandlerFunc
		wantErrIs  error
		errContain string
	}{
		{
			name: "incomplete decode missing model",
			vin:  "1FTEW1EP5KFA00001",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"Results": [
					{"Variable": "Make", "Value": "FORD"},
					{"Variable": "Model Year", "Value": "2019"}
				]}`))
			},
			wantErrIs: nhtsa.ErrDecodeIncomplete,
		},
		{
			name: "unparseable model year",
			vin:  "1FTEW1EP5KFA00001",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"Results": [
					{"Variable": "Make", "Value": "FORD"},
					{"Variable": "Model", "Value": "F-150"},
					{"Variable": "Model Year", "Value": "soon"}
				]}`))
			},
			errContain: "parsing model year",
		},
		{
			name: "server error",
			vin:  "1FTEW1EP5KFA00001",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			errContain: "status 503",
		},
		{
			name: "html instead of json",
			vin:  "1FTEW1EP5KFA00001",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				_, _ = w.Write([]byte(`<html><body>maintenance</body></html>`))
			},
			errContain: "parsing decode response",
		},
		{
			name:       "empty vin rejected before any request",
			vin:        "   ",
			handler:    func(_ http.ResponseWriter, _ *http.Request) { t.Error("unexpected request") },
			errContain: "empty VIN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := nhtsa.NewHTTPClient(nhtsa.WithDecodeURL(srv.URL))
			_, err := client.DecodeVIN(context.Background(), tt.vin)

			require.Error(t, err)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
			}
			if tt.errContain != "" {
				assert.Contains(t, err.Error(), tt.errContain)
			}
		})
	}
}

func TestHTTPClient_Recalls(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "TOYOTA", r.URL.Query().Get("make"))
		assert.Equal(t, "Camry", r.URL.Query().Get("model"))
		assert.Equal(t, "2020", r.URL.Query().Get("modelYear"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Count": 2,
			"results": [
				{
					"NHTSACampaignNumber": "20V123000",
					"Component": "FUEL SYSTEM, GASOLINE",
					"Summary": "Fuel pump may fail.",
					"Consequence": "Engine stall increases crash risk.",
					"Remedy": "Dealers will replace the fuel pump free of charge.",
					"ReportReceivedDate": "13/03/2020",
					"Manufacturer": "Toyota Motor Engineering"
				},
				{
					"NHTSACampaignNumber": "21V456000",
					"Component": "ELECTRICAL SYSTEM"
				}
			]
		}`))
	}))
	defer srv.Close()

	client := nhtsa.NewHTTPClient(nhtsa.WithRecallsURL(srv.URL))

	recalls, err := client.Recalls(context.Background(), "TOYOTA", "Camry", 2020)
	require.NoError(t, err)
	require.Len(t, recalls, 2)

	assert.Equal(t, "20V123000", recalls[0].CampaignNumber)
	assert.Equal(t, "FUEL SYSTEM, GASOLINE", recalls[0].Component)
	assert.Equal(t, "Dealers will replace the fuel pump free of charge.", recalls[0].Remedy)
	assert.Equal(t, "21V456000", recalls[1].CampaignNumber)
	assert.Empty(t, recalls[1].Summary)
}

func TestHTTPClient_Recalls_Empty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"Count": 0, "results": []}`))
	}))
	defer srv.Close()

	client := nhtsa.NewHTTPClient(nhtsa.WithRecallsURL(srv.URL))

	recalls, err := client.Recalls(context.Background(), "YUGO", "GV", 1987)
	require.NoError(t, err)
	assert.Empty(t, recalls)
}

func TestHTTPClient_RateLimited(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"Count": 0, "results": []}`))
	}))
	defer srv.Close()

	// Daily budget of 1: the second call must fail without hitting the server.
	rl := nhtsa.NewRateLimiter(100, 10, 1)
	client := nhtsa.NewHTTPClient(
		nhtsa.WithRecallsURL(srv.URL),
		nhtsa.WithRateLimiter(rl),
	)

	_, err := client.Recalls(context.Background(), "TOYOTA", "Camry", 2020)
	require.NoError(t, err)

	_, err = client.Recalls(context.Background(), "TOYOTA", "Camry", 2020)
	require.ErrorIs(t, err, nhtsa.ErrDailyLimitReached)
	assert.Contains(t, err.Error(), "rate limit:")
}
