package nhtsa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dealwise/car-price-advisor/internal/metrics"
)

const (
	defaultDecodeURL  = "https://vpic.nhtsa.dot.gov/api/vehicles/DecodeVin"
	defaultRecallsURL = "https://api.nhtsa.gov/recalls/recallsByVehicle"
)

// HTTPClient implements Client against the public NHTSA APIs.
type HTTPClient struct {
	decodeURL   string
	recallsURL  string
	client      *http.Client
	rateLimiter *RateLimiter
}

// Option configures the HTTPClient.
type Option func(*HTTPClient)

// WithDecodeURL overrides the vPIC DecodeVin endpoint.
func WithDecodeURL(u string) Option {
	return func(c *HTTPClient) {
		c.decodeURL = strings.TrimRight(u, "/")
	}
}

// WithRecallsURL overrides the recallsByVehicle endpoint.
func WithRecallsURL(u string) Option {
	return func(c *HTTPClient) {
		c.recallsURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter. When set, every API call goes
// through Wait() first.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *HTTPClient) {
		c.rateLimiter = r
	}
}

// NewHTTPClient creates an NHTSA client with a 15-second request timeout.
func NewHTTPClient(opts ...Option) *HTTPClient {
	c := &HTTPClient{
		decodeURL:  defaultDecodeURL,
		recallsURL: defaultRecallsURL,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// vPIC returns every decoded attribute as a Variable/Value pair.
type decodeAPIResponse struct {
	Results []struct {
		Variable string `json:"Variable"`
		Value    string `json:"Value"`
	} `json:"Results"`
}

// DecodeVIN implements Client.DecodeVIN against the vPIC decoder.
// Returns ErrDecodeIncomplete when vPIC responds without make, model,
// or model year.
func (c *HTTPClient) DecodeVIN(ctx context.Context, vin string) (*DecodedVehicle, error) {
	vin = strings.ToUpper(strings.TrimSpace(vin))
	if vin == "" {
		return nil, errors.New("empty VIN")
	}

	body, err := c.get(ctx, "decode", c.decodeURL+"/"+url.PathEscape(vin)+"?format=json")
	if err != nil {
		return nil, err
	}

	var apiResp decodeAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		metrics.NHTSAErrorsTotal.WithLabelValues("decode").Inc()
		return nil, fmt.Errorf("parsing decode response: %w", err)
	}

	raw := make(map[string]string, len(apiResp.Results))
	for _, item := range apiResp.Results {
		v := strings.TrimSpace(item.Value)
		if v != "" {
			raw[item.Variable] = v
		}
	}

	v := &DecodedVehicle{
		VIN:          vin,
		Make:         raw["Make"],
		Model:        raw["Model"],
		Trim:         raw["Trim"],
		BodyClass:    raw["Body Class"],
		Engine:       raw["Engine Model"],
		FuelType:     raw["Fuel Type - Primary"],
		DriveType:    raw["Drive Type"],
		Manufacturer: raw["Manufacturer Name"],
		VehicleType:  raw["Vehicle Type"],
		Doors:        raw["Doors"],
		Cylinders:    raw["Engine Number of Cylinders"],
		Transmission: raw["Transmission Style"],
		PlantCountry: raw["Plant Country"],
		Series:       raw["Series"],
		Raw:          raw,
	}

	yearStr := raw["Model Year"]
	if v.Make == "" || v.Model == "" || yearStr == "" {
		return nil, fmt.Errorf("%w: vin %s", ErrDecodeIncomplete, vin)
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil, fmt.Errorf("parsing model year %q: %w", yearStr, err)
	}
	v.ModelYear = year

	return v, nil
}

type recallsAPIResponse struct {
	Count   int              `json:"Count"`
	Results []RecallCampaign `json:"results"`
}

// Recalls implements Client.Recalls against the recallsByVehicle API.
func (c *HTTPClient) Recalls(
	ctx context.Context,
	vehicleMake, model string,
	year int,
) ([]RecallCampaign, error) {
	params := url.Values{}
	params.Set("make", vehicleMake)
	params.Set("model", model)
	params.Set("modelYear", strconv.Itoa(year))

	body, err := c.get(ctx, "recalls", c.recallsURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var apiResp recallsAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		metrics.NHTSAErrorsTotal.WithLabelValues("recalls").Inc()
		return nil, fmt.Errorf("parsing recalls response: %w", err)
	}

	return apiResp.Results, nil
}

// get performs a rate-limited GET and returns the body of a 200 response.
func (c *HTTPClient) get(ctx context.Context, operation, u string) ([]byte, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.NHTSADailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.NHTSAAPICallsTotal.Inc()
		metrics.NHTSADailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	start := time.Now()
	defer func() {
		metrics.NHTSARequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.NHTSAErrorsTotal.WithLabelValues(operation).Inc()
		return nil, fmt.Errorf("executing %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.NHTSAErrorsTotal.WithLabelValues(operation).Inc()
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.NHTSAErrorsTotal.WithLabelValues(operation).Inc()
		return nil, fmt.Errorf(
			"NHTSA API error (status %d): %s",
			resp.StatusCode,
			string(body),
		)
	}

	return body, nil
}
