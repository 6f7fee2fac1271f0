// Package nhtsa provides clients for the NHTSA vPIC VIN decoder and the
// recall campaign API, abstracted behind an interface for testability.
package nhtsa

import (
	"context"
	"errors"
)

// ErrDecodeIncomplete is returned when the vPIC decoder responds but the
// result lacks make, model, or model year. The VIN may be malformed or
// outside vPIC coverage.
var ErrDecodeIncomplete = errors.New("VIN decode incomplete: missing make, model, or model year")

// DecodedVehicle is the flattened result of a vPIC VIN decode.
type DecodedVehicle struct {
	VIN          string
	Make         string
	Model        string
	ModelYear    int
	Trim         string
	BodyClass    string
	Engine       string
	FuelType     string
	DriveType    string
	Manufacturer string
	VehicleType  string
	Doors        string
	Cylinders    string
	Transmission string
	PlantCountry string
	Series       string

	// Raw holds every non-empty Variable/Value pair from vPIC,
	// including fields not broken out above.
	Raw map[string]string
}

// RecallCampaign is a single NHTSA recall campaign.
type RecallCampaign struct {
	CampaignNumber     string `json:"NHTSACampaignNumber"`
	Component          string `json:"Component"`
	Summary            string `json:"Summary"`
	Consequence        string `json:"Consequence"`
	Remedy             string `json:"Remedy"`
	ReportReceivedDate string `json:"ReportReceivedDate"`
	Manufacturer       string `json:"Manufacturer"`
}

// Client defines the NHTSA operations the engine depends on.
type Client interface {
	DecodeVIN(ctx context.Context, vin string) (*DecodedVehicle, error)
	Recalls(ctx context.Context, vehicleMake, model string, year int) ([]RecallCampaign, error)
}
