// Package main is the entry point for the car-price-advisor server.
package main

import (
	"os"

	"github.com/dealwise/car-price-advisor/cmd/car-price-advisor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
