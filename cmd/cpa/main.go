// Package main is the entry point for the cpa CLI client.
package main

import (
	"github.com/dealwise/car-price-advisor/cmd/cpa/cmd"
)

func main() {
	cmd.Execute()
}
