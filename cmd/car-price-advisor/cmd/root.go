// Package cmd implements the server commands for car-price-advisor.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "car-price-advisor",
	Short: "Vehicle price estimation and contract assessment service",
	Long: "An API-first service that estimates used vehicle prices from reference MSRP data, " +
		"decodes VINs through NHTSA vPIC, tracks safety recalls, and assesses car purchase " +
		"contracts against market value.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
