package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func vinCmd() *cobra.Command {
	var (
		mileage   int
		condition string
	)

	cmd := &cobra.Command{
		Use:   "vin <vin>",
		Short: "Estimate a price band for a VIN",
		Long: "Decodes the VIN through NHTSA, stores the vehicle, and estimates\n" +
			"a market price band for it.",
		Example: `  # Estimate from a VIN alone
  cpa vin 4T1C11AK5LU123456

  # With mileage and condition
  cpa vin 4T1C11AK5LU123456 --mileage 45000 --condition fair`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			est, err := c.EstimateByVIN(context.Background(), args[0], mileage, condition)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(est)
			}

			return printEstimateDetail(est)
		},
	}

	cmd.Flags().IntVar(&mileage, "mileage", 0, "odometer reading in miles")
	cmd.Flags().
		StringVar(&condition, "condition", "", "condition (excellent, good, fair, poor)")

	return cmd
}

func vehicleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "vehicle <vin>",
		Short:   "Show decoded vehicle details and known recalls",
		Example: `  cpa vehicle 4T1C11AK5LU123456`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.GetVehicle(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if err := printVehicleDetail(&resp.Vehicle); err != nil {
				return err
			}
			if len(resp.Recalls) > 0 {
				fmt.Println()
				return printRecallsTable(resp.Recalls)
			}
			return nil
		},
	}
}
