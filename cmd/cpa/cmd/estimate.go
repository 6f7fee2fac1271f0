package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/dealwise/car-price-advisor/internal/api/client"
)

func estimateCmd() *cobra.Command {
	var (
		vehMake   string
		vehModel  string
		year      int
		mileage   int
		condition string
		bodyClass string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate a price band for a described vehicle",
		Long: "Estimates a market price band for a vehicle described by make,\n" +
			"model, and year, with optional mileage and condition adjustments.",
		Example: `  # Basic estimate
  cpa estimate --make Toyota --model Camry --year 2020

  # With mileage and condition
  cpa estimate --make Honda --model Civic --year 2019 --mileage 60000 --condition fair`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			req := &apiclient.EstimateRequest{
				Make:      vehMake,
				Model:     vehModel,
				ModelYear: year,
				Condition: condition,
				BodyClass: bodyClass,
			}
			if mileage > 0 {
				req.Mileage = &mileage
			}

			est, err := c.CreateEstimate(context.Background(), req)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(est)
			}

			return printEstimateDetail(est)
		},
	}

	cmd.Flags().StringVar(&vehMake, "make", "", "vehicle make (required)")
	cmd.Flags().StringVar(&vehModel, "model", "", "vehicle model (required)")
	cmd.Flags().IntVar(&year, "year", 0, "model year (required)")
	cmd.Flags().IntVar(&mileage, "mileage", 0, "odometer reading in miles")
	cmd.Flags().
		StringVar(&condition, "condition", "", "condition (excellent, good, fair, poor)")
	cmd.Flags().StringVar(&bodyClass, "body-class", "", "body class hint")
	cobra.CheckErr(cmd.MarkFlagRequired("make"))
	cobra.CheckErr(cmd.MarkFlagRequired("model"))
	cobra.CheckErr(cmd.MarkFlagRequired("year"))

	return cmd
}

func estimatesCmd() *cobra.Command {
	estimatesRoot := &cobra.Command{
		Use:   "estimates",
		Short: "Query stored estimates",
		Long:  "Query and inspect estimates persisted by the Car Price Advisor API.",
	}

	estimatesRoot.AddCommand(
		estimatesListCmd(),
		estimatesGetCmd(),
	)

	return estimatesRoot
}

func estimatesListCmd() *cobra.Command {
	var (
		vin    string
		source string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored estimates with optional filters",
		Example: `  # List recent estimates
  cpa estimates list

  # Filter by VIN
  cpa estimates list --vin 4T1C11AK5LU123456

  # Filter by source with pagination
  cpa estimates list --source msrp_database --limit 20 --offset 40`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListEstimates(context.Background(), &apiclient.ListEstimatesParams{
				VIN:    vin,
				Source: source,
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Estimates) == 0 {
				fmt.Println("No estimates found.")
				return nil
			}

			fmt.Printf("Showing %d of %d estimates\n\n", len(resp.Estimates), resp.Total)
			return printEstimatesTable(resp.Estimates)
		},
	}

	cmd.Flags().StringVar(&vin, "vin", "", "VIN filter")
	cmd.Flags().StringVar(&source, "source", "", "estimate source filter")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")

	return cmd
}

func estimatesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show stored estimate details",
		Example: `  cpa estimates get abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			e, err := c.GetEstimate(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(e)
			}

			return printEstimateDetail(&e.Estimate)
		},
	}
}
