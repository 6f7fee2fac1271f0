package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func recallsCmd() *cobra.Command {
	recallsRoot := &cobra.Command{
		Use:   "recalls",
		Short: "Query recall campaigns",
		Long: "Fetch recall campaigns for a VIN or trigger a server-side\n" +
			"refresh of recalls for all tracked vehicles.",
	}

	recallsRoot.AddCommand(
		recallsGetCmd(),
		recallsRefreshCmd(),
	)

	return recallsRoot
}

func recallsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <vin>",
		Short:   "Fetch recall campaigns for a VIN",
		Example: `  cpa recalls get 4T1C11AK5LU123456`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.GetRecalls(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if resp.Count == 0 {
				fmt.Printf("No recall campaigns for %s.\n", resp.VIN)
				return nil
			}

			fmt.Printf("%d recall campaign(s) for %s\n\n", resp.Count, resp.VIN)
			return printRecallsTable(resp.Recalls)
		},
	}
}

func recallsRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Trigger a recall refresh cycle",
		Long:  "Triggers the server to re-fetch recalls for all tracked vehicles.",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			if err := c.RefreshRecalls(context.Background()); err != nil {
				return err
			}

			fmt.Println("Recall refresh completed.")
			return nil
		},
	}
}
