package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

func compareCmd() *cobra.Command {
	var (
		contractID string
		amount     float64
		monthly    float64
		termMonths int
		apr        float64
		docFee     float64
		procFee    float64
		penalty    string
		redFlags   []string
		vehMake    string
		vehModel   string
		year       int
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Assess finance contract terms against the market",
		Long: "Compares a finance contract's terms against the estimated market\n" +
			"price for the vehicle and scores the contract's overall fairness.",
		Example: `  # Compare a finance amount against the market
  cpa compare --amount 20000 --make Toyota --model Camry --year 2020

  # Full contract terms
  cpa compare --amount 20000 --make Toyota --model Camry --year 2020 \
    --monthly 450 --term 60 --apr 9.5 --doc-fee 400 \
    --red-flag "mandatory arbitration clause"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			terms := domain.ContractTerms{
				EarlyTerminationPenalty: penalty,
				RedFlags:                redFlags,
				Make:                    vehMake,
				Model:                   vehModel,
				Year:                    year,
			}
			if cmd.Flags().Changed("amount") {
				terms.FinanceAmount = amount
			}
			if cmd.Flags().Changed("monthly") {
				terms.MonthlyPayment = &monthly
			}
			if cmd.Flags().Changed("term") {
				terms.TermMonths = &termMonths
			}
			if cmd.Flags().Changed("apr") {
				terms.APRPercent = &apr
			}
			if cmd.Flags().Changed("doc-fee") {
				terms.DocumentationFee = &docFee
			}
			if cmd.Flags().Changed("proc-fee") {
				terms.ProcessingFee = &procFee
			}

			c := newClient()
			resp, err := c.CompareContract(context.Background(), contractID, terms)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			return printComparisonDetail(resp)
		},
	}

	cmd.Flags().StringVar(&contractID, "contract-id", "", "contract identifier")
	cmd.Flags().Float64Var(&amount, "amount", 0, "finance amount in dollars")
	cmd.Flags().Float64Var(&monthly, "monthly", 0, "monthly payment in dollars")
	cmd.Flags().IntVar(&termMonths, "term", 0, "term length in months")
	cmd.Flags().Float64Var(&apr, "apr", 0, "annual percentage rate")
	cmd.Flags().Float64Var(&docFee, "doc-fee", 0, "documentation fee in dollars")
	cmd.Flags().Float64Var(&procFee, "proc-fee", 0, "processing fee in dollars")
	cmd.Flags().StringVar(&penalty, "penalty", "", "early termination penalty text")
	cmd.Flags().
		StringArrayVar(&redFlags, "red-flag", nil, "red flag noted in the contract (repeatable)")
	cmd.Flags().StringVar(&vehMake, "make", "", "vehicle make")
	cmd.Flags().StringVar(&vehModel, "model", "", "vehicle model")
	cmd.Flags().IntVar(&year, "year", 0, "model year")

	return cmd
}

func assessmentsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "assessments",
		Short:   "List recent contract assessments",
		Example: `  cpa assessments --limit 10`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			assessments, err := c.ListAssessments(context.Background(), limit)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(assessments)
			}

			if len(assessments) == 0 {
				fmt.Println("No assessments found.")
				return nil
			}

			return printAssessmentsTable(assessments)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")

	return cmd
}
