package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/dealwise/car-price-advisor/internal/api/client"
	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printEstimateDetail(e *domain.PriceEstimate) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Vehicle:\t%d %s %s\n", e.Year, e.Make, e.Model)
	if e.VIN != "" {
		tw.writef("VIN:\t%s\n", e.VIN)
	}
	if e.Mileage != nil {
		tw.writef("Mileage:\t%d\n", *e.Mileage)
	}
	tw.writef("Condition:\t%s\n", e.Condition)
	tw.writef("Market Price:\t$%.0f\n", e.MarketPrice)
	tw.writef("Price Range:\t$%.0f - $%.0f\n", e.LowPrice, e.HighPrice)
	tw.writef("MSRP:\t$%.0f\n", e.ReferencePrice)
	tw.writef("Confidence:\t%.2f\n", e.Confidence)
	tw.writef("Source:\t%s\n", e.Source)
	for _, n := range e.Notes {
		tw.writef("Note:\t%s\n", n)
	}
	return tw.finish()
}

func printEstimatesTable(estimates []domain.StoredEstimate) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tVEHICLE\tVIN\tMARKET\tCONFIDENCE\tSOURCE\tCREATED\n")
	for i := range estimates {
		e := &estimates[i]
		vin := "-"
		if e.Estimate.VIN != "" {
			vin = e.Estimate.VIN
		}
		tw.writef("%s\t%d %s %s\t%s\t$%.0f\t%.2f\t%s\t%s\n",
			e.ID,
			e.Estimate.Year,
			e.Estimate.Make,
			e.Estimate.Model,
			vin,
			e.Estimate.MarketPrice,
			e.Estimate.Confidence,
			e.Source,
			e.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printVehicleDetail(v *domain.Vehicle) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", v.ID)
	tw.writef("VIN:\t%s\n", v.VIN)
	tw.writef("Vehicle:\t%d %s %s\n", v.ModelYear, v.Make, v.Model)
	tw.writef("Trim:\t%s\n", v.Trim)
	tw.writef("Body Class:\t%s\n", v.BodyClass)
	tw.writef("Engine:\t%s\n", v.Engine)
	tw.writef("Fuel Type:\t%s\n", v.FuelType)
	tw.writef("Drive Type:\t%s\n", v.DriveType)
	return tw.finish()
}

func printRecallsTable(recalls []domain.Recall) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("CAMPAIGN\tCOMPONENT\tSUMMARY\tREPORTED\n")
	for i := range recalls {
		tw.writef("%s\t%s\t%s\t%s\n",
			recalls[i].Campaign,
			truncate(recalls[i].Component, 30),
			truncate(recalls[i].Summary, 60),
			recalls[i].ReportedAt,
		)
	}
	return tw.finish()
}

func printComparisonDetail(resp *apiclient.ComparisonResponse) error {
	tw := newTabWriter(os.Stdout)
	cmp := &resp.Comparison
	if !cmp.ComparisonAvailable {
		tw.writef("Comparison:\tunavailable\n")
		tw.writef("Reason:\t%s\n", cmp.Reason)
	} else {
		tw.writef("Finance Amount:\t$%.0f\n", cmp.FinanceAmount)
		tw.writef("Market Price:\t$%.0f\n", cmp.MarketPrice)
		tw.writef("Price Range:\t%s\n", cmp.PriceRange)
		tw.writef("Deviation:\t%+.1f%%\n", cmp.DeviationPercent)
		tw.writef("Assessment:\t%s\n", cmp.Assessment)
		tw.writef("Confidence:\t%.2f\n", cmp.Confidence)
		tw.writef("Message:\t%s\n", cmp.Message)
	}
	tw.writef("Fairness Score:\t%d/100 (%s)\n", resp.Fairness.Score, resp.Fairness.Rating)
	tw.writef("Summary:\t%s\n", resp.Fairness.Summary)
	for _, r := range resp.Fairness.Reasons {
		tw.writef("Reason:\t%s\n", r)
	}
	return tw.finish()
}

func printAssessmentsTable(assessments []domain.StoredAssessment) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tCONTRACT\tASSESSMENT\tDEVIATION\tAMOUNT\tCREATED\n")
	for i := range assessments {
		a := &assessments[i]
		contract := "-"
		if a.ContractID != nil {
			contract = *a.ContractID
		}
		assessment := "unavailable"
		if a.Assessment.ComparisonAvailable {
			assessment = string(a.Assessment.Assessment)
		}
		tw.writef("%s\t%s\t%s\t%+.1f%%\t$%.0f\t%s\n",
			a.ID,
			contract,
			assessment,
			a.Assessment.DeviationPercent,
			a.Assessment.FinanceAmount,
			a.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
