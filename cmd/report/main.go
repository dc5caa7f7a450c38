package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"margin-simulator/internal/model"
	"margin-simulator/internal/pricing"
	"margin-simulator/internal/report"
)

type scenario struct {
	name       string
	calculator func() (model.CalculationResult, error)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run prints the report for both scenarios and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(stderr)
	purchase := fs.Float64("purchase", 100, "Purchase price HT")
	sale := fs.Float64("sale", 150, "Sale price HT")
	margin := fs.Float64("margin", 0.35, "Target margin rate (0.35 or 35)")
	vat := fs.Float64("vat", 0.2, "VAT rate (0.2 or 20)")
	corporate := fs.Float64("corporate", 0.25, "Corporate tax rate (0.25 or 25)")
	other := fs.Float64("other", 0, "Other contributions rate (0.05 or 5)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	scenarios := []scenario{
		{
			name: "Prix d'achat + prix de vente",
			calculator: func() (model.CalculationResult, error) {
				return pricing.CalculateWithSalePrice(pricing.SaleScenario{
					PurchasePriceHT:        *purchase,
					SalePriceHT:            *sale,
					VATRate:                *vat,
					CorporateTaxRate:       *corporate,
					OtherContributionsRate: other,
				})
			},
		},
		{
			name: "Prix d'achat + marge cible",
			calculator: func() (model.CalculationResult, error) {
				return pricing.CalculateWithTargetMargin(pricing.TargetMarginScenario{
					PurchasePriceHT:        *purchase,
					TargetMarginRate:       *margin,
					VATRate:                *vat,
					CorporateTaxRate:       *corporate,
					OtherContributionsRate: other,
				})
			},
		},
	}

	for _, s := range scenarios {
		result, err := s.calculator()
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", s.name, err)
			return 1
		}
		if err := report.WriteTable(stdout, s.name, report.Rows(result, report.PlainFormatter)); err != nil {
			fmt.Fprintf(stderr, "write report: %v\n", err)
			return 1
		}
	}
	return 0
}
