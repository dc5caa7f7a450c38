package report

import (
	"fmt"
	"io"

	"margin-simulator/internal/model"
)

// Row is one label/value line of a rendered result.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

const labelWidth = 26

// Rows builds the display rows for a result. Target-margin results start
// with the requested margin.
func Rows(r model.CalculationResult, f Formatter) []Row {
	withRate := func(amount, rate float64) string {
		return fmt.Sprintf("%s (%s)", f.Money(amount), f.Percent(rate))
	}

	rows := []Row{
		{"Prix d'achat HT", f.Money(r.PurchasePriceHT)},
		{"Prix de vente HT", f.Money(r.SalePriceHT)},
		{"Prix de vente TTC", f.Money(r.SalePriceTTC)},
		{"TVA collectée", withRate(r.VATAmount, r.VATRate)},
		{"Marge brute", withRate(r.GrossMargin, r.GrossMarginRate)},
		{"Bénéfice imposable", f.Money(r.TaxableProfit)},
		{"Impôt sur les sociétés", withRate(r.CorporateTax, r.CorporateTaxRate)},
		{"Autres contributions", withRate(r.OtherContributions, r.OtherContributionsRate)},
		{"Résultat net", f.Money(r.NetProfit)},
	}

	if r.Scenario == model.ScenarioPurchaseAndTargetMargin && r.TargetMarginRate != nil {
		rows = append([]Row{{"Marge cible", f.Percent(*r.TargetMarginRate)}}, rows...)
	}

	return rows
}

// WriteTable prints rows under a "=== title ===" header with labels padded
// to a fixed width.
func WriteTable(w io.Writer, title string, rows []Row) error {
	if _, err := fmt.Fprintf(w, "\n=== %s ===\n", title); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s : %s\n", padRight(row.Label, labelWidth), row.Value); err != nil {
			return err
		}
	}
	return nil
}

// padRight pads by rune count so accented labels line up.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + fmt.Sprintf("%*s", width-n, "")
}
