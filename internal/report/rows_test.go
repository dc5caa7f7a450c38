package report

import (
	"bytes"
	"strings"
	"testing"

	"margin-simulator/internal/model"
)

func sampleResult() model.CalculationResult {
	return model.CalculationResult{
		Scenario:         model.ScenarioPurchaseAndSale,
		PurchasePriceHT:  100,
		SalePriceHT:      150,
		SalePriceTTC:     180,
		VATAmount:        30,
		VATRate:          0.2,
		GrossMargin:      50,
		GrossMarginRate:  1.0 / 3.0,
		TaxableProfit:    50,
		CorporateTax:     12.5,
		CorporateTaxRate: 0.25,
		NetProfit:        37.5,
	}
}

func TestRows_SaleScenario(t *testing.T) {
	rows := Rows(sampleResult(), PlainFormatter)

	if len(rows) != 9 {
		t.Fatalf("expected 9 rows, got %d", len(rows))
	}
	if rows[0].Label != "Prix d'achat HT" || rows[0].Value != "100.00 €" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[4].Value != "50.00 € (33.33 %)" {
		t.Errorf("unexpected gross margin row: %+v", rows[4])
	}
	if last := rows[len(rows)-1]; last.Label != "Résultat net" || last.Value != "37.50 €" {
		t.Errorf("unexpected last row: %+v", last)
	}
}

func TestRows_TargetMarginScenario(t *testing.T) {
	r := sampleResult()
	r.Scenario = model.ScenarioPurchaseAndTargetMargin
	margin := 0.35
	r.TargetMarginRate = &margin

	rows := Rows(r, FrenchFormatter)

	if len(rows) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(rows))
	}
	if rows[0].Label != "Marge cible" || rows[0].Value != "35.00 %" {
		t.Errorf("expected target margin first, got %+v", rows[0])
	}
	if rows[3].Value != "180,00 €" {
		t.Errorf("unexpected TTC row: %+v", rows[3])
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	rows := []Row{
		{"Prix d'achat HT", "100.00 €"},
		{"Bénéfice imposable", "50.00 €"},
	}

	if err := WriteTable(&buf, "Demo", rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "=== Demo ===" {
		t.Errorf("unexpected header %q", lines[0])
	}
	want := "Bénéfice imposable" + strings.Repeat(" ", 26-len([]rune("Bénéfice imposable"))) + " : 50.00 €"
	if lines[2] != want {
		t.Errorf("expected %q, got %q", want, lines[2])
	}
	sep := strings.Index(lines[1], " : ")
	if len([]rune(lines[1][:sep])) != 26 {
		t.Errorf("expected label padded to 26 runes, got %q", lines[1][:sep])
	}
}
