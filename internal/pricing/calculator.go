// Package pricing computes VAT, margins, taxes and net profit for a single
// retail pricing scenario. Every function is pure and safe for concurrent use.
package pricing

import (
	"math"

	"margin-simulator/internal/model"
)

// SaleScenario is a purchase price paired with a known sale price.
// A nil OtherContributionsRate means the levy is absent (0).
type SaleScenario struct {
	PurchasePriceHT        float64
	SalePriceHT            float64
	VATRate                float64
	CorporateTaxRate       float64
	OtherContributionsRate *float64
}

// TargetMarginScenario is a purchase price paired with the margin rate the
// sale price should achieve.
type TargetMarginScenario struct {
	PurchasePriceHT        float64
	TargetMarginRate       float64
	VATRate                float64
	CorporateTaxRate       float64
	OtherContributionsRate *float64
}

// CalculateWithSalePrice derives every figure of a sale when the sale price is known.
func CalculateWithSalePrice(s SaleScenario) (model.CalculationResult, error) {
	if err := validatePrice(s.PurchasePriceHT, "purchasePriceHT"); err != nil {
		return model.CalculationResult{}, err
	}
	if err := validatePrice(s.SalePriceHT, "salePriceHT"); err != nil {
		return model.CalculationResult{}, err
	}

	vatRate, err := NormalizeRate(s.VATRate)
	if err != nil {
		return model.CalculationResult{}, err
	}
	corporateTaxRate, err := NormalizeRate(s.CorporateTaxRate)
	if err != nil {
		return model.CalculationResult{}, err
	}
	otherRate := 0.0
	if s.OtherContributionsRate != nil {
		otherRate, err = NormalizeRate(*s.OtherContributionsRate)
		if err != nil {
			return model.CalculationResult{}, err
		}
	}

	vatAmount := s.SalePriceHT * vatRate
	salePriceTTC := s.SalePriceHT + vatAmount
	grossMargin := s.SalePriceHT - s.PurchasePriceHT

	// A zero sale price has no meaningful margin rate; report 0 instead of NaN/-Inf.
	grossMarginRate := 0.0
	if s.SalePriceHT != 0 {
		grossMarginRate = grossMargin / s.SalePriceHT
	}

	// Losses are neither taxed nor rebated.
	taxableProfit := math.Max(grossMargin, 0)
	corporateTax := taxableProfit * corporateTaxRate
	otherContributions := taxableProfit * otherRate
	netProfit := taxableProfit - corporateTax - otherContributions

	return model.CalculationResult{
		Scenario:               model.ScenarioPurchaseAndSale,
		PurchasePriceHT:        s.PurchasePriceHT,
		SalePriceHT:            s.SalePriceHT,
		SalePriceTTC:           salePriceTTC,
		VATAmount:              vatAmount,
		VATRate:                vatRate,
		GrossMargin:            grossMargin,
		GrossMarginRate:        grossMarginRate,
		TaxableProfit:          taxableProfit,
		CorporateTax:           corporateTax,
		CorporateTaxRate:       corporateTaxRate,
		OtherContributions:     otherContributions,
		OtherContributionsRate: otherRate,
		NetProfit:              netProfit,
	}, nil
}

// CalculateWithTargetMargin derives the sale price that yields the target
// margin rate, then runs the sale-price calculation on it.
func CalculateWithTargetMargin(s TargetMarginScenario) (model.CalculationResult, error) {
	if err := validatePrice(s.PurchasePriceHT, "purchasePriceHT"); err != nil {
		return model.CalculationResult{}, err
	}

	marginRate, err := NormalizeRate(s.TargetMarginRate)
	if err != nil {
		return model.CalculationResult{}, err
	}
	if marginRate >= 1 {
		return model.CalculationResult{}, &MarginTooHighError{Rate: marginRate}
	}

	salePrice := s.PurchasePriceHT / (1 - marginRate)
	if math.IsInf(salePrice, 0) {
		return model.CalculationResult{}, &InvalidPriceError{
			Field:  "purchasePriceHT",
			Value:  s.PurchasePriceHT,
			Reason: "is too large for the target margin",
		}
	}

	result, err := CalculateWithSalePrice(SaleScenario{
		PurchasePriceHT:        s.PurchasePriceHT,
		SalePriceHT:            salePrice,
		VATRate:                s.VATRate,
		CorporateTaxRate:       s.CorporateTaxRate,
		OtherContributionsRate: s.OtherContributionsRate,
	})
	if err != nil {
		return model.CalculationResult{}, err
	}

	result.Scenario = model.ScenarioPurchaseAndTargetMargin
	result.TargetMarginRate = &marginRate
	return result, nil
}

func validatePrice(value float64, field string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return &InvalidPriceError{Field: field, Value: value}
	}
	return nil
}
