package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"margin-simulator/internal/config"
	"margin-simulator/internal/model"
	"margin-simulator/internal/pricing"
	"margin-simulator/internal/report"

	"github.com/shopspring/decimal"
)

// Error codes for failures raised before the calculation runs.
const (
	CodeInvalidField    = "invalid_field"
	CodeUnknownScenario = "unknown_scenario"
)

var ErrUnknownScenario = errors.New("unknown scenario")

// FieldError reports a form field that is missing or not a positive number.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s %s", e.Field, e.Reason)
}

// --- DTOs ---

// SimulateRequest carries the raw form values. Numbers are decimal strings,
// rates may be given as 20 or 0.2.
type SimulateRequest struct {
	Scenario               string `json:"scenario" binding:"required"`
	PurchasePriceHT        string `json:"purchase_price_ht"`
	SalePriceHT            string `json:"sale_price_ht"`        // purchaseAndSale only
	TargetMarginRate       string `json:"target_margin_rate"`   // purchaseAndTargetMargin only
	VATRate                string `json:"vat_rate"`
	CorporateTaxRate       string `json:"corporate_tax_rate"`
	OtherContributionsRate string `json:"other_contributions_rate"` // Optional, defaults to 0
}

type SimulationResponse struct {
	Result model.CalculationResult `json:"result"`
	Rows   []report.Row            `json:"rows"`
}

// --- Interface ---

type SimulationService interface {
	Simulate(ctx context.Context, req SimulateRequest) (SimulationResponse, error)
	Defaults() config.FormDefaults
}

type simulationService struct {
	defaults  config.FormDefaults
	formatter report.Formatter
}

func NewSimulationService(defaults config.FormDefaults) SimulationService {
	return &simulationService{defaults: defaults, formatter: report.FrenchFormatter}
}

// --- Implementation ---

func (s *simulationService) Simulate(ctx context.Context, req SimulateRequest) (SimulationResponse, error) {
	result, err := s.calculate(req)
	if err != nil {
		metricSimulationErrors.WithLabelValues(ErrorCode(err)).Inc()
		return SimulationResponse{}, err
	}

	metricSimulations.WithLabelValues(result.Scenario).Inc()

	return SimulationResponse{
		Result: result,
		Rows:   report.Rows(result, s.formatter),
	}, nil
}

func (s *simulationService) Defaults() config.FormDefaults {
	return s.defaults
}

// calculate runs the core and rejects results whose figures overflowed: they
// cannot be rendered nor encoded as JSON.
func (s *simulationService) calculate(req SimulateRequest) (model.CalculationResult, error) {
	result, err := s.dispatch(req)
	if err != nil {
		return model.CalculationResult{}, err
	}

	if !allFinite(result) {
		field := "sale_price_ht"
		if result.Scenario == model.ScenarioPurchaseAndTargetMargin {
			field = "purchase_price_ht"
		}
		return model.CalculationResult{}, &FieldError{Field: field, Reason: "is too large: computed figures overflow"}
	}

	return result, nil
}

func (s *simulationService) dispatch(req SimulateRequest) (model.CalculationResult, error) {
	scenario := strings.TrimSpace(req.Scenario)
	if scenario != model.ScenarioPurchaseAndSale && scenario != model.ScenarioPurchaseAndTargetMargin {
		return model.CalculationResult{}, fmt.Errorf("%w: %q", ErrUnknownScenario, req.Scenario)
	}

	purchasePrice, err := parseRequired("purchase_price_ht", req.PurchasePriceHT)
	if err != nil {
		return model.CalculationResult{}, err
	}
	vatRate, err := parseRequired("vat_rate", req.VATRate)
	if err != nil {
		return model.CalculationResult{}, err
	}
	corporateTaxRate, err := parseRequired("corporate_tax_rate", req.CorporateTaxRate)
	if err != nil {
		return model.CalculationResult{}, err
	}
	otherRate, err := parseOptional("other_contributions_rate", req.OtherContributionsRate)
	if err != nil {
		return model.CalculationResult{}, err
	}

	if scenario == model.ScenarioPurchaseAndSale {
		salePrice, err := parseRequired("sale_price_ht", req.SalePriceHT)
		if err != nil {
			return model.CalculationResult{}, err
		}
		return pricing.CalculateWithSalePrice(pricing.SaleScenario{
			PurchasePriceHT:        purchasePrice,
			SalePriceHT:            salePrice,
			VATRate:                vatRate,
			CorporateTaxRate:       corporateTaxRate,
			OtherContributionsRate: &otherRate,
		})
	}

	targetMargin, err := parseRequired("target_margin_rate", req.TargetMarginRate)
	if err != nil {
		return model.CalculationResult{}, err
	}
	return pricing.CalculateWithTargetMargin(pricing.TargetMarginScenario{
		PurchasePriceHT:        purchasePrice,
		TargetMarginRate:       targetMargin,
		VATRate:                vatRate,
		CorporateTaxRate:       corporateTaxRate,
		OtherContributionsRate: &otherRate,
	})
}

// ErrorCode maps a simulation failure to its machine-readable code, or ""
// when the error did not come from validation.
func ErrorCode(err error) string {
	var fieldErr *FieldError
	switch {
	case errors.As(err, &fieldErr):
		return CodeInvalidField
	case errors.Is(err, ErrUnknownScenario):
		return CodeUnknownScenario
	default:
		return string(pricing.KindOf(err))
	}
}

// --- Helpers ---

func allFinite(r model.CalculationResult) bool {
	for _, v := range []float64{
		r.PurchasePriceHT, r.SalePriceHT, r.SalePriceTTC, r.VATAmount, r.VATRate,
		r.GrossMargin, r.GrossMarginRate, r.TaxableProfit, r.CorporateTax,
		r.CorporateTaxRate, r.OtherContributions, r.OtherContributionsRate, r.NetProfit,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func parseRequired(field, raw string) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, &FieldError{Field: field, Reason: "is required"}
	}
	return parseNumber(field, raw)
}

func parseOptional(field, raw string) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	return parseNumber(field, raw)
}

func parseNumber(field, raw string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return 0, &FieldError{Field: field, Reason: "must be a positive number"}
	}
	v, _ := d.Float64()
	if math.IsInf(v, 0) {
		return 0, &FieldError{Field: field, Reason: "must be a positive number"}
	}
	return v, nil
}
