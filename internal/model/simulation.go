package model

// ScenarioKind enum constants
const (
	ScenarioPurchaseAndSale         = "purchaseAndSale"
	ScenarioPurchaseAndTargetMargin = "purchaseAndTargetMargin"
)

// CalculationResult holds every figure derived for one pricing scenario.
// All money amounts are HT unless the field name says TTC, and every rate is
// a normalized decimal (0.2 = 20%).
type CalculationResult struct {
	Scenario               string   `json:"scenario"`
	PurchasePriceHT        float64  `json:"purchase_price_ht"`
	SalePriceHT            float64  `json:"sale_price_ht"`
	SalePriceTTC           float64  `json:"sale_price_ttc"`
	VATAmount              float64  `json:"vat_amount"`
	VATRate                float64  `json:"vat_rate"`
	GrossMargin            float64  `json:"gross_margin"`      // negative on a loss
	GrossMarginRate        float64  `json:"gross_margin_rate"` // 0 when the sale price is 0
	TaxableProfit          float64  `json:"taxable_profit"`
	CorporateTax           float64  `json:"corporate_tax"`
	CorporateTaxRate       float64  `json:"corporate_tax_rate"`
	OtherContributions     float64  `json:"other_contributions"`
	OtherContributionsRate float64  `json:"other_contributions_rate"`
	NetProfit              float64  `json:"net_profit"`
	TargetMarginRate       *float64 `json:"target_margin_rate,omitempty"` // purchaseAndTargetMargin only
}
