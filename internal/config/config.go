package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the API server and the report runner.
type Config struct {
	Port           string
	AllowedOrigins []string
	Defaults       FormDefaults
}

// FormDefaults are the values prefilled in the simulation form. Rates are
// kept as entered (20 means 20%).
type FormDefaults struct {
	PurchasePriceHT        float64 `json:"purchase_price_ht"`
	SalePriceHT            float64 `json:"sale_price_ht"`
	TargetMarginRate       float64 `json:"target_margin_rate"`
	VATRate                float64 `json:"vat_rate"`
	CorporateTaxRate       float64 `json:"corporate_tax_rate"`
	OtherContributionsRate float64 `json:"other_contributions_rate"`
}

// Load reads configs/.env if present, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
	}

	numbers := []struct {
		key    string
		def    float64
		target *float64
	}{
		{"DEFAULT_PURCHASE_PRICE_HT", 100, &cfg.Defaults.PurchasePriceHT},
		{"DEFAULT_SALE_PRICE_HT", 150, &cfg.Defaults.SalePriceHT},
		{"DEFAULT_TARGET_MARGIN_RATE", 30, &cfg.Defaults.TargetMarginRate},
		{"DEFAULT_VAT_RATE", 20, &cfg.Defaults.VATRate},
		{"DEFAULT_CORPORATE_TAX_RATE", 25, &cfg.Defaults.CorporateTaxRate},
		{"DEFAULT_OTHER_CONTRIBUTIONS_RATE", 0, &cfg.Defaults.OtherContributionsRate},
	}
	for _, n := range numbers {
		v, err := getEnvFloat(n.key, n.def)
		if err != nil {
			return Config{}, err
		}
		*n.target = v
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s value %q: must be a positive number", key, raw)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
