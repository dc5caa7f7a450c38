// Package report renders calculation results as labelled, human-readable rows.
package report

import (
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Formatter turns raw amounts and decimal rates into display strings.
type Formatter struct {
	Money   func(float64) string
	Percent func(float64) string
}

// FrenchFormatter mirrors the browser form: fr-FR grouped euros.
var FrenchFormatter = Formatter{Money: FormatEuro, Percent: FormatPercent}

// PlainFormatter is used by the batch runner: two decimals, no grouping.
var PlainFormatter = Formatter{Money: FormatPlainEuro, Percent: FormatPercent}

const thousandsSeparator = "\u202f" // narrow no-break space, as fr-FR uses

// FormatEuro renders 1234.5 as "1 234,50 €".
func FormatEuro(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nonFinite(value) + " €"
	}
	fixed := roundCents(value).StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return sign + groupThousands(intPart) + "," + fracPart + " €"
}

// FormatPlainEuro renders 1234.5 as "1234.50 €".
func FormatPlainEuro(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nonFinite(value) + " €"
	}
	return roundCents(value).StringFixed(2) + " €"
}

// FormatPercent renders a decimal rate: 0.3333 as "33.33 %".
func FormatPercent(value float64) string {
	pct := value * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return nonFinite(pct) + " %"
	}
	return roundCents(pct).StringFixed(2) + " %"
}

// roundCents rounds the exact binary value of v to two decimals, ties away
// from zero, so 1.005 (stored as 1.00499...) gives 1.00.
func roundCents(v float64) decimal.Decimal {
	x := new(big.Float).SetPrec(2048).SetFloat64(v)
	x.Mul(x, big.NewFloat(100))
	if x.Sign() < 0 {
		x.Sub(x, big.NewFloat(0.5))
	} else {
		x.Add(x, big.NewFloat(0.5))
	}
	cents, _ := x.Int(nil)
	return decimal.NewFromBigInt(cents, -2)
}

func nonFinite(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+∞"
	case math.IsInf(v, -1):
		return "-∞"
	default:
		return "NaN"
	}
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(thousandsSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
