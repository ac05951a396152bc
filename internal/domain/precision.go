package domain

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultDecimals applies to any symbol without an explicit entry. It trades
// typical on-chain precision against UI readability.
const DefaultDecimals = 4

// decimalsBySymbol is the canonical display/submission precision per asset.
// Fiats and USDT-as-stable get 2 places.
var decimalsBySymbol = map[string]int{
	"BTC":  6,
	"ETH":  5,
	"USD":  2,
	"EUR":  2,
	"GBP":  2,
	"ZAR":  2,
	"USDT": 2,
}

// PrecisionTable maps symbols to decimal places, with a default for anything
// unlisted. The zero value falls back entirely to the built-in table.
type PrecisionTable struct {
	overrides map[string]int
}

// NewPrecisionTable builds a table layering overrides on the built-in
// defaults. Negative override values are ignored.
func NewPrecisionTable(overrides map[string]int) PrecisionTable {
	m := make(map[string]int, len(overrides))
	for sym, d := range overrides {
		if d >= 0 {
			m[sym] = d
		}
	}
	return PrecisionTable{overrides: m}
}

// DecimalsFor returns the decimal-place count for a symbol.
func (t PrecisionTable) DecimalsFor(symbol string) int {
	if d, ok := t.overrides[symbol]; ok {
		return d
	}
	return DecimalsFor(symbol)
}

// DecimalsFor returns the built-in decimal-place count for a symbol, or
// DefaultDecimals when the symbol is not listed.
func DecimalsFor(symbol string) int {
	if d, ok := decimalsBySymbol[symbol]; ok {
		return d
	}
	return DefaultDecimals
}

// FloorToDecimals truncates an amount down to the given number of decimal
// places. It never rounds up: the result is used wherever the amount
// represents the maximum a user may submit, and rounding up could advertise
// funds the user does not have once the server re-validates. Non-finite or
// negative input yields 0.
func FloorToDecimals(amount float64, decimals int) float64 {
	if isNonFinite(amount) || amount <= 0 {
		return 0
	}
	if decimals < 0 {
		decimals = 0
	}
	pow := math.Pow(10, float64(decimals))
	return math.Floor(amount*pow) / pow
}

var displayPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount for display with locale-aware grouping and
// round-to-nearest at the symbol's precision. Display only: submission-path
// amounts must go through FloorToDecimals instead. Non-finite input renders
// as "–".
func FormatAmount(symbol string, amount float64) string {
	return formatWithDecimals(amount, DecimalsFor(symbol))
}

// FormatAmount renders an amount for display honoring the table's overrides.
func (t PrecisionTable) FormatAmount(symbol string, amount float64) string {
	return formatWithDecimals(amount, t.DecimalsFor(symbol))
}

func formatWithDecimals(amount float64, decimals int) string {
	if isNonFinite(amount) {
		return "–"
	}
	return displayPrinter.Sprint(number.Decimal(amount,
		number.MaxFractionDigits(decimals),
		number.MinFractionDigits(0),
	))
}
