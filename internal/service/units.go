package service

import (
	"renascer/internal/model"

	"github.com/shopspring/decimal"
)

var gramsPerKilogram = decimal.NewFromInt(1000)

// ToKilograms converts a weight expressed in the given unit to kilograms.
// Gram values divide by 1000; kilogram values pass through unchanged.
func ToKilograms(weight decimal.Decimal, unit string) decimal.Decimal {
	if unit == model.UnitGram {
		return weight.Div(gramsPerKilogram)
	}
	return weight
}

// RoundWeight rounds a weight total to two decimal places for display.
// decimal.Round rounds half away from zero, which is round-half-up for
// the strictly positive weights this system stores.
func RoundWeight(w decimal.Decimal) decimal.Decimal {
	return w.Round(2)
}
