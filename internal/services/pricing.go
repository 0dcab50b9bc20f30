package services

import (
	"fmt"
	"math"

	"freight-carbon-service/internal/refdata"
)

// MonetizeSavings converts a CO₂ mass saving into money under the carbon
// price configuration, rounded to two decimals (cents):
//
//	amount = (savingsKg / 1000) × basePricePerTon × rate(currency)
//
// Negative savings produce negative amounts. Unsupported currencies are
// rejected; there is no default currency guess.
func MonetizeSavings(savingsKg float64, currency string, pricing refdata.CarbonPricing) (float64, error) {
	if math.IsNaN(savingsKg) || math.IsInf(savingsKg, 0) {
		return 0, fmt.Errorf("%w: savings must be a finite number", ErrInvalidInput)
	}

	rate, ok := pricing.Rate(currency)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, currency)
	}

	return Round2(savingsKg / 1000 * pricing.BasePricePerTonEUR * rate), nil
}
