package refdata

// CarbonPricing holds the carbon price configuration: a base price per
// ton of CO₂ in the reference currency (EUR) and per-currency exchange
// multipliers for the supported target currencies.
type CarbonPricing struct {
	BasePricePerTonEUR float64
	Rates              map[string]float64
}

// DefaultCarbonPricing returns the EU ETS based price table
// (April 2025 snapshot).
func DefaultCarbonPricing() CarbonPricing {
	return CarbonPricing{
		BasePricePerTonEUR: 65.89,
		Rates: map[string]float64{
			"EUR": 1.0,
			"USD": 1.06,
			"AUD": 1.62,
			"SAR": 3.98,
		},
	}
}

// Rate returns the exchange multiplier for a currency code. Unsupported
// currencies return false; there is no default currency guess.
func (p CarbonPricing) Rate(currency string) (float64, bool) {
	rate, ok := p.Rates[currency]
	return rate, ok
}
