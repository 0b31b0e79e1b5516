package pricing

import "github.com/shopspring/decimal"

// Decimals is the number of minor-unit digits shown for a currency.
func Decimals(c Currency) int32 {
	if c == OMR {
		return 3
	}
	return 2
}

// Round rounds half away from zero to the currency's minor unit.
func Round(amount float64, c Currency) float64 {
	return decimal.NewFromFloat(amount).Round(Decimals(c)).InexactFloat64()
}

// FormatAmount renders amount with exactly the currency's number of decimals.
func FormatAmount(amount float64, c Currency) string {
	return decimal.NewFromFloat(amount).StringFixed(Decimals(c))
}
