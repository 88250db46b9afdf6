package utils

import "github.com/shopspring/decimal"

// Currency describes a currency the dataset books in, with its fixed
// conversion rate into the reporting currency (CZK).
type Currency struct {
	Code    string          // ISO 4217 code (e.g., "EUR")
	RateCZK decimal.Decimal // Units of CZK per one unit of this currency
}

// Currencies supported by the generator. Rates are fixed for the whole run.
var Currencies = map[string]Currency{
	"CZK": {Code: "CZK", RateCZK: decimal.RequireFromString("1.0")},
	"EUR": {Code: "EUR", RateCZK: decimal.RequireFromString("24.5")},
	"USD": {Code: "USD", RateCZK: decimal.RequireFromString("22.8")},
}

// DefaultCurrency is used when a currency code is not found
var DefaultCurrency = Currencies["CZK"]

// GetCurrency returns the currency configuration for a code, or the default if not found
func GetCurrency(code string) Currency {
	if c, ok := Currencies[code]; ok {
		return c
	}
	return DefaultCurrency
}

// ToCZK converts an amount in this currency to CZK, rounded to 2 places.
func (c Currency) ToCZK(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(c.RateCZK).Round(2)
}

// Round2 converts f to a decimal rounded to 2 places (haléře/cents).
func Round2(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

// RoundTo converts f to a decimal rounded to the given number of places.
func RoundTo(f float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(places)
}

// RandomAmount draws a uniform amount in [min, max) rounded to 2 places.
func RandomAmount(rng *Random, min, max float64) decimal.Decimal {
	return Round2(rng.Float64Range(min, max))
}
