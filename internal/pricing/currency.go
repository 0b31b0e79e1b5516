package pricing

import (
	"fmt"
	"strings"
)

type Currency string

const (
	OMR Currency = "OMR"
	USD Currency = "USD"
	SAR Currency = "SAR"

	// Base is the currency every product record must carry a price in.
	Base = OMR
)

// rates are multipliers from the base currency: amount(c) = amount(Base) * rates[c].
var rates = map[Currency]float64{
	OMR: 1.0,
	USD: 2.6,
	SAR: 9.75,
}

// Currencies lists the supported currencies, base first.
func Currencies() []Currency {
	return []Currency{OMR, USD, SAR}
}

func (c Currency) Valid() bool {
	_, ok := rates[c]
	return ok
}

func (c Currency) String() string { return string(c) }

// ParseCurrency accepts a currency code in any letter case.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}
	return c, nil
}

// Rate returns the multiplier that converts a base-currency amount into c.
func Rate(c Currency) (float64, error) {
	r, ok := rates[c]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, string(c))
	}
	return r, nil
}

// FromBase converts a base-currency amount into c.
func FromBase(amount float64, c Currency) (float64, error) {
	r, err := Rate(c)
	if err != nil {
		return 0, err
	}
	return amount * r, nil
}

// ToBase converts an amount expressed in c back into the base currency.
func ToBase(amount float64, c Currency) (float64, error) {
	r, err := Rate(c)
	if err != nil {
		return 0, err
	}
	return amount / r, nil
}

func Convert(amount float64, from, to Currency) (float64, error) {
	base, err := ToBase(amount, from)
	if err != nil {
		return 0, err
	}
	return FromBase(base, to)
}
