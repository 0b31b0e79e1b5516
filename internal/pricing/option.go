package pricing

import "fmt"

type OptionPrice struct {
	Currency     Currency
	RegularPrice float64
	SalePrice    *float64
	FinalPrice   float64
	HasDiscount  bool
	// IsOnSale mirrors the option's sale flag, whether or not a discount applies.
	IsOnSale  bool
	Source    SpecKind
	SaleIssue error
}

// AffectsPrice reports whether the option carries any price of its own.
func (op OptionPrice) AffectsPrice() bool {
	return op.RegularPrice > 0
}

// ResolveOptionPrice computes the effective price of o in c, looking each of the
// regular and sale prices up with PriceSpec.Resolve. An option with neither an
// absolute price nor a legacy modifier resolves to a zero regular price.
func ResolveOptionPrice(o Option, c Currency) (OptionPrice, error) {
	if !c.Valid() {
		return OptionPrice{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, string(c))
	}

	regular, source, err := o.Price.Resolve(c)
	if err != nil {
		return OptionPrice{}, err
	}
	res := OptionPrice{Currency: c, RegularPrice: regular, FinalPrice: regular, IsOnSale: o.OnSale, Source: source}

	if !o.OnSale {
		return res, nil
	}

	sale, ok, err := o.SalePrice.Amount(c)
	if err != nil {
		return OptionPrice{}, err
	}
	if !ok {
		res.SaleIssue = fmt.Errorf("%w: option %q is flagged on sale without a sale price", ErrInconsistentSaleData, o.Value)
		return res, nil
	}

	res.SalePrice = &sale
	if sale >= res.RegularPrice {
		res.SaleIssue = fmt.Errorf("%w: option %q sale price %v is not below %v %s", ErrInconsistentSaleData, o.Value, sale, res.RegularPrice, c)
		return res, nil
	}

	res.HasDiscount = true
	res.FinalPrice = sale
	return res, nil
}
