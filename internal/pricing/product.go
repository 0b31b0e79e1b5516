package pricing

import "fmt"

type ProductPrice struct {
	Currency   Currency
	BasePrice  float64
	SalePrice  *float64
	FinalPrice float64
	IsOnSale   bool
	// SaleIssue is set (wrapping ErrInconsistentSaleData) when the sale flag is on
	// but the sale could not be honored.
	SaleIssue error
}

// ResolveProductPrice computes the regular and effective price of p in c.
//
// The sale price is only looked up when p.OnSale is set, and it only counts when it
// is strictly below the regular price.
func ResolveProductPrice(p Product, c Currency) (ProductPrice, error) {
	if !c.Valid() {
		return ProductPrice{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, string(c))
	}
	if _, ok := p.Price.Explicit(Base); !ok {
		return ProductPrice{}, fmt.Errorf("%w: product %s", ErrMissingBasePrice, p.ID)
	}

	base, _, err := p.Price.Amount(c)
	if err != nil {
		return ProductPrice{}, err
	}

	res := ProductPrice{Currency: c, BasePrice: base, FinalPrice: base}
	if !p.OnSale {
		return res, nil
	}

	sale, ok, err := p.SalePrice.Amount(c)
	if err != nil {
		return ProductPrice{}, err
	}
	if !ok {
		res.SaleIssue = fmt.Errorf("%w: product %s is flagged on sale without a sale price", ErrInconsistentSaleData, p.ID)
		return res, nil
	}

	res.SalePrice = &sale
	if sale >= base {
		res.SaleIssue = fmt.Errorf("%w: product %s sale price %v is not below %v %s", ErrInconsistentSaleData, p.ID, sale, base, c)
		return res, nil
	}

	res.IsOnSale = true
	res.FinalPrice = sale
	return res, nil
}
