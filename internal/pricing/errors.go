package pricing

import "errors"

var (
	// ErrUnsupportedCurrency is returned for any currency code outside the fixed set.
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrMissingBasePrice means a product has no usable base-currency price.
	// Resolution for that product stops; a zero price would read as "free".
	ErrMissingBasePrice = errors.New("missing base price")

	// ErrInconsistentSaleData is never returned as a failure. It is attached to a
	// resolved price when the sale flag is set but no lower sale price resolves.
	ErrInconsistentSaleData = errors.New("inconsistent sale data")

	ErrTooManyCombinations = errors.New("too many property combinations")
	ErrUnknownOption       = errors.New("unknown property option")
)
