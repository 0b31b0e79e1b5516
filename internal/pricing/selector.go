package pricing

import "fmt"

// MaxCombinations bounds the exhaustive search. Price-affecting properties and their
// options are expected to be single digits; anything beyond this is a catalog error.
const MaxCombinations = 1024

// combinations walks the Cartesian product of len(sizes) index ranges like an
// odometer, last position fastest.
type combinations struct {
	sizes   []int
	indices []int
	started bool
}

func newCombinations(sizes []int) *combinations {
	return &combinations{sizes: sizes, indices: make([]int, len(sizes))}
}

func (it *combinations) Next() bool {
	if !it.started {
		it.started = true
		for _, n := range it.sizes {
			if n == 0 {
				return false
			}
		}
		return len(it.sizes) > 0
	}
	for pos := len(it.indices) - 1; pos >= 0; pos-- {
		it.indices[pos]++
		if it.indices[pos] < it.sizes[pos] {
			return true
		}
		it.indices[pos] = 0
	}
	return false
}

func (it *combinations) Indices() []int { return it.indices }

func countCombinations(props []Property) (int, error) {
	total := 1
	for _, prop := range props {
		total *= len(prop.Options)
		if total > MaxCombinations {
			return 0, fmt.Errorf("%w: more than %d", ErrTooManyCombinations, MaxCombinations)
		}
	}
	return total, nil
}

// SelectDefaultCombination picks, for every price-affecting property, the option that
// gives the cheapest combination in c. Only the first price-affecting property
// contributes to a combination's price; later ones keep their first option because
// ties never replace the current best. A product without price-affecting properties
// yields an empty selection.
func SelectDefaultCombination(p Product, c Currency) (Selection, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, string(c))
	}

	props := p.PricingProperties()
	selection := Selection{}
	if len(props) == 0 {
		return selection, nil
	}
	if _, err := countCombinations(props); err != nil {
		return nil, err
	}

	// Price each option of the pricing property once; the iterator only indexes.
	prices := make([]float64, len(props[0].Options))
	for i, o := range props[0].Options {
		op, err := ResolveOptionPrice(o, c)
		if err != nil {
			return nil, err
		}
		prices[i] = op.FinalPrice
	}

	sizes := make([]int, len(props))
	for i, prop := range props {
		sizes[i] = len(prop.Options)
	}

	var best []int
	bestPrice := 0.0
	it := newCombinations(sizes)
	for it.Next() {
		idx := it.Indices()
		price := prices[idx[0]]
		if best == nil || price < bestPrice {
			best = append(best[:0], idx...)
			bestPrice = price
		}
	}

	for i, prop := range props {
		selection[prop.Name] = prop.Options[best[i]].Value
	}
	return selection, nil
}

type Quote struct {
	Currency Currency
	Product  ProductPrice
	// Option is the priced option of the first price-affecting property, when one
	// is selected.
	Option       *OptionPrice
	UnitPrice    float64
	RegularPrice float64
	IsOnSale     bool
}

// QuoteSelection prices a product for a concrete selection. When the selected option
// of the first price-affecting property has a price of its own, it replaces the
// product price; otherwise the product price applies. Every selected value must name
// an existing option.
func QuoteSelection(p Product, sel Selection, c Currency) (Quote, error) {
	pp, err := ResolveProductPrice(p, c)
	if err != nil {
		return Quote{}, err
	}

	for name, value := range sel {
		prop, ok := p.Property(name)
		if !ok {
			return Quote{}, fmt.Errorf("%w: property %q", ErrUnknownOption, name)
		}
		if _, ok := prop.Option(value); !ok {
			return Quote{}, fmt.Errorf("%w: %q=%q", ErrUnknownOption, name, value)
		}
	}

	q := Quote{
		Currency:     c,
		Product:      pp,
		UnitPrice:    pp.FinalPrice,
		RegularPrice: pp.BasePrice,
		IsOnSale:     pp.IsOnSale,
	}

	props := p.PricingProperties()
	if len(props) == 0 {
		return q, nil
	}
	value, ok := sel[props[0].Name]
	if !ok {
		return q, nil
	}
	o, _ := props[0].Option(value)
	op, err := ResolveOptionPrice(o, c)
	if err != nil {
		return Quote{}, err
	}
	if !op.AffectsPrice() {
		return q, nil
	}

	q.Option = &op
	q.UnitPrice = op.FinalPrice
	q.RegularPrice = op.RegularPrice
	q.IsOnSale = op.HasDiscount
	return q, nil
}
