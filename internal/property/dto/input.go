package dto

type CreatePropertyInput struct {
	ProductID    string
	Name         string
	LabelEN      string
	LabelAR      string
	AffectsPrice bool
	SortOrder    int
}

type UpdatePropertyInput struct {
	ID           string
	LabelEN      string
	LabelAR      string
	AffectsPrice bool
	SortOrder    int
}

// OptionInput creates an option (PropertyID set) or updates one (ID set). Prices are
// absolute per-currency amounts; legacy modifiers are never written.
type OptionInput struct {
	ID           string
	PropertyID   string
	Value        string
	LabelEN      string
	LabelAR      string
	PriceOMR     *float64
	PriceUSD     *float64
	PriceSAR     *float64
	OnSale       bool
	SalePriceOMR *float64
	SalePriceUSD *float64
	SalePriceSAR *float64
	SortOrder    int
}
