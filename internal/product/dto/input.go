package dto

type CreateProductInput struct {
	NameEN        string
	NameAR        string
	DescriptionEN string
	DescriptionAR string
	Category      string
	ImageURL      string
	PriceOMR      float64
	PriceUSD      *float64
	PriceSAR      *float64
	OnSale        bool
	SalePriceOMR  *float64
	SalePriceUSD  *float64
	SalePriceSAR  *float64
}

type UpdateProductInput struct {
	ID            string
	NameEN        string
	NameAR        string
	DescriptionEN string
	DescriptionAR string
	Category      string
	ImageURL      string
	PriceOMR      float64
	PriceUSD      *float64
	PriceSAR      *float64
	OnSale        bool
	SalePriceOMR  *float64
	SalePriceUSD  *float64
	SalePriceSAR  *float64
	IsActive      bool
}
