package model

type Product struct {
	BaseModel
	NameEN        string     `db:"name_en" json:"name_en"`
	NameAR        string     `db:"name_ar" json:"name_ar"`
	DescriptionEN *string    `db:"description_en" json:"description_en"`
	DescriptionAR *string    `db:"description_ar" json:"description_ar"`
	Category      *string    `db:"category" json:"category"`
	ImageURL      *string    `db:"image_url" json:"image_url"`
	PriceOMR      float64    `db:"price_omr" json:"price_omr"`
	PriceUSD      *float64   `db:"price_usd" json:"price_usd"`
	PriceSAR      *float64   `db:"price_sar" json:"price_sar"`
	OnSale        bool       `db:"on_sale" json:"on_sale"`
	SalePriceOMR  *float64   `db:"sale_price_omr" json:"sale_price_omr"`
	SalePriceUSD  *float64   `db:"sale_price_usd" json:"sale_price_usd"`
	SalePriceSAR  *float64   `db:"sale_price_sar" json:"sale_price_sar"`
	IsActive      bool       `db:"is_active" json:"is_active"`
	Properties    []Property `db:"-" json:"properties"` // Loaded separately
}

type Property struct {
	BaseModel
	ProductID    string           `db:"product_id" json:"product_id"`
	Name         string           `db:"name" json:"name"`
	LabelEN      string           `db:"label_en" json:"label_en"`
	LabelAR      string           `db:"label_ar" json:"label_ar"`
	AffectsPrice bool             `db:"affects_price" json:"affects_price"`
	SortOrder    int              `db:"sort_order" json:"sort_order"`
	Options      []PropertyOption `db:"-" json:"options"`
}

// PropertyOption keeps both generations of price columns. The price_modifier columns
// predate the absolute price_* columns and are read as standalone prices.
type PropertyOption struct {
	BaseModel
	PropertyID        string   `db:"property_id" json:"property_id"`
	Value             string   `db:"value" json:"value"`
	LabelEN           string   `db:"label_en" json:"label_en"`
	LabelAR           string   `db:"label_ar" json:"label_ar"`
	PriceOMR          *float64 `db:"price_omr" json:"price_omr"`
	PriceUSD          *float64 `db:"price_usd" json:"price_usd"`
	PriceSAR          *float64 `db:"price_sar" json:"price_sar"`
	PriceModifier     *float64 `db:"price_modifier" json:"price_modifier"`
	PriceModifierUSD  *float64 `db:"price_modifier_usd" json:"price_modifier_usd"`
	PriceModifierSAR  *float64 `db:"price_modifier_sar" json:"price_modifier_sar"`
	OnSale            bool     `db:"on_sale" json:"on_sale"`
	SalePriceOMR      *float64 `db:"sale_price_omr" json:"sale_price_omr"`
	SalePriceUSD      *float64 `db:"sale_price_usd" json:"sale_price_usd"`
	SalePriceSAR      *float64 `db:"sale_price_sar" json:"sale_price_sar"`
	SalePriceModifier *float64 `db:"sale_price_modifier" json:"sale_price_modifier"`
	SortOrder         int      `db:"sort_order" json:"sort_order"`
}
