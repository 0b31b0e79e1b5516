package dto

import (
	"github.com/fekuna/coffee-storefront-service/internal/model"
	"github.com/fekuna/coffee-storefront-service/internal/pricing"
)

type ProductFilters struct {
	Category    string
	IsActive    *bool
	SearchQuery string // name_en / name_ar
	SortBy      string // name, price, created_at
	SortOrder   string // asc, desc
	Page        int
	PageSize    int
}

// ShopItem is one priced entry of the shop listing. Quote prices the default selection,
// so it is the "from" price shown on the card.
type ShopItem struct {
	Product   model.Product
	Price     pricing.ProductPrice
	Selection pricing.Selection
	Quote     pricing.Quote
}
