package product

import (
	"context"

	"github.com/fekuna/coffee-storefront-service/internal/model"
	"github.com/fekuna/coffee-storefront-service/internal/pricing"
	"github.com/fekuna/coffee-storefront-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	InvalidateProduct(ctx context.Context, id string)

	// Storefront pricing
	GetProductPrice(ctx context.Context, id string, currency pricing.Currency) (*pricing.ProductPrice, error)
	GetOptionPrice(ctx context.Context, id, property, option string, currency pricing.Currency) (*pricing.OptionPrice, error)
	GetDefaultSelection(ctx context.Context, id string, currency pricing.Currency) (pricing.Selection, error)
	QuoteSelection(ctx context.Context, id string, selection pricing.Selection, currency pricing.Currency) (*pricing.Quote, error)
	GetProductPage(ctx context.Context, id string, currency pricing.Currency) (*dto.ShopItem, error)
	ListShop(ctx context.Context, filters *dto.ProductFilters, currency pricing.Currency) ([]dto.ShopItem, int, error)
}
