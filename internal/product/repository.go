package product

import (
	"context"

	"github.com/fekuna/coffee-storefront-service/internal/model"
	"github.com/fekuna/coffee-storefront-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	// FindByID loads the product with its properties and their options.
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error
}
