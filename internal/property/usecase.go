package property

import (
	"context"

	"github.com/fekuna/coffee-storefront-service/internal/model"
	"github.com/fekuna/coffee-storefront-service/internal/property/dto"
)

type UseCase interface {
	CreateProperty(ctx context.Context, input *dto.CreatePropertyInput) (*model.Property, error)
	ListProperties(ctx context.Context, productID string) ([]model.Property, error)
	UpdateProperty(ctx context.Context, input *dto.UpdatePropertyInput) (*model.Property, error)
	DeleteProperty(ctx context.Context, id string) error

	AddOption(ctx context.Context, input *dto.OptionInput) (*model.PropertyOption, error)
	UpdateOption(ctx context.Context, input *dto.OptionInput) (*model.PropertyOption, error)
	DeleteOption(ctx context.Context, id string) error

	// MigrateLegacyPrices rewrites every legacy-modifier option price of a product in
	// absolute form and returns how many options changed.
	MigrateLegacyPrices(ctx context.Context, productID string) (int, error)
}

// Catalog is the part of the product use case property administration depends on.
type Catalog interface {
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	InvalidateProduct(ctx context.Context, id string)
}
