package property

import (
	"context"

	"github.com/fekuna/coffee-storefront-service/internal/model"
)

type Repository interface {
	CreateProperty(ctx context.Context, property *model.Property) error
	// FindPropertyByID loads the property with its options.
	FindPropertyByID(ctx context.Context, id string) (*model.Property, error)
	ListByProduct(ctx context.Context, productID string) ([]model.Property, error)
	UpdateProperty(ctx context.Context, property *model.Property) error
	DeleteProperty(ctx context.Context, id string) error

	CreateOption(ctx context.Context, option *model.PropertyOption) error
	FindOptionByID(ctx context.Context, id string) (*model.PropertyOption, error)
	UpdateOption(ctx context.Context, option *model.PropertyOption) error
	DeleteOption(ctx context.Context, id string) error
	// UpdateOptions writes every option in a single transaction.
	UpdateOptions(ctx context.Context, options []model.PropertyOption) error
}
