package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/coffee-storefront-service/internal/model"
	"github.com/fekuna/coffee-storefront-service/internal/pkg/cache"
	"github.com/fekuna/coffee-storefront-service/internal/pkg/logger"
	"github.com/fekuna/coffee-storefront-service/internal/pricing"
	"github.com/fekuna/coffee-storefront-service/internal/product"
	"github.com/fekuna/coffee-storefront-service/internal/property"
	"github.com/fekuna/coffee-storefront-service/internal/property/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	lockTTL      = 30 * time.Second
	lockAttempts = 3
)

type propertyUseCase struct {
	repo      property.Repository
	catalog   property.Catalog
	cache     *cache.RedisClient
	publisher product.EventPublisher
	logger    logger.ZapLogger
	retryWait time.Duration
}

// NewPropertyUseCase wires property administration. Without a cache the legacy price
// migration runs unlocked; without a publisher no events are emitted.
func NewPropertyUseCase(repo property.Repository, catalog property.Catalog, cache *cache.RedisClient, publisher product.EventPublisher, log logger.ZapLogger) property.UseCase {
	return &propertyUseCase{
		repo:      repo,
		catalog:   catalog,
		cache:     cache,
		publisher: publisher,
		logger:    log,
		retryWait: 100 * time.Millisecond,
	}
}

func (uc *propertyUseCase) CreateProperty(ctx context.Context, input *dto.CreatePropertyInput) (*model.Property, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", product.ErrInvalidInput)
	}
	// Fails with ErrProductNotFound for an unknown product.
	p, err := uc.catalog.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	for _, existing := range p.Properties {
		if existing.Name == name {
			return nil, fmt.Errorf("%w: property %q already exists", product.ErrInvalidInput, name)
		}
	}

	now := time.Now()
	prop := &model.Property{
		BaseModel:    model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		ProductID:    p.ID,
		Name:         name,
		LabelEN:      input.LabelEN,
		LabelAR:      input.LabelAR,
		AffectsPrice: input.AffectsPrice,
		SortOrder:    input.SortOrder,
	}
	if err := uc.repo.CreateProperty(ctx, prop); err != nil {
		return nil, err
	}

	uc.changed(ctx, p.ID, product.EventProductUpdated)
	return prop, nil
}

func (uc *propertyUseCase) ListProperties(ctx context.Context, productID string) ([]model.Property, error) {
	return uc.repo.ListByProduct(ctx, productID)
}

func (uc *propertyUseCase) UpdateProperty(ctx context.Context, input *dto.UpdatePropertyInput) (*model.Property, error) {
	prop, err := uc.findProperty(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	prop.LabelEN = input.LabelEN
	prop.LabelAR = input.LabelAR
	prop.AffectsPrice = input.AffectsPrice
	prop.SortOrder = input.SortOrder
	prop.UpdatedAt = time.Now()

	if err := uc.repo.UpdateProperty(ctx, prop); err != nil {
		return nil, err
	}

	uc.changed(ctx, prop.ProductID, product.EventProductUpdated)
	return prop, nil
}

func (uc *propertyUseCase) DeleteProperty(ctx context.Context, id string) error {
	prop, err := uc.repo.FindPropertyByID(ctx, id)
	if err != nil {
		return err
	}
	if prop == nil {
		return nil // Already deleted
	}
	if err := uc.repo.DeleteProperty(ctx, id); err != nil {
		return err
	}

	uc.changed(ctx, prop.ProductID, product.EventProductUpdated)
	return nil
}

func (uc *propertyUseCase) findProperty(ctx context.Context, id string) (*model.Property, error) {
	prop, err := uc.repo.FindPropertyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, property.ErrPropertyNotFound
	}
	return prop, nil
}

func validateOption(input *dto.OptionInput) error {
	if strings.TrimSpace(input.Value) == "" {
		return fmt.Errorf("%w: value is required", product.ErrInvalidInput)
	}
	for _, p := range []*float64{input.PriceOMR, input.PriceUSD, input.PriceSAR, input.SalePriceOMR, input.SalePriceUSD, input.SalePriceSAR} {
		if p != nil && *p < 0 {
			return fmt.Errorf("%w: prices cannot be negative", product.ErrInvalidInput)
		}
	}
	return nil
}

// applyOptionInput writes the absolute prices of input into o. A price given in
// absolute form replaces any legacy modifier of the same kind.
func applyOptionInput(o *model.PropertyOption, input *dto.OptionInput) {
	o.Value = strings.TrimSpace(input.Value)
	o.LabelEN = input.LabelEN
	o.LabelAR = input.LabelAR
	o.PriceOMR = input.PriceOMR
	o.PriceUSD = input.PriceUSD
	o.PriceSAR = input.PriceSAR
	o.OnSale = input.OnSale
	o.SalePriceOMR = input.SalePriceOMR
	o.SalePriceUSD = input.SalePriceUSD
	o.SalePriceSAR = input.SalePriceSAR
	o.SortOrder = input.SortOrder

	if input.PriceOMR != nil || input.PriceUSD != nil || input.PriceSAR != nil {
		o.PriceModifier = nil
		o.PriceModifierUSD = nil
		o.PriceModifierSAR = nil
	}
	if input.SalePriceOMR != nil || input.SalePriceUSD != nil || input.SalePriceSAR != nil {
		o.SalePriceModifier = nil
	}
}

func (uc *propertyUseCase) AddOption(ctx context.Context, input *dto.OptionInput) (*model.PropertyOption, error) {
	if err := validateOption(input); err != nil {
		return nil, err
	}
	prop, err := uc.findProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}
	value := strings.TrimSpace(input.Value)
	for _, existing := range prop.Options {
		if existing.Value == value {
			return nil, fmt.Errorf("%w: option %q already exists", product.ErrInvalidInput, value)
		}
	}

	now := time.Now()
	o := &model.PropertyOption{
		BaseModel:  model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		PropertyID: prop.ID,
	}
	applyOptionInput(o, input)
	if err := uc.repo.CreateOption(ctx, o); err != nil {
		return nil, err
	}

	uc.changed(ctx, prop.ProductID, product.EventProductUpdated)
	return o, nil
}

func (uc *propertyUseCase) UpdateOption(ctx context.Context, input *dto.OptionInput) (*model.PropertyOption, error) {
	if err := validateOption(input); err != nil {
		return nil, err
	}
	o, err := uc.repo.FindOptionByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, property.ErrOptionNotFound
	}
	prop, err := uc.findProperty(ctx, o.PropertyID)
	if err != nil {
		return nil, err
	}

	applyOptionInput(o, input)
	o.UpdatedAt = time.Now()
	if err := uc.repo.UpdateOption(ctx, o); err != nil {
		return nil, err
	}

	uc.changed(ctx, prop.ProductID, product.EventProductUpdated)
	return o, nil
}

func (uc *propertyUseCase) DeleteOption(ctx context.Context, id string) error {
	o, err := uc.repo.FindOptionByID(ctx, id)
	if err != nil {
		return err
	}
	if o == nil {
		return nil // Already deleted
	}
	prop, err := uc.findProperty(ctx, o.PropertyID)
	if err != nil {
		return err
	}
	if err := uc.repo.DeleteOption(ctx, id); err != nil {
		return err
	}

	uc.changed(ctx, prop.ProductID, product.EventProductUpdated)
	return nil
}

func (uc *propertyUseCase) MigrateLegacyPrices(ctx context.Context, productID string) (int, error) {
	if uc.cache != nil {
		lockKey := fmt.Sprintf("lock:migrate-prices:%s", productID)
		lockValue := uuid.New().String()

		acquired := false
		for i := 0; i < lockAttempts; i++ {
			ok, err := uc.cache.AcquireLock(ctx, lockKey, lockValue, lockTTL)
			if err != nil {
				uc.logger.Error("failed to acquire lock redis error", zap.Error(err))
			}
			if ok {
				acquired = true
				break
			}
			time.Sleep(uc.retryWait)
		}
		if !acquired {
			return 0, property.ErrMigrationBusy
		}
		defer func() {
			if err := uc.cache.ReleaseLock(ctx, lockKey, lockValue); err != nil {
				uc.logger.Warn("failed to release migration lock", zap.String("product_id", productID), zap.Error(err))
			}
		}()
	}

	// Existence check only. Options are read from the store, never from the cache.
	if _, err := uc.catalog.GetProduct(ctx, productID); err != nil {
		return 0, err
	}
	props, err := uc.repo.ListByProduct(ctx, productID)
	if err != nil {
		return 0, err
	}

	var changed []model.PropertyOption
	now := time.Now()
	for _, prop := range props {
		for _, o := range prop.Options {
			if !o.IsLegacy() {
				continue
			}
			migrated, ok, err := pricing.MigrateOption(o.PricingOption())
			if err != nil {
				return 0, fmt.Errorf("migrate option %s: %w", o.ID, err)
			}
			if !ok {
				continue
			}
			o.ApplyAbsolute(migrated)
			o.UpdatedAt = now
			changed = append(changed, o)
		}
	}

	if len(changed) == 0 {
		return 0, nil
	}
	if err := uc.repo.UpdateOptions(ctx, changed); err != nil {
		return 0, err
	}

	uc.logger.Info("migrated legacy option prices",
		zap.String("product_id", productID),
		zap.Int("options", len(changed)),
	)
	uc.changed(ctx, productID, product.EventPricesMigrated)
	return len(changed), nil
}

// changed drops the product from the storefront cache and announces the write.
func (uc *propertyUseCase) changed(ctx context.Context, productID, eventType string) {
	uc.catalog.InvalidateProduct(ctx, productID)
	if uc.publisher == nil {
		return
	}
	data, err := json.Marshal(product.CatalogEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		ProductID: productID,
		Timestamp: time.Now(),
	})
	if err != nil {
		uc.logger.Error("failed to marshal catalog event", zap.Error(err))
		return
	}
	if err := uc.publisher.Publish(ctx, productID, data); err != nil {
		uc.logger.Error("failed to publish catalog event",
			zap.String("event_type", eventType),
			zap.String("product_id", productID),
			zap.Error(err),
		)
	}
}
