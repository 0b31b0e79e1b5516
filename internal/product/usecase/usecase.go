package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/coffee-storefront-service/internal/model"
	"github.com/fekuna/coffee-storefront-service/internal/pkg/cache"
	"github.com/fekuna/coffee-storefront-service/internal/pkg/logger"
	"github.com/fekuna/coffee-storefront-service/internal/pricing"
	"github.com/fekuna/coffee-storefront-service/internal/product"
	"github.com/fekuna/coffee-storefront-service/internal/product/dto"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const notFoundMarker = "notfound"

type productUseCase struct {
	repo      product.Repository
	cache     *cache.RedisClient
	publisher product.EventPublisher
	ttl       time.Duration
	logger    logger.ZapLogger
}

// NewProductUseCase wires the catalog use case. cache and publisher may be nil, in
// which case reads go straight to the repository and no events are emitted.
func NewProductUseCase(repo product.Repository, cache *cache.RedisClient, publisher product.EventPublisher, ttl time.Duration, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		ttl:       ttl,
		logger:    log,
	}
}

func productKey(id string) string {
	return fmt.Sprintf("products:item:%s", id)
}

func validatePrices(priceOMR float64, optional ...*float64) error {
	if priceOMR <= 0 {
		return fmt.Errorf("%w: price_omr must be positive", pricing.ErrMissingBasePrice)
	}
	for _, p := range optional {
		if p != nil && *p < 0 {
			return fmt.Errorf("%w: prices cannot be negative", product.ErrInvalidInput)
		}
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if strings.TrimSpace(input.NameEN) == "" || strings.TrimSpace(input.NameAR) == "" {
		return nil, fmt.Errorf("%w: name_en and name_ar are required", product.ErrInvalidInput)
	}
	if err := validatePrices(input.PriceOMR, input.PriceUSD, input.PriceSAR, input.SalePriceOMR, input.SalePriceUSD, input.SalePriceSAR); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &model.Product{
		BaseModel:     model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		NameEN:        input.NameEN,
		NameAR:        input.NameAR,
		DescriptionEN: optional(input.DescriptionEN),
		DescriptionAR: optional(input.DescriptionAR),
		Category:      optional(input.Category),
		ImageURL:      optional(input.ImageURL),
		PriceOMR:      input.PriceOMR,
		PriceUSD:      input.PriceUSD,
		PriceSAR:      input.PriceSAR,
		OnSale:        input.OnSale,
		SalePriceOMR:  input.SalePriceOMR,
		SalePriceUSD:  input.SalePriceUSD,
		SalePriceSAR:  input.SalePriceSAR,
		IsActive:      true,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.publish(ctx, product.EventProductUpdated, p.ID)
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	key := productKey(id)
	if uc.cache != nil {
		data, err := uc.cache.Client.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			if string(data) == notFoundMarker {
				return nil, product.ErrProductNotFound
			}
			var p model.Product
			if err := json.Unmarshal(data, &p); err == nil {
				return &p, nil
			}
			uc.logger.Warn("failed to unmarshal cached product", zap.String("product_id", id), zap.Error(err))
		case errors.Is(err, redis.Nil):
		default:
			uc.logger.Warn("redis get failed, continuing with DB", zap.String("product_id", id), zap.Error(err))
		}
	}

	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		if uc.cache != nil {
			uc.cache.Client.Set(ctx, key, notFoundMarker, time.Minute)
		}
		return nil, product.ErrProductNotFound
	}

	if uc.cache != nil {
		if data, err := json.Marshal(p); err == nil {
			if err := uc.cache.Client.Set(ctx, key, data, uc.ttl).Err(); err != nil {
				uc.logger.Warn("failed to cache product", zap.String("product_id", id), zap.Error(err))
			}
		}
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if strings.TrimSpace(input.NameEN) == "" || strings.TrimSpace(input.NameAR) == "" {
		return nil, fmt.Errorf("%w: name_en and name_ar are required", product.ErrInvalidInput)
	}
	if err := validatePrices(input.PriceOMR, input.PriceUSD, input.PriceSAR, input.SalePriceOMR, input.SalePriceUSD, input.SalePriceSAR); err != nil {
		return nil, err
	}

	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrProductNotFound
	}

	p.NameEN = input.NameEN
	p.NameAR = input.NameAR
	p.DescriptionEN = optional(input.DescriptionEN)
	p.DescriptionAR = optional(input.DescriptionAR)
	p.Category = optional(input.Category)
	p.ImageURL = optional(input.ImageURL)
	p.PriceOMR = input.PriceOMR
	p.PriceUSD = input.PriceUSD
	p.PriceSAR = input.PriceSAR
	p.OnSale = input.OnSale
	p.SalePriceOMR = input.SalePriceOMR
	p.SalePriceUSD = input.SalePriceUSD
	p.SalePriceSAR = input.SalePriceSAR
	p.IsActive = input.IsActive
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.InvalidateProduct(ctx, p.ID)
	uc.publish(ctx, product.EventProductUpdated, p.ID)
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return nil // Already deleted
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.InvalidateProduct(ctx, id)
	uc.publish(ctx, product.EventProductDeleted, id)
	return nil
}

func (uc *productUseCase) InvalidateProduct(ctx context.Context, id string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Client.Del(ctx, productKey(id)).Err(); err != nil {
		uc.logger.Error("failed to invalidate product cache", zap.String("product_id", id), zap.Error(err))
	}
}

func (uc *productUseCase) publish(ctx context.Context, eventType, productID string) {
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
