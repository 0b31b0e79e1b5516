package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/fekuna/coffee-storefront-service/internal/model"
	"github.com/fekuna/coffee-storefront-service/internal/pricing"
	"github.com/fekuna/coffee-storefront-service/internal/product"
	"github.com/fekuna/coffee-storefront-service/internal/product/dto"
	"go.uber.org/zap"
)

// storefrontProduct loads a product for the storefront. Inactive products are
// reported as not found.
func (uc *productUseCase) storefrontProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, product.ErrProductNotFound
	}
	return p, nil
}

func (uc *productUseCase) pricingProduct(ctx context.Context, id string) (pricing.Product, error) {
	p, err := uc.storefrontProduct(ctx, id)
	if err != nil {
		return pricing.Product{}, err
	}
	return p.PricingProduct(), nil
}

func (uc *productUseCase) warnSaleIssue(id string, issue error) {
	if issue == nil {
		return
	}
	uc.logger.Warn("ignoring sale price", zap.String("product_id", id), zap.Error(issue))
}

func (uc *productUseCase) GetProductPrice(ctx context.Context, id string, currency pricing.Currency) (*pricing.ProductPrice, error) {
	pp, err := uc.pricingProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	price, err := pricing.ResolveProductPrice(pp, currency)
	if err != nil {
		return nil, err
	}
	uc.warnSaleIssue(id, price.SaleIssue)
	return &price, nil
}

func (uc *productUseCase) GetOptionPrice(ctx context.Context, id, property, option string, currency pricing.Currency) (*pricing.OptionPrice, error) {
	pp, err := uc.pricingProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	prop, ok := pp.Property(property)
	if !ok {
		return nil, fmt.Errorf("%w: property %q", pricing.ErrUnknownOption, property)
	}
	opt, ok := prop.Option(option)
	if !ok {
		return nil, fmt.Errorf("%w: %q=%q", pricing.ErrUnknownOption, property, option)
	}
	price, err := pricing.ResolveOptionPrice(opt, currency)
	if err != nil {
		return nil, err
	}
	uc.warnSaleIssue(id, price.SaleIssue)
	return &price, nil
}

// defaultSelection runs the cheapest-combination search and then gives every other
// property its first option, so the page always opens with a complete selection.
func defaultSelection(pp pricing.Product, currency pricing.Currency) (pricing.Selection, error) {
	sel, err := pricing.SelectDefaultCombination(pp, currency)
	if err != nil {
		return nil, err
	}
	for _, prop := range pp.Properties {
		if _, ok := sel[prop.Name]; ok || len(prop.Options) == 0 {
			continue
		}
		sel[prop.Name] = prop.Options[0].Value
	}
	return sel, nil
}

func (uc *productUseCase) GetDefaultSelection(ctx context.Context, id string, currency pricing.Currency) (pricing.Selection, error) {
	pp, err := uc.pricingProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return defaultSelection(pp, currency)
}

func (uc *productUseCase) QuoteSelection(ctx context.Context, id string, selection pricing.Selection, currency pricing.Currency) (*pricing.Quote, error) {
	pp, err := uc.pricingProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	q, err := pricing.QuoteSelection(pp, selection, currency)
	if err != nil {
		return nil, err
	}
	uc.warnSaleIssue(id, q.Product.SaleIssue)
	if q.Option != nil {
		uc.warnSaleIssue(id, q.Option.SaleIssue)
	}
	return &q, nil
}

// GetProductPage prices one storefront product from a single read: its price, its
// default selection and the quote for that selection.
func (uc *productUseCase) GetProductPage(ctx context.Context, id string, currency pricing.Currency) (*dto.ShopItem, error) {
	if !currency.Valid() {
		return nil, fmt.Errorf("%w: %q", pricing.ErrUnsupportedCurrency, string(currency))
	}
	p, err := uc.storefrontProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	item, err := uc.priceItem(*p, currency)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// priceItem resolves everything the storefront shows for p in currency.
func (uc *productUseCase) priceItem(p model.Product, currency pricing.Currency) (dto.ShopItem, error) {
	pp := p.PricingProduct()
	price, err := pricing.ResolveProductPrice(pp, currency)
	if err != nil {
		return dto.ShopItem{}, err
	}
	uc.warnSaleIssue(p.ID, price.SaleIssue)

	sel, err := defaultSelection(pp, currency)
	if err != nil {
		uc.logger.Warn("no default selection", zap.String("product_id", p.ID), zap.Error(err))
		sel = pricing.Selection{}
	}
	q, err := pricing.QuoteSelection(pp, sel, currency)
	if err != nil {
		return dto.ShopItem{}, err
	}
	if q.Option != nil {
		uc.warnSaleIssue(p.ID, q.Option.SaleIssue)
	}
	return dto.ShopItem{Product: p, Price: price, Selection: sel, Quote: q}, nil
}

// ListShop prices a page of the catalog in currency. Sorting by price uses the quoted
// price of each product's default selection, so the whole filtered set is priced
// before the page is cut.
func (uc *productUseCase) ListShop(ctx context.Context, filters *dto.ProductFilters, currency pricing.Currency) ([]dto.ShopItem, int, error) {
	if !currency.Valid() {
		return nil, 0, fmt.Errorf("%w: %q", pricing.ErrUnsupportedCurrency, string(currency))
	}

	byPrice := filters.SortBy == "price"
	query := *filters
	if byPrice {
		query.SortBy = ""
		query.Page = 0
		query.PageSize = 0
	}

	products, count, err := uc.repo.FindAll(ctx, &query)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.ShopItem, 0, len(products))
	for _, p := range products {
		item, err := uc.priceItem(p, currency)
		if errors.Is(err, pricing.ErrMissingBasePrice) {
			uc.logger.Warn("skipping product without base price", zap.String("product_id", p.ID))
			count--
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}

	if !byPrice {
		return items, count, nil
	}

	desc := strings.ToLower(filters.SortOrder) == "desc"
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return items[i].Quote.UnitPrice > items[j].Quote.UnitPrice
		}
		return items[i].Quote.UnitPrice < items[j].Quote.UnitPrice
	})

	total := len(items)
	if filters.PageSize > 0 {
		page := filters.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * filters.PageSize
		if start > total {
			start = total
		}
		end := start + filters.PageSize
		if end > total {
			end = total
		}
		items = items[start:end]
	}
	return items, total, nil
}
