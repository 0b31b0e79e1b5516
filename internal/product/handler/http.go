package handler

import (
	"net/http"
	"strconv"

	"github.com/fekuna/coffee-storefront-service/internal/pkg/i18n"
	"github.com/fekuna/coffee-storefront-service/internal/pkg/logger"
	"github.com/fekuna/coffee-storefront-service/internal/pricing"
	"github.com/fekuna/coffee-storefront-service/internal/product"
	"github.com/fekuna/coffee-storefront-service/internal/product/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPHandler struct {
	uc        product.UseCase
	presenter *Presenter
	logger    logger.ZapLogger
}

func NewHTTPHandler(uc product.UseCase, presenter *Presenter, log logger.ZapLogger) *HTTPHandler {
	return &HTTPHandler{
		uc:        uc,
		presenter: presenter,
		logger:    log,
	}
}

// RegisterRoutes mounts the storefront routes on api and the product admin routes on
// admin. Both groups are expected to be rooted at /api/v1.
func (h *HTTPHandler) RegisterRoutes(api, admin *gin.RouterGroup) {
	api.GET("/shop/products", h.listShop)
	products := api.Group("/products")
	{
		products.GET("/:id", h.getProduct)
		products.GET("/:id/price", h.getProductPrice)
		products.GET("/:id/properties/:property/options/:option/price", h.getOptionPrice)
		products.POST("/:id/quote", h.quoteSelection)
	}

	adminProducts := admin.Group("/products")
	{
		adminProducts.POST("", h.createProduct)
		adminProducts.GET("", h.listProducts)
		adminProducts.GET("/:id", h.getRawProduct)
		adminProducts.PUT("/:id", h.updateProduct)
		adminProducts.DELETE("/:id", h.deleteProduct)
	}
}

// Preferences reads the display currency and language of a storefront request.
// The currency defaults to the base currency; lang wins over Accept-Language.
func Preferences(c *gin.Context) (pricing.Currency, bool, error) {
	currency, err := pricing.ParseCurrency(c.DefaultQuery("currency", pricing.Base.String()))
	if err != nil {
		return "", false, err
	}
	return currency, wantsArabic(c), nil
}

func wantsArabic(c *gin.Context) bool {
	lang := c.Query("lang")
	if lang == "" {
		lang = c.GetHeader("Accept-Language")
	}
	return i18n.IsArabic(lang)
}

func (h *HTTPHandler) respondError(c *gin.Context, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{
		"error":   err.Error(),
		"message": h.presenter.ErrorMessage(err, wantsArabic(c)),
	})
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// clamp keeps v within [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func filtersFromQuery(c *gin.Context) *dto.ProductFilters {
	f := &dto.ProductFilters{
		Category:    c.Query("category"),
		SearchQuery: c.Query("q"),
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order"),
		Page:        max(queryInt(c, "page", 1), 1),
		PageSize:    clamp(queryInt(c, "page_size", defaultPageSize), 1, maxPageSize),
	}
	if v, err := strconv.ParseBool(c.Query("active")); err == nil {
		f.IsActive = &v
	}
	return f
}

func (h *HTTPHandler) listShop(c *gin.Context) {
	currency, arabic, err := Preferences(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	filters := filtersFromQuery(c)
	active := true
	filters.IsActive = &active

	items, total, err := h.uc.ListShop(c.Request.Context(), filters, currency)
	if err != nil {
		h.respondError(c, err)
		return
	}
	views := make([]ShopItemView, 0, len(items))
	for _, item := range items {
		views = append(views, h.presenter.ShopItem(item, arabic))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":     views,
		"total":     total,
		"page":      filters.Page,
		"page_size": filters.PageSize,
		"currency":  currency.String(),
	})
}

func (h *HTTPHandler) getProduct(c *gin.Context) {
	currency, arabic, err := Preferences(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	page, err := h.uc.GetProductPage(c.Request.Context(), c.Param("id"), currency)
	if err != nil {
		h.respondError(c, err)
		return
	}

	view, err := h.presenter.Product(&page.Product, page.Price, page.Quote, page.Selection, arabic)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *HTTPHandler) getProductPrice(c *gin.Context) {
	currency, arabic, err := Preferences(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	price, err := h.uc.GetProductPrice(c.Request.Context(), c.Param("id"), currency)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.presenter.ProductPrice(*price, arabic))
}

func (h *HTTPHandler) getOptionPrice(c *gin.Context) {
	currency, arabic, err := Preferences(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	price, err := h.uc.GetOptionPrice(c.Request.Context(), c.Param("id"), c.Param("property"), c.Param("option"), currency)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.presenter.OptionPrice(*price, arabic))
}

type quoteReq struct {
	Selection map[string]string `json:"selection"`
}

func (h *HTTPHandler) quoteSelection(c *gin.Context) {
	currency, arabic, err := Preferences(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	sel := pricing.Selection(req.Selection)
	q, err := h.uc.QuoteSelection(c.Request.Context(), c.Param("id"), sel, currency)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.presenter.Quote(*q, sel, arabic))
}

type productReq struct {
	NameEN        string   `json:"name_en"`
	NameAR        string   `json:"name_ar"`
	DescriptionEN string   `json:"description_en"`
	DescriptionAR string   `json:"description_ar"`
	Category      string   `json:"category"`
	ImageURL      string   `json:"image_url"`
	PriceOMR      float64  `json:"price_omr"`
	PriceUSD      *float64 `json:"price_usd"`
	PriceSAR      *float64 `json:"price_sar"`
	OnSale        bool     `json:"on_sale"`
	SalePriceOMR  *float64 `json:"sale_price_omr"`
	SalePriceUSD  *float64 `json:"sale_price_usd"`
	SalePriceSAR  *float64 `json:"sale_price_sar"`
	IsActive      *bool    `json:"is_active"`
}

func (h *HTTPHandler) createProduct(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := h.uc.CreateProduct(c.Request.Context(), &dto.CreateProductInput{
		NameEN:        req.NameEN,
		NameAR:        req.NameAR,
		DescriptionEN: req.DescriptionEN,
		DescriptionAR: req.DescriptionAR,
		Category:      req.Category,
		ImageURL:      req.ImageURL,
		PriceOMR:      req.PriceOMR,
		PriceUSD:      req.PriceUSD,
		PriceSAR:      req.PriceSAR,
		OnSale:        req.OnSale,
		SalePriceOMR:  req.SalePriceOMR,
		SalePriceUSD:  req.SalePriceUSD,
		SalePriceSAR:  req.SalePriceSAR,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *HTTPHandler) listProducts(c *gin.Context) {
	filters := filtersFromQuery(c)
	products, total, err := h.uc.ListProducts(c.Request.Context(), filters)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":     products,
		"total":     total,
		"page":      filters.Page,
		"page_size": filters.PageSize,
	})
}

func (h *HTTPHandler) getRawProduct(c *gin.Context) {
	p, err := h.uc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *HTTPHandler) updateProduct(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	p, err := h.uc.UpdateProduct(c.Request.Context(), &dto.UpdateProductInput{
		ID:            c.Param("id"),
		NameEN:        req.NameEN,
		NameAR:        req.NameAR,
		DescriptionEN: req.DescriptionEN,
		DescriptionAR: req.DescriptionAR,
		Category:      req.Category,
		ImageURL:      req.ImageURL,
		PriceOMR:      req.PriceOMR,
		PriceUSD:      req.PriceUSD,
		PriceSAR:      req.PriceSAR,
		OnSale:        req.OnSale,
		SalePriceOMR:  req.SalePriceOMR,
		SalePriceUSD:  req.SalePriceUSD,
		SalePriceSAR:  req.SalePriceSAR,
		IsActive:      active,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *HTTPHandler) deleteProduct(c *gin.Context) {
	if err := h.uc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
