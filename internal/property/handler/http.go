package handler

import (
	"errors"
	"net/http"

	"github.com/fekuna/coffee-storefront-service/internal/pkg/logger"
	producthandler "github.com/fekuna/coffee-storefront-service/internal/product/handler"
	"github.com/fekuna/coffee-storefront-service/internal/property"
	"github.com/fekuna/coffee-storefront-service/internal/property/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPHandler struct {
	uc     property.UseCase
	logger logger.ZapLogger
}

func NewHTTPHandler(uc property.UseCase, log logger.ZapLogger) *HTTPHandler {
	return &HTTPHandler{
		uc:     uc,
		logger: log,
	}
}

// RegisterRoutes mounts property administration on the admin group.
func (h *HTTPHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/products/:id/properties", h.listProperties)
	admin.POST("/products/:id/properties", h.createProperty)
	admin.POST("/products/:id/migrate-legacy-prices", h.migrateLegacyPrices)

	properties := admin.Group("/properties")
	{
		properties.PUT("/:id", h.updateProperty)
		properties.DELETE("/:id", h.deleteProperty)
		properties.POST("/:id/options", h.addOption)
	}

	options := admin.Group("/options")
	{
		options.PUT("/:id", h.updateOption)
		options.DELETE("/:id", h.deleteOption)
	}
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, property.ErrPropertyNotFound), errors.Is(err, property.ErrOptionNotFound):
		return http.StatusNotFound
	case errors.Is(err, property.ErrMigrationBusy):
		return http.StatusConflict
	default:
		return producthandler.HTTPStatus(err)
	}
}

func (h *HTTPHandler) respondError(c *gin.Context, err error) {
	status := httpStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

type propertyReq struct {
	Name         string `json:"name"`
	LabelEN      string `json:"label_en"`
	LabelAR      string `json:"label_ar"`
	AffectsPrice bool   `json:"affects_price"`
	SortOrder    int    `json:"sort_order"`
}

func (h *HTTPHandler) listProperties(c *gin.Context) {
	props, err := h.uc.ListProperties(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": props})
}

func (h *HTTPHandler) createProperty(c *gin.Context) {
	var req propertyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	prop, err := h.uc.CreateProperty(c.Request.Context(), &dto.CreatePropertyInput{
		ProductID:    c.Param("id"),
		Name:         req.Name,
		LabelEN:      req.LabelEN,
		LabelAR:      req.LabelAR,
		AffectsPrice: req.AffectsPrice,
		SortOrder:    req.SortOrder,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, prop)
}

func (h *HTTPHandler) updateProperty(c *gin.Context) {
	var req propertyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	prop, err := h.uc.UpdateProperty(c.Request.Context(), &dto.UpdatePropertyInput{
		ID:           c.Param("id"),
		LabelEN:      req.LabelEN,
		LabelAR:      req.LabelAR,
		AffectsPrice: req.AffectsPrice,
		SortOrder:    req.SortOrder,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prop)
}

func (h *HTTPHandler) deleteProperty(c *gin.Context) {
	if err := h.uc.DeleteProperty(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type optionReq struct {
	Value        string   `json:"value"`
	LabelEN      string   `json:"label_en"`
	LabelAR      string   `json:"label_ar"`
	PriceOMR     *float64 `json:"price_omr"`
	PriceUSD     *float64 `json:"price_usd"`
	PriceSAR     *float64 `json:"price_sar"`
	OnSale       bool     `json:"on_sale"`
	SalePriceOMR *float64 `json:"sale_price_omr"`
	SalePriceUSD *float64 `json:"sale_price_usd"`
	SalePriceSAR *float64 `json:"sale_price_sar"`
	SortOrder    int      `json:"sort_order"`
}

func (r optionReq) input() *dto.OptionInput {
	return &dto.OptionInput{
		Value:        r.Value,
		LabelEN:      r.LabelEN,
		LabelAR:      r.LabelAR,
		PriceOMR:     r.PriceOMR,
		PriceUSD:     r.PriceUSD,
		PriceSAR:     r.PriceSAR,
		OnSale:       r.OnSale,
		SalePriceOMR: r.SalePriceOMR,
		SalePriceUSD: r.SalePriceUSD,
		SalePriceSAR: r.SalePriceSAR,
		SortOrder:    r.SortOrder,
	}
}

func (h *HTTPHandler) addOption(c *gin.Context) {
	var req optionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	input := req.input()
	input.PropertyID = c.Param("id")
	o, err := h.uc.AddOption(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *HTTPHandler) updateOption(c *gin.Context) {
	var req optionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	input := req.input()
	input.ID = c.Param("id")
	o, err := h.uc.UpdateOption(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *HTTPHandler) deleteOption(c *gin.Context) {
	if err := h.uc.DeleteOption(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) migrateLegacyPrices(c *gin.Context) {
	n, err := h.uc.MigrateLegacyPrices(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"migrated": n})
}
