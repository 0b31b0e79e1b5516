package handler

import (
	"context"
	"encoding/json"

	"github.com/fekuna/coffee-storefront-service/internal/pkg/i18n"
	"github.com/fekuna/coffee-storefront-service/internal/pkg/logger"
	"github.com/fekuna/coffee-storefront-service/internal/preference"
	"github.com/fekuna/coffee-storefront-service/internal/pricing"
	"github.com/fekuna/coffee-storefront-service/internal/product"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ PricingServiceServer = (*PricingHandler)(nil)

type PricingHandler struct {
	uc        product.UseCase
	presenter *Presenter
	logger    logger.ZapLogger
}

func NewPricingHandler(uc product.UseCase, presenter *Presenter, log logger.ZapLogger) *PricingHandler {
	return &PricingHandler{
		uc:        uc,
		presenter: presenter,
		logger:    log,
	}
}

type pricingRequest struct {
	productID string
	currency  pricing.Currency
	arabic    bool
}

func stringField(req *structpb.Struct, key string) string {
	if v, ok := req.GetFields()[key]; ok {
		return v.GetStringValue()
	}
	return ""
}

// parseRequest reads product_id, currency and locale, falling back to the x-currency
// and x-locale metadata.
func parseRequest(ctx context.Context, req *structpb.Struct) (pricingRequest, error) {
	id := stringField(req, "product_id")
	if id == "" {
		return pricingRequest{}, status.Error(codes.InvalidArgument, "product_id is required")
	}
	c, err := pricing.ParseCurrency(preference.Currency(ctx, stringField(req, "currency"), pricing.Base.String()))
	if err != nil {
		return pricingRequest{}, status.Error(codes.InvalidArgument, err.Error())
	}
	return pricingRequest{
		productID: id,
		currency:  c,
		arabic:    i18n.IsArabic(preference.Locale(ctx, stringField(req, "locale"))),
	}, nil
}

func selectionField(req *structpb.Struct) pricing.Selection {
	sel := pricing.Selection{}
	for name, v := range req.GetFields()["selection"].GetStructValue().GetFields() {
		sel[name] = v.GetStringValue()
	}
	return sel
}

// toStruct converts a JSON-tagged view into a Struct message.
func toStruct(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (h *PricingHandler) fail(method string, err error) error {
	st := grpcError(err)
	if status.Code(st) == codes.Internal {
		h.logger.Error("pricing call failed", zap.String("method", method), zap.Error(err))
	}
	return st
}

func (h *PricingHandler) GetProductPrice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in, err := parseRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	price, err := h.uc.GetProductPrice(ctx, in.productID, in.currency)
	if err != nil {
		return nil, h.fail("GetProductPrice", err)
	}
	return toStruct(h.presenter.ProductPrice(*price, in.arabic))
}

func (h *PricingHandler) GetOptionPrice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in, err := parseRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	property, option := stringField(req, "property"), stringField(req, "option")
	if property == "" || option == "" {
		return nil, status.Error(codes.InvalidArgument, "property and option are required")
	}
	price, err := h.uc.GetOptionPrice(ctx, in.productID, property, option, in.currency)
	if err != nil {
		return nil, h.fail("GetOptionPrice", err)
	}
	return toStruct(h.presenter.OptionPrice(*price, in.arabic))
}

func (h *PricingHandler) GetDefaultSelection(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in, err := parseRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	sel, err := h.uc.GetDefaultSelection(ctx, in.productID, in.currency)
	if err != nil {
		return nil, h.fail("GetDefaultSelection", err)
	}
	return toStruct(map[string]interface{}{"selection": sel})
}

func (h *PricingHandler) QuoteSelection(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in, err := parseRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	sel := selectionField(req)
	q, err := h.uc.QuoteSelection(ctx, in.productID, sel, in.currency)
	if err != nil {
		return nil, h.fail("QuoteSelection", err)
	}
	return toStruct(h.presenter.Quote(*q, sel, in.arabic))
}
