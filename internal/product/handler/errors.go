package handler

import (
	"errors"
	"net/http"

	"github.com/fekuna/coffee-storefront-service/internal/pricing"
	"github.com/fekuna/coffee-storefront-service/internal/product"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func grpcError(err error) error {
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, pricing.ErrUnknownOption):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, pricing.ErrUnsupportedCurrency), errors.Is(err, product.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, pricing.ErrMissingBasePrice), errors.Is(err, pricing.ErrTooManyCombinations):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// HTTPStatus maps domain errors to HTTP status codes.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, product.ErrProductNotFound), errors.Is(err, pricing.ErrUnknownOption):
		return http.StatusNotFound
	case errors.Is(err, pricing.ErrUnsupportedCurrency), errors.Is(err, product.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, pricing.ErrMissingBasePrice), errors.Is(err, pricing.ErrTooManyCombinations):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage returns a localized, user-facing description of err.
func (pr *Presenter) ErrorMessage(err error, arabic bool) string {
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		return pr.tr.T(arabic, "ProductNotFound")
	case errors.Is(err, pricing.ErrUnknownOption):
		return pr.tr.T(arabic, "OptionNotFound")
	case errors.Is(err, pricing.ErrUnsupportedCurrency):
		return pr.tr.T(arabic, "UnsupportedCurrency")
	case errors.Is(err, pricing.ErrMissingBasePrice), errors.Is(err, pricing.ErrTooManyCombinations):
		return pr.tr.T(arabic, "PriceUnavailable")
	default:
		return http.StatusText(HTTPStatus(err))
	}
}
