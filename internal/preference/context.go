package preference

import (
	"context"

	"google.golang.org/grpc/metadata"
)

const (
	CurrencyKey = "x-currency"
	LocaleKey   = "x-locale"
)

func fromMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if val := md.Get(key); len(val) > 0 {
		return val[0]
	}
	return ""
}

// Currency returns the explicit value when set, else the x-currency metadata, else
// fallback. Handlers call it once and pass the result down.
func Currency(ctx context.Context, explicit, fallback string) string {
	if explicit != "" {
		return explicit
	}
	if v := fromMetadata(ctx, CurrencyKey); v != "" {
		return v
	}
	return fallback
}

// Locale returns the explicit value when set, else the x-locale metadata.
func Locale(ctx context.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return fromMetadata(ctx, LocaleKey)
}
