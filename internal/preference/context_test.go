package preference

import (
	"context"
	"testing"

	"google.golang.org/grpc/metadata"
)

func TestCurrency(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(CurrencyKey, "SAR", LocaleKey, "ar"))

	if got := Currency(ctx, "USD", "OMR"); got != "USD" {
		t.Fatalf("explicit value should win, got %q", got)
	}
	if got := Currency(ctx, "", "OMR"); got != "SAR" {
		t.Fatalf("metadata value expected, got %q", got)
	}
	if got := Currency(context.Background(), "", "OMR"); got != "OMR" {
		t.Fatalf("fallback expected, got %q", got)
	}
	if got := Locale(ctx, ""); got != "ar" {
		t.Fatalf("locale = %q", got)
	}
	if got := Locale(context.Background(), ""); got != "" {
		t.Fatalf("locale without metadata = %q", got)
	}
}
