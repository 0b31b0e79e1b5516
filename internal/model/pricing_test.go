package model

import (
	"math"
	"testing"

	"github.com/fekuna/coffee-storefront-service/internal/pricing"
)

func f(v float64) *float64 { return &v }

func TestPropertyOption_PriceSpecShape(t *testing.T) {
	tests := []struct {
		name       string
		opt        PropertyOption
		want       pricing.SpecKind
		wantLegacy bool
	}{
		{"absolute", PropertyOption{PriceOMR: f(3)}, pricing.SpecAbsolute, false},
		{"absolute keeps modifier", PropertyOption{PriceUSD: f(8), PriceModifier: f(1)}, pricing.SpecAbsolute, true},
		{"legacy", PropertyOption{PriceModifier: f(1.5)}, pricing.SpecLegacyModifier, true},
		{"zero absolute falls to legacy", PropertyOption{PriceOMR: f(0), PriceModifier: f(2)}, pricing.SpecLegacyModifier, true},
		{"nothing", PropertyOption{}, pricing.SpecNone, false},
	}
	for _, tt := range tests {
		spec := tt.opt.PriceSpec()
		if got := spec.Kind(); got != tt.want {
			t.Fatalf("%s: kind = %v, want %v", tt.name, got, tt.want)
		}
		if spec.HasLegacy() != tt.wantLegacy || tt.opt.IsLegacy() != tt.wantLegacy {
			t.Fatalf("%s: legacy = %v, want %v", tt.name, spec.HasLegacy(), tt.wantLegacy)
		}
	}
}

func TestPropertyOption_MixedColumnsResolvePerCurrency(t *testing.T) {
	tests := []struct {
		name       string
		opt        PropertyOption
		currency   pricing.Currency
		want       float64
		wantSource pricing.SpecKind
	}{
		{"usd absolute", PropertyOption{PriceUSD: f(5), PriceModifier: f(1.5)}, pricing.USD, 5, pricing.SpecAbsolute},
		{"omr from base modifier", PropertyOption{PriceUSD: f(5), PriceModifier: f(1.5)}, pricing.OMR, 1.5, pricing.SpecLegacyModifier},
		{"sar from base modifier", PropertyOption{PriceUSD: f(5), PriceModifier: f(1.5)}, pricing.SAR, 14.625, pricing.SpecLegacyModifier},
		{"sar modifier over converted absolute", PropertyOption{PriceOMR: f(2), PriceModifierSAR: f(30)}, pricing.SAR, 30, pricing.SpecLegacyModifier},
		{"omr absolute", PropertyOption{PriceOMR: f(2), PriceModifierSAR: f(30)}, pricing.OMR, 2, pricing.SpecAbsolute},
		{"usd converted absolute", PropertyOption{PriceOMR: f(2), PriceModifierSAR: f(30)}, pricing.USD, 5.2, pricing.SpecAbsolute},
	}
	for _, tt := range tests {
		got, err := pricing.ResolveOptionPrice(tt.opt.PricingOption(), tt.currency)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if math.Abs(got.RegularPrice-tt.want) > 1e-9 || got.FinalPrice != got.RegularPrice {
			t.Fatalf("%s: regular = %v final = %v, want %v", tt.name, got.RegularPrice, got.FinalPrice, tt.want)
		}
		if got.Source != tt.wantSource {
			t.Fatalf("%s: source = %v, want %v", tt.name, got.Source, tt.wantSource)
		}
	}
}

func TestPropertyOption_ApplyAbsoluteMixed(t *testing.T) {
	o := PropertyOption{PriceUSD: f(5), PriceModifier: f(1.5)}
	if !o.IsLegacy() {
		t.Fatalf("mixed option should still count as legacy")
	}
	migrated, changed, err := pricing.MigrateOption(o.PricingOption())
	if err != nil || !changed {
		t.Fatalf("migrate: changed=%v err=%v", changed, err)
	}
	o.ApplyAbsolute(migrated)

	if o.IsLegacy() || o.PriceModifier != nil {
		t.Fatalf("legacy columns not cleared: %+v", o)
	}
	if o.PriceOMR == nil || *o.PriceOMR != 1.5 {
		t.Fatalf("OMR price = %v", o.PriceOMR)
	}
	if o.PriceUSD == nil || *o.PriceUSD != 5 {
		t.Fatalf("USD price = %v", o.PriceUSD)
	}
	if o.PriceSAR == nil || *o.PriceSAR != 14.63 {
		t.Fatalf("SAR price = %v", o.PriceSAR)
	}
}

func TestProduct_PricingProduct(t *testing.T) {
	p := Product{
		BaseModel:    BaseModel{ID: "p1"},
		PriceOMR:     10,
		PriceUSD:     f(25),
		OnSale:       true,
		SalePriceOMR: f(8),
		Properties: []Property{{
			Name:         "roast",
			LabelEN:      "Roast Level",
			LabelAR:      "درجة التحميص",
			AffectsPrice: true,
			Options: []PropertyOption{
				{Value: "dark", PriceModifier: f(1.5)},
			},
		}},
	}

	pp := p.PricingProduct()
	if v, _ := pp.Price.Explicit(pricing.USD); v != 25 {
		t.Fatalf("USD price = %v", v)
	}
	if v, _ := pp.SalePrice.Explicit(pricing.OMR); v != 8 {
		t.Fatalf("sale price = %v", v)
	}
	if len(pp.Properties) != 1 || pp.Properties[0].Label.For(true) != "درجة التحميص" {
		t.Fatalf("unexpected properties: %+v", pp.Properties)
	}
	if pp.Properties[0].Options[0].Price.Kind() != pricing.SpecLegacyModifier {
		t.Fatalf("option should be legacy")
	}
}

func TestPropertyOption_ApplyAbsolute(t *testing.T) {
	o := PropertyOption{PriceModifier: f(1.5), OnSale: true, SalePriceModifier: f(1)}
	if !o.IsLegacy() {
		t.Fatalf("expected legacy option")
	}
	migrated, changed, err := pricing.MigrateOption(o.PricingOption())
	if err != nil || !changed {
		t.Fatalf("migrate: changed=%v err=%v", changed, err)
	}
	o.ApplyAbsolute(migrated)

	if o.IsLegacy() {
		t.Fatalf("option still legacy after apply")
	}
	if o.PriceModifier != nil || o.SalePriceModifier != nil {
		t.Fatalf("legacy columns not cleared")
	}
	if o.PriceSAR == nil || *o.PriceSAR != 14.63 {
		t.Fatalf("SAR price = %v", o.PriceSAR)
	}
	if o.SalePriceUSD == nil || *o.SalePriceUSD != 2.6 {
		t.Fatalf("USD sale price = %v", o.SalePriceUSD)
	}
}
