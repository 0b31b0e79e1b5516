package pricing

import (
	"errors"
	"testing"
)

func TestResolveOptionPrice(t *testing.T) {
	tests := []struct {
		name         string
		option       Option
		currency     Currency
		wantRegular  float64
		wantFinal    float64
		wantDiscount bool
		wantOnSale   bool
		wantSource   SpecKind
	}{
		{
			name:        "legacy modifier converted",
			option:      Option{Value: "dark", Price: BaseLegacyModifier(1.5)},
			currency:    SAR,
			wantRegular: 14.625,
			wantFinal:   14.625,
			wantSource:  SpecLegacyModifier,
		},
		{
			name:        "currency specific legacy modifier first",
			option:      Option{Value: "dark", Price: LegacyModifier(map[Currency]float64{OMR: 1.5, USD: 4})},
			currency:    USD,
			wantRegular: 4,
			wantFinal:   4,
			wantSource:  SpecLegacyModifier,
		},
		{
			name:        "absolute price",
			option:      Option{Value: "250g", Price: Absolute(map[Currency]float64{OMR: 3, USD: 8, SAR: 29})},
			currency:    USD,
			wantRegular: 8,
			wantFinal:   8,
			wantSource:  SpecAbsolute,
		},
		{
			name:        "mixed record uses base modifier where no absolute exists",
			option:      Option{Value: "dark", Price: Layered(map[Currency]float64{USD: 5}, map[Currency]float64{OMR: 1.5})},
			currency:    SAR,
			wantRegular: 14.625,
			wantFinal:   14.625,
			wantSource:  SpecLegacyModifier,
		},
		{
			name:        "mixed record prefers currency modifier over converted absolute",
			option:      Option{Value: "dark", Price: Layered(map[Currency]float64{OMR: 2}, map[Currency]float64{SAR: 30})},
			currency:    SAR,
			wantRegular: 30,
			wantFinal:   30,
			wantSource:  SpecLegacyModifier,
		},
		{
			name: "mixed sale layers",
			option: Option{
				Value:     "1kg",
				Price:     Layered(map[Currency]float64{OMR: 4}, nil),
				OnSale:    true,
				SalePrice: Layered(map[Currency]float64{USD: 9}, map[Currency]float64{OMR: 3}),
			},
			currency:     OMR,
			wantRegular:  4,
			wantFinal:    3,
			wantDiscount: true,
			wantOnSale:   true,
			wantSource:   SpecAbsolute,
		},
		{
			name:       "no price",
			option:     Option{Value: "medium"},
			currency:   OMR,
			wantSource: SpecNone,
		},
		{
			name: "absolute sale applies",
			option: Option{
				Value:     "1kg",
				Price:     BaseAbsolute(10),
				OnSale:    true,
				SalePrice: BaseAbsolute(7),
			},
			currency:     USD,
			wantRegular:  26,
			wantFinal:    18.2,
			wantDiscount: true,
			wantOnSale:   true,
			wantSource:   SpecAbsolute,
		},
		{
			name: "legacy sale modifier applies",
			option: Option{
				Value:     "1kg",
				Price:     BaseLegacyModifier(4),
				OnSale:    true,
				SalePrice: BaseLegacyModifier(3),
			},
			currency:     OMR,
			wantRegular:  4,
			wantFinal:    3,
			wantDiscount: true,
			wantOnSale:   true,
			wantSource:   SpecLegacyModifier,
		},
		{
			name: "sale not below regular",
			option: Option{
				Value:     "1kg",
				Price:     BaseAbsolute(4),
				OnSale:    true,
				SalePrice: BaseAbsolute(5),
			},
			currency:    OMR,
			wantRegular: 4,
			wantFinal:   4,
			wantOnSale:  true,
			wantSource:  SpecAbsolute,
		},
		{
			name:       "sale on option without price",
			option:     Option{Value: "x", OnSale: true, SalePrice: BaseAbsolute(1)},
			currency:   OMR,
			wantOnSale: true,
			wantSource: SpecNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveOptionPrice(tt.option, tt.currency)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if !almostEqual(got.RegularPrice, tt.wantRegular) {
				t.Fatalf("regular = %v, want %v", got.RegularPrice, tt.wantRegular)
			}
			if !almostEqual(got.FinalPrice, tt.wantFinal) {
				t.Fatalf("final = %v, want %v", got.FinalPrice, tt.wantFinal)
			}
			if got.HasDiscount != tt.wantDiscount {
				t.Fatalf("discount = %v, want %v", got.HasDiscount, tt.wantDiscount)
			}
			if got.IsOnSale != tt.wantOnSale {
				t.Fatalf("on sale = %v, want %v", got.IsOnSale, tt.wantOnSale)
			}
			if got.Source != tt.wantSource {
				t.Fatalf("source = %v, want %v", got.Source, tt.wantSource)
			}
			if got.FinalPrice > got.RegularPrice {
				t.Fatalf("final %v above regular %v", got.FinalPrice, got.RegularPrice)
			}
		})
	}
}

func TestResolveOptionPrice_LegacyMatchesRate(t *testing.T) {
	for _, modifier := range []float64{0.1, 1.5, 2, 12.75} {
		o := Option{Value: "v", Price: BaseLegacyModifier(modifier)}
		for _, c := range Currencies() {
			got, err := ResolveOptionPrice(o, c)
			if err != nil {
				t.Fatal(err)
			}
			rate, _ := Rate(c)
			if !almostEqual(got.RegularPrice, modifier*rate) {
				t.Fatalf("%s: regular %v, want %v", c, got.RegularPrice, modifier*rate)
			}
		}
	}
}

func TestResolveOptionPrice_InvalidAmountsIgnored(t *testing.T) {
	o := Option{Value: "v", Price: Absolute(map[Currency]float64{OMR: -2, "EUR": 5})}
	if o.Price.IsSet() {
		t.Fatalf("negative and unknown-currency amounts should be dropped")
	}
	got, err := ResolveOptionPrice(o, USD)
	if err != nil {
		t.Fatal(err)
	}
	if got.RegularPrice != 0 || got.AffectsPrice() {
		t.Fatalf("expected zero contribution, got %+v", got)
	}
}

func TestResolveOptionPrice_UnsupportedCurrency(t *testing.T) {
	_, err := ResolveOptionPrice(Option{Value: "v", Price: BaseAbsolute(1)}, "GBP")
	if !errors.Is(err, ErrUnsupportedCurrency) {
		t.Fatalf("expected ErrUnsupportedCurrency, got %v", err)
	}
}
