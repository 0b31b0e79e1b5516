package pricing

import (
	"errors"
	"testing"
)

func TestResolveProductPrice_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		product   Product
		currency  Currency
		wantBase  float64
		wantFinal float64
		wantSale  bool
		wantIssue bool
	}{
		{
			name:      "converted without sale",
			product:   Product{ID: "p1", Price: BaseAbsolute(10)},
			currency:  USD,
			wantBase:  26,
			wantFinal: 26,
		},
		{
			name:      "sale in base currency",
			product:   Product{ID: "p2", Price: BaseAbsolute(10), OnSale: true, SalePrice: BaseAbsolute(8)},
			currency:  OMR,
			wantBase:  10,
			wantFinal: 8,
			wantSale:  true,
		},
		{
			name:      "sale above regular is ignored",
			product:   Product{ID: "p3", Price: BaseAbsolute(10), OnSale: true, SalePrice: BaseAbsolute(12)},
			currency:  OMR,
			wantBase:  10,
			wantFinal: 10,
			wantIssue: true,
		},
		{
			name:      "sale equal to regular is ignored",
			product:   Product{ID: "p4", Price: BaseAbsolute(10), OnSale: true, SalePrice: BaseAbsolute(10)},
			currency:  OMR,
			wantBase:  10,
			wantFinal: 10,
			wantIssue: true,
		},
		{
			name:      "flag without sale price",
			product:   Product{ID: "p5", Price: BaseAbsolute(10), OnSale: true},
			currency:  SAR,
			wantBase:  97.5,
			wantFinal: 97.5,
			wantIssue: true,
		},
		{
			name:      "sale price without flag",
			product:   Product{ID: "p6", Price: BaseAbsolute(10), SalePrice: BaseAbsolute(5)},
			currency:  OMR,
			wantBase:  10,
			wantFinal: 10,
		},
		{
			name: "explicit per-currency amounts win",
			product: Product{
				ID:        "p7",
				Price:     Absolute(map[Currency]float64{OMR: 10, USD: 25}),
				OnSale:    true,
				SalePrice: Absolute(map[Currency]float64{OMR: 9, USD: 23}),
			},
			currency:  USD,
			wantBase:  25,
			wantFinal: 23,
			wantSale:  true,
		},
		{
			name: "missing currency falls back to conversion",
			product: Product{
				ID:    "p8",
				Price: Absolute(map[Currency]float64{OMR: 10, USD: 25}),
			},
			currency:  SAR,
			wantBase:  97.5,
			wantFinal: 97.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveProductPrice(tt.product, tt.currency)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if !almostEqual(got.BasePrice, tt.wantBase) {
				t.Fatalf("base = %v, want %v", got.BasePrice, tt.wantBase)
			}
			if !almostEqual(got.FinalPrice, tt.wantFinal) {
				t.Fatalf("final = %v, want %v", got.FinalPrice, tt.wantFinal)
			}
			if got.IsOnSale != tt.wantSale {
				t.Fatalf("on sale = %v, want %v", got.IsOnSale, tt.wantSale)
			}
			if (got.SaleIssue != nil) != tt.wantIssue {
				t.Fatalf("sale issue = %v, want issue %v", got.SaleIssue, tt.wantIssue)
			}
			if got.SaleIssue != nil && !errors.Is(got.SaleIssue, ErrInconsistentSaleData) {
				t.Fatalf("sale issue should wrap ErrInconsistentSaleData: %v", got.SaleIssue)
			}
		})
	}
}

func TestResolveProductPrice_MissingBase(t *testing.T) {
	cases := []Product{
		{ID: "none"},
		{ID: "zero", Price: BaseAbsolute(0)},
		{ID: "usd-only", Price: Absolute(map[Currency]float64{USD: 26})},
	}
	for _, p := range cases {
		if _, err := ResolveProductPrice(p, USD); !errors.Is(err, ErrMissingBasePrice) {
			t.Fatalf("%s: expected ErrMissingBasePrice, got %v", p.ID, err)
		}
	}
}

func TestResolveProductPrice_UnsupportedCurrency(t *testing.T) {
	_, err := ResolveProductPrice(Product{ID: "p", Price: BaseAbsolute(1)}, "EUR")
	if !errors.Is(err, ErrUnsupportedCurrency) {
		t.Fatalf("expected ErrUnsupportedCurrency, got %v", err)
	}
}

func TestResolveProductPrice_Invariants(t *testing.T) {
	bases := []float64{0.5, 3, 10, 49.99}
	sales := []float64{0, 0.25, 2.9, 10, 60}
	for _, base := range bases {
		for _, sale := range sales {
			for _, flag := range []bool{true, false} {
				p := Product{ID: "inv", Price: BaseAbsolute(base), OnSale: flag, SalePrice: BaseAbsolute(sale)}
				for _, c := range Currencies() {
					got, err := ResolveProductPrice(p, c)
					if err != nil {
						t.Fatal(err)
					}
					if got.FinalPrice > got.BasePrice {
						t.Fatalf("final %v above base %v", got.FinalPrice, got.BasePrice)
					}
					if got.IsOnSale {
						if got.SalePrice == nil || *got.SalePrice >= got.BasePrice {
							t.Fatalf("on sale without lower sale price: %+v", got)
						}
					} else if got.FinalPrice != got.BasePrice {
						t.Fatalf("not on sale but final %v != base %v", got.FinalPrice, got.BasePrice)
					}
				}
			}
		}
	}
}

func TestResolveProductPrice_Idempotent(t *testing.T) {
	p := Product{ID: "p", Price: BaseAbsolute(7.5), OnSale: true, SalePrice: BaseAbsolute(6)}
	a, _ := ResolveProductPrice(p, SAR)
	b, _ := ResolveProductPrice(p, SAR)
	if a.FinalPrice != b.FinalPrice || a.BasePrice != b.BasePrice || a.IsOnSale != b.IsOnSale {
		t.Fatalf("results differ: %+v vs %+v", a, b)
	}
}
