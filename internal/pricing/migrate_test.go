package pricing

import "testing"

func TestMigrateOption_Legacy(t *testing.T) {
	o := Option{
		Value:     "dark",
		Price:     BaseLegacyModifier(1.5),
		OnSale:    true,
		SalePrice: BaseLegacyModifier(1.2),
	}
	migrated, changed, err := MigrateOption(o)
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatalf("expected migration")
	}
	if migrated.Price.Kind() != SpecAbsolute || migrated.SalePrice.Kind() != SpecAbsolute {
		t.Fatalf("expected absolute specs, got %v / %v", migrated.Price.Kind(), migrated.SalePrice.Kind())
	}
	if v, _ := migrated.Price.Explicit(SAR); v != 14.63 {
		t.Fatalf("SAR amount = %v, want 14.63", v)
	}
	if v, _ := migrated.Price.Explicit(USD); v != 3.9 {
		t.Fatalf("USD amount = %v, want 3.9", v)
	}

	for _, c := range Currencies() {
		before, _ := ResolveOptionPrice(o, c)
		after, _ := ResolveOptionPrice(migrated, c)
		if !almostEqual(Round(before.FinalPrice, c), after.FinalPrice) {
			t.Fatalf("%s: final changed from %v to %v", c, before.FinalPrice, after.FinalPrice)
		}
		if before.HasDiscount != after.HasDiscount {
			t.Fatalf("%s: discount changed", c)
		}
	}
}

func TestMigrateOption_AbsoluteUntouched(t *testing.T) {
	o := Option{Value: "250g", Price: Absolute(map[Currency]float64{OMR: 3, USD: 8})}
	migrated, changed, err := MigrateOption(o)
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Fatalf("absolute option should not migrate")
	}
	if _, ok := migrated.Price.Explicit(SAR); ok {
		t.Fatalf("absolute amounts should not be filled in")
	}
}

func TestMigrateOption_MixedLayers(t *testing.T) {
	o := Option{Value: "dark", Price: Layered(map[Currency]float64{USD: 5}, map[Currency]float64{OMR: 1.5})}
	migrated, changed, err := MigrateOption(o)
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatalf("option with legacy amounts should migrate")
	}
	if migrated.Price.HasLegacy() {
		t.Fatalf("legacy layer kept after migration")
	}
	want := map[Currency]float64{OMR: 1.5, USD: 5, SAR: 14.63}
	for c, v := range want {
		if got, ok := migrated.Price.Explicit(c); !ok || got != v {
			t.Fatalf("%s amount = %v (%v), want %v", c, got, ok, v)
		}
	}
}
