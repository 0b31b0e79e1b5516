package pricing

import (
	"errors"
	"fmt"
	"testing"
)

func roastProperty(prices ...float64) Property {
	prop := Property{Name: "roast", Label: Label{EN: "Roast Level", AR: "درجة التحميص"}, AffectsPrice: true}
	for i, p := range prices {
		prop.Options = append(prop.Options, Option{
			Value: fmt.Sprintf("opt-%d", i),
			Price: BaseAbsolute(p),
		})
	}
	return prop
}

func TestSelectDefaultCombination_NoPricingProperties(t *testing.T) {
	products := []Product{
		{ID: "empty", Price: BaseAbsolute(5)},
		{ID: "flag-off", Price: BaseAbsolute(5), Properties: []Property{{Name: "grind", Options: []Option{{Value: "fine"}}}}},
		{ID: "no-options", Price: BaseAbsolute(5), Properties: []Property{{Name: "roast", AffectsPrice: true}}},
	}
	for _, p := range products {
		sel, err := SelectDefaultCombination(p, OMR)
		if err != nil {
			t.Fatalf("%s: unexpected err %v", p.ID, err)
		}
		if sel == nil || len(sel) != 0 {
			t.Fatalf("%s: expected empty selection, got %v", p.ID, sel)
		}
	}
}

func TestSelectDefaultCombination_PicksCheapest(t *testing.T) {
	tests := []struct {
		prices []float64
		want   string
	}{
		{[]float64{5, 2, 8}, "opt-1"},
		{[]float64{3.0, 1.0, 2.5}, "opt-1"},
		{[]float64{4, 4, 4}, "opt-0"},
		{[]float64{9}, "opt-0"},
	}
	for _, tt := range tests {
		p := Product{ID: "p", Price: BaseAbsolute(10), Properties: []Property{roastProperty(tt.prices...)}}
		sel, err := SelectDefaultCombination(p, OMR)
		if err != nil {
			t.Fatal(err)
		}
		if sel["roast"] != tt.want {
			t.Fatalf("prices %v: selected %q, want %q", tt.prices, sel["roast"], tt.want)
		}
	}
}

func TestSelectDefaultCombination_UsesSalePrice(t *testing.T) {
	prop := roastProperty(5, 4)
	prop.Options[0].OnSale = true
	prop.Options[0].SalePrice = BaseAbsolute(3)
	p := Product{ID: "p", Price: BaseAbsolute(10), Properties: []Property{prop}}

	sel, err := SelectDefaultCombination(p, USD)
	if err != nil {
		t.Fatal(err)
	}
	if sel["roast"] != "opt-0" {
		t.Fatalf("expected discounted option, got %v", sel)
	}
}

func TestSelectDefaultCombination_OnlyFirstPricingPropertyCounts(t *testing.T) {
	weight := Property{Name: "weight", AffectsPrice: true, Options: []Option{
		{Value: "1kg", Price: BaseAbsolute(20)},
		{Value: "250g", Price: BaseAbsolute(1)},
	}}
	p := Product{
		ID:    "p",
		Price: BaseAbsolute(10),
		Properties: []Property{
			{Name: "grind", Options: []Option{{Value: "whole"}, {Value: "fine"}}},
			roastProperty(6, 2, 7),
			weight,
		},
	}

	sel, err := SelectDefaultCombination(p, OMR)
	if err != nil {
		t.Fatal(err)
	}
	if len(sel) != 2 {
		t.Fatalf("expected one entry per pricing property, got %v", sel)
	}
	if sel["roast"] != "opt-1" {
		t.Fatalf("roast = %q, want opt-1", sel["roast"])
	}
	// weight does not contribute, so its first option stays selected.
	if sel["weight"] != "1kg" {
		t.Fatalf("weight = %q, want 1kg", sel["weight"])
	}
	if _, ok := sel["grind"]; ok {
		t.Fatalf("non-pricing property should not be selected")
	}
}

func TestSelectDefaultCombination_Guard(t *testing.T) {
	var props []Property
	for i := 0; i < 4; i++ {
		prices := make([]float64, 6)
		for j := range prices {
			prices[j] = float64(j + 1)
		}
		prop := roastProperty(prices...)
		prop.Name = fmt.Sprintf("prop-%d", i)
		props = append(props, prop)
	}
	p := Product{ID: "big", Price: BaseAbsolute(1), Properties: props}
	if _, err := SelectDefaultCombination(p, OMR); !errors.Is(err, ErrTooManyCombinations) {
		t.Fatalf("expected ErrTooManyCombinations, got %v", err)
	}
}

func TestSelectDefaultCombination_UnsupportedCurrency(t *testing.T) {
	if _, err := SelectDefaultCombination(Product{}, "XYZ"); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Fatalf("expected ErrUnsupportedCurrency, got %v", err)
	}
}

func TestCombinationsIterator(t *testing.T) {
	it := newCombinations([]int{2, 3})
	var seen [][2]int
	for it.Next() {
		idx := it.Indices()
		seen = append(seen, [2]int{idx[0], idx[1]})
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 combinations, got %d", len(seen))
	}
	if seen[0] != [2]int{0, 0} || seen[1] != [2]int{0, 1} || seen[5] != [2]int{1, 2} {
		t.Fatalf("unexpected order: %v", seen)
	}

	if newCombinations([]int{2, 0}).Next() {
		t.Fatalf("empty dimension should yield nothing")
	}
}

func TestQuoteSelection(t *testing.T) {
	prop := roastProperty(0, 3)
	p := Product{
		ID:         "p",
		Price:      BaseAbsolute(10),
		OnSale:     true,
		SalePrice:  BaseAbsolute(9),
		Properties: []Property{prop, {Name: "grind", Options: []Option{{Value: "fine"}}}},
	}

	q, err := QuoteSelection(p, Selection{"roast": "opt-1", "grind": "fine"}, USD)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(q.UnitPrice, 7.8) || q.Option == nil || q.IsOnSale {
		t.Fatalf("option price should replace product price: %+v", q)
	}

	// opt-0 has no price of its own, so the product sale price applies.
	q, err = QuoteSelection(p, Selection{"roast": "opt-0"}, OMR)
	if err != nil {
		t.Fatal(err)
	}
	if q.UnitPrice != 9 || !q.IsOnSale || q.Option != nil {
		t.Fatalf("expected product sale price, got %+v", q)
	}

	q, err = QuoteSelection(p, nil, OMR)
	if err != nil || q.UnitPrice != 9 {
		t.Fatalf("empty selection: %+v, %v", q, err)
	}

	if _, err := QuoteSelection(p, Selection{"roast": "missing"}, OMR); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	if _, err := QuoteSelection(p, Selection{"size": "xl"}, OMR); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
}
