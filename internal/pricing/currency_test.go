package pricing

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRate(t *testing.T) {
	tests := []struct {
		currency Currency
		want     float64
	}{
		{OMR, 1.0},
		{USD, 2.6},
		{SAR, 9.75},
	}
	for _, tt := range tests {
		got, err := Rate(tt.currency)
		if err != nil {
			t.Fatalf("Rate(%s) err: %v", tt.currency, err)
		}
		if got != tt.want {
			t.Fatalf("Rate(%s) = %v, want %v", tt.currency, got, tt.want)
		}
	}
}

func TestRate_Unsupported(t *testing.T) {
	if _, err := Rate("EUR"); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Fatalf("expected ErrUnsupportedCurrency, got %v", err)
	}
	if _, err := Rate(""); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Fatalf("expected ErrUnsupportedCurrency for empty code, got %v", err)
	}
}

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency(" usd ")
	if err != nil || c != USD {
		t.Fatalf("ParseCurrency(usd) = %v, %v", c, err)
	}
	if _, err := ParseCurrency("AED"); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Fatalf("expected ErrUnsupportedCurrency, got %v", err)
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	amounts := []float64{0.001, 1, 3.5, 10, 12.345, 999.999}
	for _, c := range Currencies() {
		for _, a := range amounts {
			in, err := FromBase(a, c)
			if err != nil {
				t.Fatal(err)
			}
			back, err := ToBase(in, c)
			if err != nil {
				t.Fatal(err)
			}
			if !almostEqual(a, back) {
				t.Fatalf("round trip %v via %s gave %v", a, c, back)
			}
		}
	}
}

func TestConvert_BetweenCurrencies(t *testing.T) {
	got, err := Convert(26, USD, SAR)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(got, 97.5) {
		t.Fatalf("26 USD in SAR = %v, want 97.5", got)
	}
	if _, err := Convert(1, "JPY", USD); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Fatalf("expected ErrUnsupportedCurrency, got %v", err)
	}
}

func TestRoundAndFormat(t *testing.T) {
	if got := Round(14.625, SAR); got != 14.63 {
		t.Fatalf("Round SAR = %v", got)
	}
	if got := Round(1.23456, OMR); got != 1.235 {
		t.Fatalf("Round OMR = %v", got)
	}
	if got := FormatAmount(10, OMR); got != "10.000" {
		t.Fatalf("FormatAmount OMR = %q", got)
	}
	if got := FormatAmount(26, USD); got != "26.00" {
		t.Fatalf("FormatAmount USD = %q", got)
	}
}
