package i18n

import "testing"

func TestIsArabic(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"en", false},
		{"ar", true},
		{"ar-OM", true},
		{"ar-SA,ar;q=0.9,en;q=0.8", true},
		{"en-US,en;q=0.9,ar;q=0.5", false},
		{"fr", false},
		{";;;", false},
	}
	for _, tt := range tests {
		if got := IsArabic(tt.in); got != tt.want {
			t.Fatalf("IsArabic(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tr, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := tr.FormatPrice(false, "OMR", "10.000"); got != "OMR 10.000" {
		t.Fatalf("en price = %q", got)
	}
	if got := tr.FormatPrice(true, "SAR", "97.50"); got != "97.50 ر.س" {
		t.Fatalf("ar price = %q", got)
	}
	if got := tr.T(true, "OnSale"); got != "تخفيض" {
		t.Fatalf("ar OnSale = %q", got)
	}
	if got := tr.T(false, "NoSuchMessage"); got != "NoSuchMessage" {
		t.Fatalf("missing message = %q", got)
	}
}
