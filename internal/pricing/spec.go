package pricing

import "math"

// SpecKind tags how a price was stored on the source record.
type SpecKind int

const (
	SpecNone SpecKind = iota
	SpecAbsolute
	SpecLegacyModifier
)

func (k SpecKind) String() string {
	switch k {
	case SpecAbsolute:
		return "absolute"
	case SpecLegacyModifier:
		return "legacy_modifier"
	default:
		return "none"
	}
}

// PriceSpec is a price as stored on a record. Records are turned into a PriceSpec
// once, at load time.
//
// A spec has two layers of per-currency amounts. Absolute amounts are replacement
// prices. Legacy modifier amounts come from the old "price modifier" fields and are
// also treated as standalone prices, not as adjustments added to the product price.
// A record may carry both layers while it waits for migration.
// Only positive finite amounts are kept; anything else counts as not set.
type PriceSpec struct {
	absolute map[Currency]float64
	legacy   map[Currency]float64
}

func Absolute(amounts map[Currency]float64) PriceSpec {
	return Layered(amounts, nil)
}

func LegacyModifier(amounts map[Currency]float64) PriceSpec {
	return Layered(nil, amounts)
}

// Layered builds a spec holding both stored shapes.
func Layered(absolute, legacy map[Currency]float64) PriceSpec {
	return PriceSpec{absolute: keep(absolute), legacy: keep(legacy)}
}

// BaseAbsolute is shorthand for an absolute price known only in the base currency.
func BaseAbsolute(amount float64) PriceSpec {
	return Absolute(map[Currency]float64{Base: amount})
}

func BaseLegacyModifier(amount float64) PriceSpec {
	return LegacyModifier(map[Currency]float64{Base: amount})
}

func NoPrice() PriceSpec { return PriceSpec{} }

func keep(amounts map[Currency]float64) map[Currency]float64 {
	var kept map[Currency]float64
	for c, v := range amounts {
		if !c.Valid() || !usable(v) {
			continue
		}
		if kept == nil {
			kept = make(map[Currency]float64, len(amounts))
		}
		kept[c] = v
	}
	return kept
}

func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Kind names the layer that leads the spec: absolute when any absolute amount is
// stored, otherwise legacy modifier.
func (s PriceSpec) Kind() SpecKind {
	switch {
	case len(s.absolute) > 0:
		return SpecAbsolute
	case len(s.legacy) > 0:
		return SpecLegacyModifier
	default:
		return SpecNone
	}
}

func (s PriceSpec) IsSet() bool { return s.Kind() != SpecNone }

// HasLegacy reports whether any legacy modifier amount is still stored.
func (s PriceSpec) HasLegacy() bool { return len(s.legacy) > 0 }

// Explicit returns the absolute amount stored for c without any conversion.
func (s PriceSpec) Explicit(c Currency) (float64, bool) {
	v, ok := s.absolute[c]
	return v, ok
}

// Resolve looks s up in c, in order: the absolute amount for c, the legacy amount
// for c, the base legacy amount converted by Rate(c), and finally the base absolute
// amount converted by Rate(c). source is the layer the amount came from, SpecNone
// when nothing matched.
func (s PriceSpec) Resolve(c Currency) (amount float64, source SpecKind, err error) {
	rate, err := Rate(c)
	if err != nil {
		return 0, SpecNone, err
	}
	if v, ok := s.absolute[c]; ok {
		return v, SpecAbsolute, nil
	}
	if v, ok := s.legacy[c]; ok {
		return v, SpecLegacyModifier, nil
	}
	if v, ok := s.legacy[Base]; ok {
		return v * rate, SpecLegacyModifier, nil
	}
	if v, ok := s.absolute[Base]; ok {
		return v * rate, SpecAbsolute, nil
	}
	return 0, SpecNone, nil
}

// Amount is Resolve without the source. ok is false when nothing matched.
func (s PriceSpec) Amount(c Currency) (amount float64, ok bool, err error) {
	v, source, err := s.Resolve(c)
	return v, source != SpecNone, err
}

// Amounts returns a copy of the absolute amounts.
func (s PriceSpec) Amounts() map[Currency]float64 {
	out := make(map[Currency]float64, len(s.absolute))
	for c, v := range s.absolute {
		out[c] = v
	}
	return out
}
