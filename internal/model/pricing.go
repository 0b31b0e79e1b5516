package model

import "github.com/fekuna/coffee-storefront-service/internal/pricing"

func amounts(omr, usd, sar *float64) map[pricing.Currency]float64 {
	m := map[pricing.Currency]float64{}
	if omr != nil {
		m[pricing.OMR] = *omr
	}
	if usd != nil {
		m[pricing.USD] = *usd
	}
	if sar != nil {
		m[pricing.SAR] = *sar
	}
	return m
}

// specFrom keeps both column sets; the absolute columns win per currency.
func specFrom(absolute, legacy map[pricing.Currency]float64) pricing.PriceSpec {
	return pricing.Layered(absolute, legacy)
}

func (p *Product) PricingProduct() pricing.Product {
	out := pricing.Product{
		ID:        p.ID,
		Price:     pricing.Absolute(amounts(&p.PriceOMR, p.PriceUSD, p.PriceSAR)),
		OnSale:    p.OnSale,
		SalePrice: pricing.Absolute(amounts(p.SalePriceOMR, p.SalePriceUSD, p.SalePriceSAR)),
	}
	for i := range p.Properties {
		out.Properties = append(out.Properties, p.Properties[i].PricingProperty())
	}
	return out
}

func (p *Property) PricingProperty() pricing.Property {
	out := pricing.Property{
		Name:         p.Name,
		Label:        pricing.Label{EN: p.LabelEN, AR: p.LabelAR},
		AffectsPrice: p.AffectsPrice,
	}
	for i := range p.Options {
		out.Options = append(out.Options, p.Options[i].PricingOption())
	}
	return out
}

func (o *PropertyOption) PricingOption() pricing.Option {
	return pricing.Option{
		Value:  o.Value,
		Label:  pricing.Label{EN: o.LabelEN, AR: o.LabelAR},
		Price:  o.PriceSpec(),
		OnSale: o.OnSale,
		SalePrice: specFrom(
			amounts(o.SalePriceOMR, o.SalePriceUSD, o.SalePriceSAR),
			amounts(o.SalePriceModifier, nil, nil),
		),
	}
}

func (o *PropertyOption) PriceSpec() pricing.PriceSpec {
	return specFrom(
		amounts(o.PriceOMR, o.PriceUSD, o.PriceSAR),
		amounts(o.PriceModifier, o.PriceModifierUSD, o.PriceModifierSAR),
	)
}

// IsLegacy reports whether any legacy modifier column still holds a usable amount.
func (o *PropertyOption) IsLegacy() bool {
	opt := o.PricingOption()
	return opt.Price.HasLegacy() || opt.SalePrice.HasLegacy()
}

func explicit(s pricing.PriceSpec, c pricing.Currency) *float64 {
	if v, ok := s.Explicit(c); ok {
		return &v
	}
	return nil
}

// ApplyAbsolute writes the absolute amounts of a migrated option back into the record
// and clears the legacy modifier columns.
func (o *PropertyOption) ApplyAbsolute(opt pricing.Option) {
	o.PriceOMR = explicit(opt.Price, pricing.OMR)
	o.PriceUSD = explicit(opt.Price, pricing.USD)
	o.PriceSAR = explicit(opt.Price, pricing.SAR)
	o.SalePriceOMR = explicit(opt.SalePrice, pricing.OMR)
	o.SalePriceUSD = explicit(opt.SalePrice, pricing.USD)
	o.SalePriceSAR = explicit(opt.SalePrice, pricing.SAR)
	o.PriceModifier = nil
	o.PriceModifierUSD = nil
	o.PriceModifierSAR = nil
	o.SalePriceModifier = nil
}
