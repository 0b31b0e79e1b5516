package pricing

// Label is a bilingual display string.
type Label struct {
	EN string
	AR string
}

// For picks the Arabic or English text, falling back to the other language when the
// preferred one is empty.
func (l Label) For(arabic bool) string {
	if arabic && l.AR != "" {
		return l.AR
	}
	if l.EN != "" {
		return l.EN
	}
	return l.AR
}

type Product struct {
	ID         string
	Price      PriceSpec
	OnSale     bool
	SalePrice  PriceSpec
	Properties []Property
}

type Property struct {
	Name         string
	Label        Label
	AffectsPrice bool
	Options      []Option
}

type Option struct {
	Value     string
	Label     Label
	Price     PriceSpec
	OnSale    bool
	SalePrice PriceSpec
}

// Selection maps a property name to the chosen option value.
type Selection map[string]string

// Property returns the property with the given name.
func (p Product) Property(name string) (Property, bool) {
	for _, prop := range p.Properties {
		if prop.Name == name {
			return prop, true
		}
	}
	return Property{}, false
}

func (p Property) Option(value string) (Option, bool) {
	for _, o := range p.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// PricingProperties returns the properties flagged as affecting price that have at
// least one option, in declaration order.
func (p Product) PricingProperties() []Property {
	var out []Property
	for _, prop := range p.Properties {
		if prop.AffectsPrice && len(prop.Options) > 0 {
			out = append(out, prop)
		}
	}
	return out
}
