package pricing

// MigrateSpec rewrites a spec that still stores legacy modifier amounts into absolute
// form with an explicit amount for every supported currency. Each amount is what the
// spec resolved to before, currency-rounded unless it was already stored as absolute.
// Specs without legacy amounts are returned unchanged with migrated=false.
func MigrateSpec(s PriceSpec) (out PriceSpec, migrated bool, err error) {
	if !s.HasLegacy() {
		return s, false, nil
	}
	amounts := make(map[Currency]float64, len(rates))
	for _, c := range Currencies() {
		v, source, err := s.Resolve(c)
		if err != nil {
			return PriceSpec{}, false, err
		}
		if _, stored := s.Explicit(c); stored {
			amounts[c] = v
			continue
		}
		if source != SpecNone {
			amounts[c] = Round(v, c)
		}
	}
	return Absolute(amounts), true, nil
}

// MigrateOption moves both the price and the sale price of o to absolute form.
func MigrateOption(o Option) (Option, bool, error) {
	price, priceMigrated, err := MigrateSpec(o.Price)
	if err != nil {
		return Option{}, false, err
	}
	sale, saleMigrated, err := MigrateSpec(o.SalePrice)
	if err != nil {
		return Option{}, false, err
	}
	o.Price = price
	o.SalePrice = sale
	return o, priceMigrated || saleMigrated, nil
}
