package handler

import (
	"github.com/fekuna/coffee-storefront-service/internal/model"
	"github.com/fekuna/coffee-storefront-service/internal/pkg/i18n"
	"github.com/fekuna/coffee-storefront-service/internal/pricing"
	"github.com/fekuna/coffee-storefront-service/internal/product/dto"
)

type MoneyView struct {
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

type ProductPriceView struct {
	Currency   string     `json:"currency"`
	BasePrice  MoneyView  `json:"base_price"`
	SalePrice  *MoneyView `json:"sale_price,omitempty"`
	FinalPrice MoneyView  `json:"final_price"`
	IsOnSale   bool       `json:"is_on_sale"`
	SaleLabel  string     `json:"sale_label,omitempty"`
}

type OptionPriceView struct {
	Currency     string     `json:"currency"`
	RegularPrice MoneyView  `json:"regular_price"`
	SalePrice    *MoneyView `json:"sale_price,omitempty"`
	FinalPrice   MoneyView  `json:"final_price"`
	HasDiscount  bool       `json:"has_discount"`
	IsOnSale     bool       `json:"is_on_sale"`
	Source       string     `json:"source"`
}

type QuoteView struct {
	Currency     string            `json:"currency"`
	UnitPrice    MoneyView         `json:"unit_price"`
	RegularPrice MoneyView         `json:"regular_price"`
	IsOnSale     bool              `json:"is_on_sale"`
	Selection    map[string]string `json:"selection"`
	Option       *OptionPriceView  `json:"option,omitempty"`
}

type OptionView struct {
	Value string           `json:"value"`
	Label string           `json:"label"`
	Price *OptionPriceView `json:"price,omitempty"`
}

type PropertyView struct {
	Name         string       `json:"name"`
	Label        string       `json:"label"`
	AffectsPrice bool         `json:"affects_price"`
	Options      []OptionView `json:"options"`
}

type ProductView struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Category    string           `json:"category,omitempty"`
	ImageURL    string           `json:"image_url,omitempty"`
	IsActive    bool             `json:"is_active"`
	Price       ProductPriceView `json:"price"`
	Quote       QuoteView        `json:"quote"`
	Properties  []PropertyView   `json:"properties"`
}

type ShopItemView struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Category  string            `json:"category,omitempty"`
	ImageURL  string            `json:"image_url,omitempty"`
	Price     ProductPriceView  `json:"price"`
	FromPrice MoneyView         `json:"from_price"`
	Selection map[string]string `json:"selection"`
}

// Presenter rounds and localizes resolved prices for display.
type Presenter struct {
	tr *i18n.Translator
}

func NewPresenter(tr *i18n.Translator) *Presenter {
	return &Presenter{tr: tr}
}

func (pr *Presenter) Money(amount float64, c pricing.Currency, arabic bool) MoneyView {
	rounded := pricing.Round(amount, c)
	return MoneyView{
		Amount:  rounded,
		Display: pr.tr.FormatPrice(arabic, c.String(), pricing.FormatAmount(rounded, c)),
	}
}

func (pr *Presenter) moneyPtr(amount *float64, c pricing.Currency, arabic bool) *MoneyView {
	if amount == nil {
		return nil
	}
	m := pr.Money(*amount, c, arabic)
	return &m
}

func (pr *Presenter) ProductPrice(p pricing.ProductPrice, arabic bool) ProductPriceView {
	v := ProductPriceView{
		Currency:   p.Currency.String(),
		BasePrice:  pr.Money(p.BasePrice, p.Currency, arabic),
		FinalPrice: pr.Money(p.FinalPrice, p.Currency, arabic),
		IsOnSale:   p.IsOnSale,
	}
	// A sale price that is not a discount is never shown.
	if p.IsOnSale {
		v.SalePrice = pr.moneyPtr(p.SalePrice, p.Currency, arabic)
		v.SaleLabel = pr.tr.T(arabic, "OnSale")
	}
	return v
}

func (pr *Presenter) OptionPrice(o pricing.OptionPrice, arabic bool) OptionPriceView {
	v := OptionPriceView{
		Currency:     o.Currency.String(),
		RegularPrice: pr.Money(o.RegularPrice, o.Currency, arabic),
		FinalPrice:   pr.Money(o.FinalPrice, o.Currency, arabic),
		HasDiscount:  o.HasDiscount,
		IsOnSale:     o.IsOnSale,
		Source:       o.Source.String(),
	}
	if o.HasDiscount {
		v.SalePrice = pr.moneyPtr(o.SalePrice, o.Currency, arabic)
	}
	return v
}

func (pr *Presenter) Quote(q pricing.Quote, sel pricing.Selection, arabic bool) QuoteView {
	v := QuoteView{
		Currency:     q.Currency.String(),
		UnitPrice:    pr.Money(q.UnitPrice, q.Currency, arabic),
		RegularPrice: pr.Money(q.RegularPrice, q.Currency, arabic),
		IsOnSale:     q.IsOnSale,
		Selection:    map[string]string(sel),
	}
	if v.Selection == nil {
		v.Selection = map[string]string{}
	}
	if q.Option != nil {
		ov := pr.OptionPrice(*q.Option, arabic)
		v.Option = &ov
	}
	return v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func localized(en, ar string, arabic bool) string {
	return pricing.Label{EN: en, AR: ar}.For(arabic)
}

// Product renders the product page: resolved price, default-selection quote and the
// price of every option that has one.
func (pr *Presenter) Product(p *model.Product, price pricing.ProductPrice, quote pricing.Quote, sel pricing.Selection, arabic bool) (ProductView, error) {
	v := ProductView{
		ID:          p.ID,
		Name:        localized(p.NameEN, p.NameAR, arabic),
		Description: localized(deref(p.DescriptionEN), deref(p.DescriptionAR), arabic),
		Category:    deref(p.Category),
		ImageURL:    deref(p.ImageURL),
		IsActive:    p.IsActive,
		Price:       pr.ProductPrice(price, arabic),
		Quote:       pr.Quote(quote, sel, arabic),
		Properties:  []PropertyView{},
	}

	for _, prop := range p.PricingProduct().Properties {
		pv := PropertyView{
			Name:         prop.Name,
			Label:        prop.Label.For(arabic),
			AffectsPrice: prop.AffectsPrice,
			Options:      []OptionView{},
		}
		for _, o := range prop.Options {
			ov := OptionView{Value: o.Value, Label: o.Label.For(arabic)}
			op, err := pricing.ResolveOptionPrice(o, price.Currency)
			if err != nil {
				return ProductView{}, err
			}
			if op.AffectsPrice() {
				opv := pr.OptionPrice(op, arabic)
				ov.Price = &opv
			}
			pv.Options = append(pv.Options, ov)
		}
		v.Properties = append(v.Properties, pv)
	}
	return v, nil
}

func (pr *Presenter) ShopItem(item dto.ShopItem, arabic bool) ShopItemView {
	sel := map[string]string(item.Selection)
	if sel == nil {
		sel = map[string]string{}
	}
	return ShopItemView{
		ID:        item.Product.ID,
		Name:      localized(item.Product.NameEN, item.Product.NameAR, arabic),
		Category:  deref(item.Product.Category),
		ImageURL:  deref(item.Product.ImageURL),
		Price:     pr.ProductPrice(item.Price, arabic),
		FromPrice: pr.Money(item.Quote.UnitPrice, item.Quote.Currency, arabic),
		Selection: sel,
	}
}
