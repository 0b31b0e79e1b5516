package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var supported = []language.Tag{language.English, language.Arabic}

var matcher = language.NewMatcher(supported)

type Translator struct {
	bundle *goi18n.Bundle
	en     *goi18n.Localizer
	ar     *goi18n.Localizer
}

// New builds a translator from the embedded English and Arabic message files.
func New() (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		name := path.Join("locales", e.Name())
		data, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}

	return &Translator{
		bundle: bundle,
		en:     goi18n.NewLocalizer(bundle, language.English.String()),
		ar:     goi18n.NewLocalizer(bundle, language.Arabic.String()),
	}, nil
}

// Load adds or overrides messages from a file on disk, e.g. active.ar.json.
func (t *Translator) Load(file string) error {
	_, err := t.bundle.LoadMessageFile(file)
	return err
}

// IsArabic reports whether the best match for an Accept-Language value or a bare
// language code is Arabic. Anything unparseable falls back to English.
func IsArabic(acceptLanguage string) bool {
	if acceptLanguage == "" {
		return false
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return false
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx] == language.Arabic
}

func (t *Translator) localizer(arabic bool) *goi18n.Localizer {
	if arabic {
		return t.ar
	}
	return t.en
}

// T returns the message for id, or id itself when it is not defined.
func (t *Translator) T(arabic bool, id string) string {
	return t.localize(arabic, id, nil)
}

func (t *Translator) localize(arabic bool, id string, data map[string]interface{}) string {
	msg, err := t.localizer(arabic).Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}

func (t *Translator) CurrencySymbol(arabic bool, currency string) string {
	return t.localize(arabic, "CurrencySymbol."+currency, nil)
}

// FormatPrice places the localized currency symbol around an already formatted amount.
func (t *Translator) FormatPrice(arabic bool, currency, amount string) string {
	return t.localize(arabic, "Price", map[string]interface{}{
		"Symbol": t.CurrencySymbol(arabic, currency),
		"Amount": amount,
	})
}
