package preferences

import (
	"github.com/visitgeorgia/transfers/internal/currency"
	"github.com/visitgeorgia/transfers/pkg/i18n"
)

// Preferences holds a client's persisted display choices.
type Preferences struct {
	Language i18n.Language `json:"language"`
	Currency currency.Code `json:"currency"`
}

// Defaults returns the preferences applied when nothing is stored.
func Defaults() Preferences {
	return Preferences{
		Language: i18n.DefaultLang,
		Currency: currency.Reference,
	}
}

// Normalize canonicalizes the stored values, replacing unknown
// language or currency values with the defaults. Stored data may
// predate a renamed language or currency, so reads never fail on it.
func (p Preferences) Normalize() Preferences {
	p.Language = i18n.ParseOrDefault(string(p.Language))
	// Parse uppercases valid codes and falls back to the reference
	// currency for unknown ones.
	p.Currency, _ = currency.Parse(string(p.Currency))
	return p
}
