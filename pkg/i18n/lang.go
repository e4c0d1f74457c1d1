// Package i18n defines the closed set of UI languages.
// Display strings live next to the data they describe (locations,
// vehicle tiers) as one struct per language, so a missing translation
// is a compile error rather than a runtime blank.
package i18n

// Language is a supported UI language code.
type Language string

const (
	English Language = "en"
	Hebrew  Language = "he"
	Russian Language = "ru"
)

// DefaultLang is the fallback when a stored or requested language is
// absent or invalid. It is also the fixed language of outbound
// booking messages.
const DefaultLang = English

// Languages returns all supported languages in a stable order.
func Languages() []Language {
	return []Language{English, Hebrew, Russian}
}

// Parse returns the language for a code, case-sensitively, and whether
// it is supported.
func Parse(code string) (Language, bool) {
	switch Language(code) {
	case English, Hebrew, Russian:
		return Language(code), true
	}
	return DefaultLang, false
}

// ParseOrDefault returns the language for a code, falling back to
// DefaultLang silently.
func ParseOrDefault(code string) Language {
	lang, _ := Parse(code)
	return lang
}
