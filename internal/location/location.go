package location

import "github.com/visitgeorgia/transfers/pkg/i18n"

// Key identifies a pickup/dropoff point. The set is closed: locations
// are not created or removed at runtime.
type Key string

const (
	TbilisiAirport Key = "tbilisi-airport"
	TbilisiCity    Key = "tbilisi-city"
	Gudauri        Key = "gudauri"
	Kazbegi        Key = "kazbegi"
	Batumi         Key = "batumi"
	Kutaisi        Key = "kutaisi"
	Kakheti        Key = "kakheti"
	Borjomi        Key = "borjomi"
	Mestia         Key = "mestia"
	Bakuriani      Key = "bakuriani"
)

// All returns every location in a stable order.
func All() []Key {
	return []Key{
		TbilisiAirport,
		TbilisiCity,
		Gudauri,
		Kazbegi,
		Batumi,
		Kutaisi,
		Kakheti,
		Borjomi,
		Mestia,
		Bakuriani,
	}
}

// Parse returns the Key for a raw string and whether it names a known
// location.
func Parse(s string) (Key, bool) {
	switch Key(s) {
	case TbilisiAirport, TbilisiCity, Gudauri, Kazbegi, Batumi,
		Kutaisi, Kakheti, Borjomi, Mestia, Bakuriani:
		return Key(s), true
	}
	return "", false
}

// names holds the display name of every location in one language.
// One struct per language keeps every translation table complete at
// compile time.
type names struct {
	TbilisiAirport string
	TbilisiCity    string
	Gudauri        string
	Kazbegi        string
	Batumi         string
	Kutaisi        string
	Kakheti        string
	Borjomi        string
	Mestia         string
	Bakuriani      string
}

var displayNames = map[i18n.Language]names{
	i18n.English: {
		TbilisiAirport: "Tbilisi Airport",
		TbilisiCity:    "Tbilisi City",
		Gudauri:        "Gudauri",
		Kazbegi:        "Kazbegi",
		Batumi:         "Batumi",
		Kutaisi:        "Kutaisi",
		Kakheti:        "Kakheti / Sighnaghi",
		Borjomi:        "Borjomi",
		Mestia:         "Mestia",
		Bakuriani:      "Bakuriani",
	},
	i18n.Hebrew: {
		TbilisiAirport: "נמל התעופה טביליסי",
		TbilisiCity:    "טביליסי עיר",
		Gudauri:        "גודאורי",
		Kazbegi:        "קזבגי",
		Batumi:         "באטומי",
		Kutaisi:        "קוטאיסי",
		Kakheti:        "קאחטי / סיגנאגי",
		Borjomi:        "בורג׳ומי",
		Mestia:         "מסטיה",
		Bakuriani:      "בקוריאני",
	},
	i18n.Russian: {
		TbilisiAirport: "Аэропорт Тбилиси",
		TbilisiCity:    "Тбилиси город",
		Gudauri:        "Гудаури",
		Kazbegi:        "Казбеги",
		Batumi:         "Батуми",
		Kutaisi:        "Кутаиси",
		Kakheti:        "Кахетия / Сигнахи",
		Borjomi:        "Боржоми",
		Mestia:         "Местия",
		Bakuriani:      "Бакуриани",
	},
}

// Name returns the display name of the location in the given language,
// falling back to English for unknown languages.
func (k Key) Name(lang i18n.Language) string {
	n, ok := displayNames[lang]
	if !ok {
		n = displayNames[i18n.DefaultLang]
	}

	switch k {
	case TbilisiAirport:
		return n.TbilisiAirport
	case TbilisiCity:
		return n.TbilisiCity
	case Gudauri:
		return n.Gudauri
	case Kazbegi:
		return n.Kazbegi
	case Batumi:
		return n.Batumi
	case Kutaisi:
		return n.Kutaisi
	case Kakheti:
		return n.Kakheti
	case Borjomi:
		return n.Borjomi
	case Mestia:
		return n.Mestia
	case Bakuriani:
		return n.Bakuriani
	}
	return string(k)
}

// MessageName is the fixed-language name used in outbound booking
// messages, independent of the active UI language.
func (k Key) MessageName() string {
	return k.Name(i18n.DefaultLang)
}
