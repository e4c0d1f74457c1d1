package vehicle

import (
	"fmt"

	"github.com/visitgeorgia/transfers/pkg/i18n"
)

// Tier is a vehicle class. The set is fixed and ordered by capacity.
type Tier string

const (
	Sedan         Tier = "sedan"
	Minivan       Tier = "minivan"
	Sprinter      Tier = "sprinter"
	LongSprinter  Tier = "longSprinter"
	GreatSprinter Tier = "greatSprinter"
)

// capacity holds the inclusive passenger range of a tier.
type capacity struct {
	min, max int
}

var capacities = map[Tier]capacity{
	Sedan:         {1, 3},
	Minivan:       {4, 6},
	Sprinter:      {7, 11},
	LongSprinter:  {12, 16},
	GreatSprinter: {16, 20},
}

// multipliers scale a route's sedan base price for the legacy
// fallback pricing table. The full per-tier route table does not use
// them.
var multipliers = map[Tier]float64{
	Sedan:         1,
	Minivan:       1.4,
	Sprinter:      2,
	LongSprinter:  2.6,
	GreatSprinter: 4,
}

// Tiers returns every tier in capacity order.
func Tiers() []Tier {
	return []Tier{Sedan, Minivan, Sprinter, LongSprinter, GreatSprinter}
}

// Parse returns the Tier for a raw string and whether it names a known
// tier.
func Parse(s string) (Tier, bool) {
	switch Tier(s) {
	case Sedan, Minivan, Sprinter, LongSprinter, GreatSprinter:
		return Tier(s), true
	}
	return "", false
}

// Default is the tier preselected when the user has made no choice.
const Default = Sedan

// Capacity returns the inclusive passenger range of the tier.
func (t Tier) Capacity() (min, max int) {
	c := capacities[t]
	return c.min, c.max
}

// CapacityLabel renders the passenger range as "min-max".
func (t Tier) CapacityLabel() string {
	min, max := t.Capacity()
	return fmt.Sprintf("%d-%d", min, max)
}

// Multiplier returns the sedan-price multiplier used by the fallback
// pricing path.
func (t Tier) Multiplier() float64 {
	return multipliers[t]
}

// names holds the display name of every tier in one language.
type names struct {
	Sedan         string
	Minivan       string
	Sprinter      string
	LongSprinter  string
	GreatSprinter string
}

var displayNames = map[i18n.Language]names{
	i18n.English: {
		Sedan:         "Sedan",
		Minivan:       "Minivan",
		Sprinter:      "Sprinter",
		LongSprinter:  "Long Sprinter",
		GreatSprinter: "Great Sprinter",
	},
	i18n.Hebrew: {
		Sedan:         "סדאן",
		Minivan:       "מיניוואן",
		Sprinter:      "ספרינטר",
		LongSprinter:  "ספרינטר ארוך",
		GreatSprinter: "ספרינטר גדול",
	},
	i18n.Russian: {
		Sedan:         "Седан",
		Minivan:       "Минивэн",
		Sprinter:      "Спринтер",
		LongSprinter:  "Длинный Спринтер",
		GreatSprinter: "Большой Спринтер",
	},
}

// Name returns the display name of the tier in the given language,
// falling back to English.
func (t Tier) Name(lang i18n.Language) string {
	n, ok := displayNames[lang]
	if !ok {
		n = displayNames[i18n.DefaultLang]
	}

	switch t {
	case Sedan:
		return n.Sedan
	case Minivan:
		return n.Minivan
	case Sprinter:
		return n.Sprinter
	case LongSprinter:
		return n.LongSprinter
	case GreatSprinter:
		return n.GreatSprinter
	}
	return string(t)
}

// MessageName is the fixed-language tier label used in outbound
// booking messages, e.g. "Sedan (1-3 passengers)".
func (t Tier) MessageName() string {
	return fmt.Sprintf("%s (%s passengers)", t.Name(i18n.DefaultLang), t.CapacityLabel())
}
