// Package currency converts and formats transfer prices.
//
// All base prices are authored in EUR, the reference currency. The
// supported set and the exchange rates are fixed; there is no runtime
// rate source.
package currency

import (
	"math"
	"strconv"
	"strings"
)

// Code is a supported currency code.
type Code string

const (
	EUR Code = "EUR"
	GEL Code = "GEL"
	USD Code = "USD"
)

// Reference is the currency all base prices are authored in.
const Reference = EUR

// Currency describes one supported currency for API listings.
type Currency struct {
	Code        Code    `json:"code"`
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Rate        float64 `json:"rate"`
	SymbolAfter bool    `json:"symbol_after"`
}

// catalog is ordered for stable API output. GEL places the symbol
// after the amount by local convention.
var catalog = []Currency{
	{Code: EUR, Name: "Euro", Symbol: "€", Rate: 1},
	{Code: GEL, Name: "Georgian Lari", Symbol: "₾", Rate: 2.95, SymbolAfter: true},
	{Code: USD, Name: "US Dollar", Symbol: "$", Rate: 1.08},
}

var byCode = func() map[Code]Currency {
	m := make(map[Code]Currency, len(catalog))
	for _, c := range catalog {
		m[c.Code] = c
	}
	return m
}()

// All returns the supported currencies in a stable order.
func All() []Currency {
	out := make([]Currency, len(catalog))
	copy(out, catalog)
	return out
}

// Parse returns the Code for a raw string, case-insensitively, and
// whether it is supported.
func Parse(s string) (Code, bool) {
	code := Code(strings.ToUpper(s))
	if _, ok := byCode[code]; ok {
		return code, true
	}
	return Reference, false
}

// Convert converts a whole-unit EUR amount into the target currency,
// rounded to the nearest whole unit.
func Convert(amountEUR int, to Code) int {
	return int(math.Round(float64(amountEUR) * byCode[to].Rate))
}

// Format renders an amount with the currency symbol, honoring the
// before/after convention. No grouping, no decimals.
func Format(amount int, c Code) string {
	cur := byCode[c]
	if cur.SymbolAfter {
		return strconv.Itoa(amount) + cur.Symbol
	}
	return cur.Symbol + strconv.Itoa(amount)
}

// Symbol returns the display symbol for a code.
func Symbol(c Code) string {
	return byCode[c].Symbol
}

// Rate returns the fixed exchange rate relative to EUR.
func Rate(c Code) float64 {
	return byCode[c].Rate
}
