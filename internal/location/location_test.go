package location

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/visitgeorgia/transfers/pkg/i18n"
)

func TestParse(t *testing.T) {
	t.Run("known keys", func(t *testing.T) {
		for _, k := range All() {
			parsed, ok := Parse(string(k))
			assert.True(t, ok)
			assert.Equal(t, k, parsed)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		_, ok := Parse("yerevan")
		assert.False(t, ok)
	})

	t.Run("empty string", func(t *testing.T) {
		_, ok := Parse("")
		assert.False(t, ok)
	})
}

func TestAll(t *testing.T) {
	keys := All()
	assert.Len(t, keys, 10)

	seen := make(map[Key]bool)
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}

func TestName(t *testing.T) {
	t.Run("every location named in every language", func(t *testing.T) {
		for _, lang := range i18n.Languages() {
			for _, k := range All() {
				assert.NotEmpty(t, k.Name(lang), "missing %s name for %s", lang, k)
			}
		}
	})

	t.Run("english names", func(t *testing.T) {
		assert.Equal(t, "Tbilisi Airport", TbilisiAirport.Name(i18n.English))
		assert.Equal(t, "Kakheti / Sighnaghi", Kakheti.Name(i18n.English))
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		assert.Equal(t, "Kazbegi", Kazbegi.Name(i18n.Language("fr")))
	})
}

func TestMessageName(t *testing.T) {
	// Outbound messages always use the English name, whatever the UI shows.
	assert.Equal(t, "Tbilisi Airport", TbilisiAirport.MessageName())
	assert.Equal(t, "Batumi", Batumi.MessageName())
}
