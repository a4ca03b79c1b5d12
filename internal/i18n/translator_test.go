package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTranslate(t *testing.T) {
	c, err := NewCatalog(language.English)
	require.NoError(t, err)

	tests := []struct {
		name     string
		lang     language.Tag
		source   string
		expected string
	}{
		{name: "english source", lang: language.English, source: "Home", expected: "Home"},
		{name: "indonesian", lang: language.Indonesian, source: "Home", expected: "Beranda"},
		{name: "german", lang: language.German, source: "Articles", expected: "Artikel"},
		{name: "regional variant", lang: language.MustParse("fr-CA"), source: "Home", expected: "Accueil"},
		{name: "unsupported language", lang: language.Japanese, source: "Articles", expected: "Articles"},
		{name: "missing message", lang: language.Indonesian, source: "Unknown label", expected: "Unknown label"},
		{name: "undetermined", lang: language.Und, source: "Home", expected: "Home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Translate(tt.lang, tt.source))
		})
	}
}

func TestNegotiate(t *testing.T) {
	c, err := NewCatalog(language.English)
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		expected language.Tag
	}{
		{name: "empty header", header: "", expected: language.English},
		{name: "single language", header: "id", expected: language.Indonesian},
		{name: "weighted list", header: "ja;q=0.9, de;q=0.8", expected: language.German},
		{name: "unsupported only", header: "ja", expected: language.English},
		{name: "malformed", header: ";;;", expected: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Negotiate(tt.header))
		})
	}
}

func TestParseCatalogRejectsBadTag(t *testing.T) {
	_, err := ParseCatalog([]byte("not a tag!:\n  Home: x\n"), language.English)
	assert.Error(t, err)
}

func TestParseCatalogRejectsBadYAML(t *testing.T) {
	_, err := ParseCatalog([]byte("- just\n- a list\n"), language.English)
	assert.Error(t, err)
}
