package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"breadcrumbs_echo/internal/i18n"
)

func TestLocale(t *testing.T) {
	catalog, err := i18n.NewCatalog(language.English)
	require.NoError(t, err)

	tests := []struct {
		name     string
		target   string
		header   string
		expected language.Tag
	}{
		{name: "no preference", target: "/", expected: language.English},
		{name: "header", target: "/", header: "id-ID,id;q=0.9", expected: language.Indonesian},
		{name: "query wins", target: "/?lang=de", header: "id", expected: language.German},
		{name: "invalid query ignored", target: "/?lang=!!", header: "fr", expected: language.French},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			var got language.Tag
			h := Locale(catalog)(func(c echo.Context) error {
				got = LangFromContext(c)
				return nil
			})

			require.NoError(t, h(c))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLangFromContextWithoutLocale(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, language.Und, LangFromContext(c))
}
