package middleware

import (
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

// LangKey is where Locale stores the negotiated language.Tag
const LangKey = "lang"

// Negotiator picks a supported language from an Accept-Language value
type Negotiator interface {
	Negotiate(acceptLanguage string) language.Tag
}

// Locale negotiates the display language. A ?lang= query parameter wins over the header.
func Locale(n Negotiator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			pref := c.Request().Header.Get("Accept-Language")
			if q := c.QueryParam("lang"); q != "" {
				if _, err := language.Parse(q); err == nil {
					pref = q
				}
			}
			c.Set(LangKey, n.Negotiate(pref))
			return next(c)
		}
	}
}

// LangFromContext returns the negotiated language, or language.Und when Locale did not run
func LangFromContext(c echo.Context) language.Tag {
	if tag, ok := c.Get(LangKey).(language.Tag); ok {
		return tag
	}
	return language.Und
}
