package handlers

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"breadcrumbs_echo/internal/breadcrumb"
	"breadcrumbs_echo/internal/routing"
)

// URLResolver turns route names and breadcrumb links into URLs
type URLResolver interface {
	URL(route string, params ...interface{}) (string, error)
	LinkURL(link breadcrumb.Link) (string, error)
}

// render writes an HTML component with the given status code
func render(c echo.Context, code int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return component.Render(c.Request().Context(), c.Response())
}

// Helper to safely get string from context
func getStringFromContext(c echo.Context, key string) string {
	val := c.Get(key)
	if val == nil {
		return ""
	}
	strVal, ok := val.(string)
	if !ok {
		return ""
	}
	return strVal
}

func routeName(c echo.Context) string {
	return getStringFromContext(c, routing.ContextKey)
}
