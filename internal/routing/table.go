package routing

import (
	"github.com/labstack/echo/v4"
)

// ContextKey is where RouteName stores the matched route name
const ContextKey = "routeName"

// Table maps registered method and path patterns to route names
type Table struct {
	names map[string]string
}

// NewTable snapshots the routes registered on e. Call it after all routes are added.
func NewTable(e *echo.Echo) *Table {
	names := make(map[string]string)
	for _, r := range e.Routes() {
		if r.Name == "" {
			continue
		}
		names[r.Method+" "+r.Path] = r.Name
	}
	return &Table{names: names}
}

// Name returns the route name for a method and path pattern
func (t *Table) Name(method, path string) (string, bool) {
	name, ok := t.names[method+" "+path]
	return name, ok
}

// RouteName returns a middleware that stores the matched route name on the context
func RouteName(t *Table) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if name, ok := t.Name(c.Request().Method, c.Path()); ok {
				c.Set(ContextKey, name)
			}
			return next(c)
		}
	}
}
