package routing

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"breadcrumbs_echo/internal/breadcrumb"
)

// Route names registered on the Echo router
const (
	Home       = "home"
	NodePage   = breadcrumb.NodeRoute
	Articles   = breadcrumb.ArticlesRoute
	Login      = "login"
	NodeCreate = "node_create"
	NodeStore  = "node_store"
)

// ErrUnresolvableRoute is returned when a link names a route the router does not know
var ErrUnresolvableRoute = errors.New("unresolvable route")

// Resolver turns route names into URLs using the Echo router
type Resolver struct {
	e *echo.Echo
}

// NewResolver creates a Resolver for e
func NewResolver(e *echo.Echo) *Resolver {
	return &Resolver{e: e}
}

// URL returns the path for a named route. The front marker resolves to "/".
func (r *Resolver) URL(route string, params ...interface{}) (string, error) {
	if route == breadcrumb.FrontRoute {
		return "/", nil
	}
	path := r.e.Reverse(route, params...)
	if path == "" {
		return "", fmt.Errorf("%w: %s", ErrUnresolvableRoute, route)
	}
	return path, nil
}

// LinkURL resolves a breadcrumb link
func (r *Resolver) LinkURL(link breadcrumb.Link) (string, error) {
	return r.URL(link.Route())
}
