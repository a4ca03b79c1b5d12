package breadcrumb

import (
	"golang.org/x/text/language"
)

// Entity is the content object resolved for a route
type Entity interface {
	Bundle() string
}

// RouteContext describes the route being rendered
// Entity is nil when the route does not display content
type RouteContext struct {
	Route    string
	Entity   Entity
	Language language.Tag
}

// Link is a single breadcrumb item. An empty Route points at the front page.
type Link struct {
	text  string
	route string
}

// Text returns the display label
func (l Link) Text() string {
	return l.text
}

// Route returns the target route name
func (l Link) Route() string {
	return l.route
}

// IsFront reports whether the link targets the front page
func (l Link) IsFront() bool {
	return l.route == ""
}

// Breadcrumb is an ordered trail from the front page to the parent of the current page
type Breadcrumb []Link

// Builder produces breadcrumbs for the routes it applies to
type Builder interface {
	Applies(rc RouteContext) bool
	Build(rc RouteContext) Breadcrumb
}

// Translator maps a source label to its display form
type Translator interface {
	Translate(lang language.Tag, source string) string
}

// LinkFactory creates links whose URLs are resolved later by the router
type LinkFactory interface {
	FromRoute(text, route string) Link
}

// RouteLinks is the default LinkFactory
type RouteLinks struct{}

// FromRoute creates a link to a named route
func (RouteLinks) FromRoute(text, route string) Link {
	return Link{text: text, route: route}
}
