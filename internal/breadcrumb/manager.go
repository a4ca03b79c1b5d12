package breadcrumb

// Manager selects the first applicable builder for a route
type Manager struct {
	builders []Builder
}

// NewManager creates a Manager. Builders are consulted in the given order.
func NewManager(builders ...Builder) *Manager {
	return &Manager{builders: builders}
}

// Build returns the trail of the first builder that applies, or an empty trail
func (m *Manager) Build(rc RouteContext) Breadcrumb {
	for _, b := range m.builders {
		if b.Applies(rc) {
			return b.Build(rc)
		}
	}
	return Breadcrumb{}
}

// HomeBuilder applies to every route and links back to the front page only
type HomeBuilder struct {
	t     Translator
	links LinkFactory
}

// NewHomeBuilder creates the fallback builder
func NewHomeBuilder(t Translator, links LinkFactory) *HomeBuilder {
	if links == nil {
		links = RouteLinks{}
	}
	return &HomeBuilder{t: t, links: links}
}

func (b *HomeBuilder) Applies(rc RouteContext) bool {
	return true
}

func (b *HomeBuilder) Build(rc RouteContext) Breadcrumb {
	text := "Home"
	if b.t != nil {
		text = b.t.Translate(rc.Language, text)
	}
	return Breadcrumb{b.links.FromRoute(text, FrontRoute)}
}
