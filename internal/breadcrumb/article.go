package breadcrumb

const (
	// NodeRoute is the route that displays a single content node
	NodeRoute = "node_page"
	// ArticlesRoute is the article listing route
	ArticlesRoute = "articles_route"
	// FrontRoute is the front page marker
	FrontRoute = ""

	articleBundle = "article"
)

// ArticleBuilder builds the trail for article pages: Home > Articles
type ArticleBuilder struct {
	t     Translator
	links LinkFactory
}

// NewArticleBuilder creates an ArticleBuilder
func NewArticleBuilder(t Translator, links LinkFactory) *ArticleBuilder {
	if links == nil {
		links = RouteLinks{}
	}
	return &ArticleBuilder{t: t, links: links}
}

// Applies reports whether rc is a node page showing an article
func (b *ArticleBuilder) Applies(rc RouteContext) bool {
	if rc.Route != NodeRoute {
		return false
	}
	if rc.Entity == nil {
		return false
	}
	return rc.Entity.Bundle() == articleBundle
}

// Build returns Home > Articles. The article itself is left to the theme.
func (b *ArticleBuilder) Build(rc RouteContext) Breadcrumb {
	return Breadcrumb{
		b.links.FromRoute(b.translate(rc, "Home"), FrontRoute),
		b.links.FromRoute(b.translate(rc, "Articles"), ArticlesRoute),
	}
}

func (b *ArticleBuilder) translate(rc RouteContext, source string) string {
	if b.t == nil {
		return source
	}
	return b.t.Translate(rc.Language, source)
}
