package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"breadcrumbs_echo/internal/breadcrumb"
	"breadcrumbs_echo/internal/middleware"
	"breadcrumbs_echo/internal/routing"
	"breadcrumbs_echo/internal/services"
	"breadcrumbs_echo/web/templates/pages"
)

const frontPageArticles = 5

// HomeHandler serves the front page
type HomeHandler struct {
	store    services.NodeStore
	resolver URLResolver
	t        breadcrumb.Translator
}

// NewHomeHandler creates a HomeHandler
func NewHomeHandler(store services.NodeStore, resolver URLResolver, t breadcrumb.Translator) *HomeHandler {
	return &HomeHandler{store: store, resolver: resolver, t: t}
}

// Front renders the latest articles. The front page has no breadcrumb.
func (h *HomeHandler) Front(c echo.Context) error {
	nodes, err := h.store.ListArticles(c.Request().Context(), frontPageArticles)
	if err != nil {
		return err
	}

	items := make([]pages.ArticleItem, 0, len(nodes))
	for _, n := range nodes {
		url, err := h.resolver.URL(routing.NodePage, n.ID)
		if err != nil {
			return err
		}
		items = append(items, pages.ArticleItem{Node: n, URL: url})
	}

	lang := middleware.LangFromContext(c)
	tr := func(s string) string {
		if h.t == nil {
			return s
		}
		return h.t.Translate(lang, s)
	}

	props := pages.ArticlesListProps{
		LayoutProps: pages.LayoutProps{
			Title:     tr("Home"),
			Lang:      pages.LangAttr(lang),
			UserEmail: getStringFromContext(c, "userEmail"),
		},
		Heading:   tr("Latest articles"),
		EmptyText: tr("No articles yet."),
		ReadMore:  tr("Read more"),
		Articles:  items,
	}

	return render(c, http.StatusOK, pages.FrontPage(props))
}
