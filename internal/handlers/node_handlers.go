package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"

	"breadcrumbs_echo/internal/breadcrumb"
	"breadcrumbs_echo/internal/middleware"
	"breadcrumbs_echo/internal/models"
	"breadcrumbs_echo/internal/routing"
	"breadcrumbs_echo/internal/services"
	"breadcrumbs_echo/web/templates/pages"
	"breadcrumbs_echo/web/templates/shared"
)

const articlesPageSize = 50

// NodeHandler serves content nodes and the article listing
type NodeHandler struct {
	store    services.NodeStore
	trails   *breadcrumb.Manager
	resolver URLResolver
	t        breadcrumb.Translator
}

// NewNodeHandler creates a NodeHandler
func NewNodeHandler(store services.NodeStore, trails *breadcrumb.Manager, resolver URLResolver, t breadcrumb.Translator) *NodeHandler {
	return &NodeHandler{store: store, trails: trails, resolver: resolver, t: t}
}

// Show renders a single node
func (h *NodeHandler) Show(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid node ID")
	}

	node, err := h.store.FindNode(c.Request().Context(), uint(id))
	if errors.Is(err, services.ErrNodeNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Node not found")
	}
	if err != nil {
		return err
	}

	lang := middleware.LangFromContext(c)
	trail := h.trails.Build(breadcrumb.RouteContext{
		Route:    routeName(c),
		Entity:   node,
		Language: lang,
	})
	crumbs, err := shared.ResolveTrail(h.resolver, trail)
	if err != nil {
		return err
	}

	props := pages.NodePageProps{
		LayoutProps: pages.LayoutProps{
			Title:       node.Title,
			Lang:        pages.LangAttr(lang),
			Breadcrumbs: crumbs,
			Current:     node.Title,
			UserEmail:   getStringFromContext(c, "userEmail"),
		},
		Node: node,
	}

	return render(c, http.StatusOK, pages.NodePage(props))
}

// ListArticles renders the published articles, newest first
func (h *NodeHandler) ListArticles(c echo.Context) error {
	nodes, err := h.store.ListArticles(c.Request().Context(), articlesPageSize)
	if err != nil {
		return err
	}

	lang := middleware.LangFromContext(c)
	items, err := h.articleItems(nodes)
	if err != nil {
		return err
	}

	crumbs, err := shared.ResolveTrail(h.resolver, h.trails.Build(breadcrumb.RouteContext{
		Route:    routeName(c),
		Language: lang,
	}))
	if err != nil {
		return err
	}

	title := h.translate(lang, "Articles")
	props := pages.ArticlesListProps{
		LayoutProps: pages.LayoutProps{
			Title:       title,
			Lang:        pages.LangAttr(lang),
			Breadcrumbs: crumbs,
			Current:     title,
			UserEmail:   getStringFromContext(c, "userEmail"),
		},
		Heading:   title,
		EmptyText: h.translate(lang, "No articles yet."),
		ReadMore:  h.translate(lang, "Read more"),
		Articles:  items,
	}

	return render(c, http.StatusOK, pages.ArticlesList(props))
}

// CreatePage renders the create node form
func (h *NodeHandler) CreatePage(c echo.Context) error {
	return h.renderForm(c, http.StatusOK, "", map[string]string{"type": string(models.NodeTypeArticle)})
}

// Store creates a node and redirects to it
func (h *NodeHandler) Store(c echo.Context) error {
	values := map[string]string{
		"title": strings.TrimSpace(c.FormValue("title")),
		"type":  c.FormValue("type"),
		"body":  c.FormValue("body"),
	}

	if values["title"] == "" {
		return h.renderForm(c, http.StatusUnprocessableEntity, "Title is required.", values)
	}
	if !models.ValidNodeType(values["type"]) {
		return h.renderForm(c, http.StatusUnprocessableEntity, "Unknown content type.", values)
	}

	node := models.Node{
		Type:      models.NodeType(values["type"]),
		Title:     values["title"],
		Body:      values["body"],
		Published: c.FormValue("published") == "on",
	}
	if err := h.store.CreateNode(c.Request().Context(), &node); err != nil {
		return err
	}
	c.Logger().Infof("node %d (%s) created by %s", node.ID, node.Type, getStringFromContext(c, "userUID"))

	if !node.Published {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	url, err := h.resolver.URL(routing.NodePage, node.ID)
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, url)
}

func (h *NodeHandler) renderForm(c echo.Context, code int, formErr string, values map[string]string) error {
	action, err := h.resolver.URL(routing.NodeStore)
	if err != nil {
		return err
	}

	lang := middleware.LangFromContext(c)
	crumbs, err := shared.ResolveTrail(h.resolver, h.trails.Build(breadcrumb.RouteContext{
		Route:    routeName(c),
		Language: lang,
	}))
	if err != nil {
		return err
	}

	props := pages.NodeFormProps{
		LayoutProps: pages.LayoutProps{
			Title:       "Create content",
			Lang:        pages.LangAttr(lang),
			Breadcrumbs: crumbs,
			Current:     "Create content",
			UserEmail:   getStringFromContext(c, "userEmail"),
		},
		Action: action,
		Error:  formErr,
		Values: values,
	}

	return render(c, code, pages.NodeForm(props))
}

func (h *NodeHandler) articleItems(nodes []models.Node) ([]pages.ArticleItem, error) {
	items := make([]pages.ArticleItem, 0, len(nodes))
	for _, n := range nodes {
		url, err := h.resolver.URL(routing.NodePage, n.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, pages.ArticleItem{Node: n, URL: url})
	}
	return items, nil
}

func (h *NodeHandler) translate(lang language.Tag, source string) string {
	if h.t == nil {
		return source
	}
	return h.t.Translate(lang, source)
}
