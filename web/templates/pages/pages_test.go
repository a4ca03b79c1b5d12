package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breadcrumbs_echo/internal/models"
	"breadcrumbs_echo/web/templates/shared"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestNodePage(t *testing.T) {
	html := render(t, NodePage(NodePageProps{
		LayoutProps: LayoutProps{
			Title:       "Go 1.24",
			Lang:        "id",
			Breadcrumbs: []shared.Crumb{{Title: "Beranda", URL: "/"}, {Title: "Artikel", URL: "/articles"}},
			Current:     "Go 1.24",
		},
		Node: &models.Node{Type: models.NodeTypeArticle, Title: "Go 1.24", Body: "<b>new</b>"},
	}))

	assert.Contains(t, html, `<html lang="id">`)
	assert.Contains(t, html, `<a href="/articles">Artikel</a>`)
	assert.Contains(t, html, `class="node node--article"`)
	assert.Contains(t, html, `&lt;b&gt;new&lt;/b&gt;`)
}

func TestArticlesListEmpty(t *testing.T) {
	html := render(t, ArticlesList(ArticlesListProps{
		LayoutProps: LayoutProps{Title: "Articles"},
		Heading:     "Articles",
		EmptyText:   "No articles yet.",
	}))

	assert.Contains(t, html, `<p class="empty">No articles yet.</p>`)
	assert.Contains(t, html, `<html lang="en">`)
}

func TestFrontPageListsArticles(t *testing.T) {
	html := render(t, FrontPage(ArticlesListProps{
		LayoutProps: LayoutProps{Title: "Home"},
		Heading:     "Latest articles",
		ReadMore:    "Read more",
		Articles: []ArticleItem{
			{Node: models.Node{Title: "First"}, URL: "/node/1"},
			{Node: models.Node{Title: "Second"}, URL: "/node/2"},
		},
	}))

	assert.Contains(t, html, `<section class="front">`)
	assert.Contains(t, html, `<a href="/node/1">First</a>`)
	assert.Contains(t, html, `<a href="/node/2">Second</a>`)
}

func TestErrorPage(t *testing.T) {
	html := render(t, ErrorPage(ErrorPageProps{
		LayoutProps:  LayoutProps{Title: "Page Not Found", Breadcrumbs: []shared.Crumb{{Title: "Home", URL: "/"}}},
		ErrorTitle:   "Page Not Found",
		ErrorMessage: "The page you're looking for doesn't exist.",
		BackLink:     "/",
		BackText:     "Home",
	}))

	assert.Contains(t, html, `<h1>Page Not Found</h1>`)
	assert.Contains(t, html, `doesn&#39;t exist.`)
}
