package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"breadcrumbs_echo/internal/models"
)

// ArticleItem is an article teaser with its resolved URL
type ArticleItem struct {
	Node models.Node
	URL  string
}

// ArticlesListProps is the data for the article listing
type ArticlesListProps struct {
	LayoutProps
	Heading   string
	EmptyText string
	ReadMore  string
	Articles  []ArticleItem
}

// ArticlesList renders the article listing
func ArticlesList(p ArticlesListProps) templ.Component {
	return layout(p.LayoutProps, articleTeasers(p))
}

// FrontPage renders the front page with the latest articles
func FrontPage(p ArticlesListProps) templ.Component {
	teasers := articleTeasers(p)
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<section class="front">`); err != nil {
			return err
		}
		if err := teasers.Render(ctx, w); err != nil {
			return err
		}
		return write(w, `</section>`)
	})
	return layout(p.LayoutProps, body)
}

func articleTeasers(p ArticlesListProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<h1>`, templ.EscapeString(p.Heading), `</h1>`); err != nil {
			return err
		}
		if len(p.Articles) == 0 {
			return write(w, `<p class="empty">`, templ.EscapeString(p.EmptyText), `</p>`)
		}
		if err := write(w, `<ul class="articles">`); err != nil {
			return err
		}
		for _, a := range p.Articles {
			href := templ.EscapeString(string(templ.URL(a.URL)))
			err := write(w,
				`<li><a href="`, href, `">`, templ.EscapeString(a.Node.Title), `</a> `,
				`<a class="more" href="`, href, `">`, templ.EscapeString(p.ReadMore), `</a></li>`,
			)
			if err != nil {
				return err
			}
		}
		return write(w, `</ul>`)
	})
}
