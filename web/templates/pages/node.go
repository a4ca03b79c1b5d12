package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"breadcrumbs_echo/internal/models"
)

// NodePageProps is the data for a single node page
type NodePageProps struct {
	LayoutProps
	Node *models.Node
}

// NodePage renders a node
func NodePage(p NodePageProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w,
			`<article class="node node--`, templ.EscapeString(p.Node.Bundle()), `">`,
			`<h1>`, templ.EscapeString(p.Node.Title), `</h1>`,
			`<div class="node__body">`, templ.EscapeString(p.Node.Body), `</div>`,
			`</article>`,
		)
	})
	return layout(p.LayoutProps, body)
}
