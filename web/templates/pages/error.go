package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ErrorPageProps is the data for error pages
type ErrorPageProps struct {
	LayoutProps
	ErrorTitle   string
	ErrorMessage string
	BackLink     string
	BackText     string
}

// ErrorPage renders an error with the site chrome
func ErrorPage(p ErrorPageProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			`<section class="error-page"><h1>`, templ.EscapeString(p.ErrorTitle), `</h1>`,
			`<p>`, templ.EscapeString(p.ErrorMessage), `</p>`,
		); err != nil {
			return err
		}
		if p.BackLink != "" {
			if err := write(w, `<a href="`, templ.EscapeString(string(templ.URL(p.BackLink))), `">`, templ.EscapeString(p.BackText), `</a>`); err != nil {
				return err
			}
		}
		return write(w, `</section>`)
	})
	return layout(p.LayoutProps, body)
}
