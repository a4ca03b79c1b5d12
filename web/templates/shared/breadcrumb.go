package shared

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"breadcrumbs_echo/internal/breadcrumb"
)

// LinkResolver turns a breadcrumb link into a URL
type LinkResolver interface {
	LinkURL(link breadcrumb.Link) (string, error)
}

// Crumb is a resolved breadcrumb item ready for rendering
type Crumb struct {
	Title string
	URL   string
}

// ResolveTrail resolves every link in trail. Any unresolvable link fails the whole trail.
func ResolveTrail(r LinkResolver, trail breadcrumb.Breadcrumb) ([]Crumb, error) {
	crumbs := make([]Crumb, 0, len(trail))
	for _, link := range trail {
		url, err := r.LinkURL(link)
		if err != nil {
			return nil, err
		}
		crumbs = append(crumbs, Crumb{Title: link.Text(), URL: url})
	}
	return crumbs, nil
}

// Breadcrumbs renders the trail followed by the current page title as plain text
func Breadcrumbs(crumbs []Crumb, current string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(crumbs) == 0 && current == "" {
			return nil
		}
		if _, err := io.WriteString(w, `<nav aria-label="breadcrumb"><ol class="breadcrumb">`); err != nil {
			return err
		}
		for _, c := range crumbs {
			_, err := io.WriteString(w, `<li class="breadcrumb-item"><a href="`+
				templ.EscapeString(string(templ.URL(c.URL)))+`">`+
				templ.EscapeString(c.Title)+`</a></li>`)
			if err != nil {
				return err
			}
		}
		if current != "" {
			_, err := io.WriteString(w, `<li class="breadcrumb-item active" aria-current="page">`+
				templ.EscapeString(current)+`</li>`)
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ol></nav>`)
		return err
	})
}
