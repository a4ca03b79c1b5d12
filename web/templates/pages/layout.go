package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"breadcrumbs_echo/web/templates/shared"
)

// LayoutProps is the data common to every page
type LayoutProps struct {
	Title       string
	Lang        string
	Breadcrumbs []shared.Crumb
	// Current is shown after the trail; empty hides it
	Current   string
	UserEmail string
}

// LangAttr formats tag for the html lang attribute
func LangAttr(tag language.Tag) string {
	if tag == language.Und {
		return ""
	}
	return tag.String()
}

func layout(p LayoutProps, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := p.Lang
		if lang == "" {
			lang = "en"
		}
		head := `<!DOCTYPE html><html lang="` + templ.EscapeString(lang) + `"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + templ.EscapeString(p.Title) + `</title>` +
			`<link rel="stylesheet" href="/static/site.css"></head><body>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if p.UserEmail != "" {
			if _, err := io.WriteString(w, `<header class="user">`+templ.EscapeString(p.UserEmail)+`</header>`); err != nil {
				return err
			}
		}
		if err := shared.Breadcrumbs(p.Breadcrumbs, p.Current).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main>`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func write(w io.Writer, parts ...string) error {
	for _, s := range parts {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}
