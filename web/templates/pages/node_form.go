package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// NodeFormProps is the data for the create node form
type NodeFormProps struct {
	LayoutProps
	Action string
	Error  string
	Values map[string]string
}

// NodeForm renders the create node form
func NodeForm(p NodeFormProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<h1>`, templ.EscapeString(p.Title), `</h1>`); err != nil {
			return err
		}
		if p.Error != "" {
			if err := write(w, `<p class="error">`, templ.EscapeString(p.Error), `</p>`); err != nil {
				return err
			}
		}
		selected := func(t string) string {
			if p.Values["type"] == t {
				return ` selected`
			}
			return ""
		}
		return write(w,
			`<form method="post" action="`, templ.EscapeString(string(templ.URL(p.Action))), `">`,
			`<label>Title <input name="title" required value="`, templ.EscapeString(p.Values["title"]), `"></label>`,
			`<label>Type <select name="type">`,
			`<option value="article"`, selected("article"), `>Article</option>`,
			`<option value="page"`, selected("page"), `>Basic page</option>`,
			`</select></label>`,
			`<label>Body <textarea name="body">`, templ.EscapeString(p.Values["body"]), `</textarea></label>`,
			`<label><input type="checkbox" name="published" checked> Published</label>`,
			`<button type="submit">Save</button></form>`,
		)
	})
	return layout(p.LayoutProps, body)
}
