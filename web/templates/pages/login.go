package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LoginProps is the data for the editor login page
type LoginProps struct {
	LayoutProps
	FirebaseAPIKey     string
	FirebaseAuthDomain string
	FirebaseProjectID  string
	Error              string
}

// Login renders the Firebase sign-in page
func Login(p LoginProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if p.Error != "" {
			if err := write(w, `<p class="error">`, templ.EscapeString(p.Error), `</p>`); err != nil {
				return err
			}
		}
		return write(w,
			`<div id="firebaseui-auth-container"`,
			` data-api-key="`, templ.EscapeString(p.FirebaseAPIKey), `"`,
			` data-auth-domain="`, templ.EscapeString(p.FirebaseAuthDomain), `"`,
			` data-project-id="`, templ.EscapeString(p.FirebaseProjectID), `"></div>`,
			`<script type="module" src="/static/login.js"></script>`,
		)
	})
	return layout(p.LayoutProps, body)
}
