package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type fakeVerifier struct {
	tokens map[string]*auth.Token
}

func (f fakeVerifier) VerifySessionCookie(ctx context.Context, cookie string) (*auth.Token, error) {
	if tok, ok := f.tokens[cookie]; ok {
		return tok, nil
	}
	return nil, errors.New("invalid session")
}

func TestRequireAuth(t *testing.T) {
	verifier := fakeVerifier{tokens: map[string]*auth.Token{
		"good": {UID: "editor-1", Claims: map[string]interface{}{"email": "editor@example.com"}},
	}}

	tests := []struct {
		name         string
		verifier     SessionVerifier
		cookie       string
		expectedCode int
		expectedLoc  string
	}{
		{name: "not configured", verifier: nil, expectedCode: http.StatusTemporaryRedirect, expectedLoc: "/login?error=auth_not_configured"},
		{name: "no cookie", verifier: verifier, expectedCode: http.StatusTemporaryRedirect, expectedLoc: "/login"},
		{name: "invalid cookie", verifier: verifier, cookie: "bad", expectedCode: http.StatusTemporaryRedirect, expectedLoc: "/login"},
		{name: "valid cookie", verifier: verifier, cookie: "good", expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/admin/nodes/create", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "session", Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var email interface{}
			h := RequireAuth(tt.verifier, "/login")(func(c echo.Context) error {
				email = c.Get("userEmail")
				return c.NoContent(http.StatusOK)
			})

			assert.NoError(t, h(c))
			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedLoc != "" {
				assert.Equal(t, tt.expectedLoc, rec.Header().Get(echo.HeaderLocation))
			} else {
				assert.Equal(t, "editor@example.com", email)
			}
		})
	}
}
