package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIssuer struct {
	cookieErr error
}

func (f fakeIssuer) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if idToken != "valid-id-token" {
		return nil, errors.New("bad token")
	}
	return &auth.Token{UID: "editor-1"}, nil
}

func (f fakeIssuer) SessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error) {
	if f.cookieErr != nil {
		return "", f.cookieErr
	}
	return "session-for-" + idToken, nil
}

func TestHandleLogin(t *testing.T) {
	tests := []struct {
		name         string
		issuer       SessionIssuer
		header       string
		expectedCode int
		expectCookie bool
	}{
		{name: "firebase missing", issuer: nil, header: "Bearer valid-id-token", expectedCode: http.StatusInternalServerError},
		{name: "no header", issuer: fakeIssuer{}, expectedCode: http.StatusUnauthorized},
		{name: "not bearer", issuer: fakeIssuer{}, header: "Basic abc", expectedCode: http.StatusUnauthorized},
		{name: "invalid token", issuer: fakeIssuer{}, header: "Bearer nope", expectedCode: http.StatusUnauthorized},
		{name: "cookie failure", issuer: fakeIssuer{cookieErr: errors.New("quota")}, header: "Bearer valid-id-token", expectedCode: http.StatusInternalServerError},
		{name: "success", issuer: fakeIssuer{}, header: "Bearer valid-id-token", expectedCode: http.StatusOK, expectCookie: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := NewAuthHandler(tt.issuer, FirebaseWebConfig{}, true)
			require.NoError(t, h.HandleLogin(c))
			assert.Equal(t, tt.expectedCode, rec.Code)

			cookies := rec.Result().Cookies()
			if tt.expectCookie {
				require.Len(t, cookies, 1)
				assert.Equal(t, "session", cookies[0].Name)
				assert.Equal(t, "session-for-valid-id-token", cookies[0].Value)
				assert.True(t, cookies[0].HttpOnly)
				assert.True(t, cookies[0].Secure)
			} else {
				assert.Empty(t, cookies)
			}
		})
	}
}

func TestHandleLogout(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/logout", nil), rec)

	require.NoError(t, NewAuthHandler(nil, FirebaseWebConfig{}, false).HandleLogout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestLoginPage(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/login?error=auth_not_configured", nil), rec)

	h := NewAuthHandler(nil, FirebaseWebConfig{APIKey: "key-123", ProjectID: "site"}, false)
	require.NoError(t, h.LoginPage(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-api-key="key-123"`)
	assert.Contains(t, rec.Body.String(), "Sign-in is not configured")
}
