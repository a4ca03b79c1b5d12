package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"breadcrumbs_echo/internal/middleware"
	"breadcrumbs_echo/web/templates/pages"
)

const sessionDuration = time.Hour * 24 * 5

// SessionIssuer exchanges Firebase ID tokens for session cookies
type SessionIssuer interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	SessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error)
}

// FirebaseWebConfig is the client-side Firebase configuration shown on the login page
type FirebaseWebConfig struct {
	APIKey     string
	AuthDomain string
	ProjectID  string
}

// AuthHandler handles editor sign-in
type AuthHandler struct {
	issuer       SessionIssuer
	web          FirebaseWebConfig
	secureCookie bool
}

// NewAuthHandler creates an AuthHandler. issuer may be nil when Firebase is not configured.
func NewAuthHandler(issuer SessionIssuer, web FirebaseWebConfig, secureCookie bool) *AuthHandler {
	return &AuthHandler{issuer: issuer, web: web, secureCookie: secureCookie}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(c echo.Context) error {
	loginErr := ""
	if c.QueryParam("error") == "auth_not_configured" {
		loginErr = "Sign-in is not configured on this site."
	}

	props := pages.LoginProps{
		LayoutProps: pages.LayoutProps{
			Title: "Log in",
			Lang:  pages.LangAttr(middleware.LangFromContext(c)),
		},
		FirebaseAPIKey:     h.web.APIKey,
		FirebaseAuthDomain: h.web.AuthDomain,
		FirebaseProjectID:  h.web.ProjectID,
		Error:              loginErr,
	}
	return render(c, http.StatusOK, pages.Login(props))
}

// HandleLogin verifies the Firebase ID token and sets a session cookie
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	if h.issuer == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Firebase not initialized",
		})
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Missing authorization header",
		})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid authorization format",
		})
	}

	ctx := c.Request().Context()
	if _, err := h.issuer.VerifyIDToken(ctx, tokenString); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid token",
		})
	}

	cookieValue, err := h.issuer.SessionCookie(ctx, tokenString, sessionDuration)
	if err != nil {
		c.Logger().Errorf("failed to create session cookie: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create session",
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     "session",
		Value:    cookieValue,
		MaxAge:   int(sessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, map[string]string{
		"status": "success",
	})
}

// HandleLogout clears the session cookie
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     "session",
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})

	return c.JSON(http.StatusOK, map[string]string{
		"status": "logged out",
	})
}
