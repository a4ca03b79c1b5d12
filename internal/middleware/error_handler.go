package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"breadcrumbs_echo/internal/breadcrumb"
	"breadcrumbs_echo/web/templates/pages"
	"breadcrumbs_echo/web/templates/shared"
)

// NewErrorHandler creates an Echo error handler that renders the error page
func NewErrorHandler(resolver shared.LinkResolver, t breadcrumb.Translator) echo.HTTPErrorHandler {
	home := breadcrumb.NewHomeBuilder(t, nil)

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			c.Logger().Error(err)
			return
		}

		code := http.StatusInternalServerError
		errorTitle := "Internal Server Error"
		errorMessage := ""

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok && msg != "" {
				errorMessage = msg
			}

			switch code {
			case http.StatusNotFound:
				errorTitle = "Page Not Found"
				if errorMessage == "" {
					errorMessage = "The page you're looking for doesn't exist."
				}
			case http.StatusForbidden:
				errorTitle = "Access Denied"
				if errorMessage == "" {
					errorMessage = "You don't have permission to access this resource."
				}
			case http.StatusUnauthorized:
				errorTitle = "Unauthorized"
				if errorMessage == "" {
					errorMessage = "Please log in to continue."
				}
			case http.StatusBadRequest:
				errorTitle = "Bad Request"
				if errorMessage == "" {
					errorMessage = "The request could not be processed."
				}
			case http.StatusMethodNotAllowed:
				errorTitle = "Method Not Allowed"
				if errorMessage == "" {
					errorMessage = "This action is not available here."
				}
			}
		}
		if errorMessage == "" {
			errorMessage = "Something went wrong. Please try again later."
		}

		c.Logger().Error(err)

		lang := LangFromContext(c)
		if t != nil {
			errorTitle = t.Translate(lang, errorTitle)
		}

		props := pages.ErrorPageProps{
			LayoutProps: pages.LayoutProps{
				Title:     errorTitle,
				Lang:      pages.LangAttr(lang),
				Current:   errorTitle,
				UserEmail: stringFromContext(c, "userEmail"),
			},
			ErrorTitle:   errorTitle,
			ErrorMessage: errorMessage,
		}

		// The error page must render even when the failure came from link resolution
		crumbs, resolveErr := shared.ResolveTrail(resolver, home.Build(breadcrumb.RouteContext{Language: lang}))
		if resolveErr == nil {
			props.Breadcrumbs = crumbs
		}

		if strings.HasPrefix(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
			if jsonErr := c.JSON(code, map[string]string{"error": errorMessage}); jsonErr != nil {
				c.Logger().Error(jsonErr)
			}
			return
		}

		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().WriteHeader(code)
		if renderErr := pages.ErrorPage(props).Render(c.Request().Context(), c.Response()); renderErr != nil {
			c.Logger().Error(fmt.Errorf("failed to render error page: %w", renderErr))
			c.String(code, errorMessage)
		}
	}
}

func stringFromContext(c echo.Context, key string) string {
	if s, ok := c.Get(key).(string); ok {
		return s
	}
	return ""
}
