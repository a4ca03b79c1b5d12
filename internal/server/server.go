package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"breadcrumbs_echo/internal/breadcrumb"
	"breadcrumbs_echo/internal/handlers"
	"breadcrumbs_echo/internal/i18n"
	"breadcrumbs_echo/internal/middleware"
	"breadcrumbs_echo/internal/routing"
	"breadcrumbs_echo/internal/services"
)

// Deps are the collaborators the site is assembled from
type Deps struct {
	Store   services.NodeStore
	Catalog *i18n.Catalog
	// Sessions may be nil; editorial routes then redirect to login
	Sessions     handlers.SessionIssuer
	Verifier     middleware.SessionVerifier
	FirebaseWeb  handlers.FirebaseWebConfig
	SecureCookie bool
	// RequestLog enables the Echo access log
	RequestLog bool
}

// New builds the Echo instance with all named routes registered
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	if d.RequestLog {
		e.Use(echomw.Logger())
	}
	e.Use(echomw.Recover())
	e.Use(middleware.Locale(d.Catalog))

	resolver := routing.NewResolver(e)
	e.HTTPErrorHandler = middleware.NewErrorHandler(resolver, d.Catalog)

	// Order matters: the first builder that applies wins
	trails := breadcrumb.NewManager(
		breadcrumb.NewArticleBuilder(d.Catalog, breadcrumb.RouteLinks{}),
		breadcrumb.NewHomeBuilder(d.Catalog, breadcrumb.RouteLinks{}),
	)

	homeHandler := handlers.NewHomeHandler(d.Store, resolver, d.Catalog)
	nodeHandler := handlers.NewNodeHandler(d.Store, trails, resolver, d.Catalog)
	authHandler := handlers.NewAuthHandler(d.Sessions, d.FirebaseWeb, d.SecureCookie)

	e.Static("/static", "web/static")

	e.GET("/", homeHandler.Front).Name = routing.Home
	e.GET("/node/:id", nodeHandler.Show).Name = routing.NodePage
	e.GET("/articles", nodeHandler.ListArticles).Name = routing.Articles

	e.GET("/login", authHandler.LoginPage).Name = routing.Login
	e.POST("/auth/login", authHandler.HandleLogin)
	e.POST("/auth/logout", authHandler.HandleLogout)

	admin := e.Group("/admin")
	admin.Use(middleware.RequireAuth(d.Verifier, "/login"))
	admin.GET("/nodes/create", nodeHandler.CreatePage).Name = routing.NodeCreate
	admin.POST("/nodes", nodeHandler.Store).Name = routing.NodeStore

	e.Use(routing.RouteName(routing.NewTable(e)))

	return e
}
