package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/text/language"

	"breadcrumbs_echo/internal/config"
	"breadcrumbs_echo/internal/handlers"
	"breadcrumbs_echo/internal/i18n"
	"breadcrumbs_echo/internal/server"
	"breadcrumbs_echo/internal/services"
)

func main() {
	cfg := config.Load()

	defaultLang, err := language.Parse(cfg.DefaultLanguage)
	if err != nil {
		log.Printf("Warning: invalid DEFAULT_LANGUAGE %q, using English", cfg.DefaultLanguage)
		defaultLang = language.English
	}
	catalog, err := i18n.NewCatalog(defaultLang)
	if err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := services.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := services.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	var store services.NodeStore = services.NewGormNodeStore(db)
	if cfg.RedisURL != "" {
		cache, err := services.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Redis unavailable, serving without cache: %v", err)
		} else {
			defer cache.Close()
			store = services.NewCachedNodeStore(store, cache)
		}
	} else {
		log.Println("Warning: REDIS_URL not set, caching disabled")
	}

	deps := server.Deps{
		Store:   store,
		Catalog: catalog,
		FirebaseWeb: handlers.FirebaseWebConfig{
			APIKey:     os.Getenv("FIREBASE_API_KEY"),
			AuthDomain: os.Getenv("FIREBASE_AUTH_DOMAIN"),
			ProjectID:  os.Getenv("FIREBASE_PROJECT_ID"),
		},
		SecureCookie: cfg.IsProduction(),
		RequestLog:   true,
	}

	authClient, err := services.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Printf("Warning: Firebase initialization failed: %v", err)
		log.Println("Editorial routes will redirect to login until valid credentials are provided")
	} else {
		deps.Sessions = authClient
		deps.Verifier = authClient
	}

	e := server.New(deps)

	log.Printf("Server starting on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
