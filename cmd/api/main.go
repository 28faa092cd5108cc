//	@title			Showcase Content API
//	@version		1.0
//	@description	File-hosting backend for the game showcase site: bucket listings, password-gated uploads and the preset/theme state.
//
//	@host		localhost:8080
//	@BasePath	/api

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/anviet/showcase/internal/config"
	"github.com/anviet/showcase/internal/content"
	appMiddleware "github.com/anviet/showcase/internal/middleware"
	"github.com/anviet/showcase/internal/preset"
	"github.com/anviet/showcase/internal/storage"

	_ "github.com/anviet/showcase/docs/swagger"
)

func main() {
	cfg := config.Load()

	// Missing storage configuration degrades the content endpoints to 503
	// instead of preventing startup.
	var provider storage.Provider
	if cfg.StorageConfigured() {
		minioProvider, err := storage.NewMinioProvider(
			cfg.StorageEndpoint,
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			cfg.StoragePublicBase,
			cfg.StorageUseSSL,
		)
		if err != nil {
			log.Printf("object storage init failed, content endpoints disabled: %v", err)
		} else {
			provider = minioProvider

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			content.EnsureBuckets(ctx, provider)
			cancel()
		}
	} else {
		log.Println("storage environment variables not set, content endpoints disabled")
	}

	contentHandler := content.NewHandler(provider, cfg.UploadPassword)

	presetStore := preset.CookieStore{Secure: cfg.IsProduction()}
	presetHandler := preset.NewHandler(presetStore)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID", appMiddleware.PasswordHeader},
		MaxAge:         300,
	}))
	r.Use(preset.Resolver(presetStore))

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", contentHandler.Health)

		r.Get("/content/{bucket}", contentHandler.List)
		r.Patch("/content/{bucket}/{filename}", contentHandler.PatchMetadata)
		r.Delete("/content/{bucket}/{filename}", contentHandler.Delete)
		r.Post("/upload", contentHandler.Upload)

		r.Group(func(r chi.Router) {
			r.Use(appMiddleware.RequirePassword(cfg.UploadPassword))
			r.Post("/signed-upload", contentHandler.SignedUpload)
		})

		r.Route("/preset", func(r chi.Router) {
			r.Get("/", presetHandler.Get)
			r.Put("/", presetHandler.Set)
			r.Post("/toggle", presetHandler.Toggle)
			r.Get("/theme.css", presetHandler.ThemeCSS)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
