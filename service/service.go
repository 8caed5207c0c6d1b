package service

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/reviewhub/internal/ai"
	"github.com/loganlanou/reviewhub/internal/auth"
	"github.com/loganlanou/reviewhub/internal/cms"
	"github.com/loganlanou/reviewhub/internal/handlers"
	"github.com/loganlanou/reviewhub/internal/importer"
	"github.com/loganlanou/reviewhub/internal/jobs"
	"github.com/loganlanou/reviewhub/internal/ogimage"
	"github.com/loganlanou/reviewhub/storage"
)

type Service struct {
	storage    *storage.Storage
	config     *Config
	cms        *cms.Service
	gate       *auth.Gate
	generator  *ai.Generator
	fetcher    *importer.Fetcher
	cards      *ogimage.Cache
	cardWarmer *jobs.CardWarmer
}

func New(storage *storage.Storage, config *Config) *Service {
	svc := cms.New(storage)

	// Cards live next to the database so one volume holds all state.
	cards := ogimage.NewCache(filepath.Join(filepath.Dir(config.DBPath), "og-cards"))

	if config.Admin.Password == "" {
		slog.Warn("ADMIN_PASSWORD is not set; admin sign-in is disabled")
	}

	return &Service{
		storage: storage,
		config:  config,
		cms:     svc,
		gate:    auth.NewGate(config.Admin.Password, config.Cookie.Secure),
		generator: ai.NewGenerator(ai.Config{
			Timeout:       config.AI.Timeout,
			OpenAIBaseURL: config.AI.OpenAIBaseURL,
			GeminiBaseURL: config.AI.GeminiBaseURL,
			OllamaURL:     config.AI.OllamaURL,
		}),
		fetcher:    importer.NewFetcher(config.Import.RequestsPerMinute),
		cards:      cards,
		cardWarmer: jobs.NewCardWarmer(svc, cards),
	}
}

// Start launches the background jobs.
func (s *Service) Start(ctx context.Context) {
	s.cardWarmer.Start(ctx)
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = handlers.ErrorHandler

	e.GET("/health", s.handleHealth)

	// Everything else passes through the admin gate
	withAuth := e.Group("")
	withAuth.Use(s.gate.Middleware())

	// Public pages
	pages := handlers.NewPagesHandler(s.cms, s.config.BaseURL, s.cards)
	withAuth.GET("/", pages.Home)
	withAuth.GET("/products/:slug", pages.Product)
	withAuth.GET("/og/products/:file", pages.OGImage)

	// Session
	for _, path := range []string{"/api/auth", "/api/admin-auth"} {
		withAuth.POST(path, s.gate.Login)
		withAuth.DELETE(path, s.gate.Logout)
	}

	api := withAuth.Group("/api")

	products := handlers.NewProductsHandler(s.cms)
	api.GET("/products", products.List)
	api.POST("/products", products.Create)
	api.PUT("/products", products.Update)
	api.DELETE("/products", products.Delete)
	api.PATCH("/products", products.Patch)

	modules := handlers.NewModulesHandler(s.cms)
	api.GET("/modules", modules.List)
	api.POST("/modules", modules.Create)
	api.PUT("/modules", modules.Update)
	api.PATCH("/modules", modules.Patch)

	site := handlers.NewSiteHandler(s.cms)
	api.GET("/site", site.Get)
	api.PUT("/site", site.Update)

	imports := handlers.NewImportHandler(s.cms, s.generator, s.fetcher)
	api.POST("/ai/generate", imports.Generate)
	api.GET("/import/templates/:kind", imports.Template)
	api.POST("/import/preview/:kind", imports.Preview)

	// Admin pages; the gate redirects anonymous browsers to the login form
	adminHandler := handlers.NewAdminHandler(s.cms)
	withAuth.GET("/admin-login", adminHandler.HandleLoginPage)

	admin := withAuth.Group("/admin")
	admin.GET("", adminHandler.HandleAdminDashboard)
	admin.GET("/products", adminHandler.HandleProductsList)
	admin.GET("/modules", adminHandler.HandleModulesList)
	admin.GET("/settings", adminHandler.HandleSettings)
	admin.GET("/import", adminHandler.HandleImport)
	admin.GET("/guide", adminHandler.HandleGuide)
}

func (s *Service) handleHealth(c echo.Context) error {
	status, database := http.StatusOK, "connected"
	if err := s.storage.DB().PingContext(c.Request().Context()); err != nil {
		slog.Error("health check ping failed", "error", err)
		status, database = http.StatusServiceUnavailable, "unavailable"
	}
	return c.JSON(status, map[string]any{
		"status":      http.StatusText(status),
		"environment": s.config.Environment,
		"database":    database,
	})
}
