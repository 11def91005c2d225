package api

import (
	"net/http"

	_ "github.com/rohits-web03/ideaforge/docs"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rohits-web03/ideaforge/internal/api/handlers"
	"github.com/rohits-web03/ideaforge/internal/api/middleware"
	"github.com/rohits-web03/ideaforge/internal/auth"
	"github.com/rohits-web03/ideaforge/internal/config"
	"github.com/rohits-web03/ideaforge/internal/export"
	"github.com/rohits-web03/ideaforge/internal/generator"
	"github.com/rohits-web03/ideaforge/internal/repositories"
	"github.com/rs/cors"
)

// Dependencies are the collaborators the router hands to its handlers.
// Archive is optional.
type Dependencies struct {
	Config    config.Config
	Log       *zap.SugaredLogger
	DB        *gorm.DB
	Tokens    *auth.TokenManager
	Generator generator.Generator
	Renderer  export.Renderer
	Archive   handlers.Archiver
}

func SetupRouter(deps Dependencies) http.Handler {
	users := repositories.NewUserRepository(deps.DB)
	ideas := repositories.NewIdeaRepository(deps.DB)
	history := repositories.NewSearchHistoryRepository(deps.DB)
	analytics := repositories.NewAnalyticsRepository(deps.DB)

	authHandler := handlers.NewAuthHandler(users, deps.Tokens, deps.Config, deps.Log)
	ideaHandler := handlers.NewIdeaHandler(ideas, history, deps.Generator, deps.Log)
	analyticsHandler := handlers.NewAnalyticsHandler(analytics, ideas, history, deps.Log)
	exportHandler := handlers.NewExportHandler(ideas, deps.Renderer, deps.Archive, deps.Log)

	mainMux := http.NewServeMux()
	c := cors.New(deps.Config.CorsConfig)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /{$}", handlers.Root)
	mainMux.HandleFunc("GET /health", handlers.Health)
	mainMux.HandleFunc("GET /api/v1", handlers.APIInfo)
	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	authMux := http.NewServeMux()
	authMux.HandleFunc("POST /register", authHandler.Register)
	authMux.HandleFunc("POST /login", authHandler.Login)
	authMux.HandleFunc("POST /verify-token", authHandler.VerifyToken)
	authMux.HandleFunc("GET /google/login", authHandler.GoogleLogin)
	authMux.HandleFunc("GET /google/callback", authHandler.GoogleCallback)

	mainMux.Handle("/api/v1/auth/",
		http.StripPrefix("/api/v1/auth", authMux),
	)

	// ---------- PROTECTED ROUTES ----------
	protectedMux := http.NewServeMux()

	protectedMux.HandleFunc("POST /ideas/generate", ideaHandler.Generate)
	protectedMux.HandleFunc("GET /ideas/{$}", ideaHandler.List)
	protectedMux.HandleFunc("GET /ideas", ideaHandler.List)
	protectedMux.HandleFunc("GET /ideas/{id}", ideaHandler.Get)
	protectedMux.HandleFunc("PUT /ideas/{id}", ideaHandler.Update)
	protectedMux.HandleFunc("DELETE /ideas/{id}", ideaHandler.Delete)
	protectedMux.HandleFunc("POST /ideas/{id}/favorite", ideaHandler.ToggleFavorite)

	protectedMux.HandleFunc("GET /analytics/user", analyticsHandler.User)
	protectedMux.HandleFunc("GET /analytics/platform", analyticsHandler.Platform)
	protectedMux.HandleFunc("GET /analytics/user/industries", analyticsHandler.Industries)
	protectedMux.HandleFunc("GET /analytics/user/favorites", analyticsHandler.Favorites)
	protectedMux.HandleFunc("GET /analytics/user/trends", analyticsHandler.Trends)

	protectedMux.HandleFunc("GET /pdf/export/{id}", exportHandler.ExportIdea)
	protectedMux.HandleFunc("POST /pdf/export-multiple", exportHandler.ExportMultiple)

	protectedMux.HandleFunc("DELETE /users/me", authHandler.DeleteAccount)

	requireAuth := middleware.AuthMiddleware(deps.Tokens, users, deps.Log)
	mainMux.Handle("/api/v1/",
		http.StripPrefix(
			"/api/v1",
			requireAuth(protectedMux),
		),
	)

	deps.Log.Debug("router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(deps.Log)(handler)
	return handler
}
