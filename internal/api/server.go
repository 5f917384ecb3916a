package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/martijn/habilitations/docs"
	"github.com/martijn/habilitations/internal/api/handler"
	"github.com/martijn/habilitations/internal/api/middleware"
	"github.com/martijn/habilitations/internal/core/service"
	"github.com/martijn/habilitations/pkg/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer creates a new API server
//
//	@title						habilitations API
//	@version					1.0
//	@BasePath					/
//	@securityDefinitions.basic	BasicAuth
func NewServer(
	cfg *config.Config,
	authService *service.AuthService,
	developerService *service.DeveloperService,
	profileService *service.ProfileService,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandlerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	developerHandler := handler.NewDeveloperHandler(developerService)
	profileHandler := handler.NewProfileHandler(profileService)

	// Public routes (no auth required)
	router.POST("/auth/check", authHandler.Check)

	// Protected routes (auth required)
	authMiddleware := middleware.AuthMiddleware(authService)

	// Developers
	developers := router.Group("/developers")
	developers.Use(authMiddleware)
	{
		developers.GET("", developerHandler.ListDevelopers)
		developers.POST("", developerHandler.CreateDeveloper)
		developers.GET("/:id", developerHandler.GetDeveloper)
		developers.PUT("/:id", developerHandler.UpdateDeveloper)
		developers.PUT("/:id/password", developerHandler.UpdatePassword)
		developers.DELETE("/:id", developerHandler.DeleteDeveloper)
	}

	// Profiles
	profiles := router.Group("/profiles")
	profiles.Use(authMiddleware)
	{
		profiles.GET("", profileHandler.ListProfiles)
		profiles.POST("", profileHandler.CreateProfile)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.APIHost, s.config.APIPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	log.Info().Str("addr", addr).Msg("Starting HTTP server")
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
