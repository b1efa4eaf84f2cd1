package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alyoshka-app/alyoshka/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		errorHandlingMiddleware(handler.logger),
		corsMiddleware(cfg.HTTP.CORS.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	api := router.Group("/api")
	{
		api.GET("/home", handler.Home)
		api.GET("/lunar", handler.MonthCalendar)
		api.GET("/garden", handler.GardenTips)
		api.GET("/feed", handler.Feed)
		api.POST("/journal", handler.Journal)

		api.GET("/clubs", handler.ListClubs)
		api.POST("/clubs", handler.CreateClub)
		api.GET("/clubs/:id/posts", handler.ClubPosts)
		api.POST("/clubs/:id/post", handler.CreateClubPost)
		api.POST("/clubs/:id/posts/react", handler.ReactToPost)
		api.GET("/media/*key", handler.Media)
	}

	router.GET("/health", handler.Health)

	// The web app falls back to the raw fixtures when the API is down; keep
	// serving them the way the static hosting did.
	router.Static("/data", cfg.Fixtures.Dir)

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
