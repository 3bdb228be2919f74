package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlanJumabayev/SafeDocs/internal/chat"
	"github.com/AlanJumabayev/SafeDocs/internal/documents"
	"github.com/AlanJumabayev/SafeDocs/internal/shared/config"
	"github.com/AlanJumabayev/SafeDocs/internal/shared/server/middleware"
	"github.com/AlanJumabayev/SafeDocs/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config           config.Config
	DocumentsHandler *documents.Handler
	ChatHandler      *chat.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/analyze" {
				return "ANALYZE"
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 10, Burst: 30},
			"ANALYZE": {Rate: 1, Burst: 5},
		},
	}))

	api.GET("/health", healthHandler(deps.DocumentsHandler))
	deps.DocumentsHandler.RegisterRoutes(api)
	deps.ChatHandler.RegisterRoutes(api)

	return r
}

func healthHandler(docs *documents.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := docs.Svc.Count(c.Request.Context())
		if err != nil {
			count = 0
		}
		respond.JSON(c, http.StatusOK, gin.H{
			"status":          "healthy",
			"service":         "SafeDocs",
			"version":         "1.0.0",
			"documents_count": count,
		})
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
