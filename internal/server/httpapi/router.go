// Package httpapi exposes the password manager over HTTP: auth endpoints,
// bearer-gated credential endpoints, and the anonymous share retrieval
// endpoint.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/securepass/securepass/internal/logging"
	"github.com/securepass/securepass/internal/server/config"
	"github.com/securepass/securepass/internal/server/services"
)

// NewRouter wires middleware, handlers and routes into a gin engine.
func NewRouter(
	cfg *config.Config,
	logger logging.Logger,
	users *services.UserService,
	credentials *services.CredentialService,
	shares *services.ShareService,
) *gin.Engine {

	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.Use(Recovery(logger))
	router.Use(cors.Default())

	authHandler := NewAuthHandler(users)
	passwordHandler := NewPasswordHandler(credentials, shares)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Registered before the gated group: share retrieval is anonymous.
		api.GET("/passwords/shared/:token", passwordHandler.ResolveShare)

		passwordGroup := api.Group("/passwords", BearerAuth([]byte(cfg.JWTSecret)))
		{
			passwordGroup.POST("", passwordHandler.Save)
			passwordGroup.GET("", passwordHandler.List)
			passwordGroup.DELETE("/:id", passwordHandler.Delete)
			passwordGroup.POST("/:id/share", passwordHandler.CreateShare)
		}

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "OK",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})
	}

	return router
}
