package routes

import (
	"slices"

	"duka/internal/shared/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS builds the gin-contrib/cors middleware from config
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	return cors.New(CORSConfig(cfg))
}

// CORSConfig translates config into gin-contrib/cors settings. A wildcard
// origin with credentials echoes the request origin, since browsers reject
// "*" on credentialed responses.
func CORSConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowOrigins:     cfg.Origins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	if cfg.AllowCredentials && slices.Contains(cfg.Origins, "*") {
		c.AllowOrigins = nil
		c.AllowOriginFunc = func(string) bool { return true }
	}
	return c
}
