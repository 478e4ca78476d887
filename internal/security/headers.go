// Package security provides security middleware for the kentsel API.
package security

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HeadersMiddleware adds security headers to all responses
func HeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Reports are self-contained pages with an inline stylesheet and no scripts.
		c.Header("Content-Security-Policy", "default-src 'self'; script-src 'none'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self' ws: wss:; frame-ancestors 'none'")

		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

		c.Next()
	}
}

// CORSOptions configures CORSMiddleware.
type CORSOptions struct {
	// AllowedOrigins lists exact origins; "*" allows any origin.
	AllowedOrigins []string
	// AllowCredentials sends Access-Control-Allow-Credentials. With "*" the
	// request origin is reflected instead of a literal wildcard.
	AllowCredentials bool
}

// CORSMiddleware handles CORS for API endpoints. Allowed origins are always
// echoed back, never answered with a literal "*", so credentialed browser
// requests from the map frontend work.
func CORSMiddleware(opts CORSOptions) gin.HandlerFunc {
	originsMap := make(map[string]bool)
	for _, o := range opts.AllowedOrigins {
		originsMap[o] = true
	}
	anyOrigin := len(opts.AllowedOrigins) == 0 || originsMap["*"]

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin != "" && (anyOrigin || originsMap[origin]) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
			if opts.AllowCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}

			if c.Request.Method == http.MethodOptions {
				methods := c.GetHeader("Access-Control-Request-Method")
				if methods == "" {
					methods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
				}
				c.Header("Access-Control-Allow-Methods", methods)
				if headers := c.GetHeader("Access-Control-Request-Headers"); headers != "" {
					c.Header("Access-Control-Allow-Headers", headers)
				} else {
					c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
				}
				c.Header("Access-Control-Max-Age", "600")
			}
		}

		// Handle preflight
		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
