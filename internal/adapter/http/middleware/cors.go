package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows every origin, method and header, with credentials. The
// request origin is echoed back since browsers reject "*" with credentials.
// For the same reason a preflight gets its requested headers echoed instead
// of a literal "*" in Access-Control-Allow-Headers.
func CORS() gin.HandlerFunc {
	policy := cors.New(cors.Config{
		AllowOriginFunc: func(string) bool { return true },
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		ExposeHeaders:    []string{HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	})

	return func(c *gin.Context) {
		// Set before the policy runs: it aborts preflights and flushes headers.
		if c.Request.Method == http.MethodOptions && c.GetHeader("Origin") != "" {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			}
		}
		policy(c)
	}
}
