package middleware

import (
	"net/http"
	"time"

	"checkout_gateway/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IsAllowedOrigin reports whether a browser origin may call the API.
// Requests without an Origin (mobile apps, curl) are always allowed, and "*"
// in the list allows everything.
func IsAllowedOrigin(origin string, allowed []string) bool {
	if origin == "" {
		return true
	}
	for _, o := range allowed {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

// CORS builds the cors middleware around IsAllowedOrigin. Blocked origins are
// logged and answered with 403 by gin-contrib/cors.
//
// Requests to exemptPaths bypass the policy entirely, whatever their Origin.
func CORS(allowed []string, exemptPaths ...string) gin.HandlerFunc {
	list := append([]string{}, allowed...)
	exempt := make(map[string]struct{}, len(exemptPaths))
	for _, p := range exemptPaths {
		exempt[p] = struct{}{}
	}

	policy := newCORSPolicy(list)
	return func(c *gin.Context) {
		if _, ok := exempt[c.Request.URL.Path]; ok {
			c.Next()
			return
		}
		policy(c)
	}
}

func newCORSPolicy(list []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if IsAllowedOrigin(origin, list) {
				return true
			}
			logger.L().Warn("[http][cors] origin blocked", zap.String("origin", origin))
			return false
		},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
