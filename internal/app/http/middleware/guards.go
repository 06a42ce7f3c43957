package middleware

import (
	"net/http"
	"strings"

	"social-scheduler/internal/domain/access"
	"social-scheduler/internal/domain/plans"
	"social-scheduler/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

func RequirePermission(m *metrics.Metrics, capability access.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		allowed := s.Can(capability)
		m.Decision("permission", string(capability), allowed)
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "Access denied",
				"permission": capability,
			})
			return
		}
		c.Next()
	}
}

// RequireFeature admits users whose plan includes at least one of the features.
func RequireFeature(m *metrics.Metrics, features ...plans.Feature) gin.HandlerFunc {
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = string(f)
	}
	subject := strings.Join(names, "|")

	return func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		allowed := s.HasFeature(features...)
		m.Decision("feature", subject, allowed)
		if !allowed {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error":    "Your plan does not include this feature",
				"features": features,
				"plan":     s.User.Plan,
			})
			return
		}
		c.Next()
	}
}
