// validates the signed download link and injects the accepted name/event
// into the Gin context for the download handler.

package middlewares

import (
	"net/http"
	"strings"

	"github.com/harshu1705/NSSS-Certificate/global"
	"github.com/harshu1705/NSSS-Certificate/services"

	"github.com/gin-gonic/gin"
)

// DownloadToken accepts the token as ?token=<jwt> (plain browser links) or
// as "Authorization: Bearer <jwt>" (scripted clients).
func DownloadToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("token")
		if raw == "" {
			if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				raw = auth[len("Bearer "):]
			}
		}
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing download token"})
			return
		}

		claims, err := services.ParseDownloadToken(secret, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid download token"})
			return
		}

		c.Set(global.CtxCertNameKey, claims.Name)
		c.Set(global.CtxCertEventKey, claims.Event)
		c.Next()
	}
}
