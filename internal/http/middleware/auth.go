package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/roguepikachu/parky/internal/utils"
	"github.com/roguepikachu/parky/pkg/logger"
)

// RoleAdmin is the role claim required by admin-gated routes.
const RoleAdmin = "Admin"

// RequireRole verifies the bearer token against the shared HMAC secret and
// aborts unless its role claim matches the required role. Token issuance lives
// with the identity provider; this middleware only consumes verified claims.
func RequireRole(secret, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "unauthorized", "message": "missing bearer token"},
			})
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, prefix))

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			logger.Debug(ctx, "token rejected: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "unauthorized", "message": "invalid token"},
			})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "unauthorized", "message": "invalid token"},
			})
			return
		}
		claimed, _ := claims["role"].(string)
		if claimed != role {
			logger.Debug(ctx, "role %q denied, route requires %q", claimed, role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"code": "forbidden", "message": "insufficient role"},
			})
			return
		}

		c.Request = c.Request.WithContext(utils.WithRole(ctx, claimed))
		c.Next()
	}
}
