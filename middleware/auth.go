// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextEmail is the gin context key holding the verified caller email.
const ContextEmail = "email"

// TokenVerifier extracts the email claim from a verified session token.
type TokenVerifier interface {
	ExtractEmail(tokenString string) (string, error)
}

// VerifyToken rejects requests without an Authorization header with 401 and
// requests whose bearer token does not verify with 403.
func VerifyToken(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unAuthorized"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		email, err := tokens.ExtractEmail(strings.TrimSpace(parts[1]))
		if err != nil {
			getLogger(c).Debug("token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		c.Set(ContextEmail, email)
		c.Next()
	}
}

// CallerEmail returns the email attached by VerifyToken, or "".
func CallerEmail(c *gin.Context) string {
	return c.GetString(ContextEmail)
}
