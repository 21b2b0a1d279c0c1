package middleware

import (
	"context"
	"net/http"

	"doctorsportal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserLookup resolves the stored user for a verified email.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// VerifyAdmin must run after VerifyToken. Callers whose stored role is not
// admin, including callers with no user record, get 403.
func VerifyAdmin(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := CallerEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}

		requester, err := users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			getLogger(c).Error("admin lookup failed", zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "Internal Server Error",
				"details": "failed to verify admin role",
			})
			return
		}
		if !requester.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}
		c.Next()
	}
}
