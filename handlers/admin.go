// File: handlers/admin.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IsAdminHandler handles GET /admin/:email.
func (h *UserHandler) IsAdminHandler(c *gin.Context) {
	isAdmin, err := h.UserService.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		internalError(c, "failed to check admin role", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// MakeAdminHandler handles PUT /user/admin/:email.
func (h *UserHandler) MakeAdminHandler(c *gin.Context) {
	email := c.Param("email")
	result, err := h.UserService.MakeAdmin(c.Request.Context(), email)
	if err != nil {
		internalError(c, "failed to grant admin role", err)
		return
	}
	getLogger(c).Info("admin role granted", zap.String("email", email))
	c.JSON(http.StatusOK, result)
}
