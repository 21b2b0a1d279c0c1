package handlers

import (
	"errors"
	"io"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// ListUsersHandler handles GET /user.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.UserService.ListUsers(c.Request.Context())
	if err != nil {
		internalError(c, "failed to fetch users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpsertUserHandler handles PUT /user/:email. It saves the profile and
// returns a fresh session token for that email.
func (h *UserHandler) UpsertUserHandler(c *gin.Context) {
	email := c.Param("email")

	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, "invalid user profile", err.Error())
		return
	}

	resp, err := h.UserService.UpsertUser(c.Request.Context(), email, profile)
	if err != nil {
		if errors.Is(err, user.ErrEmailRequired) {
			utils.JSONError(c, http.StatusBadRequest, "invalid user profile", err.Error())
			return
		}
		internalError(c, "failed to save user", err)
		return
	}
	getLogger(c).Info("session issued", zap.String("email", email))
	c.JSON(http.StatusOK, resp)
}
