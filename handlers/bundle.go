// File: handlers/bundle.go
package handlers

import (
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers and the middleware the routes need.
type HandlerBundle struct {
	Catalog  *CatalogHandler
	Bookings *BookingHandler
	Users    *UserHandler
	Doctors  *DoctorHandler
	Payments *PaymentHandler

	Tokens     middleware.TokenVerifier
	AdminUsers middleware.UserLookup
	Health     *utils.HealthMonitor

	// Read policies; see config.Config.
	UserListAdminOnly bool
}

// Root handles GET /.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Hello doctor!")
}

// HealthHandler returns the latest health snapshot, or 503 when unhealthy.
func (hb *HandlerBundle) HealthHandler(c *gin.Context) {
	if hb.Health == nil {
		c.JSON(http.StatusOK, gin.H{"healthy": true})
		return
	}
	status := hb.Health.Status()
	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
