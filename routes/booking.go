package routes

import (
	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the booking endpoints. Creating a booking is
// public; reading bookings needs a session token.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/booking")
	{
		bookingGroup.POST("", hb.Bookings.CreateBooking)

		protected := bookingGroup.Group("")
		protected.Use(middleware.VerifyToken(hb.Tokens))
		protected.GET("", hb.Bookings.ListPatientBookings)
		protected.GET("/:id", hb.Bookings.GetBooking)
	}
}
