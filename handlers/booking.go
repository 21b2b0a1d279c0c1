package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Bookings booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: svc}
}

// CreateBooking handles POST /booking. A refused duplicate echoes the posted
// body as sent.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking", err.Error())
		return
	}
	var input models.Booking
	if err := json.Unmarshal(body, &input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking", err.Error())
		return
	}

	result, err := h.Bookings.CreateBooking(c.Request.Context(), &input)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, "invalid booking", verr.Error())
			return
		}
		internalError(c, "failed to create booking", err)
		return
	}
	if !result.Success {
		result.Booking = json.RawMessage(body)
		getLogger(c).Info("duplicate booking refused",
			zap.String("treatment", input.Treatment),
			zap.String("date", input.Date),
			zap.String("patientEmail", input.PatientEmail),
		)
	}
	c.JSON(http.StatusOK, result)
}

// ListPatientBookings handles GET /booking?patientName=E.
func (h *BookingHandler) ListPatientBookings(c *gin.Context) {
	patient := c.Query("patientName")
	bookings, err := h.Bookings.ListForPatient(c.Request.Context(), patient, middleware.CallerEmail(c))
	if err != nil {
		if errors.Is(err, booking.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}
		internalError(c, "failed to fetch bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /booking/:id. A missing booking yields null.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Bookings.GetByID(c.Request.Context(), id, middleware.CallerEmail(c))
	if err != nil {
		if errors.Is(err, booking.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}
		internalError(c, "failed to fetch booking", err)
		return
	}
	c.JSON(http.StatusOK, b)
}
