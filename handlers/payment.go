package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/payment"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Payments payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Payments: svc}
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment request", err.Error())
		return
	}

	secret, err := h.Payments.CreatePaymentIntent(c.Request.Context(), req.Price)
	switch {
	case errors.Is(err, payment.ErrInvalidAmount):
		utils.JSONError(c, http.StatusBadRequest, "invalid payment request", err.Error())
		return
	case err != nil:
		getLogger(c).Error("payment intent failed", zap.Float64("price", req.Price), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "payment processor error", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.PaymentIntentResponse{ClientSecret: secret})
}
