package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	Doctors doctor.DoctorService
}

func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Doctors: svc}
}

// ListDoctors handles GET /doctor.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Doctors.ListDoctors(c.Request.Context())
	if err != nil {
		internalError(c, "failed to fetch doctors", err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// AddDoctor handles POST /doctor.
func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid doctor", err.Error())
		return
	}
	result, err := h.Doctors.AddDoctor(c.Request.Context(), &d)
	if err != nil {
		internalError(c, "failed to add doctor", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RemoveDoctor handles DELETE /doctor/:email.
func (h *DoctorHandler) RemoveDoctor(c *gin.Context) {
	result, err := h.Doctors.RemoveDoctor(c.Request.Context(), c.Param("email"))
	if err != nil {
		internalError(c, "failed to remove doctor", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
