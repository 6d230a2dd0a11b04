package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sahil073/HealthCare-Kiosk/internal/models"
)

func (h *Handler) GetPayments(c *gin.Context) {
	payments, err := h.Kiosk.ListPayments(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// CreatePayment charges through the simulated gateway. The record is
// returned with 201 whether the charge completed or failed; the outcome is
// in the status field.
func (h *Handler) CreatePayment(c *gin.Context) {
	var req struct {
		PatientID     string  `json:"patientId" binding:"required"`
		AppointmentID string  `json:"appointmentId"`
		Amount        float64 `json:"amount" binding:"required,gt=0"`
		Description   string  `json:"description"`
		Method        string  `json:"method" binding:"required,oneof=upi card cash insurance"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.Kiosk.CreatePayment(c.Request.Context(), models.Payment{
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		Description:   req.Description,
		Method:        req.Method,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process payment"})
		return
	}
	c.JSON(http.StatusCreated, payment)
}
