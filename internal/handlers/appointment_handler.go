package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sahil073/HealthCare-Kiosk/internal/models"
	"github.com/Sahil073/HealthCare-Kiosk/internal/services"
)

// GetAppointments lists appointments, optionally filtered by patient
// (e.g. /api/appointments?patientId=patient_1).
func (h *Handler) GetAppointments(c *gin.Context) {
	appointments, err := h.Kiosk.ListAppointments(c.Request.Context(), c.Query("patientId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req struct {
		PatientID   string `json:"patientId" binding:"required"`
		DoctorID    string `json:"doctorId"`
		PatientName string `json:"patientName"`
		DoctorName  string `json:"doctorName"`
		Department  string `json:"department"`
		Date        string `json:"date" binding:"required"`
		Time        string `json:"time"`
		Symptoms    string `json:"symptoms"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, use RFC3339"})
		return
	}

	apt, err := h.Kiosk.CreateAppointment(c.Request.Context(), models.Appointment{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		PatientName: req.PatientName,
		DoctorName:  req.DoctorName,
		Department:  req.Department,
		Date:        date,
		Time:        req.Time,
		Symptoms:    req.Symptoms,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}

	h.NotificationSvc.SendAppointmentConfirmation(apt)

	c.JSON(http.StatusCreated, apt)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	var req struct {
		Date         *string `json:"date,omitempty"`
		Time         *string `json:"time,omitempty"`
		Status       *string `json:"status,omitempty"`
		DoctorID     *string `json:"doctorId,omitempty"`
		DoctorName   *string `json:"doctorName,omitempty"`
		Department   *string `json:"department,omitempty"`
		Symptoms     *string `json:"symptoms,omitempty"`
		Notes        *string `json:"notes,omitempty"`
		Prescription *string `json:"prescription,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	upd := services.AppointmentUpdate{
		Time:         req.Time,
		Status:       req.Status,
		DoctorID:     req.DoctorID,
		DoctorName:   req.DoctorName,
		Department:   req.Department,
		Symptoms:     req.Symptoms,
		Notes:        req.Notes,
		Prescription: req.Prescription,
	}
	if req.Date != nil {
		if t, err := time.Parse(time.RFC3339, *req.Date); err == nil {
			upd.Date = &t
		}
	}

	apt, err := h.Kiosk.UpdateAppointment(c.Request.Context(), c.Param("id"), upd)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		return
	}
	c.JSON(http.StatusOK, apt)
}
