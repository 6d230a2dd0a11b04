package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sahil073/HealthCare-Kiosk/internal/models"
)

func (h *Handler) GetVitals(c *gin.Context) {
	vitals, err := h.Kiosk.ListVitals(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vitals"})
		return
	}
	c.JSON(http.StatusOK, vitals)
}

func (h *Handler) CreateVital(c *gin.Context) {
	var req struct {
		PatientID  string  `json:"patientId" binding:"required"`
		Type       string  `json:"type" binding:"required"`
		Value      float64 `json:"value" binding:"required"`
		Unit       string  `json:"unit"`
		Timestamp  string  `json:"timestamp"`
		RecordedBy string  `json:"recordedBy"`
		Notes      string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	vital := models.Vital{
		PatientID:  req.PatientID,
		Type:       req.Type,
		Value:      req.Value,
		Unit:       req.Unit,
		RecordedBy: req.RecordedBy,
		Notes:      req.Notes,
	}
	if req.Timestamp != "" {
		if t, err := time.Parse(time.RFC3339, req.Timestamp); err == nil {
			vital.Timestamp = t
		}
	}

	created, err := h.Kiosk.CreateVital(c.Request.Context(), vital)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record vital"})
		return
	}
	c.JSON(http.StatusCreated, created)
}
