package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetChatHistory returns the patient's transcript.
func (h *Handler) GetChatHistory(c *gin.Context) {
	history, err := h.Kiosk.ChatHistory(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve chat history"})
		return
	}
	c.JSON(http.StatusOK, history)
}

// HandleChat appends the patient's message and the bot reply, and returns
// the updated transcript.
func (h *Handler) HandleChat(c *gin.Context) {
	var req struct {
		PatientID string `json:"patientId" binding:"required"`
		Message   string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format, expecting {\"patientId\": \"...\", \"message\": \"...\"}"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		return
	}

	history, err := h.Kiosk.SendChatMessage(c.Request.Context(), req.PatientID, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process chat message"})
		return
	}
	c.JSON(http.StatusOK, history)
}
