package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetVideos lists the video catalog (e.g. /api/videos?category=diet).
func (h *Handler) GetVideos(c *gin.Context) {
	videos, err := h.Kiosk.Videos(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve videos"})
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *Handler) GetRecommendedVideos(c *gin.Context) {
	videos, err := h.Kiosk.RecommendedVideos(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recommendations"})
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *Handler) GetDietPlans(c *gin.Context) {
	plans, err := h.Kiosk.DietPlans(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve diet plans"})
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *Handler) GenerateDietPlan(c *gin.Context) {
	var req struct {
		PatientID string `json:"patientId" binding:"required"`
		Condition string `json:"condition" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	plan, err := h.Kiosk.GenerateDietPlan(c.Request.Context(), req.PatientID, req.Condition)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate diet plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *Handler) GetAnalyticsDashboard(c *gin.Context) {
	analytics, err := h.Kiosk.AnalyticsDashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve analytics"})
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.Kiosk.Users(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetDoctors(c *gin.Context) {
	doctors, err := h.Kiosk.Doctors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve doctors"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}
