package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sahil073/HealthCare-Kiosk/internal/models"
	"github.com/Sahil073/HealthCare-Kiosk/internal/services"
	"github.com/Sahil073/HealthCare-Kiosk/internal/utils"
)

type RegisterUserRequest struct {
	FullName   string `json:"fullName" binding:"required"`
	CardNumber string `json:"cardNumber" binding:"required"`
	Phone      string `json:"phone"`
	DOB        string `json:"dob"`
	Password   string `json:"password" binding:"required"`
}

// RegisterUser creates a patient account keyed by card number.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.Auth.Register(c.Request.Context(), services.RegisterInput{
		FullName:   req.FullName,
		CardNumber: req.CardNumber,
		Phone:      req.Phone,
		DOB:        req.DOB,
		Password:   req.Password,
	})
	if errors.Is(err, services.ErrDuplicateCard) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during registration", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Patient registered successfully"})
}

type LoginRequest struct {
	// Admins type their username into the same card-number field.
	CardNumber string `json:"cardNumber" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// Login resolves the shared identifier against both account collections and
// saves the kiosk's session slot on success.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := h.Auth.Resolve(c.Request.Context(), req.CardNumber, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	sess := &models.Session{Role: result.Role, SavedAt: time.Now()}
	var subject string
	if result.Role == services.RoleAdmin {
		sess.Username = result.Admin.Username
		subject = result.Admin.ID.Hex()
	} else {
		sess.User = result.User
		subject = result.User.ID.Hex()
	}
	// The login itself succeeds even if the slot write fails; the kiosk can
	// still operate with the returned token.
	if err := h.Sessions.Save(c.Request.Context(), kioskID(c), sess); err != nil {
		log.Printf("Login: failed to save session slot: %v", err)
	}

	token, err := utils.GenerateJWT(subject, result.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	if result.Role == services.RoleAdmin {
		c.JSON(http.StatusOK, gin.H{"message": "Admin login successful", "role": "admin", "token": token})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User login successful", "role": "user", "user": result.User, "token": token})
}

// GetSession restores the kiosk's slot without re-authenticating.
func (h *Handler) GetSession(c *gin.Context) {
	sess, err := h.Sessions.Load(c.Request.Context(), kioskID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No active session"})
		return
	}
	c.JSON(http.StatusOK, sess)
}

// ClearSession logs the kiosk out.
func (h *Handler) ClearSession(c *gin.Context) {
	if err := h.Sessions.Clear(c.Request.Context(), kioskID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
