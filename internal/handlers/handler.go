package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sahil073/HealthCare-Kiosk/internal/services"
)

// Handler bundles the services every endpoint needs.
type Handler struct {
	Auth            *services.AuthService
	Sessions        *services.SessionStore
	Kiosk           *services.KioskService
	NotificationSvc *services.NotificationService
}

func NewHandler(
	auth *services.AuthService,
	sessions *services.SessionStore,
	kiosk *services.KioskService,
	notificationSvc *services.NotificationService,
) *Handler {
	return &Handler{
		Auth:            auth,
		Sessions:        sessions,
		Kiosk:           kiosk,
		NotificationSvc: notificationSvc,
	}
}

// Health is the liveness check.
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "Healthcare Kiosk Server is running")
}

// kioskID identifies the physical kiosk device owning the session slot.
func kioskID(c *gin.Context) string {
	if id := c.GetHeader("X-Kiosk-Id"); id != "" {
		return id
	}
	return "default"
}
