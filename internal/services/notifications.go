package services

import (
	"context"
	"fmt"
	"log"

	"github.com/Sahil073/HealthCare-Kiosk/internal/models"
)

// NotificationService writes in-app notifications into the kiosk feed.
type NotificationService struct {
	kiosk *KioskService
}

func NewNotificationService(kiosk *KioskService) *NotificationService {
	return &NotificationService{kiosk: kiosk}
}

// SendAppointmentConfirmation notifies the patient that their booking went
// through. Runs in a goroutine so it doesn't block the API response.
func (s *NotificationService) SendAppointmentConfirmation(apt *models.Appointment) {
	n := models.Notification{
		UserID: apt.PatientID,
		Title:  "Appointment Confirmed",
		Message: fmt.Sprintf(
			"Your %s appointment with %s on %s at %s is confirmed.",
			apt.Department,
			apt.DoctorName,
			apt.Date.Format("Jan 2"),
			apt.Time,
		),
		Type: "success",
	}
	go func() {
		if err := s.kiosk.PushNotification(context.Background(), n); err != nil {
			log.Printf("Failed to push confirmation notification for %s: %v", apt.PatientID, err)
		}
	}()
}

// SendAppointmentReminder is the synchronous variant used by the daily job.
func (s *NotificationService) SendAppointmentReminder(ctx context.Context, apt *models.Appointment) error {
	n := models.Notification{
		UserID: apt.PatientID,
		Title:  "Appointment Reminder",
		Message: fmt.Sprintf(
			"Reminder: you have an appointment with %s today at %s.",
			apt.DoctorName,
			apt.Time,
		),
		Type: "info",
	}
	return s.kiosk.PushNotification(ctx, n)
}
