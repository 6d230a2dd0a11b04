package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Sahil073/HealthCare-Kiosk/internal/services"
)

// StartDailyScheduler runs the reminder job every day at 08:00.
func StartDailyScheduler(kiosk *services.KioskService, notifier *services.NotificationService) *cron.Cron {
	c := cron.New()

	c.AddFunc("0 8 * * *", func() {
		log.Println("Running daily appointment reminder job...")
		if err := SendTodayReminders(context.Background(), kiosk, notifier); err != nil {
			log.Println("Reminder job error:", err)
		}
	})

	c.Start()
	return c
}

// SendTodayReminders pushes one reminder per appointment still scheduled
// for today.
func SendTodayReminders(ctx context.Context, kiosk *services.KioskService, notifier *services.NotificationService) error {
	appointments, err := kiosk.ListAppointments(ctx, "")
	if err != nil {
		return err
	}

	today := time.Now()
	for i := range appointments {
		apt := &appointments[i]
		if apt.Status != "scheduled" || !sameDay(apt.Date, today) {
			continue
		}
		if err := notifier.SendAppointmentReminder(ctx, apt); err != nil {
			log.Println("Error sending reminder for appointment", apt.ID, ":", err)
		}
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
