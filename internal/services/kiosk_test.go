package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Sahil073/HealthCare-Kiosk/internal/mocks"
	"github.com/Sahil073/HealthCare-Kiosk/internal/models"
)

// Tests run with latency disabled.
func newTestKiosk() *KioskService {
	return NewKioskService(mocks.NewMockRedisClient(), 0, newTestGateway())
}

func TestListAppointmentsSeedFallback(t *testing.T) {
	kiosk := newTestKiosk()
	ctx := context.Background()

	all, err := kiosk.ListAppointments(ctx, "")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 seed appointments, got %d", len(all))
	}

	mine, err := kiosk.ListAppointments(ctx, "patient_1")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected patient_1's seed appointments, got %d", len(mine))
	}

	none, err := kiosk.ListAppointments(ctx, "patient_999")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no appointments for unknown patient, got %d", len(none))
	}
}

func TestCreateAppointmentReadAfterWrite(t *testing.T) {
	kiosk := newTestKiosk()
	ctx := context.Background()

	apt, err := kiosk.CreateAppointment(ctx, models.Appointment{
		PatientID:  "patient_2",
		DoctorID:   "doctor_1",
		DoctorName: "Dr. Priya Sharma",
		Department: "Internal Medicine",
		Date:       time.Now().Add(24 * time.Hour),
		Time:       "11:00 AM",
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if !strings.HasPrefix(apt.ID, "apt_") {
		t.Fatalf("unexpected appointment id %q", apt.ID)
	}
	if apt.Status != "scheduled" {
		t.Fatalf("expected default status scheduled, got %q", apt.Status)
	}
	if apt.CreatedAt.IsZero() {
		t.Fatal("expected createdAt to be set")
	}

	// Seeds were merged and the new record is visible to the next read.
	all, err := kiosk.ListAppointments(ctx, "")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 appointments after create, got %d", len(all))
	}
}

func TestUpdateAppointment(t *testing.T) {
	kiosk := newTestKiosk()
	ctx := context.Background()

	status := "completed"
	prescription := "Rest and fluids"
	apt, err := kiosk.UpdateAppointment(ctx, "apt_1", AppointmentUpdate{Status: &status, Prescription: &prescription})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if apt.Status != "completed" || apt.Prescription != "Rest and fluids" {
		t.Fatalf("update not applied: %+v", apt)
	}

	// Untouched fields survive.
	if apt.DoctorName != "Dr. Priya Sharma" {
		t.Fatalf("unexpected doctor after update: %q", apt.DoctorName)
	}

	all, _ := kiosk.ListAppointments(ctx, "")
	for _, a := range all {
		if a.ID == "apt_1" && a.Status != "completed" {
			t.Fatal("update was not persisted")
		}
	}

	if _, err := kiosk.UpdateAppointment(ctx, "apt_missing", AppointmentUpdate{Status: &status}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestVitals(t *testing.T) {
	kiosk := newTestKiosk()
	ctx := context.Background()

	empty, err := kiosk.ListVitals(ctx, "patient_1")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty vitals, got %d", len(empty))
	}

	vital, err := kiosk.CreateVital(ctx, models.Vital{PatientID: "patient_1", Type: "bp", Value: 120, Unit: "mmHg"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if !strings.HasPrefix(vital.ID, "vital_") || vital.Timestamp.IsZero() {
		t.Fatalf("unexpected vital: %+v", vital)
	}

	mine, _ := kiosk.ListVitals(ctx, "patient_1")
	if len(mine) != 1 {
		t.Fatalf("expected 1 vital, got %d", len(mine))
	}
	other, _ := kiosk.ListVitals(ctx, "patient_2")
	if len(other) != 0 {
		t.Fatalf("vitals leaked across patients: %d", len(other))
	}
}

func TestChatTranscript(t *testing.T) {
	kiosk := newTestKiosk()
	ctx := context.Background()

	transcript, err := kiosk.SendChatMessage(ctx, "patient_1", "I have a fever since yesterday")
	if err != nil {
		t.Fatalf("send error: %v", err)
	}
	if len(transcript) != 2 {
		t.Fatalf("expected user+bot turns, got %d", len(transcript))
	}
	if transcript[0].IsBot || !transcript[1].IsBot {
		t.Fatalf("unexpected turn order: %+v", transcript)
	}
	if !strings.Contains(transcript[1].Message, "monitor your temperature") {
		t.Fatalf("expected fever advice, got %q", transcript[1].Message)
	}

	// Second exchange appends to the same per-patient transcript.
	transcript, err = kiosk.SendChatMessage(ctx, "patient_1", "what about my diet?")
	if err != nil {
		t.Fatalf("send error: %v", err)
	}
	if len(transcript) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(transcript))
	}

	// Transcripts are isolated per patient.
	other, err := kiosk.ChatHistory(ctx, "patient_2")
	if err != nil {
		t.Fatalf("history error: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("transcript leaked across patients: %d", len(other))
	}

	// And persist across a reread.
	mine, _ := kiosk.ChatHistory(ctx, "patient_1")
	if len(mine) != 4 {
		t.Fatalf("expected persisted transcript of 4, got %d", len(mine))
	}
}

func TestVideosCatalog(t *testing.T) {
	kiosk := newTestKiosk()
	ctx := context.Background()

	all, err := kiosk.Videos(ctx, "")
	if err != nil {
		t.Fatalf("videos error: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 videos, got %d", len(all))
	}

	diet, _ := kiosk.Videos(ctx, "diet")
	if len(diet) != 2 {
		t.Fatalf("expected 2 diet videos, got %d", len(diet))
	}

	recommended, _ := kiosk.RecommendedVideos(ctx, "patient_1")
	if len(recommended) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recommended))
	}
}

func TestDietPlans(t *testing.T) {
	kiosk := newTestKiosk()
	ctx := context.Background()

	plans, err := kiosk.DietPlans(ctx, "patient_1")
	if err != nil {
		t.Fatalf("plans error: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(plans))
	}

	plan, err := kiosk.GenerateDietPlan(ctx, "patient_2", "hypertension")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if !strings.Contains(plan.Title, "hypertension") || plan.CreatedBy != "ai" {
		t.Fatalf("unexpected generated plan: %+v", plan)
	}
	if len(plan.Meals.Breakfast) == 0 {
		t.Fatal("expected template meals to be copied")
	}
}

func TestNotificationsFeed(t *testing.T) {
	kiosk := newTestKiosk()
	ctx := context.Background()

	if err := kiosk.PushNotification(ctx, models.Notification{UserID: "patient_1", Title: "Hi", Type: "info"}); err != nil {
		t.Fatalf("push error: %v", err)
	}

	feed, err := kiosk.Notifications(ctx, "patient_1")
	if err != nil {
		t.Fatalf("feed error: %v", err)
	}
	if len(feed) != 1 || feed[0].IsRead {
		t.Fatalf("unexpected feed: %+v", feed)
	}

	if err := kiosk.MarkNotificationRead(ctx, feed[0].ID); err != nil {
		t.Fatalf("mark read error: %v", err)
	}
	feed, _ = kiosk.Notifications(ctx, "patient_1")
	if !feed[0].IsRead {
		t.Fatal("expected notification to be marked read")
	}

	if err := kiosk.MarkNotificationRead(ctx, "ntf_missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAnalyticsAndDirectory(t *testing.T) {
	kiosk := newTestKiosk()
	ctx := context.Background()

	analytics, err := kiosk.AnalyticsDashboard(ctx)
	if err != nil {
		t.Fatalf("analytics error: %v", err)
	}
	if analytics.TotalPatients != 2456 || len(analytics.PopularServices) != 4 {
		t.Fatalf("unexpected analytics: %+v", analytics)
	}

	users, _ := kiosk.Users(ctx)
	if len(users) != 4 {
		t.Fatalf("expected 4 directory users, got %d", len(users))
	}
	doctors, _ := kiosk.Doctors(ctx)
	if len(doctors) != 2 {
		t.Fatalf("expected 2 doctors, got %d", len(doctors))
	}
	for _, d := range doctors {
		if d.Role != "doctor" {
			t.Fatalf("non-doctor in doctor list: %+v", d)
		}
	}
}

func TestPauseHonorsCancellation(t *testing.T) {
	kiosk := NewKioskService(mocks.NewMockRedisClient(), 1.0, newTestGateway())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := kiosk.ListAppointments(ctx, ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
