package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Sahil073/HealthCare-Kiosk/internal/models"
)

// Bucket keys mirror the kiosk frontend's storage layout: one JSON array
// per domain under a fixed key. Reads fall back to the seed dataset while
// a bucket is still empty; the first write persists the merged list.
const (
	bucketAppointments  = "healthcare_appointments"
	bucketVitals        = "healthcare_vitals"
	bucketChatHistory   = "healthcare_chat_history"
	bucketPayments      = "healthcare_payments"
	bucketNotifications = "healthcare_notifications"
)

// KioskService is the per-domain data facade. Every operation waits out a
// simulated network round-trip before touching the store, preserving the
// async shape the kiosk UI was built against.
type KioskService struct {
	kv      KV
	latency float64
	gateway *PaymentGateway
}

func NewKioskService(kv KV, latencyFactor float64, gateway *PaymentGateway) *KioskService {
	return &KioskService{kv: kv, latency: latencyFactor, gateway: gateway}
}

// pause simulates the network round-trip, scaled by the configured factor.
func (s *KioskService) pause(ctx context.Context, d time.Duration) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	scaled := time.Duration(float64(d) * s.latency)
	select {
	case <-time.After(scaled):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *KioskService) loadBucket(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, err := s.kv.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *KioskService) saveBucket(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, string(raw), 0).Err()
}

// --- Appointments ---

func (s *KioskService) appointments(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	ok, err := s.loadBucket(ctx, bucketAppointments, &appointments)
	if err != nil {
		return nil, err
	}
	if !ok {
		appointments = seedAppointments()
	}
	return appointments, nil
}

func (s *KioskService) ListAppointments(ctx context.Context, patientID string) ([]models.Appointment, error) {
	if err := s.pause(ctx, 500*time.Millisecond); err != nil {
		return nil, err
	}
	appointments, err := s.appointments(ctx)
	if err != nil {
		return nil, err
	}
	if patientID == "" {
		return appointments, nil
	}
	filtered := make([]models.Appointment, 0)
	for _, apt := range appointments {
		if apt.PatientID == patientID {
			filtered = append(filtered, apt)
		}
	}
	return filtered, nil
}

func (s *KioskService) CreateAppointment(ctx context.Context, apt models.Appointment) (*models.Appointment, error) {
	if err := s.pause(ctx, 800*time.Millisecond); err != nil {
		return nil, err
	}
	appointments, err := s.appointments(ctx)
	if err != nil {
		return nil, err
	}
	apt.ID = "apt_" + uuid.NewString()
	apt.CreatedAt = time.Now()
	if apt.Status == "" {
		apt.Status = "scheduled"
	}
	appointments = append(appointments, apt)
	if err := s.saveBucket(ctx, bucketAppointments, appointments); err != nil {
		return nil, err
	}
	return &apt, nil
}

// AppointmentUpdate carries only the fields present in the request.
type AppointmentUpdate struct {
	Date         *time.Time
	Time         *string
	Status       *string
	DoctorID     *string
	DoctorName   *string
	Department   *string
	Symptoms     *string
	Notes        *string
	Prescription *string
}

func (s *KioskService) UpdateAppointment(ctx context.Context, id string, upd AppointmentUpdate) (*models.Appointment, error) {
	if err := s.pause(ctx, 500*time.Millisecond); err != nil {
		return nil, err
	}
	appointments, err := s.appointments(ctx)
	if err != nil {
		return nil, err
	}
	for i := range appointments {
		if appointments[i].ID != id {
			continue
		}
		apt := &appointments[i]
		if upd.Date != nil {
			apt.Date = *upd.Date
		}
		if upd.Time != nil {
			apt.Time = *upd.Time
		}
		if upd.Status != nil {
			apt.Status = *upd.Status
		}
		if upd.DoctorID != nil {
			apt.DoctorID = *upd.DoctorID
		}
		if upd.DoctorName != nil {
			apt.DoctorName = *upd.DoctorName
		}
		if upd.Department != nil {
			apt.Department = *upd.Department
		}
		if upd.Symptoms != nil {
			apt.Symptoms = *upd.Symptoms
		}
		if upd.Notes != nil {
			apt.Notes = *upd.Notes
		}
		if upd.Prescription != nil {
			apt.Prescription = *upd.Prescription
		}
		if err := s.saveBucket(ctx, bucketAppointments, appointments); err != nil {
			return nil, err
		}
		return apt, nil
	}
	return nil, ErrNotFound
}

// --- Vitals ---

func (s *KioskService) ListVitals(ctx context.Context, patientID string) ([]models.Vital, error) {
	if err := s.pause(ctx, 400*time.Millisecond); err != nil {
		return nil, err
	}
	vitals := make([]models.Vital, 0)
	if _, err := s.loadBucket(ctx, bucketVitals, &vitals); err != nil {
		return nil, err
	}
	filtered := make([]models.Vital, 0)
	for _, v := range vitals {
		if v.PatientID == patientID {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

func (s *KioskService) CreateVital(ctx context.Context, vital models.Vital) (*models.Vital, error) {
	if err := s.pause(ctx, 600*time.Millisecond); err != nil {
		return nil, err
	}
	vitals := make([]models.Vital, 0)
	if _, err := s.loadBucket(ctx, bucketVitals, &vitals); err != nil {
		return nil, err
	}
	vital.ID = "vital_" + uuid.NewString()
	if vital.Timestamp.IsZero() {
		vital.Timestamp = time.Now()
	}
	vitals = append(vitals, vital)
	if err := s.saveBucket(ctx, bucketVitals, vitals); err != nil {
		return nil, err
	}
	return &vital, nil
}

// --- Chat ---

func (s *KioskService) ChatHistory(ctx context.Context, patientID string) ([]models.ChatMessage, error) {
	if err := s.pause(ctx, 300*time.Millisecond); err != nil {
		return nil, err
	}
	history := make([]models.ChatMessage, 0)
	if _, err := s.loadBucket(ctx, bucketChatHistory, &history); err != nil {
		return nil, err
	}
	return filterChat(history, patientID), nil
}

// SendChatMessage appends the patient turn plus the canned bot reply and
// returns the patient's full transcript.
func (s *KioskService) SendChatMessage(ctx context.Context, patientID, message string) ([]models.ChatMessage, error) {
	if err := s.pause(ctx, 1000*time.Millisecond); err != nil {
		return nil, err
	}
	history := make([]models.ChatMessage, 0)
	if _, err := s.loadBucket(ctx, bucketChatHistory, &history); err != nil {
		return nil, err
	}
	now := time.Now()
	history = append(history,
		models.ChatMessage{
			ID:        "msg_" + uuid.NewString(),
			PatientID: patientID,
			Message:   message,
			IsBot:     false,
			Timestamp: now,
		},
		models.ChatMessage{
			ID:        "msg_" + uuid.NewString(),
			PatientID: patientID,
			Message:   adviceFor(message),
			IsBot:     true,
			Timestamp: now,
		},
	)
	if err := s.saveBucket(ctx, bucketChatHistory, history); err != nil {
		return nil, err
	}
	return filterChat(history, patientID), nil
}

func filterChat(history []models.ChatMessage, patientID string) []models.ChatMessage {
	filtered := make([]models.ChatMessage, 0)
	for _, msg := range history {
		if msg.PatientID == patientID {
			filtered = append(filtered, msg)
		}
	}
	return filtered
}

// --- Videos ---

func (s *KioskService) Videos(ctx context.Context, category string) ([]models.Video, error) {
	if err := s.pause(ctx, 400*time.Millisecond); err != nil {
		return nil, err
	}
	videos := seedVideos()
	if category == "" {
		return videos, nil
	}
	filtered := make([]models.Video, 0)
	for _, v := range videos {
		if v.Category == category {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

// RecommendedVideos returns the top of the catalog; the original ranked
// nothing, it just took the first three.
func (s *KioskService) RecommendedVideos(ctx context.Context, patientID string) ([]models.Video, error) {
	if err := s.pause(ctx, 600*time.Millisecond); err != nil {
		return nil, err
	}
	videos := seedVideos()
	if len(videos) > 3 {
		videos = videos[:3]
	}
	return videos, nil
}

// --- Diet plans ---

func (s *KioskService) DietPlans(ctx context.Context, patientID string) ([]models.DietPlan, error) {
	if err := s.pause(ctx, 500*time.Millisecond); err != nil {
		return nil, err
	}
	filtered := make([]models.DietPlan, 0)
	for _, plan := range seedDietPlans() {
		if plan.PatientID == patientID {
			filtered = append(filtered, plan)
		}
	}
	return filtered, nil
}

// GenerateDietPlan fabricates a plan for the condition from the template
// meals. Plans are not persisted, matching the original behavior.
func (s *KioskService) GenerateDietPlan(ctx context.Context, patientID, condition string) (*models.DietPlan, error) {
	if err := s.pause(ctx, 2000*time.Millisecond); err != nil {
		return nil, err
	}
	template := seedDietPlans()[0]
	plan := models.DietPlan{
		ID:              "diet_" + uuid.NewString(),
		PatientID:       patientID,
		Title:           "AI-Generated Plan for " + condition,
		Description:     "Personalized diet plan created by AI for managing " + condition,
		Meals:           template.Meals,
		TargetCondition: condition,
		Duration:        "30 days",
		CreatedBy:       "ai",
		CreatedAt:       time.Now(),
	}
	return &plan, nil
}

// --- Payments ---

func (s *KioskService) ListPayments(ctx context.Context, patientID string) ([]models.Payment, error) {
	if err := s.pause(ctx, 400*time.Millisecond); err != nil {
		return nil, err
	}
	payments := make([]models.Payment, 0)
	if _, err := s.loadBucket(ctx, bucketPayments, &payments); err != nil {
		return nil, err
	}
	filtered := make([]models.Payment, 0)
	for _, p := range payments {
		if p.PatientID == patientID {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// CreatePayment runs the charge through the simulated gateway and records
// the outcome; a failed charge is still a persisted payment record.
func (s *KioskService) CreatePayment(ctx context.Context, payment models.Payment) (*models.Payment, error) {
	if err := s.pause(ctx, 1500*time.Millisecond); err != nil {
		return nil, err
	}
	txnID, status, err := s.gateway.Charge(payment.Amount, payment.Method)
	if err != nil {
		return nil, err
	}
	payments := make([]models.Payment, 0)
	if _, err := s.loadBucket(ctx, bucketPayments, &payments); err != nil {
		return nil, err
	}
	payment.ID = "pay_" + uuid.NewString()
	payment.TransactionID = txnID
	payment.Status = status
	payment.CreatedAt = time.Now()
	payments = append(payments, payment)
	if err := s.saveBucket(ctx, bucketPayments, payments); err != nil {
		return nil, err
	}
	return &payment, nil
}

// --- Notifications ---

func (s *KioskService) Notifications(ctx context.Context, userID string) ([]models.Notification, error) {
	if err := s.pause(ctx, 300*time.Millisecond); err != nil {
		return nil, err
	}
	notifications := make([]models.Notification, 0)
	if _, err := s.loadBucket(ctx, bucketNotifications, &notifications); err != nil {
		return nil, err
	}
	filtered := make([]models.Notification, 0)
	for _, n := range notifications {
		if n.UserID == userID {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}

func (s *KioskService) MarkNotificationRead(ctx context.Context, id string) error {
	if err := s.pause(ctx, 200*time.Millisecond); err != nil {
		return err
	}
	notifications := make([]models.Notification, 0)
	if _, err := s.loadBucket(ctx, bucketNotifications, &notifications); err != nil {
		return err
	}
	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].IsRead = true
			return s.saveBucket(ctx, bucketNotifications, notifications)
		}
	}
	return ErrNotFound
}

// PushNotification is the internal write path used by the notifier and the
// reminder job; it skips the simulated latency.
func (s *KioskService) PushNotification(ctx context.Context, n models.Notification) error {
	notifications := make([]models.Notification, 0)
	if _, err := s.loadBucket(ctx, bucketNotifications, &notifications); err != nil {
		return err
	}
	n.ID = "ntf_" + uuid.NewString()
	n.CreatedAt = time.Now()
	notifications = append(notifications, n)
	return s.saveBucket(ctx, bucketNotifications, notifications)
}

// --- Analytics and directory ---

func (s *KioskService) AnalyticsDashboard(ctx context.Context) (*models.Analytics, error) {
	if err := s.pause(ctx, 800*time.Millisecond); err != nil {
		return nil, err
	}
	analytics := seedAnalytics()
	return &analytics, nil
}

func (s *KioskService) Users(ctx context.Context) ([]models.DirectoryUser, error) {
	if err := s.pause(ctx, 400*time.Millisecond); err != nil {
		return nil, err
	}
	return seedUsers(), nil
}

func (s *KioskService) Doctors(ctx context.Context) ([]models.DirectoryUser, error) {
	if err := s.pause(ctx, 400*time.Millisecond); err != nil {
		return nil, err
	}
	filtered := make([]models.DirectoryUser, 0)
	for _, u := range seedUsers() {
		if u.Role == "doctor" {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}
