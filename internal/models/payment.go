package models

import "time"

type Payment struct {
	ID            string    `json:"id"`
	PatientID     string    `json:"patientId"`
	AppointmentID string    `json:"appointmentId,omitempty"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	Method        string    `json:"method"` // "upi", "card", "cash", "insurance"
	Status        string    `json:"status"` // "pending", "completed", "failed"
	TransactionID string    `json:"transactionId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
