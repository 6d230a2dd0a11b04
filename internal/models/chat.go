package models

import "time"

type ChatMessage struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patientId"`
	Message   string    `json:"message"`
	IsBot     bool      `json:"isBot"`
	Timestamp time.Time `json:"timestamp"`
}
