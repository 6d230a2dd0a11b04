package models

import "time"

type Vital struct {
	ID         string    `json:"id"`
	PatientID  string    `json:"patientId"`
	Type       string    `json:"type"` // "bp", "sugar", "weight", "height", "bmi", "temperature", "pulse"
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	Timestamp  time.Time `json:"timestamp"`
	RecordedBy string    `json:"recordedBy,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}
