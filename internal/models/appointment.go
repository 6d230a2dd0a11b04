package models

import "time"

type Appointment struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patientId"`
	DoctorID     string    `json:"doctorId"`
	PatientName  string    `json:"patientName"`
	DoctorName   string    `json:"doctorName"`
	Department   string    `json:"department"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"` // "scheduled", "completed", "cancelled", "in-progress"
	Symptoms     string    `json:"symptoms,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Prescription string    `json:"prescription,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
