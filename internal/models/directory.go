package models

import "time"

// DirectoryUser is an entry in the kiosk's people directory (patients,
// doctors, admins) shown on the dashboards. Separate from the credential
// collections: the directory is catalog data, not an account.
type DirectoryUser struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Role           string    `json:"role"` // "patient", "doctor", "admin"
	Specialization string    `json:"specialization,omitempty"`
	Experience     int       `json:"experience,omitempty"`
	Department     string    `json:"department,omitempty"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}
