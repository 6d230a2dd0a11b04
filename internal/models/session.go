package models

import "time"

// Session is the single slot persisted per kiosk device: a denormalized copy
// of whoever last authenticated, overwritten on every successful login.
type Session struct {
	Role     string    `json:"role"`
	Username string    `json:"username,omitempty"` // set for admin sessions
	User     *User     `json:"user,omitempty"`     // set for patient sessions
	SavedAt  time.Time `json:"savedAt"`
}
