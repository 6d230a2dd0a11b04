package models

import "time"

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"` // "info", "success", "warning", "error"
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
