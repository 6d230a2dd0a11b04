package models

import "time"

type Video struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ThumbnailURL     string    `json:"thumbnailUrl"`
	VideoURL         string    `json:"videoUrl"`
	Duration         int       `json:"duration"` // minutes
	Category         string    `json:"category"` // "diet", "yoga", "awareness", "exercise", "medication"
	Tags             []string  `json:"tags"`
	ViewCount        int       `json:"viewCount"`
	Rating           float64   `json:"rating"`
	Language         string    `json:"language"` // "en", "hi", "both"
	TargetConditions []string  `json:"targetConditions,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}
