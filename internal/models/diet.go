package models

import "time"

type Meals struct {
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Dinner    []string `json:"dinner"`
	Snacks    []string `json:"snacks"`
}

type DietPlan struct {
	ID              string    `json:"id"`
	PatientID       string    `json:"patientId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Meals           Meals     `json:"meals"`
	TargetCondition string    `json:"targetCondition"`
	Duration        string    `json:"duration"`
	CreatedBy       string    `json:"createdBy"`
	CreatedAt       time.Time `json:"createdAt"`
}
