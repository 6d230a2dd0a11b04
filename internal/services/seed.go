package services

import (
	"time"

	"github.com/Sahil073/HealthCare-Kiosk/internal/models"
)

// Seed datasets served while the corresponding bucket is empty, and the
// static catalogs (videos, diet plans, analytics, directory) that the
// kiosk never writes to.

func seedUsers() []models.DirectoryUser {
	return []models.DirectoryUser{
		{
			ID:        "patient_1",
			Name:      "Raj Kumar",
			Email:     "raj@example.com",
			Phone:     "+91-9876543210",
			Role:      "patient",
			IsActive:  true,
			CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             "doctor_1",
			Name:           "Dr. Priya Sharma",
			Email:          "priya@example.com",
			Phone:          "+91-9876543211",
			Role:           "doctor",
			Specialization: "General Medicine",
			Experience:     8,
			Department:     "Internal Medicine",
			IsActive:       true,
			CreatedAt:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             "doctor_2",
			Name:           "Dr. Amit Verma",
			Email:          "amit@example.com",
			Phone:          "+91-9876543212",
			Role:           "doctor",
			Specialization: "Cardiology",
			Experience:     12,
			Department:     "Cardiology",
			IsActive:       true,
			CreatedAt:      time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "admin_1",
			Name:      "Admin User",
			Email:     "admin@example.com",
			Phone:     "+91-9876543213",
			Role:      "admin",
			IsActive:  true,
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedAppointments() []models.Appointment {
	return []models.Appointment{
		{
			ID:          "apt_1",
			PatientID:   "patient_1",
			DoctorID:    "doctor_1",
			PatientName: "Raj Kumar",
			DoctorName:  "Dr. Priya Sharma",
			Department:  "Internal Medicine",
			Date:        time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC),
			Time:        "10:00 AM",
			Status:      "scheduled",
			Symptoms:    "Fever and headache for 3 days",
			CreatedAt:   time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "apt_2",
			PatientID:    "patient_1",
			DoctorID:     "doctor_2",
			PatientName:  "Raj Kumar",
			DoctorName:   "Dr. Amit Verma",
			Department:   "Cardiology",
			Date:         time.Date(2024, 11, 29, 0, 0, 0, 0, time.UTC),
			Time:         "2:00 PM",
			Status:       "completed",
			Symptoms:     "Chest pain and shortness of breath",
			Prescription: "Rest for 2 days, take prescribed medication",
			CreatedAt:    time.Date(2024, 11, 25, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedVideos() []models.Video {
	return []models.Video{
		{
			ID:               "vid_1",
			Title:            "Diabetes Diet Plan - Indian Foods",
			Description:      "Learn about the best Indian foods for managing diabetes effectively",
			ThumbnailURL:     "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=300",
			VideoURL:         "https://www.youtube.com/embed/dQw4w9WgXcQ",
			Duration:         15,
			Category:         "diet",
			Tags:             []string{"diabetes", "indian food", "nutrition"},
			ViewCount:        1250,
			Rating:           4.5,
			Language:         "both",
			TargetConditions: []string{"diabetes"},
			CreatedAt:        time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "vid_2",
			Title:        "Morning Yoga for Beginners",
			Description:  "Simple yoga exercises to start your day with energy and peace",
			ThumbnailURL: "https://images.pexels.com/photos/317157/pexels-photo-317157.jpeg?auto=compress&cs=tinysrgb&w=300",
			VideoURL:     "https://www.youtube.com/embed/dQw4w9WgXcQ",
			Duration:     20,
			Category:     "yoga",
			Tags:         []string{"yoga", "morning", "beginner"},
			ViewCount:    2180,
			Rating:       4.8,
			Language:     "hi",
			CreatedAt:    time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:               "vid_3",
			Title:            "Heart Health Awareness",
			Description:      "Understanding heart disease prevention and early symptoms",
			ThumbnailURL:     "https://images.pexels.com/photos/40568/medical-appointment-doctor-healthcare-40568.jpeg?auto=compress&cs=tinysrgb&w=300",
			VideoURL:         "https://www.youtube.com/embed/dQw4w9WgXcQ",
			Duration:         12,
			Category:         "awareness",
			Tags:             []string{"heart", "prevention", "awareness"},
			ViewCount:        890,
			Rating:           4.3,
			Language:         "en",
			TargetConditions: []string{"hypertension", "heart disease"},
			CreatedAt:        time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "vid_4",
			Title:        "Healthy Indian Breakfast Ideas",
			Description:  "Nutritious breakfast options using traditional Indian ingredients",
			ThumbnailURL: "https://images.pexels.com/photos/1640772/pexels-photo-1640772.jpeg?auto=compress&cs=tinysrgb&w=300",
			VideoURL:     "https://www.youtube.com/embed/dQw4w9WgXcQ",
			Duration:     18,
			Category:     "diet",
			Tags:         []string{"breakfast", "indian", "nutrition"},
			ViewCount:    1560,
			Rating:       4.6,
			Language:     "both",
			CreatedAt:    time.Date(2024, 10, 28, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedDietPlans() []models.DietPlan {
	return []models.DietPlan{
		{
			ID:          "diet_1",
			PatientID:   "patient_1",
			Title:       "Diabetes Management Diet",
			Description: "A balanced diet plan specifically designed for diabetes management using Indian foods",
			Meals: models.Meals{
				Breakfast: []string{"Oats upma with vegetables", "Green tea", "A handful of almonds"},
				Lunch:     []string{"2 rotis with dal", "Mixed vegetable curry", "Brown rice (1/2 cup)", "Buttermilk"},
				Dinner:    []string{"Grilled paneer", "Sautéed spinach", "1 roti", "Cucumber salad"},
				Snacks:    []string{"Apple slices", "Roasted chana", "Herbal tea"},
			},
			TargetCondition: "diabetes",
			Duration:        "30 days",
			CreatedBy:       "Dr. Priya Sharma",
			CreatedAt:       time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedAnalytics() models.Analytics {
	return models.Analytics{
		TotalPatients:     2456,
		TotalDoctors:      89,
		TotalAppointments: 5678,
		TodayAppointments: 34,
		PendingPayments:   12,
		KioskUptime:       98.5,
		PopularServices: []models.ServiceCount{
			{Name: "General Consultation", Count: 1245},
			{Name: "Health Checkup", Count: 890},
			{Name: "Diabetes Care", Count: 567},
			{Name: "Cardiology", Count: 432},
		},
		MonthlyRevenue: []models.MonthlyRevenue{
			{Month: "Jan", Amount: 45000},
			{Month: "Feb", Amount: 52000},
			{Month: "Mar", Amount: 48000},
			{Month: "Apr", Amount: 61000},
			{Month: "May", Amount: 55000},
			{Month: "Jun", Amount: 67000},
		},
		PatientSatisfaction: 4.2,
	}
}
