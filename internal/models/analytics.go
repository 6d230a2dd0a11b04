package models

type ServiceCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MonthlyRevenue struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// Analytics is the admin dashboard snapshot.
type Analytics struct {
	TotalPatients       int              `json:"totalPatients"`
	TotalDoctors        int              `json:"totalDoctors"`
	TotalAppointments   int              `json:"totalAppointments"`
	TodayAppointments   int              `json:"todayAppointments"`
	PendingPayments     int              `json:"pendingPayments"`
	KioskUptime         float64          `json:"kioskUptime"`
	PopularServices     []ServiceCount   `json:"popularServices"`
	MonthlyRevenue      []MonthlyRevenue `json:"monthlyRevenue"`
	PatientSatisfaction float64          `json:"patientSatisfaction"`
}
