package models

import "time"

// ScheduleDetail is the joined row shape returned by schedule listings:
// the schedule plus the vaccine and newborn columns the clinic screens show.
type ScheduleDetail struct {
	ID                  uint   `json:"id"`
	NewbornID           uint   `json:"newborn_id"`
	VaccineID           uint   `json:"vaccine_id"`
	ScheduledDate       string `json:"scheduled_date"`
	Status              string `json:"status"`
	AdministeredDate    string `json:"administered_date"`
	AdministeredBy      string `json:"administered_by"`
	BatchNumber         string `json:"batch_number"`
	Notes               string `json:"notes"`
	VaccineName         string `json:"vaccine_name"`
	Description         string `json:"description"`
	RecommendedAgeWeeks int    `json:"recommended_age_weeks"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	DateOfBirth         string `json:"date_of_birth"`
	MotherName          string `json:"mother_name"`
	ContactNumber       string `json:"contact_number"`
}

// RecordDetail is the joined row shape returned by record listings.
type RecordDetail struct {
	ID               uint   `json:"id"`
	ScheduleID       *uint  `json:"schedule_id"`
	NewbornID        uint   `json:"newborn_id"`
	VaccineID        uint   `json:"vaccine_id"`
	AdministeredDate string `json:"administered_date"`
	AdministeredBy   string `json:"administered_by"`
	BatchNumber      string `json:"batch_number"`
	NextDueDate      string `json:"next_due_date"`
	SideEffects      string `json:"side_effects"`
	Notes            string `json:"notes"`
	VaccineName      string `json:"vaccine_name"`
	Description      string `json:"description"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	DateOfBirth      string `json:"date_of_birth"`
	MotherName       string `json:"mother_name"`
}

// InventoryDetail is one stock lot joined with its vaccine name and category.
type InventoryDetail struct {
	ID             uint      `json:"id"`
	VaccineID      uint      `json:"vaccine_id"`
	VaccineName    string    `json:"vaccine_name"`
	Category       string    `json:"category"`
	Quantity       int       `json:"quantity"`
	ExpirationDate string    `json:"expiration_date"`
	BatchNumber    string    `json:"batch_number"`
	CreatedAt      time.Time `json:"created_at"`
}

// DashboardStats is the aggregate snapshot served to the dashboard page.
type DashboardStats struct {
	TotalNewborns         int64   `json:"total_newborns"`
	TotalVaccines         int64   `json:"total_vaccines"`
	PendingVaccinations   int64   `json:"pending_vaccinations"`
	CompletedVaccinations int64   `json:"completed_vaccinations"`
	MissedVaccinations    int64   `json:"missed_vaccinations"`
	UpcomingVaccinations  int64   `json:"upcoming_vaccinations"`
	RecentRegistrations   int64   `json:"recent_registrations"`
	VaccinationRate       float64 `json:"vaccination_rate"`
}
