package models

import (
	"time"
)

// Schedule status values
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusMissed    = "Missed"
)

// Vaccine model represents one catalog entry the schedules are derived from
type Vaccine struct {
	ID                  uint                  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	VaccineName         string                `gorm:"column:vaccine_name;not null;index" json:"vaccine_name"`
	Description         string                `gorm:"column:description" json:"description"`
	Category            string                `gorm:"column:category" json:"category"`
	RecommendedAgeWeeks int                   `gorm:"column:recommended_age_weeks;not null;index" json:"recommended_age_weeks"`
	DoseNumber          int                   `gorm:"column:dose_number;not null" json:"dose_number"`
	IsMandatory         bool                  `gorm:"column:is_mandatory;not null;default:true" json:"is_mandatory"`
	CreatedAt           time.Time             `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Schedules           []VaccinationSchedule `gorm:"foreignKey:VaccineID;references:ID" json:"-"`
	Records             []VaccinationRecord   `gorm:"foreignKey:VaccineID;references:ID" json:"-"`
	Inventory           []Inventory           `gorm:"foreignKey:VaccineID;references:ID" json:"-"`
}

func (Vaccine) TableName() string {
	return "vaccines"
}

// Newborn model
type Newborn struct {
	ID               uint                  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	FirstName        string                `gorm:"column:first_name;not null" json:"first_name"`
	MiddleName       string                `gorm:"column:middle_name" json:"middle_name"`
	LastName         string                `gorm:"column:last_name;not null;index" json:"last_name"`
	DateOfBirth      string                `gorm:"column:date_of_birth;not null;index" json:"date_of_birth"`
	Gender           string                `gorm:"column:gender;check:gender IN ('Male', 'Female');not null" json:"gender"`
	WeightAtBirth    float64               `gorm:"column:weight_at_birth" json:"weight_at_birth"`
	MotherName       string                `gorm:"column:mother_name;not null;index" json:"mother_name"`
	FatherName       string                `gorm:"column:father_name" json:"father_name"`
	ContactNumber    string                `gorm:"column:contact_number" json:"contact_number"`
	Address          string                `gorm:"column:address" json:"address"`
	RegistrationDate string                `gorm:"column:registration_date;not null" json:"registration_date"`
	CreatedAt        time.Time             `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Schedules        []VaccinationSchedule `gorm:"foreignKey:NewbornID;references:ID" json:"-"`
	Records          []VaccinationRecord   `gorm:"foreignKey:NewbornID;references:ID" json:"-"`
}

func (Newborn) TableName() string {
	return "newborns"
}

// VaccinationSchedule model holds one planned dose for one newborn.
// The administered_* columns carry values only once the status is Completed.
type VaccinationSchedule struct {
	ID               uint    `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	NewbornID        uint    `gorm:"column:newborn_id;not null;index" json:"newborn_id"`
	VaccineID        uint    `gorm:"column:vaccine_id;not null;index" json:"vaccine_id"`
	ScheduledDate    string  `gorm:"column:scheduled_date;not null;index" json:"scheduled_date"`
	Status           string  `gorm:"column:status;check:status IN ('Pending', 'Completed', 'Missed');not null;default:'Pending'" json:"status"`
	AdministeredDate string  `gorm:"column:administered_date" json:"administered_date"`
	AdministeredBy   string  `gorm:"column:administered_by" json:"administered_by"`
	BatchNumber      string  `gorm:"column:batch_number" json:"batch_number"`
	Notes            string  `gorm:"column:notes" json:"notes"`
	Newborn          Newborn `gorm:"foreignKey:NewbornID;references:ID" json:"-"`
	Vaccine          Vaccine `gorm:"foreignKey:VaccineID;references:ID" json:"-"`
}

func (VaccinationSchedule) TableName() string {
	return "vaccination_schedules"
}

// VaccinationRecord model is the durable evidence that a dose was administered.
// ScheduleID is nullable: records entered directly have no originating schedule.
type VaccinationRecord struct {
	ID               uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	ScheduleID       *uint     `gorm:"column:schedule_id;index" json:"schedule_id"`
	NewbornID        uint      `gorm:"column:newborn_id;not null;index" json:"newborn_id"`
	VaccineID        uint      `gorm:"column:vaccine_id;not null;index" json:"vaccine_id"`
	AdministeredDate string    `gorm:"column:administered_date;not null;index" json:"administered_date"`
	AdministeredBy   string    `gorm:"column:administered_by;not null" json:"administered_by"`
	BatchNumber      string    `gorm:"column:batch_number" json:"batch_number"`
	NextDueDate      string    `gorm:"column:next_due_date" json:"next_due_date"`
	SideEffects      string    `gorm:"column:side_effects" json:"side_effects"`
	Notes            string    `gorm:"column:notes" json:"notes"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Newborn          Newborn   `gorm:"foreignKey:NewbornID;references:ID" json:"-"`
	Vaccine          Vaccine   `gorm:"foreignKey:VaccineID;references:ID" json:"-"`
}

func (VaccinationRecord) TableName() string {
	return "vaccination_records"
}

// Inventory model tracks one batch of physical vaccine stock. Administration
// does not deduct from a lot; the ledger is append-only.
type Inventory struct {
	ID             uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	VaccineID      uint      `gorm:"column:vaccine_id;not null;index" json:"vaccine_id"`
	Quantity       int       `gorm:"column:quantity;not null;check:quantity >= 1" json:"quantity"`
	BatchNumber    string    `gorm:"column:batch_number;not null" json:"batch_number"`
	ExpirationDate string    `gorm:"column:expiration_date;not null" json:"expiration_date"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Vaccine        Vaccine   `gorm:"foreignKey:VaccineID;references:ID" json:"-"`
}

func (Inventory) TableName() string {
	return "inventory"
}
