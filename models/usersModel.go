package models

import (
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User roles
const (
	RoleAdmin = "Admin"
	RoleStaff = "Staff"
)

// AllowedRoles lists the roles a user may be created with.
var AllowedRoles = []string{RoleAdmin, RoleStaff}

// User represents a clinic staff account. The password hash is never
// serialized into responses.
type User struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	FullName  string    `gorm:"size:255;not null;column:full_name" json:"full_name"`
	Username  string    `gorm:"size:100;not null;unique;index;column:username" json:"username"`
	Email     string    `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	Password  string    `gorm:"size:255;not null;column:password_hash" json:"-"`
	Role      string    `gorm:"size:50;check:role IN ('Admin', 'Staff');not null;column:role" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// IsValidRole reports whether role is one of the allowed user roles.
func IsValidRole(role string) bool {
	for _, allowed := range AllowedRoles {
		if role == allowed {
			return true
		}
	}
	return false
}

// SeedUsers inserts a default administrator account when the users table is
// empty, so a fresh deployment has a login to start from. The password comes
// from ADMIN_PASSWORD when set.
func SeedUsers(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&User{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "ChangeMe123!"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		admin := User{
			FullName: "System Administrator",
			Username: "admin",
			Email:    "admin@clinic.local",
			Password: string(hash),
			Role:     RoleAdmin,
		}
		return tx.Create(&admin).Error
	})
}

// SeedVaccines inserts the standard newborn immunization catalog when the
// vaccines table is empty. Catalog order is (recommended_age_weeks, dose_number).
func SeedVaccines(db *gorm.DB) error {
	initialVaccines := []Vaccine{
		{VaccineName: "BCG", Description: "Bacillus Calmette-Guerin", Category: "Routine", RecommendedAgeWeeks: 0, DoseNumber: 1, IsMandatory: true},
		{VaccineName: "Hepatitis B", Description: "Hepatitis B birth dose", Category: "Routine", RecommendedAgeWeeks: 0, DoseNumber: 1, IsMandatory: true},
		{VaccineName: "Pentavalent", Description: "DPT-HepB-Hib", Category: "Routine", RecommendedAgeWeeks: 6, DoseNumber: 1, IsMandatory: true},
		{VaccineName: "OPV", Description: "Oral polio vaccine", Category: "Routine", RecommendedAgeWeeks: 6, DoseNumber: 1, IsMandatory: true},
		{VaccineName: "Pentavalent", Description: "DPT-HepB-Hib", Category: "Routine", RecommendedAgeWeeks: 10, DoseNumber: 2, IsMandatory: true},
		{VaccineName: "OPV", Description: "Oral polio vaccine", Category: "Routine", RecommendedAgeWeeks: 10, DoseNumber: 2, IsMandatory: true},
		{VaccineName: "Pentavalent", Description: "DPT-HepB-Hib", Category: "Routine", RecommendedAgeWeeks: 14, DoseNumber: 3, IsMandatory: true},
		{VaccineName: "OPV", Description: "Oral polio vaccine", Category: "Routine", RecommendedAgeWeeks: 14, DoseNumber: 3, IsMandatory: true},
		{VaccineName: "MMR", Description: "Measles, mumps, rubella", Category: "Routine", RecommendedAgeWeeks: 39, DoseNumber: 1, IsMandatory: true},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Vaccine{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		for _, vaccine := range initialVaccines {
			if err := tx.Create(&vaccine).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
