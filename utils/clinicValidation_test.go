package utils

import (
	"testing"
	"time"

	"NeoVax/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)

func validNewborn() models.Newborn {
	return models.Newborn{
		FirstName:   "Ana",
		LastName:    "Reyes",
		DateOfBirth: "2026-05-01",
		Gender:      "Female",
		MotherName:  "Maria Reyes",
	}
}

func TestValidateNewbornIntakeAccepts(t *testing.T) {
	assert.NoError(t, ValidateNewbornIntake(validNewborn(), testNow))
}

func TestValidateNewbornIntakeRejectsFutureDOB(t *testing.T) {
	n := validNewborn()
	n.DateOfBirth = "2026-06-16"
	assert.ErrorIs(t, ValidateNewbornIntake(n, testNow), ErrDateOfBirthFuture)
}

func TestValidateNewbornIntakeBornTodayAccepted(t *testing.T) {
	n := validNewborn()
	n.DateOfBirth = "2026-06-15"
	assert.NoError(t, ValidateNewbornIntake(n, testNow))
}

func TestValidateNewbornIntakeAgeCapBoundary(t *testing.T) {
	n := validNewborn()

	// exactly twelve months old on the registration day still passes
	n.DateOfBirth = "2025-06-15"
	assert.NoError(t, ValidateNewbornIntake(n, testNow))

	// one day past twelve months is rejected
	n.DateOfBirth = "2025-06-14"
	assert.ErrorIs(t, ValidateNewbornIntake(n, testNow), ErrPatientTooOld)
}

func TestValidateNewbornUpdateSkipsAgeCap(t *testing.T) {
	n := validNewborn()
	n.DateOfBirth = "2024-01-01"
	assert.NoError(t, ValidateNewbornUpdate(n))
}

func TestValidateNewbornIntakeRequiredFields(t *testing.T) {
	cases := map[string]func(*models.Newborn){
		"first name":    func(n *models.Newborn) { n.FirstName = "" },
		"last name":     func(n *models.Newborn) { n.LastName = "" },
		"date of birth": func(n *models.Newborn) { n.DateOfBirth = "" },
		"gender":        func(n *models.Newborn) { n.Gender = "" },
		"mother name":   func(n *models.Newborn) { n.MotherName = "" },
	}
	for name, mutate := range cases {
		n := validNewborn()
		mutate(&n)
		assert.Error(t, ValidateNewbornIntake(n, testNow), "missing %s should fail", name)
	}
}

func TestValidateNewbornIntakeGenderValues(t *testing.T) {
	n := validNewborn()
	n.Gender = "Other"
	assert.Error(t, ValidateNewbornIntake(n, testNow))
}

func TestValidateNewbornIntakeContactNumber(t *testing.T) {
	n := validNewborn()

	n.ContactNumber = "09171234567"
	assert.NoError(t, ValidateNewbornIntake(n, testNow))

	n.ContactNumber = "0917123456"
	assert.ErrorIs(t, ValidateNewbornIntake(n, testNow), ErrInvalidContact)

	n.ContactNumber = "0917123456a"
	assert.ErrorIs(t, ValidateNewbornIntake(n, testNow), ErrInvalidContact)

	// optional: blank is fine
	n.ContactNumber = ""
	assert.NoError(t, ValidateNewbornIntake(n, testNow))
}

func TestValidateNewbornIntakeRejectsNonCalendarDate(t *testing.T) {
	n := validNewborn()
	n.DateOfBirth = "2026-02-30"
	assert.ErrorIs(t, ValidateNewbornIntake(n, testNow), ErrInvalidDate)
}

func TestValidateVaccineData(t *testing.T) {
	v := models.Vaccine{VaccineName: "BCG", RecommendedAgeWeeks: 0, DoseNumber: 1}
	assert.NoError(t, ValidateVaccineData(v))

	v.VaccineName = ""
	assert.Error(t, ValidateVaccineData(v))

	v = models.Vaccine{VaccineName: "BCG", RecommendedAgeWeeks: -1, DoseNumber: 1}
	assert.Error(t, ValidateVaccineData(v))

	v = models.Vaccine{VaccineName: "BCG", RecommendedAgeWeeks: 6, DoseNumber: 0}
	assert.Error(t, ValidateVaccineData(v))
}

func validLot() models.Inventory {
	return models.Inventory{
		VaccineID:      1,
		Quantity:       10,
		BatchNumber:    "B-100",
		ExpirationDate: "2027-01-01",
	}
}

func TestValidateInventoryInputAccepts(t *testing.T) {
	assert.NoError(t, ValidateInventoryInput(validLot(), testNow))
}

func TestValidateInventoryInputQuantity(t *testing.T) {
	lot := validLot()
	lot.Quantity = 0
	// zero quantity trips the required-field check first
	assert.Error(t, ValidateInventoryInput(lot, testNow))

	lot.Quantity = -5
	assert.ErrorIs(t, ValidateInventoryInput(lot, testNow), ErrQuantityTooLow)
}

func TestValidateInventoryInputExpiryBoundary(t *testing.T) {
	lot := validLot()

	// expiring today is rejected, strictly future is required
	lot.ExpirationDate = "2026-06-15"
	assert.ErrorIs(t, ValidateInventoryInput(lot, testNow), ErrExpirationNotAhead)

	lot.ExpirationDate = "2026-06-16"
	assert.NoError(t, ValidateInventoryInput(lot, testNow))

	lot.ExpirationDate = "2026-06-14"
	assert.ErrorIs(t, ValidateInventoryInput(lot, testNow), ErrExpirationNotAhead)
}

func TestValidateInventoryInputRequiredFields(t *testing.T) {
	lot := validLot()
	lot.VaccineID = 0
	assert.Error(t, ValidateInventoryInput(lot, testNow))

	lot = validLot()
	lot.BatchNumber = ""
	assert.Error(t, ValidateInventoryInput(lot, testNow))

	lot = validLot()
	lot.ExpirationDate = ""
	assert.Error(t, ValidateInventoryInput(lot, testNow))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-03-09")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("03/09/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestToday(t *testing.T) {
	assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), Today(testNow))
}
