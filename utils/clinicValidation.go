package utils

import (
	"NeoVax/models"
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateLayout is the calendar-date format used across the API.
const DateLayout = "2006-01-02"

// MaxRegistrationAgeMonths caps the age a newborn may have at intake.
const MaxRegistrationAgeMonths = 12

// Validation errors
var (
	ErrInvalidDate        = errors.New("date must be a valid calendar date in YYYY-MM-DD format")
	ErrDateOfBirthFuture  = errors.New("date of birth cannot be in the future")
	ErrPatientTooOld      = errors.New("patient must be no older than 12 months at registration")
	ErrInvalidContact     = errors.New("contact number must be exactly 11 digits")
	ErrQuantityTooLow     = errors.New("quantity must be 1 or higher")
	ErrExpirationNotAhead = errors.New("expiration date must be a future date")
)

var contactNumberRegex = regexp.MustCompile(`^\d{11}$`)

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}

// Today truncates a timestamp to day granularity.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateNewbornIntake validates newborn demographics at registration.
// Being exactly 12 months old on the registration day is allowed; older by
// any margin is rejected.
func ValidateNewbornIntake(newborn models.Newborn, now time.Time) error {
	dob, err := validateNewbornFields(newborn)
	if err != nil {
		return err
	}

	today := Today(now)
	if dob.After(today) {
		return ErrDateOfBirthFuture
	}
	if dob.Before(today.AddDate(0, -MaxRegistrationAgeMonths, 0)) {
		return ErrPatientTooOld
	}
	return nil
}

// ValidateNewbornUpdate validates an edit to an existing newborn. The
// 12-month cap applies only at intake, so edits skip it.
func ValidateNewbornUpdate(newborn models.Newborn) error {
	_, err := validateNewbornFields(newborn)
	return err
}

func validateNewbornFields(newborn models.Newborn) (time.Time, error) {
	err := validation.ValidateStruct(&newborn,
		validation.Field(&newborn.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&newborn.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&newborn.DateOfBirth, validation.Required),
		validation.Field(&newborn.Gender, validation.Required, validation.In("Male", "Female")),
		validation.Field(&newborn.MotherName, validation.Required, validation.Length(1, 255)),
	)
	if err != nil {
		return time.Time{}, err
	}

	dob, err := ParseDate(newborn.DateOfBirth)
	if err != nil {
		return time.Time{}, err
	}

	if newborn.ContactNumber != "" && !contactNumberRegex.MatchString(newborn.ContactNumber) {
		return time.Time{}, ErrInvalidContact
	}
	return dob, nil
}

// ValidateVaccineData validates a catalog entry. The recommended age offset
// may be zero (birth doses) but never negative.
func ValidateVaccineData(vaccine models.Vaccine) error {
	return validation.ValidateStruct(&vaccine,
		validation.Field(&vaccine.VaccineName, validation.Required, validation.Length(1, 255)),
		validation.Field(&vaccine.RecommendedAgeWeeks, validation.Min(0)),
		validation.Field(&vaccine.DoseNumber, validation.Required, validation.Min(1)),
	)
}

// ValidateInventoryInput validates a new stock lot. Checks run in order and
// stop at the first failure: required fields, then quantity, then expiry.
// Referential existence of the vaccine is checked separately against the store.
func ValidateInventoryInput(lot models.Inventory, now time.Time) error {
	err := validation.ValidateStruct(&lot,
		validation.Field(&lot.VaccineID, validation.Required),
		validation.Field(&lot.Quantity, validation.Required),
		validation.Field(&lot.BatchNumber, validation.Required),
		validation.Field(&lot.ExpirationDate, validation.Required),
	)
	if err != nil {
		return err
	}

	if lot.Quantity < 1 {
		return ErrQuantityTooLow
	}

	expiration, err := ParseDate(lot.ExpirationDate)
	if err != nil {
		return err
	}
	if !expiration.After(Today(now)) {
		return ErrExpirationNotAhead
	}

	return nil
}
