package services

import (
	"context"
	"testing"
	"time"

	"NeoVax/models"

	"github.com/stretchr/testify/assert"
)

func TestNewbornRegisterRejectsInvalidIntake(t *testing.T) {
	s := NewNewbornService(nil, nil)
	ctx := context.Background()

	err := s.Register(ctx, &models.Newborn{
		FirstName:   "Ana",
		LastName:    "Reyes",
		DateOfBirth: time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		Gender:      "Female",
		MotherName:  "Maria Reyes",
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "future date of birth")

	err = s.Register(ctx, &models.Newborn{
		FirstName:   "Ana",
		DateOfBirth: "2026-01-01",
		Gender:      "Female",
		MotherName:  "Maria Reyes",
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "missing last name")

	err = s.Register(ctx, &models.Newborn{
		FirstName:        "Ana",
		LastName:         "Reyes",
		DateOfBirth:      time.Now().Format("2006-01-02"),
		Gender:           "Female",
		MotherName:       "Maria Reyes",
		RegistrationDate: "01/02/2026",
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "malformed registration date")
}

func TestNewbornUpdateRejectsInvalidFields(t *testing.T) {
	s := NewNewbornService(nil, nil)

	err := s.Update(context.Background(), &models.Newborn{
		ID:          4,
		FirstName:   "Ana",
		LastName:    "Reyes",
		DateOfBirth: "2026-01-01",
		Gender:      "Unknown",
		MotherName:  "Maria Reyes",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
