package services

import (
	"context"
	"testing"

	"NeoVax/models"

	"github.com/stretchr/testify/assert"
)

func TestRecordCreateValidation(t *testing.T) {
	s := NewRecordService(nil)
	ctx := context.Background()

	err := s.Create(ctx, &models.VaccinationRecord{
		VaccineID:        1,
		AdministeredDate: "2026-07-01",
		AdministeredBy:   "Nurse Joy",
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "missing newborn_id")

	err = s.Create(ctx, &models.VaccinationRecord{
		NewbornID:        1,
		VaccineID:        1,
		AdministeredDate: "2026-07-01",
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "missing administered_by")

	err = s.Create(ctx, &models.VaccinationRecord{
		NewbornID:        1,
		VaccineID:        1,
		AdministeredDate: "last tuesday",
		AdministeredBy:   "Nurse Joy",
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "bad administered date")

	err = s.Create(ctx, &models.VaccinationRecord{
		NewbornID:        1,
		VaccineID:        1,
		AdministeredDate: "2026-07-01",
		AdministeredBy:   "Nurse Joy",
		NextDueDate:      "soon",
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "bad next due date")
}

func TestRecordUpdateValidation(t *testing.T) {
	s := NewRecordService(nil)

	err := s.Update(context.Background(), &models.VaccinationRecord{ID: 3, AdministeredDate: "not-a-date"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
