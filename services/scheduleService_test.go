package services

import (
	"context"
	"testing"

	"NeoVax/models"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	assert.True(t, validStatus(models.StatusPending))
	assert.True(t, validStatus(models.StatusCompleted))
	assert.True(t, validStatus(models.StatusMissed))
	assert.False(t, validStatus("Done"))
	assert.False(t, validStatus("pending"))
	assert.False(t, validStatus(""))
}

func TestScheduleCreateValidation(t *testing.T) {
	s := NewScheduleService(nil)
	ctx := context.Background()

	err := s.Create(ctx, &models.VaccinationSchedule{VaccineID: 1, ScheduledDate: "2026-07-01"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = s.Create(ctx, &models.VaccinationSchedule{NewbornID: 1, VaccineID: 1, ScheduledDate: "July 1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = s.Create(ctx, &models.VaccinationSchedule{NewbornID: 1, VaccineID: 1, ScheduledDate: "2026-07-01", Status: "Done"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestScheduleGetByStatusRejectsUnknownStatus(t *testing.T) {
	s := NewScheduleService(nil)

	_, err := s.GetByStatus(context.Background(), "Done")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestScheduleUpdateCompletionRequiresAdministeredFields(t *testing.T) {
	s := NewScheduleService(nil)
	ctx := context.Background()

	err := s.Update(ctx, &models.VaccinationSchedule{
		ID:               5,
		ScheduledDate:    "2026-07-01",
		Status:           models.StatusCompleted,
		AdministeredDate: "2026-07-01",
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "missing administered_by")

	err = s.Update(ctx, &models.VaccinationSchedule{
		ID:             5,
		ScheduledDate:  "2026-07-01",
		Status:         models.StatusCompleted,
		AdministeredBy: "Nurse Joy",
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "missing administered_date")

	err = s.Update(ctx, &models.VaccinationSchedule{
		ID:               5,
		ScheduledDate:    "2026-07-01",
		Status:           models.StatusCompleted,
		AdministeredDate: "tomorrow",
		AdministeredBy:   "Nurse Joy",
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "unparseable administered_date")
}
