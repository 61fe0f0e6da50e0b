package services

import (
	"NeoVax/models"
	"NeoVax/repositories"
	"NeoVax/utils"
	"context"
	"fmt"
)

type ScheduleService struct {
	repository *repositories.ScheduleRepository
}

func NewScheduleService(repository *repositories.ScheduleRepository) *ScheduleService {
	return &ScheduleService{repository: repository}
}

func validStatus(status string) bool {
	switch status {
	case models.StatusPending, models.StatusCompleted, models.StatusMissed:
		return true
	}
	return false
}

func (s *ScheduleService) Create(ctx context.Context, schedule *models.VaccinationSchedule) error {
	if schedule.NewbornID == 0 || schedule.VaccineID == 0 {
		return fmt.Errorf("%w: newborn_id and vaccine_id are required", ErrInvalidInput)
	}
	if _, err := utils.ParseDate(schedule.ScheduledDate); err != nil {
		return fmt.Errorf("%w: scheduled date: %v", ErrInvalidInput, err)
	}
	if schedule.Status != "" && !validStatus(schedule.Status) {
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, schedule.Status)
	}
	return s.repository.Create(ctx, schedule)
}

func (s *ScheduleService) GetAll(ctx context.Context) ([]models.ScheduleDetail, error) {
	return s.repository.GetAll(ctx)
}

func (s *ScheduleService) GetByNewborn(ctx context.Context, newbornID uint) ([]models.ScheduleDetail, error) {
	return s.repository.GetByNewborn(ctx, newbornID)
}

func (s *ScheduleService) GetByStatus(ctx context.Context, status string) ([]models.ScheduleDetail, error) {
	if !validStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, status)
	}
	return s.repository.GetByStatus(ctx, status)
}

// Update applies a field update to a schedule entry. A transition to
// Completed requires both the administered date and the administering staff
// member; the paired record is created atomically by the repository.
func (s *ScheduleService) Update(ctx context.Context, schedule *models.VaccinationSchedule) error {
	if !validStatus(schedule.Status) {
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, schedule.Status)
	}
	if _, err := utils.ParseDate(schedule.ScheduledDate); err != nil {
		return fmt.Errorf("%w: scheduled date: %v", ErrInvalidInput, err)
	}
	if schedule.Status == models.StatusCompleted {
		if schedule.AdministeredDate == "" || schedule.AdministeredBy == "" {
			return fmt.Errorf("%w: administered_date and administered_by are required to complete a schedule", ErrInvalidInput)
		}
		if _, err := utils.ParseDate(schedule.AdministeredDate); err != nil {
			return fmt.Errorf("%w: administered date: %v", ErrInvalidInput, err)
		}
	}
	return s.repository.Update(ctx, schedule)
}

func (s *ScheduleService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
