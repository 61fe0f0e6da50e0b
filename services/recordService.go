package services

import (
	"NeoVax/models"
	"NeoVax/repositories"
	"NeoVax/utils"
	"context"
	"fmt"
)

type RecordService struct {
	repository *repositories.RecordRepository
}

func NewRecordService(repository *repositories.RecordRepository) *RecordService {
	return &RecordService{repository: repository}
}

// Create inserts a direct administration record. A linked schedule entry, if
// any, is marked Completed atomically by the repository.
func (s *RecordService) Create(ctx context.Context, record *models.VaccinationRecord) error {
	if record.NewbornID == 0 || record.VaccineID == 0 {
		return fmt.Errorf("%w: newborn_id and vaccine_id are required", ErrInvalidInput)
	}
	if record.AdministeredBy == "" {
		return fmt.Errorf("%w: administered_by is required", ErrInvalidInput)
	}
	if _, err := utils.ParseDate(record.AdministeredDate); err != nil {
		return fmt.Errorf("%w: administered date: %v", ErrInvalidInput, err)
	}
	if record.NextDueDate != "" {
		if _, err := utils.ParseDate(record.NextDueDate); err != nil {
			return fmt.Errorf("%w: next due date: %v", ErrInvalidInput, err)
		}
	}
	return s.repository.Create(ctx, record)
}

func (s *RecordService) GetByID(ctx context.Context, id uint) (*models.RecordDetail, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *RecordService) GetAll(ctx context.Context) ([]models.RecordDetail, error) {
	return s.repository.GetAll(ctx)
}

func (s *RecordService) GetByNewborn(ctx context.Context, newbornID uint) ([]models.RecordDetail, error) {
	return s.repository.GetByNewborn(ctx, newbornID)
}

// Update edits administration fields only; the originating schedule entry's
// status is never touched.
func (s *RecordService) Update(ctx context.Context, record *models.VaccinationRecord) error {
	if _, err := utils.ParseDate(record.AdministeredDate); err != nil {
		return fmt.Errorf("%w: administered date: %v", ErrInvalidInput, err)
	}
	return s.repository.Update(ctx, record)
}

func (s *RecordService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
