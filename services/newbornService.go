package services

import (
	"NeoVax/models"
	"NeoVax/repositories"
	"NeoVax/utils"
	"context"
	"fmt"
	"time"
)

type NewbornService struct {
	newbornRepo *repositories.NewbornRepository
	vaccineRepo *repositories.VaccineRepository
}

func NewNewbornService(newbornRepo *repositories.NewbornRepository, vaccineRepo *repositories.VaccineRepository) *NewbornService {
	return &NewbornService{newbornRepo: newbornRepo, vaccineRepo: vaccineRepo}
}

// Register validates intake, derives the vaccination schedule from the
// current catalog, and persists newborn plus schedule atomically.
func (s *NewbornService) Register(ctx context.Context, newborn *models.Newborn) error {
	now := time.Now()
	if err := utils.ValidateNewbornIntake(*newborn, now); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if newborn.RegistrationDate == "" {
		newborn.RegistrationDate = utils.Today(now).Format(utils.DateLayout)
	} else if _, err := utils.ParseDate(newborn.RegistrationDate); err != nil {
		return fmt.Errorf("%w: registration date: %v", ErrInvalidInput, err)
	}

	catalog, err := s.vaccineRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	schedules, err := BuildSchedule(newborn.DateOfBirth, catalog)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.newbornRepo.Register(ctx, newborn, schedules)
}

func (s *NewbornService) GetByID(ctx context.Context, id uint) (*models.Newborn, error) {
	return s.newbornRepo.GetByID(ctx, id)
}

func (s *NewbornService) GetAll(ctx context.Context, search string) ([]models.Newborn, error) {
	return s.newbornRepo.GetAll(ctx, search)
}

func (s *NewbornService) Update(ctx context.Context, newborn *models.Newborn) error {
	if err := utils.ValidateNewbornUpdate(*newborn); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.newbornRepo.Update(ctx, newborn)
}

func (s *NewbornService) DeleteNewbornAndRelated(ctx context.Context, id uint) error {
	return s.newbornRepo.DeleteNewbornAndRelated(ctx, id)
}
