package services

import (
	"NeoVax/models"
	"NeoVax/repositories"
	"NeoVax/utils"
	"context"
	"fmt"
)

type VaccineService struct {
	repository *repositories.VaccineRepository
}

func NewVaccineService(repository *repositories.VaccineRepository) *VaccineService {
	return &VaccineService{repository: repository}
}

func (s *VaccineService) Create(ctx context.Context, vaccine *models.Vaccine) error {
	if err := utils.ValidateVaccineData(*vaccine); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.repository.Create(ctx, vaccine)
}

func (s *VaccineService) GetByID(ctx context.Context, id uint) (*models.Vaccine, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *VaccineService) GetAll(ctx context.Context) ([]models.Vaccine, error) {
	return s.repository.GetAll(ctx)
}

func (s *VaccineService) Update(ctx context.Context, vaccine *models.Vaccine) error {
	if err := utils.ValidateVaccineData(*vaccine); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.repository.Update(ctx, vaccine)
}

// DeleteVaccineAndRelated cascades: the catalog entry goes together with its
// dependent schedules, records, and stock lots.
func (s *VaccineService) DeleteVaccineAndRelated(ctx context.Context, id uint) error {
	return s.repository.DeleteVaccineAndRelated(ctx, id)
}
