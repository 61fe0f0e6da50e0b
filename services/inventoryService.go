package services

import (
	"NeoVax/models"
	"NeoVax/repositories"
	"NeoVax/utils"
	"context"
	"fmt"
	"time"
)

type InventoryService struct {
	inventoryRepo *repositories.InventoryRepository
	vaccineRepo   *repositories.VaccineRepository
}

func NewInventoryService(inventoryRepo *repositories.InventoryRepository, vaccineRepo *repositories.VaccineRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo, vaccineRepo: vaccineRepo}
}

// Add validates and appends a stock lot. Checks short-circuit in order:
// required fields, quantity floor, strictly-future expiry, then vaccine
// existence.
func (s *InventoryService) Add(ctx context.Context, lot *models.Inventory) (*models.InventoryDetail, error) {
	if err := utils.ValidateInventoryInput(*lot, time.Now()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	exists, err := s.vaccineRepo.Exists(ctx, lot.VaccineID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrVaccineNotFound
	}

	if err := s.inventoryRepo.Add(ctx, lot); err != nil {
		return nil, err
	}
	return s.inventoryRepo.GetByID(ctx, lot.ID)
}

func (s *InventoryService) GetAll(ctx context.Context) ([]models.InventoryDetail, error) {
	return s.inventoryRepo.GetAll(ctx)
}
