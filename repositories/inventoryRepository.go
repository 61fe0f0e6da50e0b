package repositories

import (
	"NeoVax/database"
	"NeoVax/models"
	"context"
	"fmt"
	"time"
)

type InventoryRepository struct{}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

// Add appends a stock lot to the ledger. Administration never deducts from
// a lot, so there is no decrement path here.
func (r *InventoryRepository) Add(ctx context.Context, lot *models.Inventory) error {
	if err := database.DB.Create(lot).Error; err != nil {
		return fmt.Errorf("failed to add inventory record: %w", err)
	}
	return nil
}

// GetByID returns one lot joined with its vaccine name and category.
func (r *InventoryRepository) GetByID(ctx context.Context, id uint) (*models.InventoryDetail, error) {
	var lot models.InventoryDetail
	result := database.DB.Model(&models.Inventory{}).
		Select(`inventory.id, inventory.vaccine_id, vaccines.vaccine_name, vaccines.category,
inventory.quantity, inventory.expiration_date, inventory.batch_number, inventory.created_at`).
		Joins("JOIN vaccines ON vaccines.id = inventory.vaccine_id").
		Where("inventory.id = ?", id).
		Scan(&lot)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get inventory record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &lot, nil
}

// GetAll lists stock lots joined with vaccine name and category, newest first.
func (r *InventoryRepository) GetAll(ctx context.Context) ([]models.InventoryDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var lots []models.InventoryDetail
	err := database.DB.Model(&models.Inventory{}).
		Select(`inventory.id, inventory.vaccine_id, vaccines.vaccine_name, vaccines.category,
inventory.quantity, inventory.expiration_date, inventory.batch_number, inventory.created_at`).
		Joins("JOIN vaccines ON vaccines.id = inventory.vaccine_id").
		Order("inventory.created_at DESC").
		Scan(&lots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return lots, nil
}
