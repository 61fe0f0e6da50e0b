package repositories

import (
	"NeoVax/cache"
	"NeoVax/database"
	"NeoVax/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	VaccineCacheExpiry = 24 * time.Hour
	vaccinesCacheKey   = "vaccines_cache"
)

type VaccineRepository struct {
	cache *cache.Cache
}

func NewVaccineRepository(cache *cache.Cache) *VaccineRepository {
	return &VaccineRepository{cache: cache}
}

func (r *VaccineRepository) Create(ctx context.Context, vaccine *models.Vaccine) error {
	if err := database.DB.Create(vaccine).Error; err != nil {
		return fmt.Errorf("failed to create vaccine: %w", err)
	}
	return r.invalidate(ctx, vaccine.ID)
}

func (r *VaccineRepository) GetByID(ctx context.Context, id uint) (*models.Vaccine, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getVaccineCacheKey(id)
	cachedVaccine, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedVaccine != "" {
		var vaccine models.Vaccine
		if err := json.Unmarshal([]byte(cachedVaccine), &vaccine); err == nil {
			return &vaccine, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get vaccine from cache: %v", err)
	}

	var vaccine models.Vaccine
	err = database.DB.First(&vaccine, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vaccine: %w", err)
	}

	vaccineJSON, err := json.Marshal(vaccine)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vaccine: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, vaccineJSON, VaccineCacheExpiry); err != nil {
		log.Printf("Failed to set vaccine in cache: %v", err)
	}

	return &vaccine, nil
}

// GetAll returns the catalog in (recommended_age_weeks, dose_number) order,
// which is also the order schedules are generated in.
func (r *VaccineRepository) GetAll(ctx context.Context) ([]models.Vaccine, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cachedVaccines, err := r.cache.Get(ctx, vaccinesCacheKey)
	if err == nil && cachedVaccines != "" {
		var vaccines []models.Vaccine
		if err := json.Unmarshal([]byte(cachedVaccines), &vaccines); err == nil {
			return vaccines, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get vaccines from cache: %v", err)
	}

	var vaccines []models.Vaccine
	err = database.DB.
		Order("recommended_age_weeks, dose_number").
		Find(&vaccines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all vaccines: %w", err)
	}

	vaccinesJSON, err := json.Marshal(vaccines)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vaccines: %w", err)
	}
	if err := r.cache.Set(ctx, vaccinesCacheKey, vaccinesJSON, VaccineCacheExpiry); err != nil {
		log.Printf("Failed to set vaccines in cache: %v", err)
	}

	return vaccines, nil
}

func (r *VaccineRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Vaccine{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check vaccine existence: %w", err)
	}
	return count > 0, nil
}

func (r *VaccineRepository) Update(ctx context.Context, vaccine *models.Vaccine) error {
	result := database.DB.Model(&models.Vaccine{}).
		Where("id = ?", vaccine.ID).
		Updates(map[string]interface{}{
			"vaccine_name":          vaccine.VaccineName,
			"description":           vaccine.Description,
			"category":              vaccine.Category,
			"recommended_age_weeks": vaccine.RecommendedAgeWeeks,
			"dose_number":           vaccine.DoseNumber,
			"is_mandatory":          vaccine.IsMandatory,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update vaccine: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return r.invalidate(ctx, vaccine.ID)
}

// DeleteVaccineAndRelated removes a catalog entry together with its dependent
// schedules, records, and stock lots in a single transaction.
func (r *VaccineRepository) DeleteVaccineAndRelated(ctx context.Context, id uint) error {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var vaccine models.Vaccine
		if err := tx.First(&vaccine, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("vaccine_id = ?", id).Delete(&models.VaccinationRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vaccine_id = ?", id).Delete(&models.VaccinationSchedule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vaccine_id = ?", id).Delete(&models.Inventory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Vaccine{}, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete vaccine and related rows: %w", err)
	}
	return r.invalidate(ctx, id)
}

func (r *VaccineRepository) invalidate(ctx context.Context, id uint) error {
	if err := r.cache.Delete(ctx, r.getVaccineCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete vaccine cache: %w", err)
	}
	return r.cache.Delete(ctx, vaccinesCacheKey)
}

func (r *VaccineRepository) getVaccineCacheKey(id uint) string {
	return fmt.Sprintf("vaccine_cache:%d", id)
}
