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
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NewbornCacheExpiry = 24 * time.Hour
	newbornsCacheKey   = "newborns_cache"
)

// ErrDuplicateNewborn flags a registration matching an existing newborn on
// name, date of birth, and mother.
var ErrDuplicateNewborn = errors.New("newborn with the same details already exists")

type NewbornRepository struct {
	cache *cache.Cache
}

func NewNewbornRepository(cache *cache.Cache) *NewbornRepository {
	return &NewbornRepository{cache: cache}
}

// Register inserts the newborn and its full vaccination schedule in one
// transaction. A partial failure rolls everything back, so a registered
// newborn always carries a complete schedule set.
func (r *NewbornRepository) Register(ctx context.Context, newborn *models.Newborn, schedules []models.VaccinationSchedule) error {
	lockKey := fmt.Sprintf("newborn_lock:%s_%s_%s", newborn.FirstName, newborn.LastName, newborn.DateOfBirth)
	lockValue := uuid.New().String()

	maxRetries := 3
	retryDelay := 2 * time.Second
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	var existing models.Newborn
	if err := database.DB.Where("first_name = ? AND last_name = ? AND date_of_birth = ? AND mother_name = ?",
		newborn.FirstName, newborn.LastName, newborn.DateOfBirth, newborn.MotherName).First(&existing).Error; err == nil {
		return ErrDuplicateNewborn
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for existing newborn: %w", err)
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(newborn).Error; err != nil {
			return fmt.Errorf("failed to create newborn: %w", err)
		}
		for i := range schedules {
			schedules[i].NewbornID = newborn.ID
		}
		if len(schedules) > 0 {
			if err := tx.Create(&schedules).Error; err != nil {
				return fmt.Errorf("failed to create vaccination schedules: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return r.cache.Delete(ctx, newbornsCacheKey)
}

func (r *NewbornRepository) GetByID(ctx context.Context, id uint) (*models.Newborn, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getNewbornCacheKey(id)
	cachedNewborn, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedNewborn != "" {
		var newborn models.Newborn
		if err := json.Unmarshal([]byte(cachedNewborn), &newborn); err == nil {
			return &newborn, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get newborn from cache: %v", err)
	}

	var newborn models.Newborn
	err = database.DB.First(&newborn, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get newborn: %w", err)
	}

	newbornJSON, err := json.Marshal(newborn)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal newborn: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, newbornJSON, NewbornCacheExpiry); err != nil {
		log.Printf("Failed to set newborn in cache: %v", err)
	}

	return &newborn, nil
}

// GetAll lists newborns, optionally filtered by a search term matched against
// names, mother name, and contact number. Search results bypass the cache.
func (r *NewbornRepository) GetAll(ctx context.Context, search string) ([]models.Newborn, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if search == "" {
		cachedNewborns, err := r.cache.Get(ctx, newbornsCacheKey)
		if err == nil && cachedNewborns != "" {
			var newborns []models.Newborn
			if err := json.Unmarshal([]byte(cachedNewborns), &newborns); err == nil {
				return newborns, nil
			}
		} else if err != nil && err != redis.Nil {
			log.Printf("Failed to get newborns from cache: %v", err)
		}
	}

	query := database.DB.Order("created_at DESC")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR mother_name ILIKE ? OR contact_number ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var newborns []models.Newborn
	if err := query.Find(&newborns).Error; err != nil {
		return nil, fmt.Errorf("failed to get all newborns: %w", err)
	}

	if search == "" {
		newbornsJSON, err := json.Marshal(newborns)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal newborns: %w", err)
		}
		if err := r.cache.Set(ctx, newbornsCacheKey, newbornsJSON, NewbornCacheExpiry); err != nil {
			log.Printf("Failed to set newborns in cache: %v", err)
		}
	}

	return newborns, nil
}

func (r *NewbornRepository) Update(ctx context.Context, newborn *models.Newborn) error {
	lockKey := fmt.Sprintf("newborn_lock:%d", newborn.ID)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.New("failed to acquire lock")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	result := database.DB.Model(&models.Newborn{}).
		Where("id = ?", newborn.ID).
		Updates(map[string]interface{}{
			"first_name":      newborn.FirstName,
			"middle_name":     newborn.MiddleName,
			"last_name":       newborn.LastName,
			"date_of_birth":   newborn.DateOfBirth,
			"gender":          newborn.Gender,
			"weight_at_birth": newborn.WeightAtBirth,
			"mother_name":     newborn.MotherName,
			"father_name":     newborn.FatherName,
			"contact_number":  newborn.ContactNumber,
			"address":         newborn.Address,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update newborn: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.cache.Delete(ctx, r.getNewbornCacheKey(newborn.ID)); err != nil {
		return fmt.Errorf("failed to delete newborn cache: %w", err)
	}
	return r.cache.Delete(ctx, newbornsCacheKey)
}

// DeleteNewbornAndRelated removes a newborn together with its schedules and
// records in a single transaction.
func (r *NewbornRepository) DeleteNewbornAndRelated(ctx context.Context, id uint) error {
	lockKey := fmt.Sprintf("newborn_lock:%d", id)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, time.Minute)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.New("failed to acquire lock")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var newborn models.Newborn
		if err := tx.First(&newborn, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("newborn_id = ?", id).Delete(&models.VaccinationRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("newborn_id = ?", id).Delete(&models.VaccinationSchedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Newborn{}, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete newborn and related rows: %w", err)
	}

	if err := r.cache.Delete(ctx, r.getNewbornCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete newborn cache: %w", err)
	}
	return r.cache.Delete(ctx, newbornsCacheKey)
}

func (r *NewbornRepository) getNewbornCacheKey(id uint) string {
	return fmt.Sprintf("newborn_cache:%d", id)
}
