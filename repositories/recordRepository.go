package repositories

import (
	"NeoVax/database"
	"NeoVax/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ErrScheduleAlreadyRecorded flags a direct record entry against a schedule
// entry that already has a record.
var ErrScheduleAlreadyRecorded = errors.New("schedule entry already has a vaccination record")

const recordJoinColumns = `vaccination_records.id, vaccination_records.schedule_id, vaccination_records.newborn_id,
vaccination_records.vaccine_id, vaccination_records.administered_date, vaccination_records.administered_by,
vaccination_records.batch_number, vaccination_records.next_due_date, vaccination_records.side_effects,
vaccination_records.notes, vaccines.vaccine_name, vaccines.description,
newborns.first_name, newborns.last_name, newborns.date_of_birth, newborns.mother_name`

type RecordRepository struct{}

func NewRecordRepository() *RecordRepository {
	return &RecordRepository{}
}

// Create inserts an administration record. When the record points at a
// schedule entry, that entry is marked Completed in the same transaction and
// the insert is refused if the entry already has a record.
func (r *RecordRepository) Create(ctx context.Context, record *models.VaccinationRecord) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if record.ScheduleID != nil {
			var existing int64
			if err := tx.Model(&models.VaccinationRecord{}).Where("schedule_id = ?", *record.ScheduleID).Count(&existing).Error; err != nil {
				return fmt.Errorf("failed to check for existing record: %w", err)
			}
			if existing > 0 {
				return ErrScheduleAlreadyRecorded
			}
		}
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create vaccination record: %w", err)
		}
		if record.ScheduleID == nil {
			return nil
		}
		updates := map[string]interface{}{
			"status":            models.StatusCompleted,
			"administered_date": record.AdministeredDate,
			"administered_by":   record.AdministeredBy,
			"batch_number":      record.BatchNumber,
		}
		if err := tx.Model(&models.VaccinationSchedule{}).Where("id = ?", *record.ScheduleID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to complete linked schedule: %w", err)
		}
		return nil
	})
}

func (r *RecordRepository) GetByID(ctx context.Context, id uint) (*models.RecordDetail, error) {
	var record models.RecordDetail
	result := database.DB.Model(&models.VaccinationRecord{}).
		Select(recordJoinColumns).
		Joins("JOIN vaccines ON vaccines.id = vaccination_records.vaccine_id").
		Joins("JOIN newborns ON newborns.id = vaccination_records.newborn_id").
		Where("vaccination_records.id = ?", id).
		Scan(&record)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &record, nil
}

// GetAll lists records joined with vaccine and newborn columns, most recent
// administration first.
func (r *RecordRepository) GetAll(ctx context.Context) ([]models.RecordDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var records []models.RecordDetail
	err := database.DB.Model(&models.VaccinationRecord{}).
		Select(recordJoinColumns).
		Joins("JOIN vaccines ON vaccines.id = vaccination_records.vaccine_id").
		Joins("JOIN newborns ON newborns.id = vaccination_records.newborn_id").
		Order("vaccination_records.administered_date DESC").
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all records: %w", err)
	}
	return records, nil
}

func (r *RecordRepository) GetByNewborn(ctx context.Context, newbornID uint) ([]models.RecordDetail, error) {
	var records []models.RecordDetail
	err := database.DB.Model(&models.VaccinationRecord{}).
		Select(recordJoinColumns).
		Joins("JOIN vaccines ON vaccines.id = vaccination_records.vaccine_id").
		Joins("JOIN newborns ON newborns.id = vaccination_records.newborn_id").
		Where("vaccination_records.newborn_id = ?", newbornID).
		Order("vaccination_records.administered_date DESC").
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get records for newborn: %w", err)
	}
	return records, nil
}

// Update edits an existing record's administration fields. It never touches
// the originating schedule entry.
func (r *RecordRepository) Update(ctx context.Context, record *models.VaccinationRecord) error {
	result := database.DB.Model(&models.VaccinationRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]interface{}{
			"administered_date": record.AdministeredDate,
			"administered_by":   record.AdministeredBy,
			"batch_number":      record.BatchNumber,
			"next_due_date":     record.NextDueDate,
			"side_effects":      record.SideEffects,
			"notes":             record.Notes,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RecordRepository) Delete(ctx context.Context, id uint) error {
	result := database.DB.Delete(&models.VaccinationRecord{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
