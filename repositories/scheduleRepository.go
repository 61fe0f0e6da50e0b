package repositories

import (
	"NeoVax/database"
	"NeoVax/models"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const scheduleJoinColumns = `vaccination_schedules.id, vaccination_schedules.newborn_id, vaccination_schedules.vaccine_id,
vaccination_schedules.scheduled_date, vaccination_schedules.status, vaccination_schedules.administered_date,
vaccination_schedules.administered_by, vaccination_schedules.batch_number, vaccination_schedules.notes,
vaccines.vaccine_name, vaccines.description, vaccines.recommended_age_weeks,
newborns.first_name, newborns.last_name, newborns.date_of_birth, newborns.mother_name, newborns.contact_number`

type ScheduleRepository struct{}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.VaccinationSchedule) error {
	if schedule.Status == "" {
		schedule.Status = models.StatusPending
	}
	if err := database.DB.Create(schedule).Error; err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return nil
}

// GetAll lists every schedule joined with vaccine and newborn columns,
// newest scheduled date first.
func (r *ScheduleRepository) GetAll(ctx context.Context) ([]models.ScheduleDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var schedules []models.ScheduleDetail
	err := database.DB.Model(&models.VaccinationSchedule{}).
		Select(scheduleJoinColumns).
		Joins("JOIN vaccines ON vaccines.id = vaccination_schedules.vaccine_id").
		Joins("JOIN newborns ON newborns.id = vaccination_schedules.newborn_id").
		Order("vaccination_schedules.scheduled_date DESC").
		Scan(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all schedules: %w", err)
	}
	return schedules, nil
}

// GetByNewborn lists one newborn's schedules in scheduled-date order.
func (r *ScheduleRepository) GetByNewborn(ctx context.Context, newbornID uint) ([]models.ScheduleDetail, error) {
	var schedules []models.ScheduleDetail
	err := database.DB.Model(&models.VaccinationSchedule{}).
		Select(scheduleJoinColumns).
		Joins("JOIN vaccines ON vaccines.id = vaccination_schedules.vaccine_id").
		Joins("JOIN newborns ON newborns.id = vaccination_schedules.newborn_id").
		Where("vaccination_schedules.newborn_id = ?", newbornID).
		Order("vaccination_schedules.scheduled_date").
		Scan(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get schedules for newborn: %w", err)
	}
	return schedules, nil
}

// GetByStatus lists schedules in one state in scheduled-date order.
func (r *ScheduleRepository) GetByStatus(ctx context.Context, status string) ([]models.ScheduleDetail, error) {
	var schedules []models.ScheduleDetail
	err := database.DB.Model(&models.VaccinationSchedule{}).
		Select(scheduleJoinColumns).
		Joins("JOIN vaccines ON vaccines.id = vaccination_schedules.vaccine_id").
		Joins("JOIN newborns ON newborns.id = vaccination_schedules.newborn_id").
		Where("vaccination_schedules.status = ?", status).
		Order("vaccination_schedules.scheduled_date").
		Scan(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get schedules by status: %w", err)
	}
	return schedules, nil
}

// Update applies a field update to one schedule entry. When the update
// transitions the entry to Completed with an administered date, the paired
// vaccination record is created in the same transaction. At most one record
// ever exists per schedule entry: completing an already-completed entry
// updates the schedule row but does not insert a second record.
func (r *ScheduleRepository) Update(ctx context.Context, schedule *models.VaccinationSchedule) error {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var current models.VaccinationSchedule
		if err := tx.First(&current, "id = ?", schedule.ID).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"scheduled_date":    schedule.ScheduledDate,
			"status":            schedule.Status,
			"administered_date": schedule.AdministeredDate,
			"administered_by":   schedule.AdministeredBy,
			"batch_number":      schedule.BatchNumber,
			"notes":             schedule.Notes,
		}
		if err := tx.Model(&models.VaccinationSchedule{}).Where("id = ?", schedule.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update schedule: %w", err)
		}

		if schedule.Status != models.StatusCompleted || schedule.AdministeredDate == "" {
			return nil
		}

		var existing int64
		if err := tx.Model(&models.VaccinationRecord{}).Where("schedule_id = ?", schedule.ID).Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check for existing record: %w", err)
		}
		if existing > 0 {
			return nil
		}

		scheduleID := schedule.ID
		record := models.VaccinationRecord{
			ScheduleID:       &scheduleID,
			NewbornID:        current.NewbornID,
			VaccineID:        current.VaccineID,
			AdministeredDate: schedule.AdministeredDate,
			AdministeredBy:   schedule.AdministeredBy,
			BatchNumber:      schedule.BatchNumber,
			Notes:            schedule.Notes,
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create vaccination record: %w", err)
		}
		return nil
	})
	return err
}

func (r *ScheduleRepository) Delete(ctx context.Context, id uint) error {
	result := database.DB.Delete(&models.VaccinationSchedule{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete schedule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
