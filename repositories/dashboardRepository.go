package repositories

import (
	"NeoVax/database"
	"NeoVax/models"
	"NeoVax/utils"
	"context"
	"fmt"
	"time"
)

type DashboardRepository struct{}

func NewDashboardRepository() *DashboardRepository {
	return &DashboardRepository{}
}

// GetStats gathers the raw dashboard counts. The vaccination rate is left to
// the service layer, which derives it from these counts.
func (r *DashboardRepository) GetStats(ctx context.Context, now time.Time) (*models.DashboardStats, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	stats := &models.DashboardStats{}
	db := database.DB.WithContext(ctx)

	if err := db.Model(&models.Newborn{}).Count(&stats.TotalNewborns).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count newborns: %w", err)
	}
	if err := db.Model(&models.Vaccine{}).Count(&stats.TotalVaccines).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count vaccines: %w", err)
	}
	if err := db.Model(&models.VaccinationSchedule{}).Where("status = ?", models.StatusPending).Count(&stats.PendingVaccinations).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pending schedules: %w", err)
	}
	if err := db.Model(&models.VaccinationSchedule{}).Where("status = ?", models.StatusCompleted).Count(&stats.CompletedVaccinations).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count completed schedules: %w", err)
	}
	if err := db.Model(&models.VaccinationSchedule{}).Where("status = ?", models.StatusMissed).Count(&stats.MissedVaccinations).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count missed schedules: %w", err)
	}

	today := utils.Today(now)
	weekAhead := today.AddDate(0, 0, 7)
	if err := db.Model(&models.VaccinationSchedule{}).
		Where("status = ? AND scheduled_date BETWEEN ? AND ?",
			models.StatusPending, today.Format(utils.DateLayout), weekAhead.Format(utils.DateLayout)).
		Count(&stats.UpcomingVaccinations).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count upcoming schedules: %w", err)
	}

	monthAgo := today.AddDate(0, 0, -30)
	if err := db.Model(&models.Newborn{}).
		Where("registration_date >= ?", monthAgo.Format(utils.DateLayout)).
		Count(&stats.RecentRegistrations).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count recent registrations: %w", err)
	}

	var vaccinatedCount int64
	if err := db.Model(&models.VaccinationRecord{}).
		Distinct("newborn_id").
		Count(&vaccinatedCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count vaccinated newborns: %w", err)
	}

	return stats, vaccinatedCount, nil
}
