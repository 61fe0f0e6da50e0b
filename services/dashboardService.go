package services

import (
	"NeoVax/models"
	"NeoVax/repositories"
	"context"
	"math"
	"time"
)

type DashboardService struct {
	repository *repositories.DashboardRepository
}

func NewDashboardService(repository *repositories.DashboardRepository) *DashboardService {
	return &DashboardService{repository: repository}
}

// GetStats assembles the dashboard snapshot.
func (s *DashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	stats, vaccinatedCount, err := s.repository.GetStats(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	stats.VaccinationRate = VaccinationRate(vaccinatedCount, stats.TotalNewborns)
	return stats, nil
}

// VaccinationRate is the share of newborns with at least one administration
// record, as a percentage rounded to two decimals. Zero newborns yields 0.
func VaccinationRate(vaccinated, total int64) float64 {
	if total <= 0 {
		return 0
	}
	rate := float64(vaccinated) / float64(total) * 100
	return math.Round(rate*100) / 100
}
