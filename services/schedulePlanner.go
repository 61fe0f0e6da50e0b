package services

import (
	"NeoVax/models"
	"NeoVax/utils"
	"sort"
)

// BuildSchedule derives the full vaccination schedule for one date of birth:
// one Pending entry per catalog vaccine, scheduled at
// date_of_birth + recommended_age_weeks. The catalog is walked in
// (recommended_age_weeks, dose_number) order and the resulting entries keep
// that order.
func BuildSchedule(dateOfBirth string, catalog []models.Vaccine) ([]models.VaccinationSchedule, error) {
	dob, err := utils.ParseDate(dateOfBirth)
	if err != nil {
		return nil, err
	}

	ordered := make([]models.Vaccine, len(catalog))
	copy(ordered, catalog)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].RecommendedAgeWeeks != ordered[j].RecommendedAgeWeeks {
			return ordered[i].RecommendedAgeWeeks < ordered[j].RecommendedAgeWeeks
		}
		return ordered[i].DoseNumber < ordered[j].DoseNumber
	})

	schedules := make([]models.VaccinationSchedule, 0, len(ordered))
	for _, vaccine := range ordered {
		scheduledDate := dob.AddDate(0, 0, vaccine.RecommendedAgeWeeks*7)
		schedules = append(schedules, models.VaccinationSchedule{
			VaccineID:     vaccine.ID,
			ScheduledDate: scheduledDate.Format(utils.DateLayout),
			Status:        models.StatusPending,
		})
	}
	return schedules, nil
}
