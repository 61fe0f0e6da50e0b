package services

import (
	"context"
	"testing"

	"NeoVax/models"

	"github.com/stretchr/testify/assert"
)

func TestVaccineCreateRejectsInvalidCatalogEntry(t *testing.T) {
	s := NewVaccineService(nil)
	ctx := context.Background()

	err := s.Create(ctx, &models.Vaccine{RecommendedAgeWeeks: 6, DoseNumber: 1})
	assert.ErrorIs(t, err, ErrInvalidInput, "missing name")

	err = s.Create(ctx, &models.Vaccine{VaccineName: "OPV", RecommendedAgeWeeks: -2, DoseNumber: 1})
	assert.ErrorIs(t, err, ErrInvalidInput, "negative age offset")

	err = s.Create(ctx, &models.Vaccine{VaccineName: "OPV", RecommendedAgeWeeks: 6})
	assert.ErrorIs(t, err, ErrInvalidInput, "missing dose number")
}

func TestVaccineUpdateRejectsInvalidCatalogEntry(t *testing.T) {
	s := NewVaccineService(nil)

	err := s.Update(context.Background(), &models.Vaccine{ID: 2, DoseNumber: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
