package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVaccinationRate(t *testing.T) {
	assert.Equal(t, 0.0, VaccinationRate(0, 0))
	assert.Equal(t, 0.0, VaccinationRate(5, 0))
	assert.Equal(t, 0.0, VaccinationRate(0, 40))
	assert.Equal(t, 25.0, VaccinationRate(10, 40))
	assert.Equal(t, 100.0, VaccinationRate(40, 40))
}

func TestVaccinationRateRoundsToTwoDecimals(t *testing.T) {
	// 1/3 of newborns vaccinated
	assert.Equal(t, 33.33, VaccinationRate(1, 3))
	// 2/3 rounds up
	assert.Equal(t, 66.67, VaccinationRate(2, 3))
	assert.Equal(t, 16.67, VaccinationRate(1, 6))
}
