package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"NeoVax/repositories"
	"NeoVax/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func recordResponse(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondServiceError(c, err)
	return w
}

func TestRespondServiceErrorMapping(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantBody   string
	}{
		{fmt.Errorf("%w: quantity must be 1 or higher", services.ErrInvalidInput), 422, "quantity must be 1 or higher"},
		{services.ErrVaccineNotFound, 404, "Vaccine not found"},
		{services.ErrNotFound, 404, "Resource not found"},
		{gorm.ErrRecordNotFound, 404, "Resource not found"},
		{fmt.Errorf("%w: username already exists", services.ErrConflict), 409, "username already exists"},
		{repositories.ErrDuplicateNewborn, 409, "newborn with the same details already exists"},
		{repositories.ErrScheduleAlreadyRecorded, 409, "schedule entry already has a vaccination record"},
		{services.ErrInvalidLogin, 401, "Invalid username or password"},
		{errors.New("connection refused"), 500, "An unexpected error occurred"},
	}

	for _, tc := range cases {
		w := recordResponse(tc.err)
		assert.Equal(t, tc.wantStatus, w.Code, "error: %v", tc.err)
		assert.Contains(t, w.Body.String(), tc.wantBody, "error: %v", tc.err)
	}
}

func TestParseIDParamRejectsNonNumeric(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "vaccine_id", Value: "abc"}}

	_, ok := parseIDParam(c, "vaccine_id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseIDParamParses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "vaccine_id", Value: "17"}}

	id, ok := parseIDParam(c, "vaccine_id")
	assert.True(t, ok)
	assert.Equal(t, uint(17), id)
	assert.Equal(t, http.StatusOK, w.Code)
}
