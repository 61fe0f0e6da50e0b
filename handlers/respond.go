package handlers

import (
	"NeoVax/repositories"
	"NeoVax/services"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondServiceError maps service errors onto the uniform {message} error
// shape. Storage failures are logged and surfaced generically.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(422, gin.H{"message": strings.TrimPrefix(err.Error(), services.ErrInvalidInput.Error()+": ")})
	case errors.Is(err, services.ErrVaccineNotFound):
		c.JSON(404, gin.H{"message": "Vaccine not found"})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(404, gin.H{"message": "Resource not found"})
	case errors.Is(err, services.ErrConflict),
		errors.Is(err, repositories.ErrDuplicateNewborn),
		errors.Is(err, repositories.ErrScheduleAlreadyRecorded):
		c.JSON(409, gin.H{"message": strings.TrimPrefix(err.Error(), services.ErrConflict.Error()+": ")})
	case errors.Is(err, services.ErrInvalidLogin):
		c.JSON(401, gin.H{"message": "Invalid username or password"})
	default:
		log.Printf("Internal error: %v", err)
		c.JSON(500, gin.H{"message": "An unexpected error occurred"})
	}
}

// parseIDParam reads a numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
