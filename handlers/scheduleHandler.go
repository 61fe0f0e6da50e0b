package handlers

import (
	"NeoVax/models"
	"NeoVax/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	service *services.ScheduleService
}

func NewScheduleHandler(service *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var schedule models.VaccinationSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(400, gin.H{"message": "Invalid JSON payload"})
		return
	}
	if err := h.service.Create(c.Request.Context(), &schedule); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, gin.H{"message": "Schedule created successfully", "id": schedule.ID})
}

// GetSchedules lists schedules, filtered by newborn_id or status when the
// corresponding query parameter is present.
func (h *ScheduleHandler) GetSchedules(c *gin.Context) {
	ctx := c.Request.Context()

	if newbornIDStr := c.Query("newborn_id"); newbornIDStr != "" {
		newbornID, err := strconv.ParseUint(newbornIDStr, 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"message": "Invalid newborn_id"})
			return
		}
		schedules, err := h.service.GetByNewborn(ctx, uint(newbornID))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(200, schedules)
		return
	}

	if status := c.Query("status"); status != "" {
		schedules, err := h.service.GetByStatus(ctx, status)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(200, schedules)
		return
	}

	schedules, err := h.service.GetAll(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, schedules)
}

// UpdateSchedule applies a field update; completing an entry creates the
// paired vaccination record in the same transaction.
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, ok := parseIDParam(c, "schedule_id")
	if !ok {
		return
	}
	var schedule models.VaccinationSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(400, gin.H{"message": "Invalid JSON payload"})
		return
	}
	schedule.ID = id
	if err := h.service.Update(c.Request.Context(), &schedule); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Schedule updated successfully"})
}

func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, ok := parseIDParam(c, "schedule_id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Schedule deleted successfully"})
}
