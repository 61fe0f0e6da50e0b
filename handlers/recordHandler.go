package handlers

import (
	"NeoVax/models"
	"NeoVax/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RecordHandler struct {
	service *services.RecordService
}

func NewRecordHandler(service *services.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

func (h *RecordHandler) CreateRecord(c *gin.Context) {
	var record models.VaccinationRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(400, gin.H{"message": "Invalid JSON payload"})
		return
	}
	if err := h.service.Create(c.Request.Context(), &record); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, gin.H{"message": "Vaccination record created successfully", "id": record.ID})
}

func (h *RecordHandler) GetRecordByID(c *gin.Context) {
	id, ok := parseIDParam(c, "record_id")
	if !ok {
		return
	}
	record, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if record == nil {
		c.JSON(404, gin.H{"message": "Record not found"})
		return
	}
	c.JSON(200, record)
}

func (h *RecordHandler) GetRecords(c *gin.Context) {
	ctx := c.Request.Context()

	if newbornIDStr := c.Query("newborn_id"); newbornIDStr != "" {
		newbornID, err := strconv.ParseUint(newbornIDStr, 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"message": "Invalid newborn_id"})
			return
		}
		records, err := h.service.GetByNewborn(ctx, uint(newbornID))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(200, records)
		return
	}

	records, err := h.service.GetAll(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, records)
}

func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	id, ok := parseIDParam(c, "record_id")
	if !ok {
		return
	}
	var record models.VaccinationRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(400, gin.H{"message": "Invalid JSON payload"})
		return
	}
	record.ID = id
	if err := h.service.Update(c.Request.Context(), &record); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Vaccination record updated successfully"})
}

func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	id, ok := parseIDParam(c, "record_id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Vaccination record deleted successfully"})
}
