package handlers

import (
	"NeoVax/models"
	"NeoVax/services"

	"github.com/gin-gonic/gin"
)

type NewbornHandler struct {
	service *services.NewbornService
}

func NewNewbornHandler(service *services.NewbornService) *NewbornHandler {
	return &NewbornHandler{service: service}
}

// RegisterNewborn persists the newborn and generates its full vaccination
// schedule in one transaction.
func (h *NewbornHandler) RegisterNewborn(c *gin.Context) {
	var newborn models.Newborn
	if err := c.ShouldBindJSON(&newborn); err != nil {
		c.JSON(400, gin.H{"message": "Invalid JSON payload"})
		return
	}
	if err := h.service.Register(c.Request.Context(), &newborn); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, gin.H{"message": "Newborn registered successfully", "id": newborn.ID})
}

func (h *NewbornHandler) GetNewbornByID(c *gin.Context) {
	id, ok := parseIDParam(c, "newborn_id")
	if !ok {
		return
	}
	newborn, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if newborn == nil {
		c.JSON(404, gin.H{"message": "Newborn not found"})
		return
	}
	c.JSON(200, newborn)
}

func (h *NewbornHandler) GetAllNewborns(c *gin.Context) {
	search := c.DefaultQuery("search", "")
	newborns, err := h.service.GetAll(c.Request.Context(), search)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, newborns)
}

func (h *NewbornHandler) UpdateNewborn(c *gin.Context) {
	id, ok := parseIDParam(c, "newborn_id")
	if !ok {
		return
	}
	var newborn models.Newborn
	if err := c.ShouldBindJSON(&newborn); err != nil {
		c.JSON(400, gin.H{"message": "Invalid JSON payload"})
		return
	}
	newborn.ID = id
	if err := h.service.Update(c.Request.Context(), &newborn); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Newborn updated successfully"})
}

// DeleteNewborn removes the newborn together with its schedules and records.
func (h *NewbornHandler) DeleteNewborn(c *gin.Context) {
	id, ok := parseIDParam(c, "newborn_id")
	if !ok {
		return
	}
	if err := h.service.DeleteNewbornAndRelated(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Newborn deleted successfully"})
}
