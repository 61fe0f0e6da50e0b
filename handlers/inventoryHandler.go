package handlers

import (
	"NeoVax/models"
	"NeoVax/services"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	service *services.InventoryService
}

func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

func (h *InventoryHandler) AddStock(c *gin.Context) {
	var lot models.Inventory
	if err := c.ShouldBindJSON(&lot); err != nil {
		c.JSON(400, gin.H{"message": "Invalid JSON payload"})
		return
	}
	detail, err := h.service.Add(c.Request.Context(), &lot)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, gin.H{"message": "Stock added successfully", "inventory": detail})
}

func (h *InventoryHandler) GetAllStock(c *gin.Context) {
	lots, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, lots)
}
