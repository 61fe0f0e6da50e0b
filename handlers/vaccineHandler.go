package handlers

import (
	"NeoVax/models"
	"NeoVax/services"

	"github.com/gin-gonic/gin"
)

type VaccineHandler struct {
	service *services.VaccineService
}

func NewVaccineHandler(service *services.VaccineService) *VaccineHandler {
	return &VaccineHandler{service: service}
}

func (h *VaccineHandler) CreateVaccine(c *gin.Context) {
	var vaccine models.Vaccine
	if err := c.ShouldBindJSON(&vaccine); err != nil {
		c.JSON(400, gin.H{"message": "Invalid JSON payload"})
		return
	}
	if err := h.service.Create(c.Request.Context(), &vaccine); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, gin.H{"message": "Vaccine added successfully", "id": vaccine.ID})
}

func (h *VaccineHandler) GetVaccineByID(c *gin.Context) {
	id, ok := parseIDParam(c, "vaccine_id")
	if !ok {
		return
	}
	vaccine, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if vaccine == nil {
		c.JSON(404, gin.H{"message": "Vaccine not found"})
		return
	}
	c.JSON(200, vaccine)
}

func (h *VaccineHandler) GetAllVaccines(c *gin.Context) {
	vaccines, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, vaccines)
}

func (h *VaccineHandler) UpdateVaccine(c *gin.Context) {
	id, ok := parseIDParam(c, "vaccine_id")
	if !ok {
		return
	}
	var vaccine models.Vaccine
	if err := c.ShouldBindJSON(&vaccine); err != nil {
		c.JSON(400, gin.H{"message": "Invalid JSON payload"})
		return
	}
	vaccine.ID = id
	if err := h.service.Update(c.Request.Context(), &vaccine); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Vaccine updated successfully"})
}

func (h *VaccineHandler) DeleteVaccine(c *gin.Context) {
	id, ok := parseIDParam(c, "vaccine_id")
	if !ok {
		return
	}
	if err := h.service.DeleteVaccineAndRelated(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Vaccine deleted successfully"})
}
