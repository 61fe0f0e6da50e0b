package controllers

import (
	"NeoVax/handlers"

	"github.com/gin-gonic/gin"
)

// SetupClinicRoutes registers the vaccination-monitoring resource routes.
func SetupClinicRoutes(
	router *gin.Engine,
	vaccineHandler *handlers.VaccineHandler,
	newbornHandler *handlers.NewbornHandler,
	scheduleHandler *handlers.ScheduleHandler,
	recordHandler *handlers.RecordHandler,
	inventoryHandler *handlers.InventoryHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	router.POST("/vaccines", vaccineHandler.CreateVaccine)
	router.GET("/vaccines", vaccineHandler.GetAllVaccines)
	router.GET("/vaccines/:vaccine_id", vaccineHandler.GetVaccineByID)
	router.PUT("/vaccines/:vaccine_id", vaccineHandler.UpdateVaccine)
	router.DELETE("/vaccines/:vaccine_id", vaccineHandler.DeleteVaccine)

	router.POST("/newborns", newbornHandler.RegisterNewborn)
	router.GET("/newborns", newbornHandler.GetAllNewborns)
	router.GET("/newborns/:newborn_id", newbornHandler.GetNewbornByID)
	router.PUT("/newborns/:newborn_id", newbornHandler.UpdateNewborn)
	router.DELETE("/newborns/:newborn_id", newbornHandler.DeleteNewborn)

	router.POST("/schedules", scheduleHandler.CreateSchedule)
	router.GET("/schedules", scheduleHandler.GetSchedules)
	router.PUT("/schedules/:schedule_id", scheduleHandler.UpdateSchedule)
	router.DELETE("/schedules/:schedule_id", scheduleHandler.DeleteSchedule)

	router.POST("/records", recordHandler.CreateRecord)
	router.GET("/records", recordHandler.GetRecords)
	router.GET("/records/:record_id", recordHandler.GetRecordByID)
	router.PUT("/records/:record_id", recordHandler.UpdateRecord)
	router.DELETE("/records/:record_id", recordHandler.DeleteRecord)

	router.POST("/inventory", inventoryHandler.AddStock)
	router.GET("/inventory", inventoryHandler.GetAllStock)

	router.GET("/dashboard", dashboardHandler.GetStats)
}
