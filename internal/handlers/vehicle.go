package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kaard-farm/farm-api/internal/models"
	"github.com/kaard-farm/farm-api/internal/services"
)

// VehicleHandler extends the generic CRUD handler with the location
// telemetry route.
type VehicleHandler struct {
	*ResourceHandler[models.Vehicle]
	vehicleService *services.VehicleService
}

func NewVehicleHandler(vehicleService *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		ResourceHandler: NewResourceHandler[models.Vehicle](vehicleService, "Vehicle"),
		vehicleService:  vehicleService,
	}
}

type LocationUpdateRequest struct {
	CurrentLat *float64 `json:"currentLat" binding:"required"`
	CurrentLng *float64 `json:"currentLng" binding:"required"`
}

// UpdateLocation godoc
// @Summary Update vehicle location
// @Description Set the vehicle's current coordinates and refresh its lastUpdate stamp
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Param request body LocationUpdateRequest true "New coordinates"
// @Success 200 {object} any
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/vehicles/{id}/location [put]
func (h *VehicleHandler) UpdateLocation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Vehicle not found"})
		return
	}

	var req LocationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "currentLat and currentLng are required"})
		return
	}

	vehicle, err := h.vehicleService.UpdateLocation(uint(id), *req.CurrentLat, *req.CurrentLng)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update vehicle location"})
		return
	}
	c.JSON(http.StatusOK, vehicle)
}
