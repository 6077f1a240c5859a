package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grand-azure-hotel/services"
)

type AvailabilityController struct {
	AvailabilitySvc *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{AvailabilitySvc: svc}
}

type setAvailabilityPayload struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

// SetAvailability opens or closes one ledger date (PATCH /api/availability/:id).
func (ctrl *AvailabilityController) SetAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "availability")
	if !ok {
		return
	}
	var payload setAvailabilityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := ctrl.AvailabilitySvc.SetAvailability(c.Request.Context(), id, *payload.IsAvailable)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
