package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"grand-azure-hotel/logger"
	"grand-azure-hotel/services"
	"grand-azure-hotel/utils"
)

// respondServiceError maps service sentinels onto the error envelope.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDateRange):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDateRange", err.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidStatus", "Invalid status. Must be one of: confirmed, cancelled, completed")
	case errors.Is(err, services.ErrInvalidTransition):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidTransition", err.Error())
	case errors.Is(err, services.ErrCapacityExceeded):
		utils.JSONError(c, http.StatusBadRequest, "error.capacityExceeded", err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
	case errors.Is(err, services.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusBadRequest, "error.roomUnavailable", "Room is not available for the selected dates")
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.roomNotFound", "Room not found")
	case errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.bookingNotFound", "Booking not found")
	case errors.Is(err, services.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.userNotFound", "User not found")
	case errors.Is(err, services.ErrAvailabilityNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.availabilityNotFound", "Availability entry not found")
	default:
		logger.FromContext(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Internal server error")
	}
}

func respondBindError(c *gin.Context, err error) {
	utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "Invalid request payload", utils.ValidationDetails(err))
}

// parseIDParam reads a positive integer path param, answering 400 when it is not one.
func parseIDParam(c *gin.Context, name, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "Invalid "+label+" ID")
		return 0, false
	}
	return uint(id), true
}
