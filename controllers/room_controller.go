package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grand-azure-hotel/services"
	"grand-azure-hotel/utils"
)

type RoomController struct {
	RoomSvc         *services.RoomService
	AvailabilitySvc *services.AvailabilityService
}

func NewRoomController(rooms *services.RoomService, availability *services.AvailabilityService) *RoomController {
	return &RoomController{RoomSvc: rooms, AvailabilitySvc: availability}
}

// ----------------------------------------------------
// GET /api/rooms
// ----------------------------------------------------

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.ListRooms(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// GET /api/rooms/:id
// ----------------------------------------------------

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "room")
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.GetRoom(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// GET /api/rooms/:id/availability?checkIn=&checkOut=
// ----------------------------------------------------

func (ctrl *RoomController) CheckAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "room")
	if !ok {
		return
	}
	checkIn, checkOut := c.Query("checkIn"), c.Query("checkOut")
	if checkIn == "" || checkOut == "" {
		utils.JSONError(c, http.StatusBadRequest, "error.missingDates", "Check-in and check-out dates are required")
		return
	}

	free, err := ctrl.AvailabilitySvc.CheckAvailability(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAvailable": free})
}

// ----------------------------------------------------
// GET /api/rooms/:id/availability-entries?startDate=&endDate=
// ----------------------------------------------------

func (ctrl *RoomController) GetAvailabilityEntries(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "room")
	if !ok {
		return
	}
	start, end := c.Query("startDate"), c.Query("endDate")
	if start == "" || end == "" {
		utils.JSONError(c, http.StatusBadRequest, "error.missingDates", "startDate and endDate are required")
		return
	}

	entries, err := ctrl.AvailabilitySvc.GetAvailability(c.Request.Context(), id, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ----------------------------------------------------
// GET /api/rooms/:id/calendar?from=&to=
// ----------------------------------------------------

func (ctrl *RoomController) GetCalendar(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "room")
	if !ok {
		return
	}
	from := c.Query("from")
	to := c.Query("to")
	if from == "" {
		from = utils.FormatDate(utils.Today())
	}
	if to == "" {
		f, err := utils.ParseDate(from)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "error.invalidDateRange", "Invalid date format. Use YYYY-MM-DD")
			return
		}
		to = utils.FormatDate(f.AddDate(0, 0, 30))
	}

	cal, err := ctrl.AvailabilitySvc.Calendar(c.Request.Context(), id, from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cal)
}
