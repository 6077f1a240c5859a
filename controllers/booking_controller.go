package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"grand-azure-hotel/services"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	RoomID          uint    `json:"roomId" binding:"required,gt=0"`
	UserID          *uint   `json:"userId" binding:"omitempty,gt=0"`
	GuestName       string  `json:"guestName" binding:"required,max=255"`
	GuestEmail      string  `json:"guestEmail" binding:"required,email"`
	GuestPhone      string  `json:"guestPhone" binding:"required,max=64"`
	CheckInDate     string  `json:"checkInDate" binding:"required,calendar_date"`
	CheckOutDate    string  `json:"checkOutDate" binding:"required,calendar_date"`
	NumberOfGuests  int     `json:"numberOfGuests" binding:"required,min=1"`
	SpecialRequests *string `json:"specialRequests" binding:"omitempty,max=2000"`
}

// stayRequest carries just the dates of a booking payload. It has no
// binding rules so it decodes even when the rest of the payload is invalid.
type stayRequest struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,booking_status"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// ---------------------------
// POST /api/bookings
// ---------------------------

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		// A stay that can never be booked is reported as such, whatever else is wrong.
		var stay stayRequest
		if c.ShouldBindBodyWith(&stay, binding.JSON) == nil && stay.CheckInDate != "" && stay.CheckOutDate != "" {
			if dateErr := services.ValidateStay(stay.CheckInDate, stay.CheckOutDate); dateErr != nil {
				respondServiceError(c, dateErr)
				return
			}
		}
		respondBindError(c, err)
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(c.Request.Context(), services.BookingInput{
		RoomID:          req.RoomID,
		UserID:          req.UserID,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		NumberOfGuests:  req.NumberOfGuests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// ---------------------------
// GET /api/bookings/:id
// ---------------------------

func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "booking")
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ---------------------------
// PATCH /api/bookings/:id/status
// ---------------------------

func (ctrl *BookingController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "booking")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	booking, err := ctrl.BookingSvc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ---------------------------
// GET /api/users/:userId/bookings
// ---------------------------

func (ctrl *BookingController) GetUserBookings(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", "user")
	if !ok {
		return
	}
	list, err := ctrl.BookingSvc.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
