package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grand-azure-hotel/models"
	"grand-azure-hotel/services"
)

type bookingInquiryPayload struct {
	Name         string `json:"name" binding:"required,max=255"`
	Email        string `json:"email" binding:"required,email"`
	CheckInDate  string `json:"checkInDate" binding:"required,calendar_date"`
	CheckOutDate string `json:"checkOutDate" binding:"required,calendar_date"`
	Guests       int    `json:"guests" binding:"required,min=1"`
	RoomType     string `json:"roomType" binding:"required"`
}

type contactPayload struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,max=255"`
	Message string `json:"message" binding:"required"`
}

type InquiryController struct {
	InquirySvc *services.InquiryService
}

func NewInquiryController(svc *services.InquiryService) *InquiryController {
	return &InquiryController{InquirySvc: svc}
}

func (ctrl *InquiryController) CreateBookingInquiry(c *gin.Context) {
	var p bookingInquiryPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondBindError(c, err)
		return
	}

	inquiry := models.BookingInquiry{
		Name:         p.Name,
		Email:        p.Email,
		CheckInDate:  p.CheckInDate,
		CheckOutDate: p.CheckOutDate,
		Guests:       p.Guests,
		RoomType:     p.RoomType,
	}
	if err := ctrl.InquirySvc.CreateBookingInquiry(c.Request.Context(), &inquiry); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inquiry)
}

func (ctrl *InquiryController) GetBookingInquiries(c *gin.Context) {
	list, err := ctrl.InquirySvc.ListBookingInquiries(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *InquiryController) CreateContactMessage(c *gin.Context) {
	var p contactPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondBindError(c, err)
		return
	}

	msg := models.ContactMessage{Name: p.Name, Email: p.Email, Subject: p.Subject, Message: p.Message}
	if err := ctrl.InquirySvc.CreateContactMessage(c.Request.Context(), &msg); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (ctrl *InquiryController) GetContactMessages(c *gin.Context) {
	list, err := ctrl.InquirySvc.ListContactMessages(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
