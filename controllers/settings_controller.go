package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grand-azure-hotel/models"
	"grand-azure-hotel/services"
)

type hotelSettingsPayload struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Website string `json:"website" binding:"omitempty,url"`
	Logo    string `json:"logo"`
}

// ContentController serves the marketing content and the hotel profile.
type ContentController struct {
	ContentSvc *services.ContentService
}

func NewContentController(svc *services.ContentService) *ContentController {
	return &ContentController{ContentSvc: svc}
}

func (ctrl *ContentController) GetGallery(c *gin.Context) {
	list, err := ctrl.ContentSvc.Gallery(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *ContentController) GetAmenities(c *gin.Context) {
	list, err := ctrl.ContentSvc.Amenities(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *ContentController) GetTestimonials(c *gin.Context) {
	list, err := ctrl.ContentSvc.Testimonials(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *ContentController) GetHotelSettings(c *gin.Context) {
	hotel, err := ctrl.ContentSvc.Hotel(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}

func (ctrl *ContentController) UpdateHotelSettings(c *gin.Context) {
	var payload hotelSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	hotel, err := ctrl.ContentSvc.UpdateHotel(c.Request.Context(), models.HotelSetting{
		Name:    payload.Name,
		Address: payload.Address,
		Phone:   payload.Phone,
		Email:   payload.Email,
		Website: payload.Website,
		Logo:    payload.Logo,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}
