package controllers

import (
	"github.com/nitishmehan/Eatsy/entity"
	"github.com/nitishmehan/Eatsy/pkg/resp"
	"github.com/nitishmehan/Eatsy/services"
	"github.com/nitishmehan/Eatsy/utils"

	"github.com/gin-gonic/gin"
)

// VendorController serves the vendor's restaurant profile and dashboard.
type VendorController struct {
	Service *services.VendorService
}

func NewVendorController(service *services.VendorService) *VendorController {
	return &VendorController{Service: service}
}

// PUT /vendor/restaurant
func (vc *VendorController) UpdateRestaurant(c *gin.Context) {
	var req entity.Restaurant
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	vendor, err := vc.Service.UpdateRestaurant(utils.CurrentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"restaurantName":    vendor.RestaurantName,
		"cuisine":           vendor.CuisineList(),
		"priceRange":        vendor.PriceRange,
		"estimatedDelivery": vendor.EstimatedDelivery,
		"address":           vendor.Address,
	})
}

type StatusRequest struct {
	IsOpen *bool `json:"isOpen" binding:"required"`
}

// PUT /vendor/restaurant/status
func (vc *VendorController) UpdateStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := vc.Service.SetOpen(utils.CurrentUserID(c), *req.IsOpen); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"isOpen": *req.IsOpen})
}

// GET /vendor/dashboard
func (vc *VendorController) Dashboard(c *gin.Context) {
	dashboard, err := vc.Service.GetDashboard(utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, dashboard)
}
