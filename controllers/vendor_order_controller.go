package controllers

import (
	"strconv"

	"github.com/nitishmehan/Eatsy/pkg/resp"
	"github.com/nitishmehan/Eatsy/services"
	"github.com/nitishmehan/Eatsy/utils"

	"github.com/gin-gonic/gin"
)

// VendorOrderController serves the vendor's order queue and the status
// pipeline.
type VendorOrderController struct {
	Service *services.OrderService
}

func NewVendorOrderController(service *services.OrderService) *VendorOrderController {
	return &VendorOrderController{Service: service}
}

// GET /vendor/orders?status=&limit=
func (vc *VendorOrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := vc.Service.ListForVendor(utils.CurrentUserID(c), c.Query("status"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /vendor/orders/:id
func (vc *VendorOrderController) Detail(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := vc.Service.DetailForVendor(utils.CurrentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /vendor/orders/:id/status
func (vc *VendorOrderController) UpdateStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := vc.Service.Transition(utils.CurrentUserID(c), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": order.ID, "status": order.Status})
}
