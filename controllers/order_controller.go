package controllers

import (
	"strconv"

	"github.com/nitishmehan/Eatsy/pkg/resp"
	"github.com/nitishmehan/Eatsy/services"
	"github.com/nitishmehan/Eatsy/utils"

	"github.com/gin-gonic/gin"
)

// OrderController serves the customer side of orders.
type OrderController struct {
	Service       *services.OrderService
	ReviewService *services.ReviewService
}

func NewOrderController(service *services.OrderService, reviewService *services.ReviewService) *OrderController {
	return &OrderController{Service: service, ReviewService: reviewService}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": order.ID, "total": order.Total, "status": order.Status})
}

// GET /orders?limit=
func (oc *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := oc.Service.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := oc.Service.DetailForUser(utils.CurrentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/:id/can-review
func (oc *OrderController) CanReview(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	ok, err := oc.ReviewService.CanReview(utils.CurrentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"canReview": ok})
}
