package controllers

import (
	"strconv"

	"github.com/nitishmehan/Eatsy/pkg/resp"
	"github.com/nitishmehan/Eatsy/services"
	"github.com/nitishmehan/Eatsy/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{Service: service}
}

type CreateReviewRequest struct {
	OrderID uint   `json:"orderId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// POST /reviews
func (rc *ReviewController) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := rc.Service.Create(utils.CurrentUserID(c), req.OrderID, req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": review.ID})
}

// GET /profile/reviews?limit=&offset=
func (rc *ReviewController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := rc.Service.ListForUser(utils.CurrentUserID(c), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": reviews})
}
