package controllers

import (
	"strconv"

	"github.com/nitishmehan/Eatsy/pkg/resp"
	"github.com/nitishmehan/Eatsy/repository"
	"github.com/nitishmehan/Eatsy/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service       *services.RestaurantService
	ReviewService *services.ReviewService
}

func NewRestaurantController(service *services.RestaurantService, reviewService *services.ReviewService) *RestaurantController {
	return &RestaurantController{Service: service, ReviewService: reviewService}
}

// GET /restaurants?cuisine=&priceRange=&minRating=&search=&sortBy=&sortOrder=
func (rc *RestaurantController) List(c *gin.Context) {
	filter := services.RestaurantFilter{
		Cuisine:    c.Query("cuisine"),
		PriceRange: c.Query("priceRange"),
		Search:     c.Query("search"),
		SortBy:     c.DefaultQuery("sortBy", "rating"),
		SortOrder:  c.DefaultQuery("sortOrder", "desc"),
	}
	if v := c.Query("minRating"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "minRating must be a number")
			return
		}
		filter.MinRating = &min
	}

	restaurants, err := rc.Service.Query(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurants": restaurants, "count": len(restaurants)})
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	detail, err := rc.Service.Detail(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, detail)
}

// GET /restaurants/:id/menu?category=&dietary=&minPrice=&maxPrice=&sortBy=&sortOrder=
func (rc *RestaurantController) Menu(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	filter := repository.MenuFilter{
		Category:  c.Query("category"),
		Dietary:   c.Query("dietary"),
		SortBy:    c.DefaultQuery("sortBy", "name"),
		SortOrder: c.DefaultQuery("sortOrder", "asc"),
	}
	if v := c.Query("minPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &p
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &p
		}
	}

	items, err := rc.Service.Menu(id, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": menuViews(items)})
}

// GET /restaurants/:id/reviews?limit=&offset=
func (rc *RestaurantController) Reviews(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, agg, err := rc.ReviewService.ListForVendor(id, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"items":     reviews,
		"aggregate": gin.H{"avgRating": agg.AvgRating, "total": agg.ReviewCount},
	})
}

func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}
