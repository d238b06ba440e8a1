package controllers

import (
	"net/http"

	"github.com/nitishmehan/Eatsy/entity"
	"github.com/nitishmehan/Eatsy/pkg/resp"
	"github.com/nitishmehan/Eatsy/services"
	"github.com/nitishmehan/Eatsy/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service   *services.AuthService
	CookieTTL int // seconds
}

func NewAuthController(service *services.AuthService, cookieTTL int) *AuthController {
	return &AuthController{Service: service, CookieTTL: cookieTTL}
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required,oneof=customer vendor"`

	// Vendor fields
	RestaurantName    string   `json:"restaurantName"`
	RestaurantImage   string   `json:"restaurantImage"`
	Cuisine           []string `json:"cuisine"`
	PriceRange        string   `json:"priceRange"`
	EstimatedDelivery int      `json:"estimatedDelivery"`
	Address           string   `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/signup
func (a *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Service.Signup(services.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     req.Role,
		Restaurant: entity.Restaurant{
			Name:              req.RestaurantName,
			Image:             req.RestaurantImage,
			Cuisine:           req.Cuisine,
			PriceRange:        req.PriceRange,
			EstimatedDelivery: req.EstimatedDelivery,
			Address:           req.Address,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"id": user.ID, "email": user.Email, "name": user.Name, "role": user.Role,
	})
}

// POST /auth/login — token is returned in the body and set as an HTTP-only
// cookie for browser clients.
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Service.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, a.CookieTTL, "/", "", false, true)

	payload := gin.H{
		"id": user.ID, "email": user.Email, "name": user.Name, "role": user.Role,
	}
	if user.Role == entity.RoleVendor {
		payload["restaurantName"] = user.RestaurantName
		payload["cuisine"] = user.CuisineList()
		payload["priceRange"] = user.PriceRange
		payload["isOpen"] = user.IsOpen
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": payload})
}

// POST /auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	resp.OK(c, gin.H{"message": "logged out"})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Service.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, user)
}

type UpdateProfileRequest struct {
	Name            string `json:"name" binding:"required"`
	Phone           string `json:"phone"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// PUT /profile
func (a *AuthController) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Service.UpdateProfile(utils.CurrentUserID(c), services.ProfileUpdate{
		Name:            req.Name,
		Phone:           req.Phone,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"name": user.Name, "phone": user.Phone})
}
