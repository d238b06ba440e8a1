package routes

import (
	"github.com/nitishmehan/Eatsy/configs"
	"github.com/nitishmehan/Eatsy/controllers"
	"github.com/nitishmehan/Eatsy/entity"
	"github.com/nitishmehan/Eatsy/middlewares"
	"github.com/nitishmehan/Eatsy/repository"
	"github.com/nitishmehan/Eatsy/services"
	"github.com/nitishmehan/Eatsy/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, feed *ws.OrderFeed) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, userRepo)
	orderSvc.Events = feed
	reviewSvc := services.NewReviewService(reviewRepo, orderRepo)
	restSvc := services.NewRestaurantService(restRepo, reviewRepo, menuRepo)
	menuSvc := services.NewMenuService(menuRepo)
	vendorSvc := services.NewVendorService(userRepo, orderRepo, reviewRepo, menuRepo)
	blogSvc := services.NewBlogService(blogRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, int(cfg.JWTTTL.Seconds()))
	restCtrl := controllers.NewRestaurantController(restSvc, reviewSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, reviewSvc)
	vendorOrderCtrl := controllers.NewVendorOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	vendorCtrl := controllers.NewVendorController(vendorSvc)
	blogCtrl := controllers.NewBlogController(blogSvc)

	secret := cfg.JWTSecret

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/signup", authCtrl.Signup)
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", authCtrl.Logout)
		a.GET("/me", middlewares.AuthMiddleware(secret), authCtrl.Me)
	}

	// Public browsing
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menu", restCtrl.Menu)
	r.GET("/restaurants/:id/reviews", restCtrl.Reviews)
	r.GET("/blogs", blogCtrl.List)
	r.GET("/blogs/:id", blogCtrl.Detail)

	// Customer
	customer := r.Group("/", middlewares.AuthMiddleware(secret, entity.RoleCustomer))
	{
		customer.POST("/orders", orderCtrl.Create)
		customer.GET("/orders", orderCtrl.ListForMe)
		customer.GET("/orders/:id", orderCtrl.Detail)
		customer.GET("/orders/:id/can-review", orderCtrl.CanReview)
		customer.POST("/reviews", reviewCtrl.Create)

		customer.POST("/blogs", blogCtrl.Create)
		customer.PUT("/blogs/:id", blogCtrl.Update)
		customer.DELETE("/blogs/:id", blogCtrl.Delete)
		customer.POST("/blogs/:id/comment", blogCtrl.Comment)
		customer.POST("/blogs/:id/like", blogCtrl.Like)
	}

	// Profile (any authenticated user)
	profile := r.Group("/profile", middlewares.AuthMiddleware(secret))
	{
		profile.PUT("", authCtrl.UpdateProfile)
		profile.GET("/reviews", reviewCtrl.ListForMe)
		profile.GET("/blogs", blogCtrl.ListForMe)
	}

	// Vendor
	vendor := r.Group("/vendor", middlewares.AuthMiddleware(secret, entity.RoleVendor))
	{
		vendor.GET("/orders", vendorOrderCtrl.List)
		vendor.GET("/orders/:id", vendorOrderCtrl.Detail)
		vendor.PUT("/orders/:id/status", vendorOrderCtrl.UpdateStatus)

		vendor.GET("/menu", menuCtrl.List)
		vendor.POST("/menu", menuCtrl.Create)
		vendor.PUT("/menu/:id", menuCtrl.Update)
		vendor.DELETE("/menu/:id", menuCtrl.Delete)

		vendor.PUT("/restaurant", vendorCtrl.UpdateRestaurant)
		vendor.PUT("/restaurant/status", vendorCtrl.UpdateStatus)
		vendor.GET("/dashboard", vendorCtrl.Dashboard)

		vendor.GET("/ws", feed.HandleWebSocket)
	}
}
