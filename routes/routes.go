package routes

import (
	"geramenu/controllers"
	"geramenu/middlewares"
	"geramenu/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	hub := services.NewMenuHub()
	items := controllers.NewMenuItemController(hub)
	public := controllers.NewPublicMenuController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Public menu, what the QR code points at
	menu := r.Group("/menu")
	{
		menu.GET("/:ownerId", public.GetMenu)
		menu.GET("/:ownerId/items", public.GetMenuItems)
		menu.GET("/:ownerId/live", public.LiveMenu)
	}

	// Protected owner routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/session", controllers.Session)
		user.GET("/profile", controllers.GetProfile)
	}

	itemGroup := r.Group("/items")
	itemGroup.Use(middlewares.AuthMiddleware())
	{
		itemGroup.GET("", items.ListItems)
		itemGroup.POST("", items.CreateItem)
		itemGroup.PUT("/:id", items.UpdateItem)
		itemGroup.DELETE("/:id", items.DeleteItem)
	}

	restaurant := r.Group("/restaurant")
	restaurant.Use(middlewares.AuthMiddleware())
	{
		restaurant.GET("", controllers.GetRestaurant)
		restaurant.PUT("", controllers.UpdateRestaurant)
	}

	qr := r.Group("/qr")
	qr.Use(middlewares.AuthMiddleware())
	{
		qr.GET("", controllers.QRImage)
		qr.GET("/pdf", controllers.QRPDF)
		qr.GET("/share", controllers.ShareLinks)
	}

	billing := r.Group("/billing")
	billing.Use(middlewares.AuthMiddleware())
	{
		billing.POST("/customer", controllers.CreateCustomer)
		billing.POST("/subscription", controllers.CreateSubscription)
		billing.PUT("/subscription", controllers.UpdateSubscription)
		billing.DELETE("/subscription", controllers.CancelSubscription)
	}

	return r
}
