package routes

import (
	"github.com/doker312/aroras-kitchen-orderflow-app/configs"
	"github.com/doker312/aroras-kitchen-orderflow-app/controllers"
	"github.com/doker312/aroras-kitchen-orderflow-app/middlewares"
	"github.com/doker312/aroras-kitchen-orderflow-app/repository"
	"github.com/doker312/aroras-kitchen-orderflow-app/services"
	"github.com/doker312/aroras-kitchen-orderflow-app/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo)

	// Live order-status feed
	hub := ws.NewOrderHub()
	go hub.Run()
	orderSvc.Notifier = hub

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(menuSvc, orderSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Catalog (public reads)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)
	r.GET("/categories", menuCtrl.Categories)

	// Cart + orders (customer only)
	cust := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "customer"))
	{
		cust.GET("/cart", cartCtrl.Get)
		cust.POST("/cart/items", cartCtrl.Add)
		cust.PATCH("/cart/items/qty", cartCtrl.UpdateQty)
		cust.DELETE("/cart/items", cartCtrl.RemoveItem)
		cust.DELETE("/cart", cartCtrl.Clear)

		cust.POST("/orders", orderCtrl.Checkout)
		cust.GET("/orders", orderCtrl.ListForMe)
		cust.GET("/orders/:id", orderCtrl.Detail)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/menu", adminCtrl.CreateMenuItem)
		admin.PATCH("/menu/:id", adminCtrl.UpdateMenuItem)
		admin.DELETE("/menu/:id", adminCtrl.DeleteMenuItem)

		admin.GET("/orders", adminCtrl.ListOrders)
		admin.GET("/orders/:id", adminCtrl.OrderDetail)
		admin.PATCH("/orders/:id/status", adminCtrl.UpdateOrderStatus)
	}

	// WebSocket
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
