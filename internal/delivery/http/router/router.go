// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"feira/internal/delivery/http/middleware"
	"feira/internal/delivery/http/router/handler"
	"feira/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	ProfileHandler  *handler.ProfileHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	TrackingHandler *handler.TrackingHandler
	ReviewHandler   *handler.ReviewHandler
	VehicleHandler  *handler.VehicleHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	profileHandler  *handler.ProfileHandler
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	trackingHandler *handler.TrackingHandler
	reviewHandler   *handler.ReviewHandler
	vehicleHandler  *handler.VehicleHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		profileHandler:  params.ProfileHandler,
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
		trackingHandler: params.TrackingHandler,
		reviewHandler:   params.ReviewHandler,
		vehicleHandler:  params.VehicleHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.accountHandler.SignUp)
		authGroup.POST("/signin", r.accountHandler.SignIn)
		authGroup.POST("/refresh", r.accountHandler.RefreshToken)
	}

	// Public catalog reads
	e.GET("/products", r.productHandler.ListAvailable)
	e.GET("/products/category/:category", r.productHandler.ListByCategory)
	e.GET("/products/:id", r.productHandler.GetProduct)
	e.GET("/products/:id/reviews", r.reviewHandler.ListProductReviews)
	e.GET("/stores", r.profileHandler.ListStores)
	e.GET("/stores/:id", r.profileHandler.GetStore)
	e.GET("/stores/:id/products", r.productHandler.ListStoreProducts)
	e.GET("/stores/:id/reviews", r.reviewHandler.ListStoreReviews)

	// Routes shared by every authenticated profile
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("/me", r.profileHandler.GetMe)
		profileGroup.PUT("/me", r.profileHandler.UpdateMe)
	}

	trackingGroup := e.Group("/tracking")
	trackingGroup.Use(r.authMiddleware.Authenticate)
	{
		trackingGroup.GET("/:id", r.trackingHandler.GetInfo)
	}

	// Buyer routes
	buyerGroup := e.Group("/comprador")
	buyerGroup.Use(r.authMiddleware.Authenticate)
	buyerGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleComprador)))
	{
		buyerGroup.POST("/cart/:storeID", r.orderHandler.OpenCart)
		buyerGroup.GET("/cart", r.orderHandler.GetLastOpenCart)
		buyerGroup.GET("/cart/count", r.orderHandler.GetCartItemCount)
		buyerGroup.POST("/cart/:purchaseID/items", r.orderHandler.AddItem)
		buyerGroup.DELETE("/cart/:purchaseID/items/:productID", r.orderHandler.RemoveItem)
		buyerGroup.DELETE("/cart/:purchaseID/items", r.orderHandler.ClearCart)
		buyerGroup.POST("/purchases/:purchaseID/checkout", r.orderHandler.Checkout)
		buyerGroup.POST("/purchases/:purchaseID/delivered", r.orderHandler.MarkDelivered)
		buyerGroup.GET("/purchases", r.orderHandler.ListMyPurchases)
		buyerGroup.GET("/purchases/:id", r.orderHandler.GetPurchase)
		buyerGroup.GET("/tracking/last", r.trackingHandler.GetLastByBuyer)
		buyerGroup.POST("/reviews", r.reviewHandler.CreateReview)
		buyerGroup.PUT("/reviews/:id", r.reviewHandler.UpdateReview)
		buyerGroup.DELETE("/reviews/:id", r.reviewHandler.DeleteReview)
	}

	// Seller routes
	sellerGroup := e.Group("/vendedor")
	sellerGroup.Use(r.authMiddleware.Authenticate)
	sellerGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleVendedor)))
	{
		sellerGroup.POST("/products", r.productHandler.CreateProduct)
		sellerGroup.GET("/products", r.productHandler.ListOwnProducts)
		sellerGroup.PUT("/products/:id", r.productHandler.UpdateProduct)
		sellerGroup.DELETE("/products/:id", r.productHandler.DeleteProduct)
		sellerGroup.GET("/orders", r.orderHandler.ListStoreOrders)
	}

	// Courier routes
	courierGroup := e.Group("/entregador")
	courierGroup.Use(r.authMiddleware.Authenticate)
	courierGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleEntregador)))
	{
		courierGroup.GET("/deliveries", r.trackingHandler.ListMyDeliveries)
		courierGroup.PUT("/tracking/:id", r.trackingHandler.UpdateTracking)
		courierGroup.POST("/vehicles", r.vehicleHandler.CreateVehicle)
		courierGroup.GET("/vehicles", r.vehicleHandler.ListMyVehicles)
		courierGroup.PUT("/vehicles/:id", r.vehicleHandler.UpdateVehicle)
		courierGroup.DELETE("/vehicles/:id", r.vehicleHandler.DeleteVehicle)
	}
}
