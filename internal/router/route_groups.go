package router

import (
	"pos_terminal/internal/handlers"
	"pos_terminal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the public authentication routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)

		authRequiredRoutes := authRoutes.Group("")
		authRequiredRoutes.Use(middleware.AuthMiddleware())
		{
			authRequiredRoutes.POST("/logout", authHandler.Logout)
		}
	}
}

// SetupTerminalRoutes sets up the snapshot and selection routes.
func SetupTerminalRoutes(authenticatedGroup *gin.RouterGroup, terminalHandler *handlers.TerminalHandler) {
	terminalRoutes := authenticatedGroup.Group("/terminal")
	{
		terminalRoutes.GET("/state", terminalHandler.GetState)
		terminalRoutes.PUT("/current/:selector/:id", terminalHandler.SetCurrent)
	}
}

// SetupOrderRoutes sets up the order lifecycle routes.
func SetupOrderRoutes(authenticatedGroup *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orderRoutes := authenticatedGroup.Group("/orders")
	{
		orderRoutes.POST("", orderHandler.CreateOrder)
		orderRoutes.POST("/current/items", orderHandler.AddItemToCurrentOrder)
		orderRoutes.PUT("/current", orderHandler.UpdateCurrentOrder)
		orderRoutes.POST("/charge/:id", orderHandler.ChargeOrder)
		orderRoutes.GET("/closed/:id/receipt", orderHandler.ReceiptText)
		orderRoutes.GET("/closed/:id/receipt.png", orderHandler.ReceiptQR)
	}
}

// SetupCatalogRoutes sets up the category/item editing routes. Catalog
// editing is the admin surface, gated to the Admin role.
func SetupCatalogRoutes(authenticatedGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	categoryRoutes := authenticatedGroup.Group("/categories")
	categoryRoutes.Use(middleware.RoleAuthMiddleware("Admin"))
	{
		categoryRoutes.POST("", catalogHandler.CreateCategory)
		categoryRoutes.PUT("/:id", catalogHandler.UpdateCategory)
		categoryRoutes.DELETE("/:id", catalogHandler.DeleteCategory)
	}

	itemRoutes := authenticatedGroup.Group("/items")
	itemRoutes.Use(middleware.RoleAuthMiddleware("Admin"))
	{
		itemRoutes.POST("", catalogHandler.CreateItem)
		itemRoutes.PUT("/:id", catalogHandler.UpdateItem)
		itemRoutes.DELETE("/:id", catalogHandler.DeleteItem)
	}

	authenticatedGroup.GET("/taxes", catalogHandler.ListEnabledTaxes)
}
