package router

import (
	"pos_terminal/internal/handlers"
	"pos_terminal/internal/middleware"
	"pos_terminal/internal/receipt"
	"pos_terminal/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the terminal API.
func Setup(engine *gin.Engine, terminal services.TerminalService, auth services.AuthService, receipts receipt.Renderer) {
	authHandler := handlers.NewAuthHandler(auth)
	terminalHandler := handlers.NewTerminalHandler(terminal)
	orderHandler := handlers.NewOrderHandler(terminal, receipts)
	catalogHandler := handlers.NewCatalogHandler(terminal)

	apiV1 := engine.Group("/api/v1")

	// Public authentication routes
	SetupAuthRoutes(apiV1, authHandler)

	// Everything else requires a signed-in operator
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupTerminalRoutes(authenticated, terminalHandler)
		SetupOrderRoutes(authenticated, orderHandler)
		SetupCatalogRoutes(authenticated, catalogHandler)
	}
}
