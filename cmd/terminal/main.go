package main

import (
	"log"
	"os"
	"strings"

	"pos_terminal/internal/receipt"
	"pos_terminal/internal/router"
	"pos_terminal/internal/services"
	"pos_terminal/internal/state"
	"pos_terminal/internal/storage"
	"pos_terminal/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	utils.InitLogger()

	// Open the persistent store and restore the last saved state tree.
	store, err := storage.Open()
	if err != nil {
		utils.LogError(err, "Failed to open persistent store")
		log.Fatalf("Failed to open persistent store: %v", err)
	}
	defer store.Close()

	container := state.NewContainer(store)
	utils.LogInfo("State restored", map[string]interface{}{
		"open_orders":   len(container.GetState().Orders),
		"closed_orders": len(container.GetState().ClosedOrders),
		"products":      len(container.GetState().Products),
	})

	terminal := services.NewTerminalService(container)

	// Operators come from env config: a single-till terminal has no user
	// database. OPERATOR_PIN guards sales, ADMIN_PIN guards catalog editing.
	cashier, err := services.NewOperator(1, utils.Getenv("OPERATOR_NAME", "Cashier"), "Staff",
		utils.Getenv("OPERATOR_PIN", "0000"))
	if err != nil {
		log.Fatalf("Failed to configure cashier operator: %v", err)
	}
	admin, err := services.NewOperator(2, utils.Getenv("ADMIN_NAME", "Admin"), "Admin",
		utils.Getenv("ADMIN_PIN", "9999"))
	if err != nil {
		log.Fatalf("Failed to configure admin operator: %v", err)
	}
	auth := services.NewAuthService([]services.Operator{cashier, admin}, terminal)

	receipts := receipt.Renderer{
		StoreName: utils.Getenv("STORE_NAME", "POS Terminal"),
		QR:        receipt.DefaultQRGenerator{BaseURL: utils.Getenv("RECEIPT_BASE_URL", "http://localhost:8080")},
	}

	engine := gin.Default()
	engine.Use(utils.GinLogger())

	// CORS configuration: the UI runs in a browser next to the terminal.
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	router.Setup(engine, terminal, auth, receipts)

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Terminal starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start terminal")
		log.Fatalf("Failed to start terminal: %v", err)
	}
}
