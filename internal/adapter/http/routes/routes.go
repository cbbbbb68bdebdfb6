package routes

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "burrow/docs" // swag-generated swagger registration
	"burrow/internal/adapter/http/handlers"
	"burrow/internal/adapter/persistence/repository"
	"burrow/internal/infrastructure/database"
	"burrow/internal/infrastructure/payments"
	"burrow/internal/usecase"
	"burrow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const defaultPort = "5000"

// Run wires the application together and starts the server. The database
// must be reachable before the first request is served; an unreachable
// store is fatal here rather than a surprise 500 later.
func Run() {
	setMiddlewares()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes() {
	ctx := context.Background()

	ddb := database.ConnectDynamoDB()
	if err := database.EnsureTables(ctx, ddb); err != nil {
		log.Fatalf("Failed to prepare DynamoDB tables: %v", err)
	}

	requestRepo := repository.NewRequestDynamoRepository(ddb)
	warehouseRepo := repository.NewWarehouseDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	warehouseUseCase := usecase.NewWarehouseUseCase(warehouseRepo)
	requestUseCase := usecase.NewRequestUseCase(requestRepo, warehouseRepo, paymentGateway)

	if inserted, err := warehouseUseCase.SeedDefaults(ctx); err != nil {
		log.Printf("Warehouse seed failed: %v", err)
	} else if inserted > 0 {
		log.Printf("Seeded %d default warehouses", inserted)
	}

	requestHandler := handlers.NewRequestHandler(requestUseCase)
	warehouseHandler := handlers.NewWarehouseHandler(warehouseUseCase)

	api := router.Group("/api")
	addRequestRoutes(api, requestHandler)
	addWarehouseRoutes(api, warehouseHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}))
}
