package main

import (
	_ "burrow/docs"
	"burrow/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Burrow Delivery Request API
// @version         1.0
// @description     Package concierge service: delivery requests, warehouses and payments backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000

// @BasePath  /api

func main() {
	routes.Run()
}
