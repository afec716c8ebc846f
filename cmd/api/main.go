package main

import (
	_ "github.com/joho/godotenv/autoload"

	_ "github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/docs"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/adapter/http/routes"
)

// @title           Invoicing Core API
// @version         1.0
// @description     Invoicing core (invoices, clients, settings, payments) with a local-first store synced to the cloud.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
