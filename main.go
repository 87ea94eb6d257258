package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/vietanh2810/inventory-api/cmd/app"
)

// @title           Inventory API
// @version         1.0
// @description     Items CRUD with a strict validation and mutation contract.
// @BasePath        /api/v1
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Execute(); err != nil {
		panic(err)
	}
}
