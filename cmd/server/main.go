package main

import (
	"fmt"
	"log"

	"warbler/backend/internal/config"
	"warbler/backend/internal/database"
	"warbler/backend/internal/logger"
	"warbler/backend/internal/routes"
)

func init() {
	config.LoadConfig()
	logger.InitLogger()
}

func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	router := routes.SetupRouter()

	fmt.Println("Server is running on", config.AppConfig.Addr)
	log.Fatal(router.Run(config.AppConfig.Addr))
}
