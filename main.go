package main

import (
	"fmt"
	"log"

	"github.com/doker312/aroras-kitchen-orderflow-app/configs"
	"github.com/doker312/aroras-kitchen-orderflow-app/middlewares"
	"github.com/doker312/aroras-kitchen-orderflow-app/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	// seed order statuses and categories before anything reads them
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}
	if err := configs.SeedUsers(cfg); err != nil {
		log.Fatalf("seed users failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
