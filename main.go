package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/SciSaif/seller-app/configs"
	"github.com/SciSaif/seller-app/middlewares"
	"github.com/SciSaif/seller-app/notify"
	"github.com/SciSaif/seller-app/routes"
	"github.com/SciSaif/seller-app/storage"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// Object storage
	assets, err := storage.NewS3Resolver(context.Background(), cfg.S3Region, cfg.S3Bucket, cfg.S3URLExpiry)
	if err != nil {
		log.Fatalf("s3 resolver init failed: %v", err)
	}

	// Downstream core service
	notifier := notify.NewCoreClient(cfg.CoreServiceURL, cfg.SellerID)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, assets, notifier)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
