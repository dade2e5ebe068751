package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"bizlink/api/middleware"
	"bizlink/api/routes"
	"bizlink/config"
	"bizlink/db"
	"bizlink/services"
	"bizlink/store"

	"github.com/gin-gonic/gin"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	err := config.LoadConfig(configPath)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	log.Println("Starting server...")

	if err := db.ConnectDB(); err != nil {
		panic("Failed to connect to the database: " + err.Error())
	}

	if err := services.InitRedis(); err != nil {
		panic("Failed to connect to Redis: " + err.Error())
	}
	defer services.CloseRedis()

	if err := services.InitRabbitMQ(); err != nil {
		panic("Failed to connect to RabbitMQ: " + err.Error())
	}
	defer services.CloseRabbitMQ()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stores := store.NewGormStores(db.ORM)

	queue := services.NewQueueService(stores.Notifications)
	queue.StartWorkers(ctx)

	if err := services.StartRelationshipEventConsumer(ctx, "relationship_ws_push"); err != nil {
		log.Fatalf("Failed to start relationship event consumer: %v", err)
	}

	router := gin.Default()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.PrometheusMiddleware())

	handlers := routes.NewHandlers(stores, services.NewEventNotifier(queue))
	routes.PublicApi(router, handlers)

	addr := ":8080"
	if config.AppConfig.Backend.Port != 0 {
		addr = fmt.Sprintf(":%d", config.AppConfig.Backend.Port)
	}
	if err := router.Run(addr); err != nil {
		panic(err)
	}
}
