package main

import (
	"fmt"
	"log"

	"github.com/nitishmehan/Eatsy/configs"
	"github.com/nitishmehan/Eatsy/middlewares"
	"github.com/nitishmehan/Eatsy/routes"
	"github.com/nitishmehan/Eatsy/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.Connect(cfg)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	defer func() {
		if err := configs.Close(db); err != nil {
			log.Printf("close database: %v", err)
		}
	}()

	if err := configs.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	// Live order feed for vendor dashboards
	feed := ws.NewOrderFeed()
	go feed.Run()

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, feed)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
