package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alankritha/salon-booking/internal/config"
	dbpkg "github.com/alankritha/salon-booking/internal/db"
	"github.com/alankritha/salon-booking/internal/middleware"
	"github.com/alankritha/salon-booking/internal/routes"
)

func main() {

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The server keeps running without a store so the diagnostics route
	// can report the broken dependency.
	store, err := dbpkg.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		log.Printf("database unavailable: %v", err)
	} else {
		defer store.Close(context.Background())
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, store)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
