package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VoltarSoftware/salon-agenda/internal/cache"
	"github.com/VoltarSoftware/salon-agenda/internal/config"
	dbpkg "github.com/VoltarSoftware/salon-agenda/internal/db"
	"github.com/VoltarSoftware/salon-agenda/internal/middleware"
	"github.com/VoltarSoftware/salon-agenda/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := cache.NewRedisClient(cfg.RedisAddr)
	slotCache := cache.NewAvailabilityCache(rdb)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, slotCache)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
