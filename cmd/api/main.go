package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SilvaLimaAdvogados/legal-office-api/internal/config"
	dbpkg "github.com/SilvaLimaAdvogados/legal-office-api/internal/db"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/middleware"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/realtime"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := realtime.NewClient(cfg.RedisURL)
	rt := realtime.NewPublisher(rdb)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rt, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
