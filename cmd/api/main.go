package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "margin-simulator/api/swagger" // swagger docs
	"margin-simulator/internal/config"
	"margin-simulator/internal/handler"
	"margin-simulator/internal/middleware"
	"margin-simulator/internal/service"
	"margin-simulator/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Margin Simulator API
// @version         1.0
// @description     Retail pricing simulator: VAT, gross margin, corporate tax and net profit.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set up dependencies (Service -> Handler)
	simulationService := service.NewSimulationService(cfg.Defaults)
	simulationHandler := handler.NewSimulationHandler(simulationService)

	// Set up Gin Router
	router := gin.Default()
	router.Use(middleware.RequestID())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Live form: one reply per submitted scenario
	router.GET("/ws/simulations", func(c *gin.Context) {
		websocket.ServeWs(simulationService, c)
	})

	simulationHandler.RegisterRoutes(router.Group(""))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Server listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatalf("Server failed: %v", err)
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
