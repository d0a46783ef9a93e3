package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/aleembhd/pocket-pals-budget/config"
	"github.com/aleembhd/pocket-pals-budget/handlers"
	"github.com/aleembhd/pocket-pals-budget/logger"
	"github.com/aleembhd/pocket-pals-budget/middleware"
	"github.com/aleembhd/pocket-pals-budget/routes"
	"github.com/aleembhd/pocket-pals-budget/storage"
	"github.com/aleembhd/pocket-pals-budget/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	kv, err := config.OpenStore(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to open data store")
	}
	defer kv.Close()

	log.Info("Data store ready")

	repo := storage.NewRepository(kv, log)

	scheduler := utils.NewScheduler()
	defer scheduler.Stop()

	hub := handlers.NewEventHub(log, scheduler)
	defer hub.Close()

	router := gin.Default()

	allowedOrigins := []string{cfg.FrontendURL}
	log.WithField("origins", allowedOrigins).Info("CORS configured")

	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}).Info("request")
	})

	router.Use(middleware.RateLimiter(100, time.Minute))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/ws/events", hub.HandleWS)

		routes.SetupExpenseRoutes(v1, repo)
		routes.SetupBudgetRoutes(v1, repo, hub)
		routes.SetupGoalRoutes(v1, repo, hub)
		routes.SetupProfileRoutes(v1, repo, hub, log)
		routes.SetupGamificationRoutes(v1, repo)
		routes.SetupInsightsRoutes(v1, repo, hub)
		routes.SetupPaymentRoutes(v1, repo, log)
		routes.SetupExportRoutes(v1, repo, hub)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	log.WithField("port", cfg.Port).Info("Server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
