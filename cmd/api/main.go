package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sahil073/HealthCare-Kiosk/internal/config"
	"github.com/Sahil073/HealthCare-Kiosk/internal/handlers"
	"github.com/Sahil073/HealthCare-Kiosk/internal/jobs"
	"github.com/Sahil073/HealthCare-Kiosk/internal/middleware"
	"github.com/Sahil073/HealthCare-Kiosk/internal/repository"
	"github.com/Sahil073/HealthCare-Kiosk/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	cfg := config.Load()
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("JWT_SECRET is NOT SET.")
	}

	// --- Database connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDatabase)
	log.Println("Successfully connected to MongoDB!")

	credentials := repository.NewCredentialRepository(db)
	if err := credentials.EnsureIndexes(ctx); err != nil {
		log.Printf("Failed to ensure indexes: %v", err)
	}

	// --- Key-value store for kiosk buckets and session slots ---
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Successfully connected to Redis!")

	// --- Initialize services ---
	authSvc := services.NewAuthService(credentials)
	sessionStore := services.NewSessionStore(redisClient, cfg.SessionTTL)
	gateway := services.NewPaymentGateway(config.NewCircuitBreaker("PaymentGateway"))
	kiosk := services.NewKioskService(redisClient, cfg.LatencyFactor, gateway)
	notificationSvc := services.NewNotificationService(kiosk)

	h := handlers.NewHandler(authSvc, sessionStore, kiosk, notificationSvc)

	// --- Daily jobs ---
	scheduler := jobs.StartDailyScheduler(kiosk, notificationSvc)
	defer scheduler.Stop()

	// --- Gin router ---
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Kiosk-Id"},
		AllowCredentials: false,
	}))

	// --- Routes ---
	r.GET("/", h.Health)

	authRoutes := r.Group("/api/auth")
	{
		authRoutes.POST("/register", h.RegisterUser)
		authRoutes.POST("/login", h.Login)
		// Session slot restore/logout; read on kiosk start before any token exists.
		authRoutes.GET("/session", h.GetSession)
		authRoutes.DELETE("/session", h.ClearSession)
	}

	apiRoutes := r.Group("/api")
	apiRoutes.Use(middleware.AuthMiddleware())
	{
		apiRoutes.GET("/appointments", h.GetAppointments)
		apiRoutes.POST("/appointments", h.CreateAppointment)
		apiRoutes.PUT("/appointments/:id", h.UpdateAppointment)

		apiRoutes.GET("/vitals/:patientId", h.GetVitals)
		apiRoutes.POST("/vitals", h.CreateVital)

		apiRoutes.GET("/chat/:patientId", h.GetChatHistory)
		apiRoutes.POST("/chat", h.HandleChat)

		apiRoutes.GET("/videos", h.GetVideos)
		apiRoutes.GET("/videos/recommended/:patientId", h.GetRecommendedVideos)

		apiRoutes.GET("/diet/:patientId", h.GetDietPlans)
		apiRoutes.POST("/diet/generate", h.GenerateDietPlan)

		apiRoutes.GET("/payments/:patientId", h.GetPayments)
		apiRoutes.POST("/payments", h.CreatePayment)

		apiRoutes.GET("/notifications/:userId", h.GetNotifications)
		apiRoutes.PATCH("/notifications/:id/read", h.MarkNotificationRead)

		apiRoutes.GET("/analytics/dashboard", h.GetAnalyticsDashboard)

		apiRoutes.GET("/users", h.GetUsers)
		apiRoutes.GET("/users/doctors", h.GetDoctors)
	}

	log.Printf("Starting server on port %s", cfg.APIPort)
	r.Run(":" + cfg.APIPort)
}
