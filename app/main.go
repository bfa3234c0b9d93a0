package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"youwilldrive/config"
	"youwilldrive/delivery"
	"youwilldrive/middleware"
	"youwilldrive/repository"
	"youwilldrive/service"
	"youwilldrive/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using system environment variables")
	}

	utils.InitLogger()

	// Register custom validators
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterCustomValidations(v)
	}

	// JWT secret validation
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET not found in .env")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("❌ JWT_SECRET must be at least 32 characters for security. Generate one with: openssl rand -base64 32")
	}

	// Database gateway (connects lazily, retries on first use)
	dbCfg := config.LoadSurrealConfig()
	gw := repository.NewGateway(dbCfg.URL, dbCfg.Namespace, dbCfg.Database, dbCfg.Username, dbCfg.Password)

	// Redis is optional: without it login requests are not rate limited
	loginLimiter := gin.HandlerFunc(func(c *gin.Context) { c.Next() })
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		redisClient, err := config.InitRedisDB(redisAddr, os.Getenv("REDIS_PASSWORD"), 0)
		if err != nil {
			log.Printf("⚠️  Redis unavailable, login rate limiting disabled: %v", err)
		} else {
			loginLimiter = middleware.LoginRateLimiter(redisClient, middleware.DefaultLoginRateLimiterConfig())
		}
	} else {
		log.Println("⚠️  REDIS_ADDR not set, login rate limiting disabled")
	}

	// Init repositories
	authRepo := repository.NewAuthRepository(gw)
	userRepo := repository.NewUserRepository(gw)
	cadetRepo := repository.NewCadetRepository(gw)
	instructorRepo := repository.NewInstructorRepository(gw)
	planRepo := repository.NewPlanRepository(gw)
	chatRepo := repository.NewChatRepository(gw)
	eventRepo := repository.NewEventRepository(gw)

	// Seed reference data and the initial admin account
	if err := repository.Bootstrap(context.Background(), gw, userRepo); err != nil {
		log.Printf("⚠️  Bootstrap failed: %v", err)
	}

	// Init services
	authService := service.NewAuthService(authRepo, jwtSecret)
	userService := service.NewUserService(userRepo)
	cadetService := service.NewCadetService(cadetRepo)
	instructorService := service.NewInstructorService(instructorRepo)
	planService := service.NewPlanService(planRepo)
	chatService := service.NewChatService(chatRepo)
	eventService := service.NewEventService(eventRepo)

	// Init Gin
	app := gin.Default()
	config.InitMiddleware(app)

	jwtManager := authService.GetTokenManager()

	delivery.NewAuthHandler(app, authService, loginLimiter)
	delivery.NewUserHandler(app, userService, jwtManager)
	delivery.NewCadetHandler(app, cadetService, jwtManager)
	delivery.NewInstructorHandler(app, instructorService, jwtManager)
	delivery.NewPlanHandler(app, planService, jwtManager)
	delivery.NewChatHandler(app, chatService, jwtManager)
	delivery.NewCalendarHandler(app, eventService, jwtManager)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	srvAddr := ":" + port

	srv := &http.Server{
		Addr:           srvAddr,
		Handler:        app,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	go func() {
		log.Printf("🚀 Server running at http://localhost%s", srvAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited gracefully")
}
