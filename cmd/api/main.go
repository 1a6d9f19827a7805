package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/nandomoreu/mercadillo/internal/handler/http"
	redisclient "github.com/nandomoreu/mercadillo/internal/infrastructure/cache"
	"github.com/nandomoreu/mercadillo/internal/infrastructure/config"
	"github.com/nandomoreu/mercadillo/internal/infrastructure/database"
	"github.com/nandomoreu/mercadillo/internal/infrastructure/external_services"
	"github.com/nandomoreu/mercadillo/internal/infrastructure/jwt"
	"github.com/nandomoreu/mercadillo/internal/infrastructure/logger"
	passwordservice "github.com/nandomoreu/mercadillo/internal/infrastructure/password_service"
	randomgenerator "github.com/nandomoreu/mercadillo/internal/infrastructure/random_generator"
	"github.com/nandomoreu/mercadillo/internal/infrastructure/repository/mongodb"
	"github.com/nandomoreu/mercadillo/internal/infrastructure/store"
	"github.com/nandomoreu/mercadillo/internal/infrastructure/uuidgen"
	"github.com/nandomoreu/mercadillo/internal/infrastructure/validator"
	"github.com/nandomoreu/mercadillo/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	accountRepo := mongodb.NewAccountRepository(db)
	articleRepo := mongodb.NewArticleRepository(db)
	if err := accountRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Dependency Injection: Services
	smtpHost := os.Getenv("EMAIL_HOST")
	smtpPort := os.Getenv("EMAIL_PORT")
	smtpUsername := os.Getenv("EMAIL_USERNAME")
	smtpPassword := os.Getenv("EMAIL_APP_PASSWORD")
	smtpFrom := os.Getenv("EMAIL_FROM")
	notifier := external_services.NewVerificationMailer(smtpHost, smtpPort, smtpUsername, smtpPassword, smtpFrom, appConfig.GetAppBaseURL())

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	jwtManager := jwt.NewManager(jwtSecret)

	hasher := passwordservice.NewHasher()
	codeGen := randomgenerator.NewCodeGenerator()
	uuidGenerator := uuidgen.NewGenerator()
	appValidator := validator.NewValidator()

	// Dependency Injection: Usecases
	accountUsecase := usecase.NewAccountUsecase(accountRepo, notifier, hasher, codeGen, uuidGenerator, appValidator, appLogger, appConfig)
	articleUsecase := usecase.NewArticleUsecase(articleRepo, appLogger)

	// Optional Dependency Injection: Redis cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		defer redisclient.Close(rdb)
		articleUsecase.SetArticleCache(store.NewArticleCacheStore(rdb))
	}

	// Setup API routes
	router := gin.Default()
	appRouter := handlerHttp.NewRouter(accountUsecase, articleUsecase, jwtManager)
	appRouter.SetupRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
