package config

import (
	"GameVault-Backend/internal/api/handlers"
	"GameVault-Backend/internal/api/routes"
	"GameVault-Backend/internal/middleware"
	"GameVault-Backend/internal/utils"
	"GameVault-Backend/internal/utils/storage"
	"GameVault-Backend/pkg/catalog"
	"GameVault-Backend/pkg/game"
	"GameVault-Backend/pkg/jwt"
	"GameVault-Backend/pkg/recommendation"
	"GameVault-Backend/pkg/savedgame"
	"GameVault-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	catalogClient := catalog.NewClient()

	// Repository
	userRepository := user.NewUserRepository(db)
	gameRepository := game.NewGameRepository(db)
	savedGameRepository := savedgame.NewSavedGameRepository(db)
	recommendationRepository := recommendation.NewRecommendationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	gameService := game.NewGameService(gameRepository, catalogClient)
	savedGameService := savedgame.NewSavedGameService(savedGameRepository)
	recommendationService := recommendation.NewRecommendationService(
		recommendationRepository,
		savedGameRepository,
		userRepository,
		recommendation.NewGenerator(),
		catalogClient,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	gameHandler := handlers.NewGameHandler(gameService, jwtService)
	savedGameHandler := handlers.NewSavedGameHandler(savedGameService, validator)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, validator)

	// routes
	routesConfig := routes.Config{
		App:                   app,
		UserHandler:           userHandler,
		GameHandler:           gameHandler,
		SavedGameHandler:      savedGameHandler,
		RecommendationHandler: recommendationHandler,
		Middleware:            middlewares,
		JWTService:            jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
