package routes

import (
	"GameVault-Backend/internal/api/handlers"
	"GameVault-Backend/internal/middleware"
	"GameVault-Backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                   *fiber.App
	UserHandler           handlers.UserHandler
	GameHandler           handlers.GameHandler
	SavedGameHandler      handlers.SavedGameHandler
	RecommendationHandler handlers.RecommendationHandler
	Middleware            middleware.Middleware
	JWTService            jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Games()
	c.SavedGames()
	c.Recommendations()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadAvatar)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Games() {
	games := c.App.Group("/api/v1/games")
	{
		games.Get("", c.GameHandler.GetGames)
		games.Get("/special", c.GameHandler.GetSpecialGames)
		games.Get("/genres", c.GameHandler.GetGenres)
		games.Get("/:id", c.GameHandler.GetGameDetail)
	}
}

func (c *Config) SavedGames() {
	savedGames := c.App.Group("/api/v1/saved-games", c.Middleware.AuthMiddleware(c.JWTService))
	{
		savedGames.Get("", c.SavedGameHandler.GetSavedGames)
		savedGames.Post("", c.SavedGameHandler.SaveGame)
		savedGames.Patch("/:gameId", c.SavedGameHandler.UpdateSavedGame)
		savedGames.Delete("/:gameId", c.SavedGameHandler.UnsaveGame)
	}
}

func (c *Config) Recommendations() {
	recommendations := c.App.Group("/api/v1/recommendations", c.Middleware.AuthMiddleware(c.JWTService))
	{
		recommendations.Post("", c.RecommendationHandler.GenerateRecommendations)
		recommendations.Get("", c.RecommendationHandler.GetLatestRecommendations)
		recommendations.Post("/chat", c.RecommendationHandler.ChatRecommendations)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
