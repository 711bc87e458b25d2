package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/mebel/internal/config"
	"github.com/example/mebel/internal/handlers"
	"github.com/example/mebel/internal/middleware"
	"github.com/example/mebel/internal/services"
)

// Register wires up all HTTP routes. The session gate runs in front of
// everything; it lets the public allow-list through on its own.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	otpService := services.NewOTPService(services.NewChallengeStore(db), cfg.OTPExpires)

	authHandler := handlers.NewAuthHandler(db, cfg, otpService)
	otpHandler := handlers.NewOTPHandler(otpService)
	furnitureHandler := handlers.NewFurnitureHandler(db)

	app.Use(middleware.SessionGate(cfg))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	api.Get("/main", authHandler.Main)

	otp := api.Group("/otp")
	otp.Post("/create", otpHandler.Create)
	otp.Post("/check", otpHandler.Check)

	furniture := api.Group("/furniture")
	furniture.Get("/", furnitureHandler.List)
	furniture.Post("/", furnitureHandler.Insert)
	furniture.Get("/:id", furnitureHandler.Get)
	furniture.Delete("/:id", furnitureHandler.Delete)
}
