package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/ginhoang9748-cell/focusflow-api/internal/config"
	"github.com/ginhoang9748-cell/focusflow-api/internal/database"
	"github.com/ginhoang9748-cell/focusflow-api/internal/handlers"
	"github.com/ginhoang9748-cell/focusflow-api/internal/routes"
	"github.com/ginhoang9748-cell/focusflow-api/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := services.InitGemini(cfg); err != nil {
		log.Fatalf("Failed to initialize Gemini: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "FocusFlow API",
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	routes.Setup(app)

	// Reminder scheduler runs until shutdown; its ticker is torn down
	// when the context is canceled.
	ctx, cancel := context.WithCancel(context.Background())
	scheduler := services.NewReminderScheduler(handlers.WS)
	go scheduler.Run(ctx)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	cancel()
}
