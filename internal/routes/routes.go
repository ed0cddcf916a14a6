package routes

import (
	"github.com/ginhoang9748-cell/focusflow-api/internal/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func Setup(app *fiber.App) {
	api := app.Group("/api")

	goals := api.Group("/goals")
	goals.Get("/", handlers.GetGoals)
	goals.Post("/", handlers.CreateGoals)
	goals.Delete("/:id", handlers.DeleteGoal)
	goals.Post("/:id/toggle", handlers.ToggleTask)

	api.Get("/logs", handlers.GetTaskLogs)

	api.Get("/analytics", handlers.GetAnalytics)

	api.Post("/plans/generate", handlers.GeneratePlan)

	chat := api.Group("/chat")
	chat.Get("/messages", handlers.GetChatMessages)
	chat.Post("/messages", handlers.SendChatMessage)

	settings := api.Group("/settings")
	settings.Get("/sound", handlers.GetSoundSettings)
	settings.Put("/sound", handlers.UpdateSoundSettings)
	settings.Get("/sound/presets", handlers.GetSoundPresets)

	api.Post("/upload/sound", handlers.UploadSound)

	// WebSocket for reminder events
	app.Use("/ws", handlers.WebSocketUpgrade())
	app.Get("/ws/reminders", websocket.New(handlers.HandleReminderSocket))
}
