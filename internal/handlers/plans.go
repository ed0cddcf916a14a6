package handlers

import (
	"log"

	"github.com/ginhoang9748-cell/focusflow-api/internal/models"
	"github.com/ginhoang9748-cell/focusflow-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GeneratePlan asks the AI for a structured habit plan from a free-text
// goal or an uploaded timetable image. Nothing is persisted here; the
// client commits selected tasks through POST /api/goals.
func GeneratePlan(c *fiber.Ctx) error {
	var req models.GeneratePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Prompt == "" && req.Image == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Provide a goal description or a timetable image",
		})
	}
	if req.Image != nil && req.Image.MimeType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image MIME type is required",
		})
	}

	if !services.Gemini.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "AI features are not configured",
		})
	}

	plan, err := services.Gemini.GeneratePlan(c.UserContext(), req.Prompt, req.Image)
	if err != nil {
		log.Printf("Plan generation failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to generate plan",
		})
	}

	return c.JSON(plan)
}
