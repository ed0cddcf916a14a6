package handlers

import (
	"log"

	"github.com/ginhoang9748-cell/focusflow-api/internal/database"
	"github.com/ginhoang9748-cell/focusflow-api/internal/models"
	"github.com/ginhoang9748-cell/focusflow-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetChatMessages returns the coach transcript, oldest first.
func GetChatMessages(c *fiber.Ctx) error {
	var messages []models.ChatMessage
	database.DB.Order("timestamp ASC").Find(&messages)

	if messages == nil {
		messages = []models.ChatMessage{}
	}
	return c.JSON(messages)
}

// SendChatMessage appends the user's message, asks the coach for a reply
// with the prior transcript as context, and appends the reply. A failed
// coach call still produces a reply: the fixed fallback line.
func SendChatMessage(c *fiber.Ctx) error {
	var req models.SendChatMessageRequest
	if err := c.BodyParser(&req); err != nil || req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message text is required",
		})
	}

	// History is everything before this message.
	var history []models.ChatMessage
	database.DB.Order("timestamp ASC").Find(&history)

	userMsg := models.ChatMessage{Role: models.RoleUser, Text: req.Text}
	if err := database.DB.Create(&userMsg).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save message",
		})
	}

	replyText := services.CoachFallback
	if services.Gemini.Enabled() {
		text, err := services.Gemini.CoachReply(c.UserContext(), history, req.Text)
		if err != nil {
			log.Printf("Coach reply failed: %v", err)
		} else {
			replyText = text
		}
	}

	reply := models.ChatMessage{Role: models.RoleModel, Text: replyText}
	if err := database.DB.Create(&reply).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save reply",
		})
	}

	return c.JSON(fiber.Map{
		"message": userMsg,
		"reply":   reply,
	})
}
