package handlers

import (
	"github.com/ginhoang9748-cell/focusflow-api/internal/database"
	"github.com/ginhoang9748-cell/focusflow-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

// GetSoundSettings returns the singleton sound configuration.
func GetSoundSettings(c *fiber.Ctx) error {
	settings := loadSoundSettings()
	return c.JSON(settings)
}

// GetSoundPresets lists the built-in reminder sounds.
func GetSoundPresets(c *fiber.Ctx) error {
	return c.JSON(models.SoundPresets)
}

// UpdateSoundSettings applies a partial update to the singleton row.
// Oversized custom sources are rejected before anything is written.
func UpdateSoundSettings(c *fiber.Ctx) error {
	var req models.UpdateSoundSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Type != nil && *req.Type != models.SoundTypePreset && *req.Type != models.SoundTypeCustom {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Sound type must be preset or custom",
		})
	}
	if req.URL != nil && len(*req.URL) > models.MaxCustomSoundBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Sound source must be under 2MB",
		})
	}

	settings := loadSoundSettings()
	if req.Enabled != nil {
		settings.Enabled = *req.Enabled
	}
	if req.Type != nil {
		settings.Type = *req.Type
	}
	if req.URL != nil {
		settings.URL = *req.URL
	}
	if req.Name != nil {
		settings.Name = *req.Name
	}

	if err := database.DB.Save(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save settings",
		})
	}

	return c.JSON(settings)
}

// loadSoundSettings fetches the singleton row, falling back to the
// default preset if the seed row is missing.
func loadSoundSettings() models.SoundSettings {
	var settings models.SoundSettings
	if err := database.DB.First(&settings, 1).Error; err != nil {
		settings = models.DefaultSoundSettings()
	}
	return settings
}
