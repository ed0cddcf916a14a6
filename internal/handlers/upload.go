package handlers

import (
	"encoding/base64"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ginhoang9748-cell/focusflow-api/internal/database"
	"github.com/ginhoang9748-cell/focusflow-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

var audioMimeTypes = map[string]string{
	".mp3": "audio/mpeg",
	".wav": "audio/wav",
	".ogg": "audio/ogg",
}

// UploadSound accepts a custom reminder sound and stores it as a data URI
// in the sound settings, so playback needs no file hosting.
func UploadSound(c *fiber.Ctx) error {
	file, err := c.FormFile("sound")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No sound file provided",
		})
	}

	// Validate file type
	ext := strings.ToLower(filepath.Ext(file.Filename))
	mimeType, ok := audioMimeTypes[ext]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only mp3, wav, and ogg files are allowed",
		})
	}

	// Limit to 2MB
	if file.Size > models.MaxCustomSoundBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Sound file must be under 2MB",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read sound file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read sound file",
		})
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))

	settings := loadSoundSettings()
	settings.Type = models.SoundTypeCustom
	settings.URL = dataURI
	settings.Name = file.Filename

	if err := database.DB.Save(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save settings",
		})
	}

	return c.JSON(settings)
}
