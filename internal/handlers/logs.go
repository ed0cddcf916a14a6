package handlers

import (
	"github.com/ginhoang9748-cell/focusflow-api/internal/database"
	"github.com/ginhoang9748-cell/focusflow-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetTaskLogs returns task logs, optionally filtered by goal and/or date.
// Logs for deleted goals remain queryable by goalId.
func GetTaskLogs(c *fiber.Ctx) error {
	query := database.DB.Order("date DESC, timestamp DESC")

	if raw := c.Query("goalId"); raw != "" {
		goalID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid goal ID",
			})
		}
		query = query.Where("goal_id = ?", goalID)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}

	var logs []models.TaskLog
	query.Find(&logs)

	if logs == nil {
		logs = []models.TaskLog{}
	}
	return c.JSON(logs)
}
