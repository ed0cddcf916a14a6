package handlers

import (
	"time"

	"github.com/ginhoang9748-cell/focusflow-api/internal/database"
	"github.com/ginhoang9748-cell/focusflow-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetGoals lists all goals, ordered by time of day like the dashboard.
func GetGoals(c *fiber.Ctx) error {
	var goals []models.Goal
	database.DB.Order("time ASC, created_at ASC").Find(&goals)

	if goals == nil {
		goals = []models.Goal{}
	}
	return c.JSON(goals)
}

// CreateGoals creates goals in bulk. This is the commit step of the plan
// form: each selected task becomes one goal with a fresh streak.
func CreateGoals(c *fiber.Ctx) error {
	var reqs []models.CreateGoalRequest
	if err := c.BodyParser(&reqs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if len(reqs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No goals provided",
		})
	}

	goals := make([]models.Goal, 0, len(reqs))
	for _, req := range reqs {
		if req.Title == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Goal title is required",
			})
		}
		if !models.ValidTimeOfDay(req.Time) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Goal time must be HH:MM in 24-hour format",
			})
		}
		category := req.Category
		if category == "" {
			category = models.CategoryOther
		}
		goals = append(goals, models.Goal{
			Title:    req.Title,
			Category: category,
			Schedule: req.Schedule,
			Time:     req.Time,
			Streak:   0,
		})
	}

	if err := database.DB.Create(&goals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create goals",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(goals)
}

// DeleteGoal removes a goal by ID. Task logs are intentionally left in
// place so completion history survives the goal.
func DeleteGoal(c *fiber.Ctx) error {
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	result := database.DB.Delete(&models.Goal{}, "id = ?", goalID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete goal",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

// ToggleTask flips today's completion state for a goal.
//
// Not done -> done:     creates today's log, streak +1
// Done -> not done:     deletes today's log, streak -1 floored at 0
//                       (only when no note field is sent)
// Done + note:          replaces the note in place, streak unchanged
func ToggleTask(c *fiber.Ctx) error {
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	var goal models.Goal
	if err := database.DB.First(&goal, "id = ?", goalID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
	}

	var req models.ToggleTaskRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	today := time.Now().Format(models.DateLayout)

	var taskLog models.TaskLog
	if err := database.DB.Where("goal_id = ? AND date = ?", goalID, today).First(&taskLog).Error; err == nil {
		// Already done today. A note edits in place; no note toggles off.
		if req.Note != nil {
			taskLog.Note = *req.Note
			if err := database.DB.Save(&taskLog).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to update note",
				})
			}
			return c.JSON(fiber.Map{"goal": goal, "log": taskLog})
		}

		if err := database.DB.Delete(&taskLog).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to remove log",
			})
		}
		if goal.Streak > 0 {
			goal.Streak--
		}
		if err := database.DB.Save(&goal).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update streak",
			})
		}
		return c.JSON(fiber.Map{"goal": goal, "log": nil})
	}

	note := ""
	if req.Note != nil {
		note = *req.Note
	}
	taskLog = models.TaskLog{
		GoalID:    goalID,
		Date:      today,
		Completed: true,
		Note:      note,
	}
	if err := database.DB.Create(&taskLog).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create log",
		})
	}
	goal.Streak++
	if err := database.DB.Save(&goal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update streak",
		})
	}

	return c.JSON(fiber.Map{"goal": goal, "log": taskLog})
}
