package handlers

import (
	"time"

	"github.com/ginhoang9748-cell/focusflow-api/internal/database"
	"github.com/ginhoang9748-cell/focusflow-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

// GoalStats is one bar in the habit-consistency view.
type GoalStats struct {
	GoalID      string `json:"goalId"`
	Title       string `json:"title"`
	Completions int64  `json:"completions"`
}

// AnalyticsResponse aggregates completion history across all goals.
type AnalyticsResponse struct {
	Goals        []GoalStats `json:"goals"`
	TopPerformer *GoalStats  `json:"topPerformer"`
	TotalActions int64       `json:"totalActions"`
	DoneToday    int64       `json:"doneToday"`
	TotalGoals   int64       `json:"totalGoals"`
}

// GetAnalytics returns per-goal completion counts plus headline numbers
// for the dashboard cards.
func GetAnalytics(c *fiber.Ctx) error {
	var goals []models.Goal
	database.DB.Order("created_at ASC").Find(&goals)

	resp := AnalyticsResponse{
		Goals:      []GoalStats{},
		TotalGoals: int64(len(goals)),
	}

	for _, g := range goals {
		var count int64
		database.DB.Model(&models.TaskLog{}).Where("goal_id = ?", g.ID).Count(&count)
		stats := GoalStats{
			GoalID:      g.ID.String(),
			Title:       g.Title,
			Completions: count,
		}
		resp.Goals = append(resp.Goals, stats)
		if resp.TopPerformer == nil || stats.Completions > resp.TopPerformer.Completions {
			top := stats
			resp.TopPerformer = &top
		}
	}

	database.DB.Model(&models.TaskLog{}).Count(&resp.TotalActions)

	today := time.Now().Format(models.DateLayout)
	database.DB.Model(&models.TaskLog{}).Where("date = ?", today).Count(&resp.DoneToday)

	return c.JSON(resp)
}
