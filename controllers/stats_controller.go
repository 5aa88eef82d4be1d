package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sorafields/lavenderlog/models"
	"github.com/sorafields/lavenderlog/utils"
)

// StatsController serves the dashboard view data and lifetime aggregates.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// Dashboard returns everything the landing view needs: each habit with
// today's entries and total, the day's grand total, the current streak,
// today's mood (when a reflection exists) and the reward list.
func (s *StatsController) Dashboard(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	today := utils.Today()

	var habits []models.Habit
	if err := s.db.Where("user_id = ?", userID).Order("name").Find(&habits).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50070, "failed to list habits")
		return
	}

	var entries []models.HabitEntry
	if err := s.db.Where("user_id = ? AND entry_date = ?", userID, today).Order("id").Find(&entries).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50071, "failed to list entries")
		return
	}

	byHabit := make(map[uint][]models.HabitEntry, len(habits))
	for _, e := range entries {
		byHabit[e.HabitID] = append(byHabit[e.HabitID], e)
	}

	type habitDay struct {
		Habit   models.Habit        `json:"habit"`
		Entries []models.HabitEntry `json:"entries"`
		Total   float64             `json:"total"`
	}

	habitData := make([]habitDay, 0, len(habits))
	var totalHours float64
	for _, habit := range habits {
		hd := habitDay{Habit: habit, Entries: byHabit[habit.ID]}
		if hd.Entries == nil {
			hd.Entries = []models.HabitEntry{}
		}
		for _, e := range hd.Entries {
			hd.Total += e.Hours
		}
		totalHours += hd.Total
		habitData = append(habitData, hd)
	}

	var mood string
	var reflection models.Reflection
	err := s.db.Select("mood").Where("user_id = ? AND entry_date = ?", userID, today).Take(&reflection).Error
	if err == nil {
		mood = reflection.Mood
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(ctx, http.StatusInternalServerError, 50072, "failed to load reflection")
		return
	}

	rewards, err := listRewards(s.db)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50073, "failed to list rewards")
		return
	}

	utils.Success(ctx, gin.H{
		"today":       today,
		"habits":      habitData,
		"total_hours": totalHours,
		"streak":      currentStreak(s.db, userID, today),
		"today_mood":  mood,
		"rewards":     rewards,
	})
}

// GetStats returns lifetime aggregates for the authenticated user.
func (s *StatsController) GetStats(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var habitCount int64
	if err := s.db.Model(&models.Habit{}).Where("user_id = ?", userID).Count(&habitCount).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50074, "failed to count habits")
		return
	}

	var entryCount int64
	if err := s.db.Model(&models.HabitEntry{}).Where("user_id = ?", userID).Count(&entryCount).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50075, "failed to count entries")
		return
	}

	var totalHours float64
	if err := s.db.Model(&models.HabitEntry{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(hours),0)").
		Scan(&totalHours).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50076, "failed to sum hours")
		return
	}

	var reflectionCount int64
	if err := s.db.Model(&models.Reflection{}).Where("user_id = ?", userID).Count(&reflectionCount).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50077, "failed to count reflections")
		return
	}

	utils.Success(ctx, gin.H{
		"habit_count":      habitCount,
		"entry_count":      entryCount,
		"total_hours":      totalHours,
		"reflection_count": reflectionCount,
		"streak":           currentStreak(s.db, userID, utils.Today()),
	})
}
