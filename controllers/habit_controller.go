package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sorafields/lavenderlog/models"
	"github.com/sorafields/lavenderlog/utils"
)

// HabitController manages habits and their time entries.
type HabitController struct {
	db *gorm.DB
}

// NewHabitController creates a new HabitController instance.
func NewHabitController(db *gorm.DB) *HabitController {
	return &HabitController{db: db}
}

// CreateHabit adds a habit for the authenticated user. A duplicate name
// within the same user is not an error: the existing row is returned and the
// habit count stays unchanged.
func (h *HabitController) CreateHabit(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.Error(ctx, http.StatusBadRequest, 40021, "habit name cannot be empty")
		return
	}

	var existing models.Habit
	err := h.db.Where("user_id = ? AND name = ?", userID, name).First(&existing).Error
	if err == nil {
		utils.Success(ctx, gin.H{"habit": existing, "created": false})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to look up habit")
		return
	}

	habit := models.Habit{UserID: userID, Name: name}
	if err := h.db.Create(&habit).Error; err != nil {
		// A concurrent insert hitting the unique index is treated the same
		// as the duplicate fast path above.
		if h.db.Where("user_id = ? AND name = ?", userID, name).First(&existing).Error == nil {
			utils.Success(ctx, gin.H{"habit": existing, "created": false})
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to create habit")
		return
	}

	utils.Success(ctx, gin.H{"habit": habit, "created": true})
}

// ListHabits returns all habits owned by the authenticated user.
func (h *HabitController) ListHabits(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var habits []models.Habit
	if err := h.db.Where("user_id = ?", userID).Order("name").Find(&habits).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50022, "failed to list habits")
		return
	}

	utils.Success(ctx, gin.H{"items": habits})
}

// DeleteHabit removes a habit and every entry logged against it. Deleting a
// habit the user does not own is a no-op, not an error.
func (h *HabitController) DeleteHabit(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	habitID := strings.TrimSpace(ctx.Param("id"))
	if habitID == "" {
		utils.Error(ctx, http.StatusBadRequest, 40023, "missing habit id")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ? AND user_id = ?", habitID, userID).Delete(&models.HabitEntry{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", habitID, userID).Delete(&models.Habit{}).Error
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50023, "failed to delete habit")
		return
	}

	utils.Success(ctx, gin.H{"message": "habit deleted"})
}

// CreateEntry appends a time entry dated today against an owned habit.
// Hours must be strictly positive.
func (h *HabitController) CreateEntry(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var req struct {
		Hours   float64 `json:"hours"`
		Note    string  `json:"note"`
		Sticker string  `json:"sticker"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40024, "invalid request payload")
		return
	}

	if req.Hours <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40025, "hours must be greater than zero")
		return
	}

	var habit models.Habit
	if err := h.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).First(&habit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40420, "habit not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50024, "failed to look up habit")
		return
	}

	entry := models.HabitEntry{
		UserID:    userID,
		HabitID:   habit.ID,
		EntryDate: utils.Today(),
		Hours:     req.Hours,
		Note:      utils.Sanitize(strings.TrimSpace(req.Note)),
		Sticker:   strings.TrimSpace(req.Sticker),
	}
	if err := h.db.Create(&entry).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50025, "failed to log entry")
		return
	}

	utils.Success(ctx, gin.H{"entry": entry})
}

// DailyTotals sums hours per habit for the given date (default today).
func (h *HabitController) DailyTotals(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	date := strings.TrimSpace(ctx.Query("date"))
	if date == "" {
		date = utils.Today()
	} else if _, err := utils.ParseDate(date); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40026, "date must be YYYY-MM-DD")
		return
	}

	totals, grandTotal, err := dailyTotals(h.db, userID, date)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50026, "failed to compute totals")
		return
	}

	utils.Success(ctx, gin.H{
		"date":        date,
		"totals":      totals,
		"total_hours": grandTotal,
	})
}

// HabitTotal is one habit's summed hours for a single day.
type HabitTotal struct {
	HabitID uint    `json:"habit_id"`
	Name    string  `json:"name"`
	Total   float64 `json:"total"`
}

func dailyTotals(db *gorm.DB, userID uint, date string) ([]HabitTotal, float64, error) {
	var rows []HabitTotal
	err := db.Model(&models.HabitEntry{}).
		Select("habit_entries.habit_id AS habit_id, habits.name AS name, SUM(habit_entries.hours) AS total").
		Joins("JOIN habits ON habits.id = habit_entries.habit_id").
		Where("habit_entries.user_id = ? AND habit_entries.entry_date = ?", userID, date).
		Group("habit_entries.habit_id, habits.name").
		Order("habits.name").
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	var grand float64
	for _, r := range rows {
		grand += r.Total
	}
	return rows, grand, nil
}

// currentStreak walks backward day by day from today and counts consecutive
// days with at least one entry for the user. The walk stops at the first gap,
// so cost is proportional to the streak length.
func currentStreak(db *gorm.DB, userID uint, today string) int {
	day, err := utils.ParseDate(today)
	if err != nil {
		return 0
	}

	streak := 0
	for {
		var entry models.HabitEntry
		err := db.Select("id").
			Where("user_id = ? AND entry_date = ?", userID, utils.FormatDate(day)).
			Take(&entry).Error
		if err != nil {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
