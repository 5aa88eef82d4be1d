package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sorafields/lavenderlog/config"
	"github.com/sorafields/lavenderlog/models"
	"github.com/sorafields/lavenderlog/utils"
)

// ReflectionController manages the daily reflection journal.
type ReflectionController struct {
	db *gorm.DB
}

// NewReflectionController creates a new controller instance.
func NewReflectionController(db *gorm.DB) *ReflectionController {
	return &ReflectionController{db: db}
}

// Save upserts the reflection for (user, date). The date defaults to today;
// a second save for the same date overwrites every field instead of adding a
// row.
func (r *ReflectionController) Save(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var req struct {
		Date        string `json:"date"`
		Text        string `json:"text"`
		Win         string `json:"win"`
		Improvement string `json:"improvement"`
		Mood        string `json:"mood"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid request payload")
		return
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = utils.Today()
	} else if _, err := utils.ParseDate(date); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40041, "date must be YYYY-MM-DD")
		return
	}

	mood := strings.TrimSpace(req.Mood)
	if !validMood(mood) {
		mood = "neutral"
	}

	reflection := models.Reflection{
		UserID:      userID,
		EntryDate:   date,
		Text:        utils.Sanitize(strings.TrimSpace(req.Text)),
		Win:         utils.Sanitize(strings.TrimSpace(req.Win)),
		Improvement: utils.Sanitize(strings.TrimSpace(req.Improvement)),
		Mood:        mood,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "entry_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"text", "win", "improvement", "mood", "updated_at"}),
	}).Create(&reflection).Error
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to save reflection")
		return
	}

	// On the conflict path the upsert leaves the struct without the surviving
	// row's ID and CreatedAt, so reload before echoing it back.
	if err := r.db.Where("user_id = ? AND entry_date = ?", userID, date).First(&reflection).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50042, "failed to load reflection")
		return
	}

	utils.Success(ctx, gin.H{"reflection": reflection})
}

// Get returns the reflection for the requested date (default today), or 404
// when none was written.
func (r *ReflectionController) Get(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	date := strings.TrimSpace(ctx.Query("date"))
	if date == "" {
		date = utils.Today()
	} else if _, err := utils.ParseDate(date); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40041, "date must be YYYY-MM-DD")
		return
	}

	var reflection models.Reflection
	err := r.db.Where("user_id = ? AND entry_date = ?", userID, date).First(&reflection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40440, "no reflection for that date")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to load reflection")
		return
	}

	utils.Success(ctx, gin.H{"reflection": reflection})
}

func validMood(mood string) bool {
	if mood == "" {
		return false
	}
	for _, m := range config.Get().Moods {
		if m == mood {
			return true
		}
	}
	return false
}
