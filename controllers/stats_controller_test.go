package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorafields/lavenderlog/models"
	"github.com/sorafields/lavenderlog/utils"
)

type dashboardData struct {
	Today      string  `json:"today"`
	TotalHours float64 `json:"total_hours"`
	Streak     int     `json:"streak"`
	TodayMood  string  `json:"today_mood"`
	Habits     []struct {
		Habit   models.Habit        `json:"habit"`
		Entries []models.HabitEntry `json:"entries"`
		Total   float64             `json:"total"`
	} `json:"habits"`
	Rewards []models.Reward `json:"rewards"`
}

func TestDashboardAggregatesToday(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	token := registerUser(t, r, "rowan")

	readingID := createHabit(t, r, token, "reading")
	codingID := createHabit(t, r, token, "coding")

	for _, entry := range []struct {
		habitID string
		hours   float64
	}{
		{readingID, 1.5},
		{codingID, 2},
		{codingID, 0.5},
	} {
		w, _ := doJSON(t, r, http.MethodPost, habitEntriesPath(entry.habitID), token, gin.H{"hours": entry.hours})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, _ := doJSON(t, r, http.MethodPut, "/api/v1/reflections", token, gin.H{
		"text": "steady progress",
		"mood": "good",
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.Create(&models.Reward{Name: "bubble tea", RequirementValue: 10, RequirementType: models.RequirementHours}).Error)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data dashboardData
	require.NoError(t, json.Unmarshal(env.Data, &data))

	assert.Equal(t, utils.Today(), data.Today)
	assert.InDelta(t, 4.0, data.TotalHours, 1e-9)
	assert.Equal(t, 1, data.Streak)
	assert.Equal(t, "good", data.TodayMood)

	require.Len(t, data.Habits, 2)
	assert.Equal(t, "coding", data.Habits[0].Habit.Name)
	assert.InDelta(t, 2.5, data.Habits[0].Total, 1e-9)
	assert.Len(t, data.Habits[0].Entries, 2)
	assert.Equal(t, "reading", data.Habits[1].Habit.Name)
	assert.InDelta(t, 1.5, data.Habits[1].Total, 1e-9)
	assert.Len(t, data.Habits[1].Entries, 1)

	require.Len(t, data.Rewards, 1)
	assert.Equal(t, "bubble tea", data.Rewards[0].Name)
}

func TestDashboardEmptyDay(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	token := registerUser(t, r, "rowan")
	createHabit(t, r, token, "reading")

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data dashboardData
	require.NoError(t, json.Unmarshal(env.Data, &data))

	assert.Zero(t, data.TotalHours)
	assert.Zero(t, data.Streak)
	assert.Empty(t, data.TodayMood)
	require.Len(t, data.Habits, 1)
	assert.NotNil(t, data.Habits[0].Entries)
	assert.Empty(t, data.Habits[0].Entries)
}

func TestGetStatsLifetimeAggregates(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	token := registerUser(t, r, "rowan")
	habitID := createHabit(t, r, token, "reading")

	w, _ := doJSON(t, r, http.MethodPost, habitEntriesPath(habitID), token, gin.H{"hours": 2.5})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, db.Where("username = ?", "rowan").First(&user).Error)
	seedEntry(t, db, user.ID, time.Now().AddDate(0, 0, -1))

	w, _ = doJSON(t, r, http.MethodPut, "/api/v1/reflections", token, gin.H{
		"text": "kept the chain going",
		"mood": "great",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		HabitCount      int64   `json:"habit_count"`
		EntryCount      int64   `json:"entry_count"`
		TotalHours      float64 `json:"total_hours"`
		ReflectionCount int64   `json:"reflection_count"`
		Streak          int     `json:"streak"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	assert.Equal(t, int64(1), data.HabitCount)
	assert.Equal(t, int64(2), data.EntryCount)
	assert.InDelta(t, 3.5, data.TotalHours, 1e-9)
	assert.Equal(t, int64(1), data.ReflectionCount)
	assert.Equal(t, 2, data.Streak)
}

func TestGetStatsReportsStoreFailure(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	token := registerUser(t, r, "rowan")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/stats", token, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotZero(t, env.Code)
}
