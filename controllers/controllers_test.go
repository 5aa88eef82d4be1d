package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sorafields/lavenderlog/middleware"
	"github.com/sorafields/lavenderlog/models"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newTestDB opens a fresh in-memory SQLite database with migrations applied.
// Open connections are capped at one so every query sees the same memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Habit{},
		&models.HabitEntry{},
		&models.Reflection{},
		&models.Reward{},
		&models.Media{},
	))
	return db
}

// newTestRouter wires the API without the rate limiter so tests are not
// throttled.
func newTestRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()

	authController := NewAuthController(db)
	habitController := NewHabitController(db)
	reflectionController := NewReflectionController(db)
	rewardController := NewRewardController(db)
	mediaController := NewMediaController(db)
	statsController := NewStatsController(db)

	api := r.Group("/api/v1")
	api.POST("/auth/register", authController.Register)
	api.POST("/auth/login", authController.Login)
	api.POST("/auth/logout", middleware.AuthRequired(), authController.Logout)
	api.GET("/auth/me", middleware.AuthRequired(), authController.Me)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired())
	protected.GET("/habits", habitController.ListHabits)
	protected.POST("/habits", habitController.CreateHabit)
	protected.DELETE("/habits/:id", habitController.DeleteHabit)
	protected.POST("/habits/:id/entries", habitController.CreateEntry)
	protected.GET("/habits/totals", habitController.DailyTotals)
	protected.GET("/dashboard", statsController.Dashboard)
	protected.GET("/stats", statsController.GetStats)
	protected.PUT("/reflections", reflectionController.Save)
	protected.GET("/reflections", reflectionController.Get)
	protected.GET("/rewards", rewardController.List)
	protected.POST("/rewards", rewardController.Create)
	protected.POST("/rewards/:id/unlock", rewardController.Unlock)
	protected.DELETE("/rewards/:id", rewardController.Delete)
	protected.GET("/media", mediaController.List)
	protected.POST("/media", mediaController.Create)
	protected.DELETE("/media/:id", mediaController.Delete)

	return r
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": username,
		"password": "hunter-2",
	})
	require.Equal(t, http.StatusOK, w.Code, "register failed: %s", w.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}
