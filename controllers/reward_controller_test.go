package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorafields/lavenderlog/models"
)

func TestCreateRewardValidation(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	token := registerUser(t, r, "rowan")

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/rewards", token, gin.H{
		"name":              "",
		"requirement_value": 10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/rewards", token, gin.H{
		"name":              "bubble tea",
		"requirement_value": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown requirement types fall back to hours.
	w, env := doJSON(t, r, http.MethodPost, "/api/v1/rewards", token, gin.H{
		"name":              "bubble tea",
		"requirement_type":  "steps",
		"requirement_value": 10,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Reward models.Reward `json:"reward"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, models.RequirementHours, data.Reward.RequirementType)
	assert.False(t, data.Reward.Unlocked)
	assert.Empty(t, data.Reward.RedemptionCode)
}

func TestUnlockRewardIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	token := registerUser(t, r, "rowan")

	reward := models.Reward{Name: "spa day", RequirementType: models.RequirementStreak, RequirementValue: 7}
	require.NoError(t, db.Create(&reward).Error)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/rewards/"+itoa(reward.ID)+"/unlock", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Reward models.Reward `json:"reward"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Reward.Unlocked)

	code, err := uuid.Parse(data.Reward.RedemptionCode)
	require.NoError(t, err, "redemption code must be a UUID")

	// A second unlock keeps the original code.
	w, env = doJSON(t, r, http.MethodPost, "/api/v1/rewards/"+itoa(reward.ID)+"/unlock", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, code.String(), data.Reward.RedemptionCode)
}

func TestUnlockMissingRewardIs404(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	token := registerUser(t, r, "rowan")

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/rewards/999/unlock", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRewardsOrdersLockedFirst(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	token := registerUser(t, r, "rowan")

	require.NoError(t, db.Create(&models.Reward{Name: "done", RequirementValue: 1, Unlocked: true}).Error)
	require.NoError(t, db.Create(&models.Reward{Name: "pending", RequirementValue: 5}).Error)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/rewards", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Items []models.Reward `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Items, 2)
	assert.Equal(t, "pending", data.Items[0].Name)
	assert.Equal(t, "done", data.Items[1].Name)
}

func TestDeleteReward(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	token := registerUser(t, r, "rowan")

	reward := models.Reward{Name: "day off", RequirementValue: 3}
	require.NoError(t, db.Create(&reward).Error)

	w, _ := doJSON(t, r, http.MethodDelete, "/api/v1/rewards/"+itoa(reward.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Reward{}).Count(&count).Error)
	assert.Zero(t, count)
}
