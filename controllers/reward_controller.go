package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sorafields/lavenderlog/models"
	"github.com/sorafields/lavenderlog/utils"
)

const rewardsCachePrefix = "cache:rewards:list"

// RewardController manages unlockable rewards. Unlocking is a manual action;
// requirement thresholds are stored but never evaluated by the server.
type RewardController struct {
	db *gorm.DB
}

// NewRewardController creates a new controller instance.
func NewRewardController(db *gorm.DB) *RewardController {
	return &RewardController{db: db}
}

// List returns all rewards, locked first, creation order within each group.
func (r *RewardController) List(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes(rewardsCachePrefix); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	rewards, err := listRewards(r.db)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50050, "failed to list rewards")
		return
	}

	payload := gin.H{"items": rewards}
	utils.CacheSetJSON(rewardsCachePrefix, utils.JSONResponse{Code: 0, Message: "success", Data: payload}, time.Hour)
	utils.Success(ctx, payload)
}

// Create adds a reward. Name must be non-empty and the requirement value
// strictly positive; unknown requirement types fall back to "hours".
func (r *RewardController) Create(ctx *gin.Context) {
	var req struct {
		Name             string `json:"name"`
		RequirementType  string `json:"requirement_type"`
		RequirementValue int    `json:"requirement_value"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40050, "invalid request payload")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.Error(ctx, http.StatusBadRequest, 40051, "reward name cannot be empty")
		return
	}
	if req.RequirementValue <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40052, "requirement value must be greater than zero")
		return
	}

	reqType := strings.TrimSpace(req.RequirementType)
	switch reqType {
	case models.RequirementHours, models.RequirementStreak, models.RequirementEntries:
	default:
		reqType = models.RequirementHours
	}

	reward := models.Reward{
		Name:             name,
		RequirementType:  reqType,
		RequirementValue: req.RequirementValue,
	}
	if err := r.db.Create(&reward).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50051, "failed to create reward")
		return
	}

	utils.InvalidateByPrefix(rewardsCachePrefix)
	utils.Success(ctx, gin.H{"reward": reward})
}

// Unlock sets the unlocked flag and assigns a redemption code. Whether the
// stored requirement was actually met is not checked.
func (r *RewardController) Unlock(ctx *gin.Context) {
	var reward models.Reward
	if err := r.db.First(&reward, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40450, "reward not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50052, "failed to load reward")
		return
	}

	if !reward.Unlocked {
		reward.Unlocked = true
		reward.RedemptionCode = uuid.NewString()
		if err := r.db.Save(&reward).Error; err != nil {
			utils.Error(ctx, http.StatusInternalServerError, 50053, "failed to unlock reward")
			return
		}
		utils.InvalidateByPrefix(rewardsCachePrefix)
	}

	utils.Success(ctx, gin.H{"reward": reward})
}

// Delete removes a reward by id.
func (r *RewardController) Delete(ctx *gin.Context) {
	if err := r.db.Delete(&models.Reward{}, ctx.Param("id")).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50054, "failed to delete reward")
		return
	}

	utils.InvalidateByPrefix(rewardsCachePrefix)
	utils.Success(ctx, gin.H{"message": "reward deleted"})
}

func listRewards(db *gorm.DB) ([]models.Reward, error) {
	var rewards []models.Reward
	err := db.Order("unlocked, id").Find(&rewards).Error
	return rewards, err
}
