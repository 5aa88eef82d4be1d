package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sorafields/lavenderlog/models"
	"github.com/sorafields/lavenderlog/utils"
)

const mediaCachePrefix = "cache:media:list"

// MediaController manages book and movie reviews.
type MediaController struct {
	db *gorm.DB
}

// NewMediaController creates a new controller instance.
func NewMediaController(db *gorm.DB) *MediaController {
	return &MediaController{db: db}
}

// List returns reviews newest first, optionally filtered by type.
func (m *MediaController) List(ctx *gin.Context) {
	mediaType := strings.TrimSpace(ctx.Query("type"))
	page, pageSize := parsePagination(ctx.Query("page"), ctx.Query("page_size"))

	cacheKey := fmt.Sprintf("%s:type=%s:page=%d:size=%d", mediaCachePrefix, mediaType, page, pageSize)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	query := m.db.Model(&models.Media{})
	if mediaType != "" {
		query = query.Where("type = ?", mediaType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to count media")
		return
	}

	var items []models.Media
	if err := query.Order("id DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&items).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50061, "failed to list media")
		return
	}

	payload := gin.H{
		"items": items,
		"pagination": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": int((total + int64(pageSize) - 1) / int64(pageSize)),
		},
	}
	utils.CacheSetJSON(cacheKey, utils.JSONResponse{Code: 0, Message: "success", Data: payload}, time.Hour)
	utils.Success(ctx, payload)
}

// Create stores a review. Title is required; the rating is clamped to [1,5]
// before it is persisted; unknown types fall back to "book".
func (m *MediaController) Create(ctx *gin.Context) {
	var req struct {
		Title  string `json:"title"`
		Type   string `json:"type"`
		Rating int    `json:"rating"`
		Review string `json:"review"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40060, "invalid request payload")
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		utils.Error(ctx, http.StatusBadRequest, 40061, "title cannot be empty")
		return
	}

	mediaType := strings.TrimSpace(req.Type)
	if mediaType != models.MediaBook && mediaType != models.MediaMovie {
		mediaType = models.MediaBook
	}

	media := models.Media{
		Title:  title,
		Type:   mediaType,
		Rating: clampRating(req.Rating),
		Review: utils.Sanitize(strings.TrimSpace(req.Review)),
	}
	if err := m.db.Create(&media).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50062, "failed to create media entry")
		return
	}

	utils.InvalidateByPrefix(mediaCachePrefix)
	utils.Success(ctx, gin.H{"media": media})
}

// Delete removes a review by id.
func (m *MediaController) Delete(ctx *gin.Context) {
	if err := m.db.Delete(&models.Media{}, ctx.Param("id")).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50063, "failed to delete media entry")
		return
	}

	utils.InvalidateByPrefix(mediaCachePrefix)
	utils.Success(ctx, gin.H{"message": "media entry deleted"})
}

func clampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}
