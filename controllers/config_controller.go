package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/sorafields/lavenderlog/config"
	"github.com/sorafields/lavenderlog/utils"
)

// ConfigController serves the UI vocabularies driven by configuration.
type ConfigController struct{}

func NewConfigController() *ConfigController { return &ConfigController{} }

// GetStickers returns the sticker palette offered for habit entries.
func (c *ConfigController) GetStickers(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"stickers": config.Get().Stickers})
}

// GetMoods returns the mood choices accepted for reflections.
func (c *ConfigController) GetMoods(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"moods": config.Get().Moods})
}
