package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"braingrow/backend/config"
	"braingrow/backend/recommend"
	"braingrow/backend/stores"
	"braingrow/backend/utils"
)

type FeedController struct {
	Cfg    *config.Config
	Engine *recommend.Engine
}

func NewFeedController(db *gorm.DB, cfg *config.Config) *FeedController {
	engine := recommend.NewEngine(
		stores.NewVideoStore(db),
		stores.NewWatchHistoryStore(db),
		stores.NewUserStore(db),
		recommend.WithRandomRatio(cfg.RecoRandomRatio),
	)
	return &FeedController{Cfg: cfg, Engine: engine}
}

// GetRecommendations godoc
// @Summary Recommendation feed
// @Description Personalized when a valid bearer token is present, random otherwise
// @Tags feed
// @Produce json
// @Param maxVideo query int false "Feed size" default(10)
// @Router /api/recommendations [get]
func (fc *FeedController) GetRecommendations(c *fiber.Ctx) error {
	limit := c.QueryInt("maxVideo", 10)
	if limit <= 0 {
		return utils.BadRequest(c, "maxVideo must be positive")
	}

	// An invalid or absent token degrades to the anonymous feed rather
	// than failing the request.
	userID := utils.OptionalUserID(c, fc.Cfg)

	videos, err := fc.Engine.Recommend(c.Context(), userID, limit)
	if err != nil {
		return utils.InternalServerError(c, "Could not compute recommendations")
	}
	return c.JSON(videos)
}
