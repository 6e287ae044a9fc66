package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"braingrow/backend/config"
	"braingrow/backend/stores"
	"braingrow/backend/utils"
)

type HistoryController struct {
	Cfg     *config.Config
	Videos  *stores.VideoStore
	History *stores.WatchHistoryStore
}

func NewHistoryController(db *gorm.DB, cfg *config.Config) *HistoryController {
	return &HistoryController{
		Cfg:     cfg,
		Videos:  stores.NewVideoStore(db),
		History: stores.NewWatchHistoryStore(db),
	}
}

// AddWatchHistory godoc
// @Summary Record a watch session
// @Description Appends a watch event with optional progress and focus sample in [0,1]
// @Tags history
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Router /api/watch-history [post]
func (hc *HistoryController) AddWatchHistory(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, hc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var input struct {
		VideoID     uint     `json:"video_id"`
		Progress    *float64 `json:"progress"`
		FocusSample *float64 `json:"focus_sample"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.VideoID == 0 {
		return utils.BadRequest(c, "video_id required")
	}

	video, err := hc.Videos.GetByID(c.Context(), input.VideoID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if video == nil {
		return utils.NotFound(c, "Video not found")
	}

	entry, err := hc.History.Append(c.Context(), userID, input.VideoID, input.Progress, input.FocusSample)
	if err != nil {
		return utils.InternalServerError(c, "Could not record watch history")
	}

	return c.JSON(fiber.Map{
		"message": "Watch history recorded",
		"id":      entry.ID,
	})
}

// ListWatchHistory returns the user's watch log, newest first.
func (hc *HistoryController) ListWatchHistory(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, hc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	entries, err := hc.History.ListForUser(c.Context(), userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(entries)
}
