package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"braingrow/backend/config"
	"braingrow/backend/models"
	"braingrow/backend/utils"
)

type CommentsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCommentsController(db *gorm.DB, cfg *config.Config) *CommentsController {
	return &CommentsController{DB: db, Cfg: cfg}
}

// GetComments godoc
// @Summary Get video comments
// @Description Returns all comments for a video, newest first
// @Tags comments
// @Produce json
// @Param id path int true "Video ID"
// @Router /api/videos/{id}/comments [get]
func (cc *CommentsController) GetComments(c *fiber.Ctx) error {
	videoID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid video ID")
	}

	var count int64
	if err := cc.DB.Model(&models.Video{}).Where("id = ?", videoID).Count(&count).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if count == 0 {
		return utils.NotFound(c, "Video not found")
	}

	var comments []models.Comment
	if err := cc.DB.Where("video_id = ?", videoID).Order("created_at DESC").Find(&comments).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch comments")
	}
	return c.JSON(comments)
}

// AddComment godoc
// @Summary Add comment to video
// @Description Adds a comment; requires an authenticated user
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Security ApiKeyAuth
// @Router /api/videos/{id}/comments [post]
func (cc *CommentsController) AddComment(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	videoID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid video ID")
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Text == "" {
		return utils.BadRequest(c, "Comment text required")
	}

	var video models.Video
	if err := cc.DB.First(&video, videoID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFound(c, "Video not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	comment := models.Comment{
		Text:    input.Text,
		UserID:  userID,
		VideoID: video.ID,
	}
	if err := cc.DB.Create(&comment).Error; err != nil {
		return utils.InternalServerError(c, "Could not create comment")
	}

	return c.JSON(fiber.Map{
		"message": "Comment added successfully",
		"comment": comment,
	})
}
