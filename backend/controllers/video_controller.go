package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"braingrow/backend/config"
	"braingrow/backend/models"
	"braingrow/backend/stores"
	"braingrow/backend/taxonomy"
	"braingrow/backend/utils"
)

type VideoController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Videos  *stores.VideoStore
	Catalog taxonomy.Catalog
}

func NewVideoController(db *gorm.DB, cfg *config.Config) *VideoController {
	return &VideoController{
		DB:      db,
		Cfg:     cfg,
		Videos:  stores.NewVideoStore(db),
		Catalog: taxonomy.Default(),
	}
}

// GetTags exposes the board/topic/keyword catalog so frontends can build
// tendency selection UIs.
func (vc *VideoController) GetTags(c *fiber.Ctx) error {
	return c.JSON(vc.Catalog)
}

// Search godoc
// @Summary Search videos
// @Description Substring search over title and tags
// @Tags videos
// @Produce json
// @Param query query string true "Search query"
// @Param maxVideo query int false "Result limit" default(5)
// @Router /api/search [get]
func (vc *VideoController) Search(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return utils.BadRequest(c, "Query parameter is required")
	}
	limit := c.QueryInt("maxVideo", 5)

	videos, err := vc.Videos.Search(c.Context(), query, limit)
	if err != nil {
		return utils.InternalServerError(c, "Could not search videos")
	}
	return c.JSON(videos)
}

// GetVideo returns one video by id.
func (vc *VideoController) GetVideo(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid video ID")
	}

	video, err := vc.Videos.GetByID(c.Context(), uint(id))
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if video == nil {
		return utils.NotFound(c, "Video not found")
	}
	return c.JSON(video)
}

// CreateVideo ingests a new catalog entry with optional board/topic
// classification.
func (vc *VideoController) CreateVideo(c *fiber.Ctx) error {
	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Tags        string `json:"tags"`
		ImageURL    string `json:"imageUrl"`
		Board       string `json:"board"`
		Topic       string `json:"topic"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" || input.URL == "" {
		return utils.BadRequest(c, "Title and url required")
	}

	video := models.Video{
		Title:       input.Title,
		Description: input.Description,
		URL:         input.URL,
		Tags:        input.Tags,
		ImageURL:    input.ImageURL,
		Board:       input.Board,
		Topic:       input.Topic,
	}
	if err := vc.DB.Create(&video).Error; err != nil {
		return utils.InternalServerError(c, "Could not create video")
	}

	return c.Status(fiber.StatusCreated).JSON(video)
}

// React godoc
// @Summary React to a video
// @Description Increments the like or dislike counter
// @Tags videos
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Router /api/videos/{id}/reaction [post]
func (vc *VideoController) React(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid video ID")
	}

	var input struct {
		Type string `json:"type"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Type != "like" && input.Type != "dislike" {
		return utils.BadRequest(c, "Reaction type must be like or dislike")
	}

	if err := vc.Videos.React(c.Context(), uint(id), input.Type == "like"); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Video not found")
		}
		return utils.InternalServerError(c, "Could not record reaction")
	}

	video, err := vc.Videos.GetByID(c.Context(), uint(id))
	if err != nil || video == nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(fiber.Map{
		"message":  "Reaction recorded",
		"likes":    video.Likes,
		"dislikes": video.Dislikes,
	})
}

// AddSampleData seeds a handful of classified videos for local development.
func (vc *VideoController) AddSampleData(c *fiber.Ctx) error {
	var count int64
	if err := vc.DB.Model(&models.Video{}).Count(&count).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if count > 0 {
		return c.JSON(fiber.Map{"message": "Sample data already exists", "count": count})
	}

	samples := []models.Video{
		{Title: "Algebra for Beginners", Description: "Intro to algebraic expressions", URL: "https://youtube.com/watch?v=alg1", ImageURL: "https://example.com/algebra.jpg", Board: "math", Topic: "algebra", Tags: "math,algebra,beginner"},
		{Title: "What is AI?", Description: "Basics of Artificial Intelligence", URL: "https://youtube.com/watch?v=ai1", ImageURL: "https://example.com/ai.jpg", Board: "science", Topic: "ai", Tags: "science,ai,ml"},
		{Title: "Grammar Essentials", Description: "English grammar fundamentals", URL: "https://youtube.com/watch?v=eng1", ImageURL: "https://example.com/grammar.jpg", Board: "english", Topic: "grammar", Tags: "english,grammar"},
	}
	if err := vc.DB.Create(&samples).Error; err != nil {
		return utils.InternalServerError(c, "Could not create sample data")
	}

	return c.JSON(fiber.Map{"message": "Sample data added successfully", "count": len(samples)})
}
