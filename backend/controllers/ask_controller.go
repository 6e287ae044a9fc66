package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"braingrow/backend/ai"
	"braingrow/backend/config"
	"braingrow/backend/recommend"
	"braingrow/backend/stores"
	"braingrow/backend/utils"
)

type AskController struct {
	Cfg           *config.Config
	Videos        recommend.CatalogStore
	Assistant     ai.Assistant
	Conversations *ai.Conversations
}

func NewAskController(db *gorm.DB, cfg *config.Config) *AskController {
	return &AskController{
		Cfg:           cfg,
		Videos:        stores.NewVideoStore(db),
		Assistant:     ai.NewClient(cfg.AIEndpoint, cfg.AIModel, cfg.AIAPIKey),
		Conversations: ai.NewConversations(),
	}
}

// AskVideoQuestion godoc
// @Summary Ask a question about a video
// @Description Forwards the video and question to the answering service, resuming the per-user conversation
// @Tags videos
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Router /api/videos/{id}/ask [post]
func (qc *AskController) AskVideoQuestion(c *fiber.Ctx) error {
	videoID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid video ID")
	}

	var input struct {
		Question string `json:"question"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Question == "" {
		return utils.BadRequest(c, "Question text required")
	}

	video, err := qc.Videos.GetByID(c.Context(), uint(videoID))
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if video == nil {
		return utils.NotFound(c, "Video not found")
	}

	// Conversations resume per user and video; anonymous callers share a
	// single thread per video.
	userID := utils.OptionalUserID(c, qc.Cfg)
	history := qc.Conversations.History(userID, video.ID)

	answer, err := qc.Assistant.AnswerQuestion(c.Context(), video.URL, input.Question, history)
	if err != nil {
		if errors.Is(err, ai.ErrMissingCredentials) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
				"code":  "NO_CREDENTIALS",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	qc.Conversations.Record(userID, video.ID, input.Question, answer)

	return c.JSON(fiber.Map{
		"question": input.Question,
		"answer":   answer,
	})
}
