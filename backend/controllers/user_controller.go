package controllers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"braingrow/backend/config"
	"braingrow/backend/models"
	"braingrow/backend/recommend"
	"braingrow/backend/stores"
	"braingrow/backend/taxonomy"
	"braingrow/backend/tendency"
	"braingrow/backend/utils"
)

type UserController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Catalog taxonomy.Catalog
	Videos  *stores.VideoStore
	History *stores.WatchHistoryStore
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{
		DB:      db,
		Cfg:     cfg,
		Catalog: taxonomy.Default(),
		Videos:  stores.NewVideoStore(db),
		History: stores.NewWatchHistoryStore(db),
	}
}

func (uc *UserController) currentUser(c *fiber.Ctx) (*models.User, error) {
	userID, err := utils.ExtractUserIDFromToken(c, uc.Cfg)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile returns the authenticated user's profile.
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	user, err := uc.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}
	return c.JSON(fiber.Map{
		"user_id":    user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"tendency":   user.Tendency,
		"focusLevel": user.FocusLevel,
		"photoUrl":   user.PhotoURL,
		"created_at": user.CreatedAt,
	})
}

// UpdateProfile changes username and/or photo URL.
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	user, err := uc.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var input struct {
		Username *string `json:"username"`
		PhotoURL *string `json:"photoUrl"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Username != nil && *input.Username != user.Username {
		var count int64
		if err := uc.DB.Model(&models.User{}).Where("username = ?", *input.Username).Count(&count).Error; err != nil {
			return utils.InternalServerError(c, "Could not query database")
		}
		if count > 0 {
			return utils.BadRequest(c, "Username already taken")
		}
		user.Username = *input.Username
	}
	if input.PhotoURL != nil {
		user.PhotoURL = *input.PhotoURL
	}

	if err := uc.DB.Save(user).Error; err != nil {
		return utils.InternalServerError(c, "Could not update profile")
	}

	return c.JSON(fiber.Map{
		"user_id":    user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"tendency":   user.Tendency,
		"focusLevel": user.FocusLevel,
		"photoUrl":   user.PhotoURL,
		"created_at": user.CreatedAt,
	})
}

// UpdateTendency godoc
// @Summary Update interest keywords
// @Description Accepts tendency(string), tags(array) or selected(board->topics) and stores the normalized keyword list
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Router /api/profile/tendency [put]
func (uc *UserController) UpdateTendency(c *fiber.Ctx) error {
	user, err := uc.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var input struct {
		Tendency  string              `json:"tendency"`
		Tags      []string            `json:"tags"`
		Selected  map[string][]string `json:"selected"`
		Selection map[string][]string `json:"selection"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	selected := input.Selected
	if selected == nil {
		selected = input.Selection
	}

	keywords, serialized, err := tendency.Normalize(tendency.Input{
		Raw:      input.Tendency,
		Tags:     input.Tags,
		Selected: selected,
	}, uc.Catalog)
	if err != nil {
		if errors.Is(err, tendency.ErrInvalidInput) {
			return utils.BadRequest(c, "Provide one of: tendency(string), tags(array), selected(object)")
		}
		return utils.InternalServerError(c, "Could not normalize tendency")
	}

	if err := uc.DB.Model(user).Update("tendency", serialized).Error; err != nil {
		return utils.InternalServerError(c, "Could not update tendency")
	}

	return c.JSON(fiber.Map{
		"message":  "Tendency updated",
		"tendency": serialized,
		"keywords": keywords,
	})
}

// UpdateFocusLevel stores the user's attentiveness level, clamped to [0,1].
func (uc *UserController) UpdateFocusLevel(c *fiber.Ctx) error {
	user, err := uc.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var input struct {
		FocusLevel *float64 `json:"focusLevel"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.FocusLevel == nil {
		return utils.BadRequest(c, "focusLevel required")
	}

	level := *input.FocusLevel
	if level < 0 {
		level = 0
	} else if level > 1 {
		level = 1
	}

	if err := uc.DB.Model(user).Update("focus_level", level).Error; err != nil {
		return utils.InternalServerError(c, "Could not update focus level")
	}

	return c.JSON(fiber.Map{
		"message":    "Focus level updated",
		"focusLevel": level,
	})
}

// UploadPhoto stores a profile photo under the uploads directory and saves
// its public path on the user.
func (uc *UserController) UploadPhoto(c *fiber.Ctx) error {
	user, err := uc.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return utils.BadRequest(c, "No photo file provided")
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".png"
	}
	name := fmt.Sprintf("user%d_%s%s", user.ID, uuid.NewString(), ext)

	if err := os.MkdirAll(uc.Cfg.UploadDir, 0o755); err != nil {
		return utils.InternalServerError(c, "Could not prepare upload directory")
	}
	if err := c.SaveFile(file, filepath.Join(uc.Cfg.UploadDir, name)); err != nil {
		return utils.InternalServerError(c, "Could not save photo")
	}

	publicURL := "/static/uploads/" + name
	if err := uc.DB.Model(user).Update("photo_url", publicURL).Error; err != nil {
		return utils.InternalServerError(c, "Could not save photo")
	}

	return c.JSON(fiber.Map{"photoUrl": publicURL})
}

// GetEngagement summarizes the user's watch history per board and topic,
// with the blended preference score the engine uses.
func (uc *UserController) GetEngagement(c *fiber.Ctx) error {
	user, err := uc.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	history, err := uc.History.ListForUser(c.Context(), user.ID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	profile, err := recommend.BuildProfile(c.Context(), history, uc.Videos)
	if err != nil {
		return utils.InternalServerError(c, "Could not build profile")
	}

	return c.JSON(fiber.Map{
		"topTopic":   profile.TopTopic(),
		"focusLevel": user.EffectiveFocusLevel(),
		"boards":     profile.BoardEngagement(),
		"topics":     profile.TopicEngagement(),
	})
}
