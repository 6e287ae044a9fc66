package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"braingrow/backend/config"
	"braingrow/backend/models"
	"braingrow/backend/utils"
)

const maxUsernameLen = 80

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a new user account from username/password
// @Tags auth
// @Accept json
// @Produce json
// @Router /api/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Email    string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Username == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username and password required",
		})
	}

	user, err := ac.createUser(input.Username, input.Password, input.Email)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "User created successfully",
		"user_id":  user.ID,
		"username": user.Username,
	})
}

// Signup godoc
// @Summary Sign up with email
// @Description Creates an account from email/password and logs it in
// @Tags auth
// @Accept json
// @Produce json
// @Router /api/signup [post]
func (ac *AuthController) Signup(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password required",
		})
	}

	// Fall back to the email local part when no display name was given.
	username := input.Name
	if username == "" {
		username = strings.SplitN(input.Email, "@", 2)[0]
	}

	user, err := ac.createUser(username, input.Password, input.Email)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	token, err := utils.GenerateJWTTokenWithTTL(user.ID, 7*24*time.Hour, ac.Cfg)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "User created successfully",
		"token":    token,
		"user_id":  user.ID,
		"username": user.Username,
	})
}

// Login godoc
// @Summary User login
// @Description Authenticate by email/password and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Router /api/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Email      string `json:"email"`
		Password   string `json:"password"`
		RememberMe bool   `json:"remember_me"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password required",
		})
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	ttl := 24 * time.Hour
	if input.RememberMe {
		ttl = 30 * 24 * time.Hour
	}
	token, err := utils.GenerateJWTTokenWithTTL(user.ID, ttl, ac.Cfg)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	return c.JSON(fiber.Map{
		"message":   "Login successful",
		"token":     token,
		"user_id":   user.ID,
		"username":  user.Username,
		"logged_in": true,
	})
}

// CheckAuth reports whether the request carries a valid token.
func (ac *AuthController) CheckAuth(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return c.JSON(fiber.Map{"authenticated": false})
	}

	var user models.User
	if err := ac.DB.First(&user, userID).Error; err != nil {
		return c.JSON(fiber.Map{"authenticated": false})
	}

	return c.JSON(fiber.Map{
		"authenticated": true,
		"user_id":       user.ID,
		"username":      user.Username,
		"login_method":  "token",
	})
}

// Logout exists for client symmetry; tokens are stateless so there is
// nothing to invalidate server-side.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "Logout successful",
		"logged_in": false,
	})
}

// createUser hashes the password and inserts the user, suffixing the
// username with _1, _2, ... until it is unique.
func (ac *AuthController) createUser(username, password, email string) (*models.User, error) {
	if email != "" {
		var count int64
		if err := ac.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return nil, errors.New("could not query database")
		}
		if count > 0 {
			return nil, errors.New("email already registered")
		}
	}

	candidate, err := ac.uniqueUsername(username)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("could not hash password")
	}

	user := models.User{
		Username:     candidate,
		PasswordHash: string(hashed),
		Email:        email,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		return nil, errors.New("could not create user")
	}
	return &user, nil
}

func (ac *AuthController) uniqueUsername(base string) (string, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		base = "user"
	}
	if len(base) > maxUsernameLen {
		base = base[:maxUsernameLen]
	}

	candidate := base
	for suffix := 1; ; suffix++ {
		var count int64
		if err := ac.DB.Model(&models.User{}).Where("username = ?", candidate).Count(&count).Error; err != nil {
			return "", errors.New("could not query database")
		}
		if count == 0 {
			return candidate, nil
		}
		tail := fmt.Sprintf("_%d", suffix)
		candidate = base
		if len(candidate)+len(tail) > maxUsernameLen {
			candidate = candidate[:maxUsernameLen-len(tail)]
		}
		candidate += tail
	}
}
