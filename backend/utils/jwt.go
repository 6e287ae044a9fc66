package utils

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"braingrow/backend/config"
)

// DefaultTokenTTL is the token lifetime unless the client asks to be
// remembered.
const DefaultTokenTTL = 72 * time.Hour

func GenerateJWTToken(userID uint, cfg *config.Config) (string, error) {
	return GenerateJWTTokenWithTTL(userID, DefaultTokenTTL, cfg)
}

func GenerateJWTTokenWithTTL(userID uint, ttl time.Duration, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func ExtractUserIDFromToken(c *fiber.Ctx, cfg *config.Config) (uint, error) {
	tokenString := c.Get("Authorization")
	if tokenString == "" {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Missing authorization token")
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}

	return uint(userIDFloat), nil
}

// OptionalUserID returns the authenticated user id, or 0 when the request
// carries no usable token. Endpoints that serve both anonymous and
// personalized responses use this instead of failing with 401.
func OptionalUserID(c *fiber.Ctx, cfg *config.Config) uint {
	userID, err := ExtractUserIDFromToken(c, cfg)
	if err != nil {
		return 0
	}
	return userID
}
