package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"braingrow/backend/config"
)

func jwtTestConfig() *config.Config {
	return &config.Config{JWTSecret: "testsecret"}
}

func extractFromHeader(t *testing.T, cfg *config.Config, header string) (uint, error) {
	t.Helper()
	app := fiber.New()
	var (
		userID uint
		err    error
	)
	app.Get("/", func(c *fiber.Ctx) error {
		userID, err = ExtractUserIDFromToken(c, cfg)
		return c.SendStatus(fiber.StatusOK)
	})
	req := httptest.NewRequest("GET", "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	_, testErr := app.Test(req)
	require.NoError(t, testErr)
	return userID, err
}

func TestGenerateAndExtractToken(t *testing.T) {
	cfg := jwtTestConfig()
	token, err := GenerateJWTToken(42, cfg)
	require.NoError(t, err)

	userID, err := extractFromHeader(t, cfg, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)

	// The Bearer prefix is optional.
	userID, err = extractFromHeader(t, cfg, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestExtractTokenFailures(t *testing.T) {
	cfg := jwtTestConfig()

	_, err := extractFromHeader(t, cfg, "")
	assert.Error(t, err)

	_, err = extractFromHeader(t, cfg, "Bearer not-a-token")
	assert.Error(t, err)

	otherCfg := &config.Config{JWTSecret: "othersecret"}
	token, err := GenerateJWTToken(42, otherCfg)
	require.NoError(t, err)
	_, err = extractFromHeader(t, cfg, "Bearer "+token)
	assert.Error(t, err)

	expired, err := GenerateJWTTokenWithTTL(42, -time.Hour, cfg)
	require.NoError(t, err)
	_, err = extractFromHeader(t, cfg, "Bearer "+expired)
	assert.Error(t, err)
}

func TestOptionalUserID(t *testing.T) {
	cfg := jwtTestConfig()
	token, err := GenerateJWTToken(7, cfg)
	require.NoError(t, err)

	app := fiber.New()
	var got uint
	app.Get("/", func(c *fiber.Ctx) error {
		got = OptionalUserID(c, cfg)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	_, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, uint(7), got)

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	_, err = app.Test(req)
	require.NoError(t, err)
	assert.Zero(t, got)
}
