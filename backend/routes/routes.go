package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"braingrow/backend/config"
	"braingrow/backend/controllers"
	"braingrow/backend/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/register", authController.Register)
	app.Post("/api/signup", authController.Signup)
	app.Post("/api/login", authController.Login)
	app.Get("/api/check-auth", authController.CheckAuth)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	app.Post("/api/logout", authMiddleware, authController.Logout)

	// Video routes
	videoController := controllers.NewVideoController(db, cfg)
	app.Get("/api/tags", videoController.GetTags)
	app.Get("/api/search", videoController.Search)
	app.Get("/api/video/:id", videoController.GetVideo)
	app.Post("/api/videos", authMiddleware, videoController.CreateVideo)
	app.Post("/api/videos/:id/reaction", authMiddleware, videoController.React)
	app.Get("/api/add-sample-data", videoController.AddSampleData)

	// Comments
	commentsController := controllers.NewCommentsController(db, cfg)
	app.Get("/api/videos/:id/comments", commentsController.GetComments)
	app.Post("/api/videos/:id/comments", authMiddleware, commentsController.AddComment)

	// Question answering
	askController := controllers.NewAskController(db, cfg)
	app.Post("/api/videos/:id/ask", askController.AskVideoQuestion)

	// Profile routes
	userController := controllers.NewUserController(db, cfg)
	profile := app.Group("/api/profile", authMiddleware)
	profile.Get("/", userController.GetProfile)
	profile.Put("/", userController.UpdateProfile)
	profile.Put("/tendency", userController.UpdateTendency)
	profile.Put("/focus-level", userController.UpdateFocusLevel)
	profile.Post("/photo", userController.UploadPhoto)
	profile.Get("/engagement", userController.GetEngagement)

	// Watch history
	historyController := controllers.NewHistoryController(db, cfg)
	app.Post("/api/watch-history", authMiddleware, historyController.AddWatchHistory)
	app.Get("/api/watch-history", authMiddleware, historyController.ListWatchHistory)

	// Recommendation feed: personalized with a token, random without
	feedController := controllers.NewFeedController(db, cfg)
	app.Get("/api/recommendations", feedController.GetRecommendations)

	// Uploaded profile photos
	app.Static("/static/uploads", cfg.UploadDir)
}
