package routes

import (
	"wellspring/backend/config"
	"wellspring/backend/controllers"
	"wellspring/backend/middleware"
	"wellspring/backend/services"
	"wellspring/backend/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	streaks := services.NewStreakService(storage.NewGormStreakStore(db))

	// Auth routes
	authController := controllers.NewAuthController(db, cfg, streaks)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// Streak routes
	streakController := controllers.NewStreakController(cfg, streaks)
	app.Post("/api/streaks/checkin", authMiddleware, streakController.CheckIn)
	app.Get("/api/streaks", authMiddleware, streakController.GetStreak)

	// Profile routes
	profileController := controllers.NewProfileController(db, cfg)
	app.Get("/api/profiles/me", authMiddleware, profileController.GetProfile)
	app.Put("/api/profiles/me", authMiddleware, profileController.UpdateProfile)
	app.Get("/api/profiles/username-taken", profileController.CheckUsername)

	// Post routes
	postController := controllers.NewPostController(db, cfg)
	app.Get("/api/posts", postController.GetPosts)
	app.Get("/api/posts/:id", postController.GetPost)
	app.Post("/api/posts", authMiddleware, postController.CreatePost)

	// Comment routes
	commentsController := controllers.NewCommentsController(db, cfg)
	app.Get("/api/posts/:id/comments", commentsController.GetComments)
	app.Post("/api/posts/:id/comments", authMiddleware, commentsController.AddComment)

	// Like routes
	likesController := controllers.NewLikesController(db, cfg)
	app.Post("/api/posts/:id/like", authMiddleware, likesController.TogglePostLike)
	app.Post("/api/comments/:id/like", authMiddleware, likesController.ToggleCommentLike)
	// Older clients used a /api/likes prefix; kept as aliases
	app.Post("/api/likes/posts/:id", authMiddleware, likesController.TogglePostLike)
	app.Post("/api/likes/comments/:id", authMiddleware, likesController.ToggleCommentLike)

	// Activity catalog routes
	activityController := controllers.NewActivityController(db, cfg, streaks)
	app.Get("/api/activities", activityController.GetActivities)
	app.Get("/api/activities/:id", activityController.GetActivity)
	app.Get("/api/categories", activityController.GetCategories)
	app.Post("/api/activities/:id/complete", authMiddleware, activityController.CompleteActivity)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg, streaks)
	app.Get("/api/progress/overview", authMiddleware, progressController.GetOverview)

	// Admin moderation routes
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Delete("/posts/:id", postController.DeletePost)
	admin.Delete("/comments/:id", commentsController.DeleteComment)
}
