package authRoutes

import (
	"github.com/Magar0077/EduManage/config"
	authController "github.com/Magar0077/EduManage/controllers/auth"
	"github.com/Magar0077/EduManage/middleware"
	authValidator "github.com/Magar0077/EduManage/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	ctrl := authController.New(db, cfg)

	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), ctrl.Signup)
	authGroup.Post("/login", authValidator.Login(), ctrl.Login)
	// Logout skips the revocation lookup so a second logout stays a no-op
	authGroup.Post("/logout", middleware.SessionMiddleware(cfg), ctrl.Logout)
}
