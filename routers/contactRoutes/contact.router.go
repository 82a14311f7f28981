package contactRoutes

import (
	"github.com/Magar0077/EduManage/config"
	contactController "github.com/Magar0077/EduManage/controllers/contact"
	contactValidator "github.com/Magar0077/EduManage/validators/contact"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupContactRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	ctrl := contactController.New(db, cfg)

	app.Post("/contact", contactValidator.Contact(), ctrl.Contact)
}
