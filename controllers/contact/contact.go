package contactController

import (
	"log"

	"github.com/Magar0077/EduManage/config"
	"github.com/Magar0077/EduManage/middleware"
	"github.com/Magar0077/EduManage/models"
	"github.com/Magar0077/EduManage/utils"
	contactValidator "github.com/Magar0077/EduManage/validators/contact"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func New(db *gorm.DB, cfg *config.Config) *Controller {
	return &Controller{DB: db, Cfg: cfg}
}

// Contact stores an admissions inquiry and mails it to the admissions office
// in the background
func (ctrl *Controller) Contact(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*contactValidator.ContactRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	msg := models.ContactMessage{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Message: reqData.Message,
	}

	if err := ctrl.DB.Create(&msg).Error; err != nil {
		log.Printf("Error saving contact message: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send your inquiry!", nil)
	}

	if ctrl.Cfg.SendGridKey != "" {
		go func(m models.ContactMessage) {
			if err := utils.SendContactEmail(ctrl.Cfg, &m); err != nil {
				log.Printf("Error sending admissions email: %v", err)
			}
		}(msg)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Thank you! Your inquiry has been sent to the Admissions Office.", msg)
}
