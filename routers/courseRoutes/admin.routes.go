package courseRoutes

import (
	"github.com/Magar0077/EduManage/config"
	controllers "github.com/Magar0077/EduManage/controllers/course"
	"github.com/Magar0077/EduManage/middleware"
	validators "github.com/Magar0077/EduManage/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupAdminCourseRoutes sets up all admin catalog management routes.
// The admin gate runs after authentication and before any validator or
// handler touches the request.
func SetupAdminCourseRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	ctrl := controllers.New(db, cfg)

	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware(db, cfg), middleware.AdminOnly(db))

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourse(), ctrl.AdminCreateCourse)
	adminGroup.Put("/:id", validators.CourseID(), validators.UpdateCourse(), ctrl.AdminUpdateCourse)
	adminGroup.Delete("/:id", validators.CourseID(), ctrl.AdminDeleteCourse)

	// Module Management
	adminGroup.Post("/:id/module", validators.CourseID(), validators.CreateModule(), ctrl.AdminCreateModule)
	adminGroup.Get("/:id/modules", validators.CourseID(), ctrl.AdminListModules)
}
