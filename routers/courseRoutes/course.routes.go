package courseRoutes

import (
	"github.com/Magar0077/EduManage/config"
	controllers "github.com/Magar0077/EduManage/controllers/course"
	"github.com/Magar0077/EduManage/middleware"
	validators "github.com/Magar0077/EduManage/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCourseRoutes sets up the public catalog and user enrollment routes
func SetupCourseRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	ctrl := controllers.New(db, cfg)

	// Catalog browsing is public
	courseGroup := app.Group("/course")
	courseGroup.Get("/list", validators.CourseList(), ctrl.GetAllCourses)
	courseGroup.Get("/search", validators.SearchCourses(), ctrl.SearchCourses)
	courseGroup.Get("/:id", validators.CourseID(), ctrl.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware(db, cfg), validators.CourseID(), ctrl.EnrollInCourse)

	// User dashboard
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware(db, cfg), ctrl.GetEnrollments)
}
