package controllers

import (
	"github.com/Magar0077/EduManage/config"
	"github.com/Magar0077/EduManage/middleware"
	"github.com/Magar0077/EduManage/models"
	courseValidator "github.com/Magar0077/EduManage/validators/course"

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

// GetAllCourses lists the catalog, optionally narrowed by category or year
func (ctrl *Controller) GetAllCourses(c *fiber.Ctx) error {
	filter, _ := c.Locals("validatedList").(*courseValidator.ListFilter)

	db := ctrl.DB.Model(&models.Course{})
	if filter != nil {
		if filter.Category != "" {
			db = db.Where("category = ?", filter.Category)
		} else if filter.Year != nil {
			db = db.Where("year = ?", *filter.Year)
		}
	}

	var courses []models.Course
	if err := db.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// SearchCourses matches the query as a substring of title or code. An empty
// query returns the whole catalog.
func (ctrl *Controller) SearchCourses(c *fiber.Ctx) error {
	query, _ := c.Locals("searchQuery").(string)

	var courses []models.Course
	db := ctrl.DB.Model(&models.Course{})
	if query != "" {
		pattern := "%" + query + "%"
		db = db.Where("title LIKE ? OR code LIKE ?", pattern, pattern)
	}
	if err := db.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to search courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"query":   query,
	})
}

// GetCourseDetails returns a course with its modules and enrollment count
func (ctrl *Controller) GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := ctrl.DB.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []models.Module
	ctrl.DB.Where("course_id = ?", courseID).Order("order_index asc").Find(&modules)

	var enrollmentCount int64
	ctrl.DB.Model(&models.Enrollment{}).Where("course_id = ?", courseID).Count(&enrollmentCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":           course,
		"modules":          modules,
		"enrollment_count": enrollmentCount,
	})
}
