package courseValidator

import (
	"strconv"
	"strings"

	"github.com/Magar0077/EduManage/middleware"

	"github.com/gofiber/fiber/v2"
)

type CourseRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Code        string `json:"code" validate:"required,min=3,max=20"`
	Category    string `json:"category" validate:"max=50"`
	Instructor  string `json:"instructor" validate:"max=100"`
	Year        int    `json:"year"`
	Description string `json:"description"`
}

type ListFilter struct {
	Category string
	Year     *int
}

// CourseID validates the :id route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CourseList validates the optional single-dimension catalog filter
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := &ListFilter{Category: strings.TrimSpace(c.Query("category"))}

		if yearStr := strings.TrimSpace(c.Query("year")); yearStr != "" {
			year, err := strconv.Atoi(yearStr)
			if err != nil || year <= 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid year filter!", nil)
			}
			filter.Year = &year
		}

		if filter.Category != "" && filter.Year != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Filter by either category or year, not both!", nil)
		}

		c.Locals("validatedList", filter)
		return c.Next()
	}
}

// SearchCourses accepts any q value; an empty query means the full catalog
func SearchCourses() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("searchQuery", strings.TrimSpace(c.Query("q")))
		return c.Next()
	}
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Code = strings.TrimSpace(reqData.Code)

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Code = strings.TrimSpace(reqData.Code)

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
