package controllers

import (
	"errors"
	"log"

	"github.com/Magar0077/EduManage/middleware"
	"github.com/Magar0077/EduManage/models"
	"github.com/Magar0077/EduManage/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollInCourse enrolls the caller in a course. Enrolling twice is a benign
// no-op: the existing record is returned and no second row is created. The
// unique (user_id, course_id) index is the source of truth, so a racing
// duplicate insert lands in the same already-enrolled answer.
func (ctrl *Controller) EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := ctrl.DB.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := ctrl.DB.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Fast path for the common repeat click
	var existing models.Enrollment
	if err := ctrl.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Already enrolled in "+course.Title+"!", existing)
	}

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: uint(courseID),
	}

	if err := ctrl.DB.Omit("Course").Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent enroll for the same pair
			ctrl.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing)
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Already enrolled in "+course.Title+"!", existing)
		}
		log.Printf("Error creating enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	if ctrl.Cfg.EnrollmentWebhookURL != "" {
		go utils.NotifyEnrollment(ctrl.Cfg.EnrollmentWebhookURL, user.Username, course.Code, course.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the caller's enrollments with joined course data
func (ctrl *Controller) GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []models.Enrollment
	if err := ctrl.DB.Where("user_id = ?", userID).Preload("Course").Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}
