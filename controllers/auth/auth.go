package authController

import (
	"errors"
	"log"
	"time"

	"github.com/Magar0077/EduManage/config"
	"github.com/Magar0077/EduManage/middleware"
	"github.com/Magar0077/EduManage/models"
	authValidator "github.com/Magar0077/EduManage/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Controller struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func New(db *gorm.DB, cfg *config.Config) *Controller {
	return &Controller{DB: db, Cfg: cfg}
}

// Signup registers a new user. The first successful registration gets the
// ADMIN role; everyone after that is a student.
func (ctrl *Controller) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Check if username already exists
	if err := ctrl.DB.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already registered!", nil)
	}

	// Check if email already exists
	if err := ctrl.DB.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), ctrl.Cfg.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// The count only decides which role this insert attempts. The
	// single-admin unique index decides who actually wins a racing first
	// registration; the loser is retried as a student.
	role := models.RoleStudent
	var userCount int64
	ctrl.DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		role = models.RoleAdmin
	}

	newUser := models.User{
		Username: reqData.Username,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Role:     role,
	}

	err = ctrl.DB.Create(&newUser).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) && role == models.RoleAdmin {
		newUser.ID = 0
		newUser.Role = models.RoleStudent
		err = ctrl.DB.Create(&newUser).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// The pre-checks ran before the insert, so this is a race
			// against a concurrent signup and either index may have fired
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username or email is already registered!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

// Login verifies credentials and issues a session token
func (ctrl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := ctrl.DB.Where("username = ?", reqData.Username).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(ctrl.Cfg, &user)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout revokes the calling session. Logging out an already revoked session
// succeeds again; revocation is idempotent.
func (ctrl *Controller) Logout(c *fiber.Ctx) error {
	jti, ok := c.Locals("jti").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	exp, _ := c.Locals("sessionExp").(time.Time)

	revoked := models.RevokedSession{JTI: jti, ExpiresAt: exp}
	if err := ctrl.DB.Create(&revoked).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		log.Printf("Error revoking session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to logout!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully!", nil)
}
