package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/Magar0077/EduManage/config"
	"github.com/Magar0077/EduManage/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateJWT generates a session token for the user. The jti claim
// identifies the session so logout can revoke it.
func GenerateJWT(cfg *config.Config, user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId":   user.ID,
		"username": user.Username,
		"role":     string(user.Role),
		"jti":      uuid.NewString(),
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(cfg.JWTKey))
}

// JWTMiddleware checks for a valid, non-revoked session token and stores the
// caller's identity in the request context
func JWTMiddleware(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return sessionMiddleware(db, cfg, true)
}

// SessionMiddleware validates the token but skips the revocation lookup.
// Only the logout route uses it: logging out an already revoked session must
// succeed rather than 401.
func SessionMiddleware(cfg *config.Config) fiber.Handler {
	return sessionMiddleware(nil, cfg, false)
}

func sessionMiddleware(db *gorm.DB, cfg *config.Config, checkRevoked bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get the token from the Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
		}

		// The token should be prefixed with "Bearer "
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
		}

		tokenString := authHeader[len("Bearer "):]

		// Parse and validate the token
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.JWTKey), nil
		})
		if err != nil || !token.Valid {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["userId"] == nil || claims["jti"] == nil || claims["exp"] == nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
		}

		// Reject tokens that were logged out
		jti := claims["jti"].(string)
		if checkRevoked {
			var revoked models.RevokedSession
			if err := db.Where("jti = ?", jti).First(&revoked).Error; err == nil {
				return JsonResponse(c, fiber.StatusUnauthorized, false, "Session has been logged out", nil)
			}
		}

		// JWT numeric claims decode as float64
		userID := claims["userId"].(float64)
		exp := claims["exp"].(float64)

		c.Locals("userId", uint(userID))
		c.Locals("jti", jti)
		c.Locals("sessionExp", time.Unix(int64(exp), 0))

		return c.Next()
	}
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
