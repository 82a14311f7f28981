package testutils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Magar0077/EduManage/config"
	"github.com/Magar0077/EduManage/database"
	authRoutes "github.com/Magar0077/EduManage/routers/authRoutes"
	contactRoutes "github.com/Magar0077/EduManage/routers/contactRoutes"
	courseRoutes "github.com/Magar0077/EduManage/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Envelope is the JSON response wrapper every handler answers with
type Envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Setup builds the full application over an in-memory sqlite store
func Setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A fresh connection would see a fresh empty :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		Port:      "3000",
		JWTKey:    "test-secret-key",
		SaltRound: bcrypt.MinCost,
	}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, db, cfg)
	courseRoutes.SetupCourseRoutes(app, db, cfg)
	courseRoutes.SetupAdminCourseRoutes(app, db, cfg)
	contactRoutes.SetupContactRoutes(app, db, cfg)

	return app, db
}

// DoJSON performs a request against the app and decodes the response envelope
func DoJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, Envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

	return resp.StatusCode, env
}

// Register signs up a user through the API
func Register(t *testing.T, app *fiber.App, username, email, password string) Envelope {
	t.Helper()

	code, env := DoJSON(t, app, http.MethodPost, "/auth/signup", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, code, "signup failed: %s", env.Message)
	return env
}

// Login authenticates through the API and returns the session token
func Login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()

	code, env := DoJSON(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, code, "login failed: %s", env.Message)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

// RegisterAndLogin signs up a user and returns a session token for it
func RegisterAndLogin(t *testing.T, app *fiber.App, username, email, password string) string {
	t.Helper()

	Register(t, app, username, email, password)
	return Login(t, app, username, password)
}
