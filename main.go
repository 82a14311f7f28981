package main

import (
	"log"

	"github.com/Magar0077/EduManage/config"
	"github.com/Magar0077/EduManage/database"
	authRoutes "github.com/Magar0077/EduManage/routers/authRoutes"
	contactRoutes "github.com/Magar0077/EduManage/routers/contactRoutes"
	courseRoutes "github.com/Magar0077/EduManage/routers/courseRoutes"
	"github.com/Magar0077/EduManage/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, db, cfg)
	courseRoutes.SetupCourseRoutes(app, db, cfg)
	courseRoutes.SetupAdminCourseRoutes(app, db, cfg)
	contactRoutes.SetupContactRoutes(app, db, cfg)

	cleanup := utils.StartSessionCleanup(db)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		cleanup.Stop()
		log.Fatalf("Server stopped: %v", err)
	}
}
