package main

import (
	"edulan/config"
	"edulan/database"
	adminRoutes "edulan/routers/adminRoutes"
	assignmentRoutes "edulan/routers/assignmentRoutes"
	authRoutes "edulan/routers/authRoutes"
	classroomRoutes "edulan/routers/classroomRoutes"
	contentRoutes "edulan/routers/contentRoutes"
	progressRoutes "edulan/routers/progressRoutes"
	"edulan/utils"
	"log"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Upload buckets must exist before the first multipart request
	for _, bucket := range []string{"images", "videos", "documents"} {
		if err := os.MkdirAll(filepath.Join(config.AppConfig.UploadDir, bucket), 0755); err != nil {
			log.Fatalf("Failed to create upload directory: %v", err)
		}
	}

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

	authRoutes.SetupAuthRoutes(app)
	classroomRoutes.SetupClassroomRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	assignmentRoutes.SetupAssignmentRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	sweeper := utils.InitializeAvailabilitySweep()
	defer sweeper.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
