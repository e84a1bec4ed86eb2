package contentRoutes

import (
	contentControllers "edulan/controllers/content"
	"edulan/middleware"
	classroomValidators "edulan/validators/classroom"
	contentValidators "edulan/validators/content"

	"github.com/gofiber/fiber/v2"
)

func SetupContentRoutes(app *fiber.App) {
	api := app.Group("/api", middleware.JWTMiddleware)

	api.Post("/content/create", contentValidators.CreateContent(), contentControllers.CreateContent)
	api.Post("/content/upload-file", contentValidators.UploadFile(), contentControllers.UploadFile)
	api.Get("/content/open/:content_id", classroomValidators.RequireParam("content_id"), contentControllers.OpenContent)
	api.Get("/content/:chapter_id", classroomValidators.RequireParam("chapter_id"), contentControllers.GetContent)

	// Media streaming stays unauthenticated so <video> tags and direct links
	// work without header plumbing, matching the static mount it replaces.
	app.Get("/api/media/*", contentControllers.ServeMedia)
	app.Get("/uploads/*", contentControllers.ServeMedia)
}
