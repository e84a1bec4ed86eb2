package classroomRoutes

import (
	classroomControllers "edulan/controllers/classroom"
	"edulan/middleware"
	classroomValidators "edulan/validators/classroom"

	"github.com/gofiber/fiber/v2"
)

// SetupClassroomRoutes wires the class -> subject -> chapter tree.
func SetupClassroomRoutes(app *fiber.App) {
	api := app.Group("/api", middleware.JWTMiddleware)

	api.Post("/classes/create", classroomValidators.CreateClass(), classroomControllers.CreateClass)
	api.Get("/classes", classroomControllers.GetClasses)

	api.Post("/subjects/create", classroomValidators.CreateSubject(), classroomControllers.CreateSubject)
	api.Get("/subjects/:class_id", classroomValidators.RequireParam("class_id"), classroomControllers.GetSubjects)

	api.Post("/chapters/create", classroomValidators.CreateChapter(), classroomControllers.CreateChapter)
	api.Get("/chapters/:subject_id", classroomValidators.RequireParam("subject_id"), classroomControllers.GetChapters)
	api.Get("/chapter/:chapter_id", classroomValidators.RequireParam("chapter_id"), classroomControllers.GetChapterDetails)
}
