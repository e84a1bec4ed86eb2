package assignmentRoutes

import (
	assignmentControllers "edulan/controllers/assignment"
	"edulan/middleware"
	assignmentValidators "edulan/validators/assignment"
	classroomValidators "edulan/validators/classroom"

	"github.com/gofiber/fiber/v2"
)

func SetupAssignmentRoutes(app *fiber.App) {
	api := app.Group("/api", middleware.JWTMiddleware)

	api.Post("/assignments/create", assignmentValidators.CreateAssignment(), assignmentControllers.CreateAssignment)
	api.Get("/assignments/:chapter_id", classroomValidators.RequireParam("chapter_id"), assignmentControllers.GetAssignments)

	api.Post("/quizzes/create", assignmentValidators.CreateQuiz(), assignmentControllers.CreateQuiz)
	api.Get("/quizzes/:chapter_id", classroomValidators.RequireParam("chapter_id"), assignmentControllers.GetQuizzes)
}
