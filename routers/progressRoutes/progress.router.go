package progressRoutes

import (
	progressControllers "edulan/controllers/progress"
	"edulan/middleware"
	classroomValidators "edulan/validators/classroom"
	progressValidators "edulan/validators/progress"

	"github.com/gofiber/fiber/v2"
)

func SetupProgressRoutes(app *fiber.App) {
	api := app.Group("/api", middleware.JWTMiddleware)

	api.Post("/enrollments", progressValidators.Enroll(), progressControllers.Enroll)
	api.Get("/enrollments/user/:user_id", classroomValidators.RequireParam("user_id"), progressControllers.GetUserEnrollments)

	api.Post("/progress/update", progressValidators.UpdateProgress(), progressControllers.UpdateProgress)
	api.Get("/progress/user/:user_id/class/:class_id",
		classroomValidators.RequireParam("user_id"),
		classroomValidators.RequireParam("class_id"),
		progressControllers.GetClassProgress)
	api.Get("/progress/:user_id", classroomValidators.RequireParam("user_id"), progressControllers.GetProgress)
}
