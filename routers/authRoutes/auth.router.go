package authRoutes

import (
	authControllers "edulan/controllers/auth"
	"edulan/middleware"
	authValidators "edulan/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/user", middleware.JWTMiddleware, authControllers.CurrentUser)
}
