package adminRoutes

import (
	adminControllers "edulan/controllers/admin"
	"edulan/middleware"
	"edulan/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/dashboard", adminControllers.GetDashboard)
	adminGroup.Post("/content/audit-links", adminControllers.AuditContentLinks)
}
