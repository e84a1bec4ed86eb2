package classroomController

import (
	"edulan/database"
	"edulan/middleware"
	"edulan/models"
	classroomValidator "edulan/validators/classroom"

	"github.com/gofiber/fiber/v2"
)

func CreateClass(c *fiber.Ctx) error {
	creator, ok := c.Locals("publicId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedClass").(*classroomValidator.ClassRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	class := models.Class{
		PublicID:    newPublicID(),
		Name:        reqData.Name,
		Description: reqData.Description,
		Grade:       reqData.Grade,
		CreatedBy:   creator,
	}

	if err := database.Database.Db.Create(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Class created successfully.", fiber.Map{
		"class_id": class.PublicID,
	})
}

func GetClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at asc").Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully.", classes)
}
