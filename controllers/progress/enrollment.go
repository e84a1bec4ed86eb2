package progressController

import (
	"edulan/database"
	"edulan/middleware"
	"edulan/models"
	"edulan/utils"
	progressValidator "edulan/validators/progress"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func Enroll(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedEnroll").(*progressValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var class models.Class
	if err := db.Where("public_id = ? AND is_deleted = ?", reqData.ClassID, false).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	// Check if user is already enrolled
	var existing models.Enrollment
	if err := db.Where("user_id = ? AND class_id = ? AND is_deleted = ?", userID, class.ID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this class!", nil)
	}

	enrollment := models.Enrollment{
		PublicID: uuid.NewString(),
		UserID:   userID,
		UserRef:  user.PublicID,
		ClassID:  class.ID,
		ClassRef: class.PublicID,
	}
	enrollment.TotalChapters = int(countClassChapters(db, class.ID))

	if err := db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in class!", nil)
	}

	// Best-effort notification, never blocks the response
	go func(email, name, className string) {
		if err := utils.SendEnrollmentEmail(email, name, className); err != nil {
			log.Printf("Error sending enrollment email: %v", err)
		}
	}(user.Email, user.Name, class.Name)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in class successfully!", enrollment)
}

func GetUserEnrollments(c *fiber.Ctx) error {
	currentRef, ok := c.Locals("publicId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	userID, ok := c.Locals("user_id").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	if userID != currentRef {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("user_ref = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}
