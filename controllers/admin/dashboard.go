package adminController

import (
	"edulan/database"
	"edulan/middleware"
	"edulan/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// GetDashboard returns aggregate counts for the admin overview.
func GetDashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalClasses, totalSubjects, totalChapters int64
	var totalContent, totalEnrollments, signupsToday int64

	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.Class{}).Where("is_deleted = ?", false).Count(&totalClasses)
	db.Model(&models.Subject{}).Where("is_deleted = ?", false).Count(&totalSubjects)
	db.Model(&models.Chapter{}).Where("is_deleted = ?", false).Count(&totalChapters)
	db.Model(&models.Content{}).Where("is_deleted = ?", false).Count(&totalContent)
	db.Model(&models.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)

	today := now.BeginningOfDay()
	db.Model(&models.User{}).Where("is_deleted = ? AND created_at >= ?", false, today).Count(&signupsToday)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully.", fiber.Map{
		"total_users":       totalUsers,
		"total_classes":     totalClasses,
		"total_subjects":    totalSubjects,
		"total_chapters":    totalChapters,
		"total_content":     totalContent,
		"total_enrollments": totalEnrollments,
		"signups_today":     signupsToday,
	})
}
