package progressController

import (
	"edulan/database"
	"edulan/middleware"
	"edulan/models"
	"edulan/utils"
	progressValidator "edulan/validators/progress"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpdateProgress upserts the (user, chapter) completion record and
// recomputes the cached enrollment percentage in the same transaction, so
// two simultaneous updates for the same pair cannot leave the cache stale.
func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*progressValidator.ProgressUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var chapter models.Chapter
	if err := db.Where("public_id = ? AND is_deleted = ?", reqData.ChapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	var completedClass *models.Class

	err := db.Transaction(func(tx *gorm.DB) error {
		record := models.Progress{
			UserID:     userID,
			UserRef:    user.PublicID,
			ChapterID:  chapter.ID,
			ChapterRef: chapter.PublicID,
			Completed:  *reqData.Completed,
		}

		// Upsert keyed by (user, chapter): a repeat update overwrites
		// completion state instead of creating a duplicate row.
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "chapter_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
		}).Create(&record).Error; err != nil {
			return err
		}

		class, err := recomputeEnrollment(tx, userID, chapter.SubjectID)
		if err != nil {
			return err
		}
		completedClass = class
		return nil
	})
	if err != nil {
		log.Printf("Error updating progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	if completedClass != nil {
		go func(email, name, className string) {
			if err := utils.SendCompletionEmail(email, name, className); err != nil {
				log.Printf("Error sending completion email: %v", err)
			}
		}(user.Email, user.Name, completedClass.Name)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully.", nil)
}

// recomputeEnrollment refreshes the cached aggregate for the enrollment
// covering the given subject's class, if one exists. It returns the class
// when this update completed the course, so the caller can notify.
func recomputeEnrollment(tx *gorm.DB, userID uint, subjectID uint) (*models.Class, error) {
	var subject models.Subject
	if err := tx.Where("id = ?", subjectID).First(&subject).Error; err != nil {
		// Dangling subject reference: nothing to aggregate against.
		return nil, nil
	}

	var enrollment models.Enrollment
	if err := tx.Where("user_id = ? AND class_id = ? AND is_deleted = ?", userID, subject.ClassID, false).
		First(&enrollment).Error; err != nil {
		// Progress without an enrollment is recorded but not aggregated.
		return nil, nil
	}

	totalCount := countClassChapters(tx, subject.ClassID)

	var completedCount int64
	if err := tx.Model(&models.Progress{}).
		Joins("JOIN chapters ON chapters.id = progresses.chapter_id").
		Joins("JOIN subjects ON subjects.id = chapters.subject_id").
		Where("progresses.user_id = ? AND progresses.completed = ? AND subjects.class_id = ?", userID, true, subject.ClassID).
		Count(&completedCount).Error; err != nil {
		return nil, err
	}

	wasCompleted := enrollment.Completed

	enrollment.CompletedChapters = int(completedCount)
	enrollment.TotalChapters = int(totalCount)

	// A class with no chapters yet counts as 0%, never a division by zero.
	if totalCount > 0 {
		enrollment.Progress = float64(completedCount) / float64(totalCount) * 100
	} else {
		enrollment.Progress = 0
	}

	enrollment.Completed = totalCount > 0 && enrollment.Progress == 100
	if enrollment.Completed && enrollment.CompletedAt == nil {
		now := time.Now()
		enrollment.CompletedAt = &now
	} else if !enrollment.Completed {
		enrollment.CompletedAt = nil
	}

	if err := tx.Save(&enrollment).Error; err != nil {
		return nil, err
	}

	if enrollment.Completed && !wasCompleted {
		var class models.Class
		if err := tx.Where("id = ?", subject.ClassID).First(&class).Error; err == nil {
			return &class, nil
		}
	}
	return nil, nil
}

// countClassChapters counts chapters registered under a class tree. The
// denominator comes from the content tree, not from progress records.
func countClassChapters(tx *gorm.DB, classID uint) int64 {
	var total int64
	tx.Model(&models.Chapter{}).
		Joins("JOIN subjects ON subjects.id = chapters.subject_id").
		Where("subjects.class_id = ? AND chapters.is_deleted = ? AND subjects.is_deleted = ?", classID, false, false).
		Count(&total)
	return total
}

// GetProgress lists all progress records for a user (own data only).
func GetProgress(c *fiber.Ctx) error {
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

	var records []models.Progress
	if err := database.Database.Db.Where("user_ref = ?", userID).Order("updated_at desc").Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully.", records)
}

// GetClassProgress returns the cached enrollment aggregate for one class.
func GetClassProgress(c *fiber.Ctx) error {
	currentRef, ok := c.Locals("publicId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	userID, ok := c.Locals("user_id").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}
	classID, ok := c.Locals("class_id").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
	}

	if userID != currentRef {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("user_ref = ? AND class_ref = ? AND is_deleted = ?", userID, classID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully.", enrollment)
}
