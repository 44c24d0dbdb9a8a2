package rewardController

import (
	"eduvest/database"
	"eduvest/middleware"
	"eduvest/models"
	"eduvest/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetPendingRewards lists all pending rewards joined with student and course
func GetPendingRewards(c *fiber.Ctx) error {
	var rewards []models.Reward
	if err := database.Database.Db.Where("status = ? AND is_deleted = ?", models.RewardStatusPending, false).
		Preload("Student").Preload("Course").Order("created_at asc").Find(&rewards).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending rewards!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending rewards fetched successfully!", rewards)
}

// DistributeReward pays out one pending reward: the status flips
// pending -> distributed exactly once (conditional update), the student's
// balance and lifetime total are credited column-relative, and the
// originating enrollment is flagged claimed. A repeated call finds no
// pending row and reports a conflict instead of double-crediting.
func DistributeReward(c *fiber.Ctx) error {
	rewardID := c.Locals("rewardID").(int)

	var reward models.Reward
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", rewardID, false).First(&reward).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Reward not found!", nil)
	}

	now := time.Now()

	tx := database.Database.Db.Begin()

	res := tx.Model(&models.Reward{}).
		Where("id = ? AND status = ?", reward.ID, models.RewardStatusPending).
		Updates(map[string]interface{}{
			"status":         models.RewardStatusDistributed,
			"distributed_at": now,
		})
	if res.Error != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to distribute reward!", nil)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Reward already distributed!", nil)
	}

	if err := tx.Model(&models.User{}).Where("id = ?", reward.StudentID).
		Updates(map[string]interface{}{
			"credits":       gorm.Expr("credits + ?", reward.Amount),
			"total_rewards": gorm.Expr("total_rewards + ?", reward.Amount),
		}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to credit student!", nil)
	}

	if err := tx.Model(&models.Enrollment{}).Where("id = ?", reward.EnrollmentID).
		Update("reward_claimed", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to flag enrollment!", nil)
	}

	tx.Commit()

	reward.Status = models.RewardStatusDistributed
	reward.DistributedAt = &now

	var student models.User
	var course models.Course
	if err := database.Database.Db.First(&student, reward.StudentID).Error; err == nil {
		database.Database.Db.First(&course, reward.CourseID)
		go utils.SendRewardDistributedEmail(student.Email, student.Name, reward.Amount, course.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reward distributed successfully!", reward)
}

// GetStudentRewards lists every reward of one student, any status
func GetStudentRewards(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(int)

	var rewards []models.Reward
	if err := database.Database.Db.Where("student_id = ? AND is_deleted = ?", studentID, false).
		Preload("Course").Order("created_at desc").Find(&rewards).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch rewards!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rewards fetched successfully!", rewards)
}

// GetMyRewards lists the caller's rewards for the dashboard
func GetMyRewards(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var rewards []models.Reward
	if err := database.Database.Db.Where("student_id = ? AND is_deleted = ?", userID, false).
		Preload("Course").Order("created_at desc").Find(&rewards).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch rewards!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rewards fetched successfully!", rewards)
}
