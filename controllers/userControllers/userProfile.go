package userController

import (
	"eduvest/database"
	"eduvest/middleware"
	"eduvest/models"
	userValidator "eduvest/validators/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetProfile returns the caller's account
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// GetUserByExternalID looks up an account by the identity provider's subject
func GetUserByExternalID(c *fiber.Ctx) error {
	externalID := c.Locals("externalID").(string)

	var user models.User
	if err := database.Database.Db.Where("external_id = ? AND is_deleted = ?", externalID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

// AdjustCredits applies a credit delta to a user. The balance takes the
// full delta; totalRewards only ever grows, so negative deltas leave it
// untouched. Both columns update column-relative in one statement.
func AdjustCredits(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdjustCredits").(*userValidator.AdjustCreditsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var targetUser models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&targetUser).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	rewardDelta := reqData.Amount
	if rewardDelta < 0 {
		rewardDelta = 0
	}

	if err := database.Database.Db.Model(&models.User{}).Where("id = ?", targetUser.ID).
		Updates(map[string]interface{}{
			"credits":       gorm.Expr("credits + ?", reqData.Amount),
			"total_rewards": gorm.Expr("total_rewards + ?", rewardDelta),
		}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to adjust credits!", nil)
	}

	// Re-read for the response
	database.Database.Db.First(&targetUser, targetUser.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Credits adjusted successfully!", targetUser)
}

// ListStudents lists every student account
func ListStudents(c *fiber.Ctx) error {
	return listByRole(c, models.RoleStudent)
}

// ListInvestors lists every investor account
func ListInvestors(c *fiber.Ctx) error {
	return listByRole(c, models.RoleInvestor)
}

func listByRole(c *fiber.Ctx, role string) error {
	var users []models.User
	if err := database.Database.Db.Where("role = ? AND is_deleted = ?", role, false).
		Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}
