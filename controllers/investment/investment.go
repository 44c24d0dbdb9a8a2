package investmentController

import (
	"eduvest/database"
	"eduvest/middleware"
	"eduvest/models"
	investmentValidator "eduvest/validators/investment"

	"github.com/gofiber/fiber/v2"
)

// CreateInvestment records a donor contribution with status pending.
// There is no minimum amount at this layer; the UI enforces its own floor.
func CreateInvestment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var investor models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&investor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedInvestment").(*investmentValidator.CreateInvestmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	investment := models.Investment{
		InvestorID: userID,
		Amount:     reqData.Amount,
		Currency:   reqData.Currency,
		Status:     models.InvestmentStatusPending,
		Purpose:    reqData.Purpose,
		Message:    reqData.Message,
	}

	if err := database.Database.Db.Create(&investment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create investment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Investment recorded successfully!", investment)
}

// GetAllInvestments lists all investments joined with investor identity
func GetAllInvestments(c *fiber.Ctx) error {
	var investments []models.Investment
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Preload("Investor").Order("created_at desc").Find(&investments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch investments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Investments fetched successfully!", investments)
}

// UpdateInvestmentStatus sets an investment's status. Any of the three
// statuses is accepted in any order; transitions carry no guard.
func UpdateInvestmentStatus(c *fiber.Ctx) error {
	investmentID := c.Locals("investmentID").(int)
	reqData, ok := c.Locals("validatedStatus").(*investmentValidator.UpdateStatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var investment models.Investment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", investmentID, false).First(&investment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Investment not found!", nil)
	}

	investment.Status = models.InvestmentStatus(reqData.Status)
	if reqData.TransactionID != "" {
		investment.TransactionID = reqData.TransactionID
	}

	if err := database.Database.Db.Save(&investment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update investment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Investment status updated!", investment)
}

// GetTotalInvestments sums confirmed investment amounts
func GetTotalInvestments(c *fiber.Ctx) error {
	var total float64
	if err := database.Database.Db.Model(&models.Investment{}).
		Where("status = ? AND is_deleted = ?", models.InvestmentStatusConfirmed, false).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute total!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Total confirmed investments fetched!", fiber.Map{
		"total": total,
	})
}
