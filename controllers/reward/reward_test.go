package rewardController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eduvest/config"
	"eduvest/database"
	"eduvest/middleware"
	"eduvest/models"
	rewardRoutes "eduvest/routers/rewardRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRewardTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:reward_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	rewardRoutes.SetupRewardRoutes(app)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) (models.User, string) {
	t.Helper()
	user := models.User{
		ExternalID: "ext-" + email,
		Email:      email,
		Name:       "Test User",
		Role:       role,
		Password:   "hashed",
		JoinedAt:   time.Now(),
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

// seedPendingReward builds the full chain a completed course leaves behind:
// course, completed enrollment and a pending reward.
func seedPendingReward(t *testing.T, db *gorm.DB, student models.User, amount float64) models.Reward {
	t.Helper()
	course := models.Course{
		Title:         "Rewarded Course",
		Description:   "d",
		Instructor:    "i",
		Difficulty:    models.DifficultyBeginner,
		Reward:        amount,
		TimeLimitDays: 30,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&course).Error)

	now := time.Now()
	enrollment := models.Enrollment{
		UserID:      student.ID,
		CourseID:    course.ID,
		Status:      models.EnrollmentStatusCompleted,
		Progress:    100,
		StartedAt:   now.AddDate(0, 0, -7),
		Deadline:    now.AddDate(0, 0, 23),
		CompletedAt: &now,
		IsCompleted: true,
	}
	require.NoError(t, db.Create(&enrollment).Error)

	reward := models.Reward{
		StudentID:    student.ID,
		CourseID:     course.ID,
		EnrollmentID: enrollment.ID,
		Amount:       amount,
		Type:         models.RewardTypeCourseCompletion,
		Status:       models.RewardStatusPending,
	}
	require.NoError(t, db.Create(&reward).Error)
	return reward
}

func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGetPendingRewards(t *testing.T) {
	app, db := setupRewardTest(t)
	_, adminToken := createUser(t, db, "admin@test.io", models.RoleAdmin)
	student, _ := createUser(t, db, "student@test.io", models.RoleStudent)

	seedPendingReward(t, db, student, 20)
	distributed := seedPendingReward(t, db, student, 10)
	require.NoError(t, db.Model(&distributed).Update("status", models.RewardStatusDistributed).Error)

	resp := request(t, app, "GET", "/reward/admin/pending", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			Amount  float64             `json:"amount"`
			Status  models.RewardStatus `json:"status"`
			Student struct {
				Email string `json:"email"`
			} `json:"student"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	require.Equal(t, 20.0, body.Data[0].Amount)
	require.Equal(t, models.RewardStatusPending, body.Data[0].Status)
	require.Equal(t, "student@test.io", body.Data[0].Student.Email)
}

func TestDistributeRewardCreditsStudentOnce(t *testing.T) {
	app, db := setupRewardTest(t)
	_, adminToken := createUser(t, db, "admin@test.io", models.RoleAdmin)
	student, _ := createUser(t, db, "student@test.io", models.RoleStudent)
	reward := seedPendingReward(t, db, student, 20)

	resp := request(t, app, "POST", fmt.Sprintf("/reward/admin/%d/distribute", reward.ID), adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var paid models.Reward
	require.NoError(t, db.First(&paid, reward.ID).Error)
	require.Equal(t, models.RewardStatusDistributed, paid.Status)
	require.NotNil(t, paid.DistributedAt)

	var credited models.User
	require.NoError(t, db.First(&credited, student.ID).Error)
	require.Equal(t, 20.0, credited.Credits)
	require.Equal(t, 20.0, credited.TotalRewards)

	var enrollment models.Enrollment
	require.NoError(t, db.First(&enrollment, reward.EnrollmentID).Error)
	require.True(t, enrollment.RewardClaimed)

	// Second distribution attempt conflicts and leaves the balance alone
	resp = request(t, app, "POST", fmt.Sprintf("/reward/admin/%d/distribute", reward.ID), adminToken, nil)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	require.NoError(t, db.First(&credited, student.ID).Error)
	require.Equal(t, 20.0, credited.Credits)
	require.Equal(t, 20.0, credited.TotalRewards)
}

func TestDistributeMissingReward(t *testing.T) {
	app, db := setupRewardTest(t)
	_, adminToken := createUser(t, db, "admin@test.io", models.RoleAdmin)

	resp := request(t, app, "POST", "/reward/admin/9999/distribute", adminToken, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRewardRoutesRequireAdmin(t *testing.T) {
	app, db := setupRewardTest(t)
	student, studentToken := createUser(t, db, "student@test.io", models.RoleStudent)
	reward := seedPendingReward(t, db, student, 20)

	resp := request(t, app, "GET", "/reward/admin/pending", studentToken, nil)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = request(t, app, "POST", fmt.Sprintf("/reward/admin/%d/distribute", reward.ID), studentToken, nil)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGetMyRewards(t *testing.T) {
	app, db := setupRewardTest(t)
	student, studentToken := createUser(t, db, "student@test.io", models.RoleStudent)
	other, _ := createUser(t, db, "other@test.io", models.RoleStudent)

	seedPendingReward(t, db, student, 20)
	seedPendingReward(t, db, other, 30)

	resp := request(t, app, "GET", "/user/rewards", studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			Amount float64 `json:"amount"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	require.Equal(t, 20.0, body.Data[0].Amount)
}

func TestGetStudentRewardsAsAdmin(t *testing.T) {
	app, db := setupRewardTest(t)
	_, adminToken := createUser(t, db, "admin@test.io", models.RoleAdmin)
	student, _ := createUser(t, db, "student@test.io", models.RoleStudent)

	seedPendingReward(t, db, student, 20)
	distributed := seedPendingReward(t, db, student, 10)
	require.NoError(t, db.Model(&distributed).Update("status", models.RewardStatusDistributed).Error)

	resp := request(t, app, "GET", fmt.Sprintf("/reward/admin/student/%d", student.ID), adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 2)
}
