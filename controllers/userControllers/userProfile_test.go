package userController_test

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
	userRoutes "eduvest/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:user_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	userRoutes.SetupUserRoutes(app)
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

func TestGetProfile(t *testing.T) {
	app, db := setupUserTest(t)
	user, token := createUser(t, db, "student@test.io", models.RoleStudent)

	resp := request(t, app, "GET", "/user/profile", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Email    string  `json:"email"`
			Credits  float64 `json:"credits"`
			Password string  `json:"password"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, user.Email, body.Data.Email)
	require.Equal(t, 0.0, body.Data.Credits)
	// Password hash never leaves the API
	require.Empty(t, body.Data.Password)
}

func TestGetUserByExternalID(t *testing.T) {
	app, db := setupUserTest(t)
	user, token := createUser(t, db, "student@test.io", models.RoleStudent)

	resp := request(t, app, "GET", "/user/by-external/"+user.ExternalID, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, user.Email, body.Data.Email)

	resp = request(t, app, "GET", "/user/by-external/nobody-here", token, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// Positive adjustments raise both the balance and the lifetime total;
// negative ones reduce only the balance.
func TestAdjustCredits(t *testing.T) {
	app, db := setupUserTest(t)
	_, adminToken := createUser(t, db, "admin@test.io", models.RoleAdmin)
	student, _ := createUser(t, db, "student@test.io", models.RoleStudent)

	resp := request(t, app, "POST", "/user/admin/adjust-credits", adminToken, fiber.Map{
		"userId": student.ID,
		"amount": 50.0,
		"reason": "challenge bonus",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var adjusted models.User
	require.NoError(t, db.First(&adjusted, student.ID).Error)
	require.Equal(t, 50.0, adjusted.Credits)
	require.Equal(t, 50.0, adjusted.TotalRewards)

	resp = request(t, app, "POST", "/user/admin/adjust-credits", adminToken, fiber.Map{
		"userId": student.ID,
		"amount": -20.0,
		"reason": "store purchase",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&adjusted, student.ID).Error)
	require.Equal(t, 30.0, adjusted.Credits)
	require.Equal(t, 50.0, adjusted.TotalRewards)
}

func TestAdjustCreditsValidation(t *testing.T) {
	app, db := setupUserTest(t)
	_, adminToken := createUser(t, db, "admin@test.io", models.RoleAdmin)
	student, _ := createUser(t, db, "student@test.io", models.RoleStudent)

	resp := request(t, app, "POST", "/user/admin/adjust-credits", adminToken, fiber.Map{
		"userId": student.ID,
		"amount": 0.0,
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = request(t, app, "POST", "/user/admin/adjust-credits", adminToken, fiber.Map{
		"userId": 9999,
		"amount": 10.0,
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListStudentsAndInvestors(t *testing.T) {
	app, db := setupUserTest(t)
	_, adminToken := createUser(t, db, "admin@test.io", models.RoleAdmin)
	createUser(t, db, "student1@test.io", models.RoleStudent)
	createUser(t, db, "student2@test.io", models.RoleStudent)
	createUser(t, db, "investor@test.io", models.RoleInvestor)

	var body struct {
		Data []struct {
			Role string `json:"role"`
		} `json:"data"`
	}

	resp := request(t, app, "GET", "/user/admin/students", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 2)

	body.Data = nil
	resp = request(t, app, "GET", "/user/admin/investors", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	require.Equal(t, models.RoleInvestor, body.Data[0].Role)
}
