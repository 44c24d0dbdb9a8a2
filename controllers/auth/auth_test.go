package authController_test

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
	"eduvest/models"
	authRoutes "eduvest/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:auth_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	app, db := setupAuthTest(t)

	resp := postJSON(t, app, "/auth/register", fiber.Map{
		"externalId": "clerk-user-1",
		"email":      "Student@Test.IO",
		"name":       "Ada Student",
		"password":   "supersecret",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, db.Where("external_id = ?", "clerk-user-1").First(&user).Error)
	// Email normalizes to lowercase, role defaults to student
	require.Equal(t, "student@test.io", user.Email)
	require.Equal(t, models.RoleStudent, user.Role)
	require.Equal(t, 0.0, user.Credits)
	require.Equal(t, 0.0, user.TotalRewards)
	require.NotEqual(t, "supersecret", user.Password)

	resp = postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "student@test.io",
		"password": "supersecret",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Data.Token)

	resp = postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "student@test.io",
		"password": "wrongpassword",
	})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	app, _ := setupAuthTest(t)

	payload := fiber.Map{
		"externalId": "clerk-user-1",
		"email":      "student@test.io",
		"name":       "Ada Student",
		"password":   "supersecret",
	}

	resp := postJSON(t, app, "/auth/register", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Same email
	resp = postJSON(t, app, "/auth/register", payload)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Same external id, new email
	payload["email"] = "other@test.io"
	resp = postJSON(t, app, "/auth/register", payload)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	app, _ := setupAuthTest(t)

	resp := postJSON(t, app, "/auth/register", fiber.Map{
		"externalId": "clerk-user-1",
		"email":      "not-an-email",
		"name":       "A",
		"password":   "short",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
