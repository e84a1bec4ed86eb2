package classroomController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"edulan/config"
	"edulan/database"
	"edulan/middleware"
	"edulan/models"
	classroomRoutes "edulan/routers/classroomRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupClassroomApp(t *testing.T, dbName string) (*fiber.App, string) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
	}

	db, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Class{}, &models.Subject{}, &models.Chapter{}, &models.Content{},
	))

	database.Database = database.DbInstance{Db: db}

	user := models.User{PublicID: uuid.NewString(), Email: "admin@test.local", Role: models.RoleAdmin, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.PublicID, user.Email, user.Role)
	require.NoError(t, err)

	app := fiber.New()
	classroomRoutes.SetupClassroomRoutes(app)
	return app, token
}

func request(t *testing.T, app *fiber.App, method, url string, payload interface{}, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, url, &body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp, out
}

func TestClassroomTree(t *testing.T) {
	app, token := setupClassroomApp(t, "classroomtest")

	resp, body := request(t, app, "POST", "/api/classes/create", fiber.Map{
		"name":  "Class 10",
		"grade": "10",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	classID := body["data"].(map[string]interface{})["class_id"].(string)

	resp, body = request(t, app, "POST", "/api/subjects/create", fiber.Map{
		"name":     "Mathematics",
		"class_id": classID,
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	subjectID := body["data"].(map[string]interface{})["subject_id"].(string)

	resp, body = request(t, app, "POST", "/api/chapters/create", fiber.Map{
		"name":       "Linear Equations",
		"subject_id": subjectID,
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	chapterID := body["data"].(map[string]interface{})["chapter_id"].(string)

	// Listing walks each level of the tree
	resp, body = request(t, app, "GET", "/api/classes", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]interface{}), 1)

	resp, body = request(t, app, "GET", "/api/subjects/"+classID, nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]interface{}), 1)

	resp, body = request(t, app, "GET", "/api/chapters/"+subjectID, nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]interface{}), 1)

	// Chapter details carry the resolved parents
	resp, body = request(t, app, "GET", "/api/chapter/"+chapterID, nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Linear Equations", data["chapter"].(map[string]interface{})["name"])
	assert.Equal(t, "Mathematics", data["subject"].(map[string]interface{})["name"])
	assert.Equal(t, "Class 10", data["class"].(map[string]interface{})["name"])
	assert.NotNil(t, data["content"])
}

func TestClassroomUnknownParents(t *testing.T) {
	app, token := setupClassroomApp(t, "classroomorphantest")

	resp, _ := request(t, app, "POST", "/api/subjects/create", fiber.Map{
		"name":     "Orphan",
		"class_id": uuid.NewString(),
	}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = request(t, app, "POST", "/api/chapters/create", fiber.Map{
		"name":       "Orphan",
		"subject_id": uuid.NewString(),
	}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = request(t, app, "GET", "/api/chapter/"+uuid.NewString(), nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClassroomValidation(t *testing.T) {
	app, token := setupClassroomApp(t, "classroomvaltest")

	// Name is mandatory at every level
	resp, _ := request(t, app, "POST", "/api/classes/create", fiber.Map{"grade": "10"}, token)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = request(t, app, "POST", "/api/subjects/create", fiber.Map{"name": "X"}, token)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
