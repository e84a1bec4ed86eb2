package contentController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"edulan/config"
	"edulan/database"
	"edulan/middleware"
	"edulan/models"
	contentRoutes "edulan/routers/contentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupContentApp(t *testing.T, dbName string) (*fiber.App, *gorm.DB, string) {
	t.Helper()

	uploadDir := t.TempDir()
	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
		UploadDir: uploadDir,
	}

	db, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Class{}, &models.Subject{}, &models.Chapter{}, &models.Content{},
	))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	contentRoutes.SetupContentRoutes(app)
	return app, db, uploadDir
}

func seedChapter(t *testing.T, db *gorm.DB) (models.Chapter, string) {
	t.Helper()

	user := models.User{PublicID: uuid.NewString(), Email: "creator@test.local", Role: models.RoleAdmin, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.PublicID, user.Email, user.Role)
	require.NoError(t, err)

	class := models.Class{PublicID: uuid.NewString(), Name: "Class"}
	require.NoError(t, db.Create(&class).Error)
	subject := models.Subject{PublicID: uuid.NewString(), Name: "Subject", ClassID: class.ID, ClassRef: class.PublicID}
	require.NoError(t, db.Create(&subject).Error)
	chapter := models.Chapter{PublicID: uuid.NewString(), Name: "Chapter", SubjectID: subject.ID, SubjectRef: subject.PublicID}
	require.NoError(t, db.Create(&chapter).Error)

	return chapter, token
}

func doJSON(t *testing.T, app *fiber.App, method, url string, payload interface{}, token string) *http.Response {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, url, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func envelopeData(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	data, _ := out["data"].(map[string]interface{})
	return data
}

func TestCreateContentAutoClassification(t *testing.T) {
	app, db, _ := setupContentApp(t, "contentautotest")
	chapter, token := seedChapter(t, db)

	// URL paths are trusted without touching the filesystem
	resp := doJSON(t, app, "POST", "/api/content/create", fiber.Map{
		"title":        "Syllabus",
		"content_type": "auto",
		"file_path":    "https://example.com/syllabus.pdf",
		"chapter_id":   chapter.PublicID,
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "pdf", envelopeData(t, resp)["content_type"])

	// Local files must exist on disk
	local := filepath.Join(t.TempDir(), "lecture.mp4")
	require.NoError(t, os.WriteFile(local, []byte("x"), 0644))

	resp = doJSON(t, app, "POST", "/api/content/create", fiber.Map{
		"title":      "Lecture",
		"file_path":  local,
		"chapter_id": chapter.PublicID,
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "video", envelopeData(t, resp)["content_type"])

	// An explicit type is kept as-is
	resp = doJSON(t, app, "POST", "/api/content/create", fiber.Map{
		"title":        "Reading",
		"content_type": "document",
		"file_path":    "https://example.com/reading.mp4",
		"chapter_id":   chapter.PublicID,
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "document", envelopeData(t, resp)["content_type"])
}

func TestCreateContentRejectsBadPath(t *testing.T) {
	app, db, _ := setupContentApp(t, "contentbadpathtest")
	chapter, token := seedChapter(t, db)

	resp := doJSON(t, app, "POST", "/api/content/create", fiber.Map{
		"title":      "Ghost",
		"file_path":  filepath.Join(t.TempDir(), "missing.pdf"),
		"chapter_id": chapter.PublicID,
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/content/create", fiber.Map{
		"title":      "Orphan",
		"file_path":  "https://example.com/a.pdf",
		"chapter_id": uuid.NewString(),
	}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func uploadRequest(t *testing.T, url, filename, token string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("test payload"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestUploadFileBuckets(t *testing.T) {
	app, db, uploadDir := setupContentApp(t, "uploadtest")
	chapter, token := seedChapter(t, db)

	tests := []struct {
		filename string
		bucket   string
	}{
		{"photo.jpg", "image"},
		{"clip.AVI", "video"},
		{"notes.xyz", "document"},
	}

	for _, tt := range tests {
		resp, err := app.Test(uploadRequest(t, "/api/content/upload-file?chapter_id="+chapter.PublicID+"&title=Uploaded", tt.filename, token))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, "filename %q", tt.filename)

		data := envelopeData(t, resp)
		assert.Equal(t, tt.bucket, data["content_type"], "filename %q", tt.filename)
		assert.Equal(t, tt.filename, data["filename"])

		// Stored under the pluralized bucket directory with a generated name
		storedPath := data["file_path"].(string)
		assert.Contains(t, storedPath, tt.bucket+"s/")
		assert.FileExists(t, filepath.FromSlash(storedPath))
	}

	entries, err := os.ReadDir(filepath.Join(uploadDir, "videos"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	var count int64
	db.Model(&models.Content{}).Where("chapter_ref = ?", chapter.PublicID).Count(&count)
	assert.Equal(t, int64(len(tests)), count)
}

func TestUploadFileUnknownChapter(t *testing.T) {
	app, db, _ := setupContentApp(t, "uploadnochaptertest")
	_, token := seedChapter(t, db)

	resp, err := app.Test(uploadRequest(t, "/api/content/upload-file?chapter_id="+uuid.NewString(), "photo.jpg", token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOpenContent(t *testing.T) {
	app, db, _ := setupContentApp(t, "opentest")
	chapter, token := seedChapter(t, db)

	urlContent := models.Content{
		PublicID: uuid.NewString(), Title: "Link", ContentType: "webpage",
		FilePath: "https://example.com/lesson", ChapterID: chapter.ID, ChapterRef: chapter.PublicID,
	}
	require.NoError(t, db.Create(&urlContent).Error)

	resp := doJSON(t, app, "GET", "/api/content/open/"+urlContent.PublicID, nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := envelopeData(t, resp)
	assert.Equal(t, "url", data["type"])
	assert.Equal(t, "https://example.com/lesson", data["path"])

	// A local path that vanished after registration is a 404
	gone := models.Content{
		PublicID: uuid.NewString(), Title: "Gone", ContentType: "pdf",
		FilePath: filepath.Join(t.TempDir(), "gone.pdf"), ChapterID: chapter.ID, ChapterRef: chapter.PublicID,
	}
	require.NoError(t, db.Create(&gone).Error)

	resp = doJSON(t, app, "GET", "/api/content/open/"+gone.PublicID, nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/content/open/"+uuid.NewString(), nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServeMedia(t *testing.T) {
	app, _, uploadDir := setupContentApp(t, "mediatest")

	videoDir := filepath.Join(uploadDir, "videos")
	require.NoError(t, os.MkdirAll(videoDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(videoDir, "clip.mp4"), []byte("fake video bytes"), 0644))

	// No auth header needed
	req := httptest.NewRequest("GET", "/uploads/videos/clip.mp4", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "video/mp4", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "fake video bytes", string(body))

	// Traversal attempts never leave the upload root
	req = httptest.NewRequest("GET", "/api/media/..%2f..%2fetc%2fpasswd", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req = httptest.NewRequest("GET", "/uploads/videos/missing.mp4", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
