package routes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"looncamp-backend/config"
	"looncamp-backend/controllers"
	"looncamp-backend/services"
	"looncamp-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Success          bool                       `json:"success"`
	Message          string                     `json:"message"`
	URL              string                     `json:"url"`
	Data             json.RawMessage            `json:"data"`
	CategorySettings map[string]json.RawMessage `json:"categorySettings"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := config.SeedDatabase(db, "admin@looncamp.in", "s3cret"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	uploadDir := t.TempDir()
	authService := services.NewAuthService(db, utils.NewTokenManager("test-secret", time.Hour), nil)
	categoryService := services.NewCategoryService(db)
	propertyService := services.NewPropertyService(db, categoryService)
	imageService := services.NewImageService(services.LocalImageStore{Dir: uploadDir, BaseURL: "/uploads"}, 1<<20)

	router := SetupRouter(Options{
		Auth:          controllers.NewAuthController(authService),
		Properties:    controllers.NewPropertyController(propertyService),
		Settings:      controllers.NewSettingsController(categoryService),
		Uploads:       controllers.NewUploadController(imageService),
		Authenticator: authService,
		UploadDir:     uploadDir,
	})
	return &testServer{t: t, router: router}
}

func (s *testServer) do(method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			s.t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	return s.serve(req)
}

func (s *testServer) serve(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		s.t.Fatalf("%s %s: invalid JSON %q", req.Method, req.URL.Path, w.Body.String())
	}
	return w, env
}

func (s *testServer) login() {
	s.t.Helper()
	w, env := s.do(http.MethodPost, "/api/auth/login", gin.H{"email": "admin@looncamp.in", "password": "s3cret"})
	if w.Code != http.StatusOK {
		s.t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	var data struct {
		Token string `json:"token"`
	}
	json.Unmarshal(env.Data, &data)
	s.token = data.Token
}

func propertyBody(title string) gin.H {
	return gin.H{
		"title":       title,
		"description": "Tents by the lake",
		"category":    "camping",
		"location":    "Pawna Lake",
		"price":       "₹2,999",
		"price_note":  "per person with meal",
		"capacity":    4,
		"amenities":   []string{"Bonfire"},
		"policies":    `["No refund within 3 days"]`,
		"images":      []string{"a.jpg", "b.jpg", "c.jpg"},
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/health", "/api/health"} {
		w, env := s.do(http.MethodGet, path, nil)
		if w.Code != http.StatusOK || !env.Success || env.Message == "" {
			t.Errorf("%s: %d %s", path, w.Code, w.Body.String())
		}
	}
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodPost, "/api/auth/login", gin.H{"email": "admin@looncamp.in", "password": "nope"})
	if w.Code != http.StatusUnauthorized || env.Success || env.Message != "Invalid email or password." {
		t.Errorf("wrong password: %d %s", w.Code, w.Body.String())
	}
	w, env2 := s.do(http.MethodPost, "/api/auth/login", gin.H{"email": "ghost@looncamp.in", "password": "nope"})
	if w.Code != http.StatusUnauthorized || env2.Message != env.Message {
		t.Errorf("unknown email: %d %s", w.Code, w.Body.String())
	}

	w, _ = s.do(http.MethodGet, "/api/auth/verify", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("verify without token: %d", w.Code)
	}

	s.login()
	w, env = s.do(http.MethodGet, "/api/auth/verify", nil)
	if w.Code != http.StatusOK || !strings.Contains(string(env.Data), "admin@looncamp.in") {
		t.Errorf("verify: %d %s", w.Code, w.Body.String())
	}

	w, env = s.do(http.MethodPost, "/api/auth/logout", nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Errorf("logout: %d %s", w.Code, w.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, r := range []struct{ method, path string }{
		{http.MethodGet, "/api/properties/list"},
		{http.MethodGet, "/api/properties/1"},
		{http.MethodPost, "/api/properties/create"},
		{http.MethodPut, "/api/properties/update/1"},
		{http.MethodDelete, "/api/properties/delete/1"},
		{http.MethodPatch, "/api/properties/toggle-status/1"},
		{http.MethodGet, "/api/properties/settings/categories"},
		{http.MethodPut, "/api/properties/settings/categories/villa"},
		{http.MethodPost, "/api/properties/upload-image"},
	} {
		w, env := s.do(r.method, r.path, gin.H{})
		if w.Code != http.StatusUnauthorized || env.Success {
			t.Errorf("%s %s: %d", r.method, r.path, w.Code)
		}
	}
}

func TestPropertyLifecycle(t *testing.T) {
	s := newTestServer(t)
	s.login()

	w, env := s.do(http.MethodPost, "/api/properties/create", propertyBody("Pawna Lake View!!"))
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	var created struct {
		ID   uint   `json:"id"`
		Slug string `json:"slug"`
	}
	json.Unmarshal(env.Data, &created)
	if created.Slug != "pawna-lake-view" {
		t.Fatalf("slug = %q", created.Slug)
	}

	w, env = s.do(http.MethodPost, "/api/properties/create", propertyBody("Pawna Lake View!!"))
	if w.Code != http.StatusBadRequest || env.Message != "Property with this title already exists." {
		t.Errorf("duplicate: %d %s", w.Code, w.Body.String())
	}

	missing := propertyBody("No Price")
	delete(missing, "price")
	w, env = s.do(http.MethodPost, "/api/properties/create", missing)
	if w.Code != http.StatusBadRequest || env.Message != "Missing required fields." {
		t.Errorf("missing field: %d %s", w.Code, w.Body.String())
	}

	path := "/api/properties/" + itoa(created.ID)
	w, env = s.do(http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: %d %s", w.Code, w.Body.String())
	}
	var got struct {
		Location string   `json:"location"`
		Policies []string `json:"policies"`
		Images   []struct {
			ImageURL     string `json:"image_url"`
			DisplayOrder int    `json:"display_order"`
		} `json:"images"`
	}
	json.Unmarshal(env.Data, &got)
	if len(got.Images) != 3 || got.Images[2].ImageURL != "c.jpg" || got.Images[2].DisplayOrder != 2 {
		t.Errorf("images = %+v", got.Images)
	}
	if len(got.Policies) != 1 {
		t.Errorf("policies = %v", got.Policies)
	}

	w, _ = s.do(http.MethodPut, "/api/properties/update/"+itoa(created.ID), gin.H{"images": []string{}, "price": "₹3,000"})
	if w.Code != http.StatusOK {
		t.Fatalf("update: %d %s", w.Code, w.Body.String())
	}
	_, env = s.do(http.MethodGet, path, nil)
	got.Images = nil
	json.Unmarshal(env.Data, &got)
	if len(got.Images) != 0 || got.Location != "Pawna Lake" {
		t.Errorf("after update: location=%q images=%d", got.Location, len(got.Images))
	}

	w, env = s.do(http.MethodPatch, "/api/properties/toggle-status/"+itoa(created.ID), gin.H{"field": "category", "value": true})
	if w.Code != http.StatusBadRequest {
		t.Errorf("toggle category: %d %s", w.Code, w.Body.String())
	}
	w, _ = s.do(http.MethodPatch, "/api/properties/toggle-status/"+itoa(created.ID), gin.H{"field": "is_active"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("toggle without value: %d", w.Code)
	}
	w, _ = s.do(http.MethodPatch, "/api/properties/toggle-status/"+itoa(created.ID), gin.H{"field": "is_active", "value": false})
	if w.Code != http.StatusOK {
		t.Errorf("toggle is_active: %d", w.Code)
	}

	w, _ = s.do(http.MethodGet, "/api/properties/public/pawna-lake-view", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("inactive slug should be hidden: %d", w.Code)
	}
	w, env = s.do(http.MethodGet, "/api/properties/public-list", nil)
	if w.Code != http.StatusOK || string(env.Data) != "[]" {
		t.Errorf("public list should be empty: %d %s", w.Code, w.Body.String())
	}

	w, _ = s.do(http.MethodDelete, "/api/properties/delete/"+itoa(created.ID), nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete: %d", w.Code)
	}
	w, _ = s.do(http.MethodGet, path, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete: %d", w.Code)
	}
	w, _ = s.do(http.MethodDelete, "/api/properties/delete/"+itoa(created.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete: %d", w.Code)
	}
}

func TestCategorySettingsRoutes(t *testing.T) {
	s := newTestServer(t)
	s.login()

	s.do(http.MethodPost, "/api/properties/create", func() gin.H {
		b := propertyBody("Sea Villa")
		b["category"] = "villa"
		return b
	}())

	w, _ := s.do(http.MethodPut, "/api/properties/settings/categories/villa", gin.H{
		"is_closed": true, "closed_reason": "Monsoon", "closed_from": "June", "closed_to": "September",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update settings: %d %s", w.Code, w.Body.String())
	}
	w, _ = s.do(http.MethodPut, "/api/properties/settings/categories/treehouse", gin.H{"is_closed": true})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown category: %d", w.Code)
	}

	w, env := s.do(http.MethodGet, "/api/properties/settings/categories", nil)
	if w.Code != http.StatusOK || !strings.Contains(string(env.Data), `"closed_reason":"Monsoon"`) {
		t.Errorf("settings: %d %s", w.Code, w.Body.String())
	}

	s.token = ""
	w, env = s.do(http.MethodGet, "/api/properties/public-list", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("public list: %d", w.Code)
	}
	var villa struct {
		IsClosed bool   `json:"is_closed"`
		Reason   string `json:"reason"`
	}
	json.Unmarshal(env.CategorySettings["villa"], &villa)
	if !villa.IsClosed || villa.Reason != "Monsoon" {
		t.Errorf("villa closure = %+v", villa)
	}
	if !strings.Contains(string(env.Data), "sea-villa") {
		t.Errorf("closed category must not filter properties: %s", env.Data)
	}
}

func TestUploadImage(t *testing.T) {
	s := newTestServer(t)
	s.login()

	upload := func(field, filename string, content []byte) (*httptest.ResponseRecorder, envelope) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, _ := mw.CreateFormFile(field, filename)
		part.Write(content)
		mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/properties/upload-image", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+s.token)
		return s.serve(req)
	}

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")
	w, env := upload("image", "tent.png", png)
	if w.Code != http.StatusOK || !strings.HasPrefix(env.URL, "/uploads/") {
		t.Fatalf("upload: %d %s", w.Code, w.Body.String())
	}

	w, _ = upload("file", "tent.png", png)
	if w.Code != http.StatusBadRequest {
		t.Errorf("wrong field: %d", w.Code)
	}

	w, env = upload("image", "huge.png", append(png, make([]byte, 2<<20)...))
	if w.Code != http.StatusBadRequest || !strings.Contains(env.Message, "(max 1MB)") {
		t.Errorf("oversized upload: %d %s", w.Code, w.Body.String())
	}
}

func TestUnknownAPIRoute(t *testing.T) {
	s := newTestServer(t)
	w, env := s.do(http.MethodGet, "/api/nothing-here", nil)
	if w.Code != http.StatusNotFound || env.Message != "API endpoint not found" {
		t.Errorf("unknown route: %d %s", w.Code, w.Body.String())
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
