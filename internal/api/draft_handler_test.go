package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"resumetex/internal/database"
	"resumetex/internal/resume"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&database.Draft{}, &database.Template{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newDraftRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDraftHandler(db, nil, nil)

	router := gin.New()
	group := router.Group("/v1/resume")
	group.GET("", h.GetDraft)
	group.PUT("", h.SaveDraft)
	group.POST("/compile", h.CompileDraft)
	group.GET("/download-link", h.GetDownloadLink)
	return router
}

func decodeResume(t *testing.T, w *httptest.ResponseRecorder) resume.ResumeData {
	t.Helper()
	data := resume.Migrate(w.Body.Bytes())
	return data
}

func TestGetDraft_MissingReturnsDefaultTemplate(t *testing.T) {
	router := newDraftRouter(newTestDB(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/resume", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	data := decodeResume(t, w)
	if len(data.Sections) != 6 {
		t.Fatalf("default template sections = %d, want 6", len(data.Sections))
	}
	if data.Sections[0].Type != resume.TypeHeader {
		t.Errorf("first section = %q", data.Sections[0].Type)
	}
}

func TestSaveDraft_LegacyPayloadMigratedOnRead(t *testing.T) {
	router := newDraftRouter(newTestDB(t))

	body := `{"header": {"name": "Ada"}, "education": {"items": [{"school": "X", "degree": "Y"}]}}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/v1/resume", strings.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/resume", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d body=%s", w.Code, w.Body.String())
	}

	data := decodeResume(t, w)
	if len(data.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(data.Sections))
	}
	edu := data.Sections[1]
	if edu.Title != "Education" {
		t.Errorf("education title = %q", edu.Title)
	}
	sc, ok := edu.Content.(resume.StandardListContent)
	if !ok {
		t.Fatalf("education content type: %T", edu.Content)
	}
	if sc.Items[0].Title != "X" || sc.Items[0].Subtitle != "Y" {
		t.Errorf("migrated item: %+v", sc.Items[0])
	}
}

func TestSaveDraft_RejectsInvalidJSON(t *testing.T) {
	router := newDraftRouter(newTestDB(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/v1/resume", strings.NewReader("{broken")))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
}

func TestSaveDraft_OverwritesSingleRecord(t *testing.T) {
	db := newTestDB(t)
	router := newDraftRouter(db)

	for _, body := range []string{
		`{"summary": {"text": "first"}}`,
		`{"summary": {"text": "second"}}`,
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/v1/resume", strings.NewReader(body)))
		if w.Code != http.StatusOK {
			t.Fatalf("save status = %d body=%s", w.Code, w.Body.String())
		}
	}

	var count int64
	if err := db.Model(&database.Draft{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("draft rows = %d, want 1", count)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/resume", nil))
	data := decodeResume(t, w)
	c, ok := data.Sections[0].Content.(resume.LongTextContent)
	if !ok || c.Text != "second" {
		t.Fatalf("latest content not returned: %+v", data.Sections[0].Content)
	}
}

func TestSaveDraft_SeparateKeysAreIndependent(t *testing.T) {
	router := newDraftRouter(newTestDB(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/v1/resume?key=alt", strings.NewReader(`{"summary": {"text": "alt"}}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d", w.Code)
	}

	// default key 仍然没有草稿，应回落到默认模板。
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/resume", nil))
	if got := len(decodeResume(t, w).Sections); got != 6 {
		t.Fatalf("default key sections = %d, want default template", got)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/resume?key=alt", nil))
	if got := len(decodeResume(t, w).Sections); got != 1 {
		t.Fatalf("alt key sections = %d, want 1", got)
	}
}

func TestCompileDraft_MissingDraftNotFound(t *testing.T) {
	router := newDraftRouter(newTestDB(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/resume/compile", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
}

func TestGetDownloadLink_PdfNotReady(t *testing.T) {
	db := newTestDB(t)
	router := newDraftRouter(db)

	if err := db.Create(&database.Draft{Key: DefaultDraftKey, Content: datatypes.JSON(`{}`)}).Error; err != nil {
		t.Fatalf("seed draft: %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/resume/download-link", nil))
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
}

func TestGetDownloadLink_MissingDraftNotFound(t *testing.T) {
	router := newDraftRouter(newTestDB(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/resume/download-link", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
}
