package delivery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Vovarama1992/cloudio/internal/delivery/ws"
	"github.com/Vovarama1992/cloudio/internal/domain"
	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/Vovarama1992/cloudio/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memCategories struct {
	list []models.Category
}

func (m *memCategories) ListCategories(context.Context) ([]models.Category, error) {
	return m.list, nil
}

func (m *memCategories) InsertCategory(_ context.Context, name string) (*models.Category, error) {
	for _, c := range m.list {
		if c.Name == name {
			return nil, fmt.Errorf("insert category: %w", ports.ErrConflict)
		}
	}
	c := models.Category{ID: len(m.list) + 1, Name: name}
	m.list = append(m.list, c)
	return &c, nil
}

func (m *memCategories) DeleteCategory(_ context.Context, id int) error {
	for i, c := range m.list {
		if c.ID == id {
			m.list = append(m.list[:i], m.list[i+1:]...)
		}
	}
	return nil
}

type memFiles struct {
	list []models.File
	err  error
}

func (m *memFiles) ListFiles(context.Context) ([]models.File, error) { return m.list, m.err }

func (m *memFiles) InsertFile(_ context.Context, f *models.NewFile) (int, error) {
	id := len(m.list) + 1
	m.list = append([]models.File{{ID: id, Title: f.Title, SourceURL: f.SourceURL, MediaType: f.MediaType}}, m.list...)
	return id, nil
}

func (m *memFiles) DeleteFile(context.Context, int) error { return nil }

func (m *memFiles) SearchFiles(context.Context, string, int) ([]models.File, error) {
	return m.list, nil
}

func newTestAPI(t *testing.T) (*httptest.Server, *memCategories, *memFiles) {
	t.Helper()
	log := logger.NewZapLogger(zap.NewNop().Sugar())
	cats := &memCategories{list: []models.Category{{ID: 1, Name: "General"}}}
	files := &memFiles{}
	hub := ws.NewHub(log)

	svc := domain.NewCatalogService(cats, files, hub)
	router := NewRouter(
		NewCatalogHandler(svc, log),
		NewSearchHandler(domain.SampleSearcher{}, log),
		hub,
		NewMetrics(),
	)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, cats, files
}

func do(t *testing.T, method, url, body string) (int, string) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, rdr)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestAPI_RootAndHealth(t *testing.T) {
	srv, _, _ := newTestAPI(t)

	code, body := do(t, http.MethodGet, srv.URL+"/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"healthy"}`, body)

	code, _ = do(t, http.MethodGet, srv.URL+"/", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestAPI_Search(t *testing.T) {
	srv, _, _ := newTestAPI(t)

	code, body := do(t, http.MethodPost, srv.URL+"/search", `{"text":"psalms"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"results":[
		{"source":"Source A","text":"Sample result 1: psalms"},
		{"source":"Source B","text":"Sample result 2: hello world"}]}`, body)

	code, _ = do(t, http.MethodPost, srv.URL+"/search", `{`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAPI_Files(t *testing.T) {
	srv, _, files := newTestAPI(t)

	code, body := do(t, http.MethodGet, srv.URL+"/files", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, body)

	code, body = do(t, http.MethodPost, srv.URL+"/files",
		`{"title":"Intro","description":"","source_url":"https://youtu.be/x","category_id":1,"media_type":"video"}`)
	assert.Equal(t, http.StatusCreated, code)
	assert.JSONEq(t, `{"id":1,"message":"File added"}`, body)
	assert.Len(t, files.list, 1)

	code, body = do(t, http.MethodPost, srv.URL+"/files",
		`{"title":"x","source_url":"y","media_type":"audio"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body, "unknown media_type")

	code, _ = do(t, http.MethodDelete, srv.URL+"/files/1", "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = do(t, http.MethodDelete, srv.URL+"/files/abc", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAPI_EmptyListsAreArrays(t *testing.T) {
	srv, cats, _ := newTestAPI(t)
	cats.list = nil

	code, body := do(t, http.MethodGet, srv.URL+"/files", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, body)

	code, body = do(t, http.MethodGet, srv.URL+"/categories", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, body)
}

func TestAPI_ListFiles_Error(t *testing.T) {
	srv, _, files := newTestAPI(t)
	files.err = fmt.Errorf("db down")

	code, body := do(t, http.MethodGet, srv.URL+"/files", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Contains(t, body, "detail")
}

func TestAPI_Categories(t *testing.T) {
	srv, cats, _ := newTestAPI(t)

	code, body := do(t, http.MethodGet, srv.URL+"/categories", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[{"id":1,"name":"General"}]`, body)

	code, body = do(t, http.MethodPost, srv.URL+"/categories", `{"name":"Work"}`)
	assert.Equal(t, http.StatusCreated, code)
	assert.JSONEq(t, `{"id":2,"name":"Work"}`, body)

	code, _ = do(t, http.MethodPost, srv.URL+"/categories", `{"name":"Work"}`)
	assert.Equal(t, http.StatusBadRequest, code, "duplicate name")

	code, _ = do(t, http.MethodPost, srv.URL+"/categories", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = do(t, http.MethodDelete, srv.URL+"/categories/2", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"message":"Category deleted"}`, body)
	assert.Len(t, cats.list, 1)
}

func TestAPI_CORSPreflight(t *testing.T) {
	srv, _, _ := newTestAPI(t)

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/files", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestAPI_MetricsCountsRoutes(t *testing.T) {
	srv, _, _ := newTestAPI(t)

	do(t, http.MethodDelete, srv.URL+"/files/7", "")

	code, body := do(t, http.MethodGet, srv.URL+"/metrics", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `cloudio_http_requests_total{method="DELETE",route="/files/{id}",status="200"} 1`)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(fmt.Errorf("x: %w", ports.ErrInvalidInput)))
	assert.Equal(t, http.StatusBadRequest, statusFor(ports.ErrConflict))
	assert.Equal(t, http.StatusNotFound, statusFor(ports.ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, statusFor(fmt.Errorf("boom")))
}
