package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/Vovarama1992/cloudio/internal/ports"
)

// DefaultAPIURL is used when no override is configured.
const DefaultAPIURL = "http://localhost:8000"

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Method string
	Path   string
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s %s: http %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("%s %s: http %d: %s", e.Method, e.Path, e.Status, e.Detail)
}

// BackendClient talks to the catalog/search REST API. It never retries.
type BackendClient struct {
	baseURL string
	client  *http.Client
}

func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &BackendClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

var _ ports.BackendAPI = (*BackendClient)(nil)

func (c *BackendClient) BaseURL() string { return c.baseURL }

func (c *BackendClient) Search(ctx context.Context, text string) ([]models.SearchResult, error) {
	var out models.SearchResponse
	if err := c.do(ctx, http.MethodPost, "/search", models.SearchQuery{Text: text}, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *BackendClient) ListFiles(ctx context.Context) ([]models.File, error) {
	var out []models.File
	if err := c.do(ctx, http.MethodGet, "/files", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BackendClient) CreateFile(ctx context.Context, file models.NewFile) (int, error) {
	var out struct {
		ID int `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/files", file, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *BackendClient) DeleteFile(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/files/"+strconv.Itoa(id), nil, nil)
}

func (c *BackendClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BackendClient) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	var out models.Category
	if err := c.do(ctx, http.MethodPost, "/categories", models.NewCategory{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *BackendClient) DeleteCategory(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+strconv.Itoa(id), nil, nil)
}

func (c *BackendClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		j, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode: %w", method, path, err)
		}
		reader = bytes.NewReader(j)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Method: method, Path: path, Status: resp.StatusCode, Detail: errorDetail(raw)}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, path, err)
	}
	return nil
}

// errorDetail pulls {"detail": "..."} out of an error body, falling back to the raw text.
func errorDetail(raw []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return strings.TrimSpace(string(raw))
}
