package views

import (
	"context"
	"fmt"
	"sync"

	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/Vovarama1992/go-utils/logger"
	"go.uber.org/zap"
)

func nopLogger() *logger.ZapLogger {
	return logger.NewZapLogger(zap.NewNop().Sugar())
}

// fakeAPI is an in-memory backend that records every call.
type fakeAPI struct {
	mu sync.Mutex

	calls      []string
	files      []models.File
	categories []models.Category
	results    []models.SearchResult
	nextID     int

	failSearch  bool
	failList    bool
	failCreate  bool
	failDelete  bool
	failCatCall bool
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) count(call string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeAPI) Search(_ context.Context, text string) ([]models.SearchResult, error) {
	f.record("POST /search " + text)
	if f.failSearch {
		return nil, fmt.Errorf("connection refused")
	}
	return f.results, nil
}

func (f *fakeAPI) ListFiles(context.Context) ([]models.File, error) {
	f.record("GET /files")
	if f.failList {
		return nil, fmt.Errorf("connection refused")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.File(nil), f.files...), nil
}

func (f *fakeAPI) ListCategories(context.Context) ([]models.Category, error) {
	f.record("GET /categories")
	if f.failList {
		return nil, fmt.Errorf("connection refused")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Category(nil), f.categories...), nil
}

func (f *fakeAPI) CreateFile(_ context.Context, nf models.NewFile) (int, error) {
	f.record("POST /files")
	if f.failCreate {
		return 0, fmt.Errorf("http 500")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.files = append([]models.File{{
		ID: f.nextID, Title: nf.Title, Description: nf.Description, SourceURL: nf.SourceURL,
		CategoryID: nf.CategoryID, MediaType: nf.MediaType,
	}}, f.files...)
	return f.nextID, nil
}

func (f *fakeAPI) DeleteFile(_ context.Context, id int) error {
	f.record(fmt.Sprintf("DELETE /files/%d", id))
	if f.failDelete {
		return fmt.Errorf("http 500")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.files[:0]
	for _, file := range f.files {
		if file.ID != id {
			kept = append(kept, file)
		}
	}
	f.files = kept
	return nil
}

func (f *fakeAPI) CreateCategory(_ context.Context, name string) (*models.Category, error) {
	f.record("POST /categories")
	if f.failCatCall {
		return nil, fmt.Errorf("http 400")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	c := models.Category{ID: f.nextID, Name: name}
	f.categories = append(f.categories, c)
	return &c, nil
}

func (f *fakeAPI) DeleteCategory(_ context.Context, id int) error {
	f.record(fmt.Sprintf("DELETE /categories/%d", id))
	if f.failCatCall {
		return fmt.Errorf("http 500")
	}
	return nil
}

type alerts struct{ msgs []string }

func (a *alerts) Alert(msg string) { a.msgs = append(a.msgs, msg) }

type answers struct {
	answer bool
	asked  []string
}

func (a *answers) Confirm(msg string) bool {
	a.asked = append(a.asked, msg)
	return a.answer
}
