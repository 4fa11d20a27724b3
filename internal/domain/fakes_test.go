package domain

import (
	"context"

	"github.com/Vovarama1992/cloudio/internal/models"
)

type fakeCategories struct {
	list      []models.Category
	inserted  []string
	deleted   []int
	insertErr error
	deleteErr error
}

func (f *fakeCategories) ListCategories(context.Context) ([]models.Category, error) {
	return f.list, nil
}

func (f *fakeCategories) InsertCategory(_ context.Context, name string) (*models.Category, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, name)
	return &models.Category{ID: len(f.inserted), Name: name}, nil
}

func (f *fakeCategories) DeleteCategory(_ context.Context, id int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeFiles struct {
	list       []models.File
	inserted   []models.NewFile
	deleted    []int
	searchArgs []string
	searchErr  error
	insertErr  error
}

func (f *fakeFiles) ListFiles(context.Context) ([]models.File, error) { return f.list, nil }

func (f *fakeFiles) InsertFile(_ context.Context, file *models.NewFile) (int, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.inserted = append(f.inserted, *file)
	return 100 + len(f.inserted), nil
}

func (f *fakeFiles) DeleteFile(_ context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeFiles) SearchFiles(_ context.Context, text string, _ int) ([]models.File, error) {
	f.searchArgs = append(f.searchArgs, text)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.list, nil
}

type fakeNotifier struct{ events []string }

func (n *fakeNotifier) Notify(event string) { n.events = append(n.events, event) }
