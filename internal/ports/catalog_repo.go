package ports

import (
	"context"

	"github.com/Vovarama1992/cloudio/internal/models"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	InsertCategory(ctx context.Context, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

type FileRepository interface {
	ListFiles(ctx context.Context) ([]models.File, error)
	InsertFile(ctx context.Context, file *models.NewFile) (int, error)
	DeleteFile(ctx context.Context, id int) error
	// SearchFiles matches title and description case-insensitively, newest first.
	SearchFiles(ctx context.Context, text string, limit int) ([]models.File, error)
}
