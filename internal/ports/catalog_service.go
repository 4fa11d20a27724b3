package ports

import (
	"context"

	"github.com/Vovarama1992/cloudio/internal/models"
)

type CatalogService interface {
	ListFiles(ctx context.Context) ([]models.File, error)
	CreateFile(ctx context.Context, file models.NewFile) (int, error)
	DeleteFile(ctx context.Context, id int) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}
