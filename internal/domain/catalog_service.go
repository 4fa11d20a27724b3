package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/Vovarama1992/cloudio/internal/ports"
)

// CatalogService validates catalog mutations and announces them to the change feed.
type CatalogService struct {
	categories ports.CategoryRepository
	files      ports.FileRepository
	notifier   ports.ChangeNotifier
}

func NewCatalogService(
	categories ports.CategoryRepository,
	files ports.FileRepository,
	notifier ports.ChangeNotifier,
) *CatalogService {
	return &CatalogService{
		categories: categories,
		files:      files,
		notifier:   notifier,
	}
}

var _ ports.CatalogService = (*CatalogService)(nil)

func (s *CatalogService) ListFiles(ctx context.Context) ([]models.File, error) {
	return s.files.ListFiles(ctx)
}

func (s *CatalogService) CreateFile(ctx context.Context, file models.NewFile) (int, error) {
	if err := validateFile(file); err != nil {
		return 0, err
	}

	id, err := s.files.InsertFile(ctx, &file)
	if err != nil {
		return 0, err
	}
	s.changed()
	return id, nil
}

func (s *CatalogService) DeleteFile(ctx context.Context, id int) error {
	if err := s.files.DeleteFile(ctx, id); err != nil {
		return err
	}
	s.changed()
	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.ListCategories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ports.ErrInvalidInput)
	}

	c, err := s.categories.InsertCategory(ctx, name)
	if err != nil {
		return nil, err
	}
	s.changed()
	return c, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id int) error {
	if err := s.categories.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.changed()
	return nil
}

func (s *CatalogService) changed() {
	if s.notifier != nil {
		s.notifier.Notify(ports.EventCatalogChanged)
	}
}

func validateFile(f models.NewFile) error {
	switch {
	case strings.TrimSpace(f.Title) == "":
		return fmt.Errorf("%w: title is required", ports.ErrInvalidInput)
	case strings.TrimSpace(f.SourceURL) == "":
		return fmt.Errorf("%w: source_url is required", ports.ErrInvalidInput)
	case !f.MediaType.Valid():
		return fmt.Errorf("%w: unknown media_type %q", ports.ErrInvalidInput, f.MediaType)
	case f.CategoryID < 0:
		return fmt.Errorf("%w: category_id must not be negative", ports.ErrInvalidInput)
	}
	return nil
}
