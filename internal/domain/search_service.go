package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/Vovarama1992/cloudio/internal/ports"
)

const (
	EngineSample  = "sample"
	EngineCatalog = "catalog"

	catalogSearchLimit = 50
)

func NewSearcher(engine string, files ports.FileRepository) (ports.Searcher, error) {
	switch engine {
	case "", EngineSample:
		return SampleSearcher{}, nil
	case EngineCatalog:
		return NewCatalogSearcher(files, catalogSearchLimit), nil
	}
	return nil, fmt.Errorf("unknown search engine %q", engine)
}

// SampleSearcher answers every query with two fixed placeholder results.
type SampleSearcher struct{}

func (SampleSearcher) Search(_ context.Context, text string) ([]models.SearchResult, error) {
	return []models.SearchResult{
		{Text: "Sample result 1: " + text, Source: "Source A"},
		{Text: "Sample result 2: hello world", Source: "Source B"},
	}, nil
}

// CatalogSearcher matches the query against catalog titles and descriptions.
type CatalogSearcher struct {
	files ports.FileRepository
	limit int
}

func NewCatalogSearcher(files ports.FileRepository, limit int) *CatalogSearcher {
	return &CatalogSearcher{files: files, limit: limit}
}

func (s *CatalogSearcher) Search(ctx context.Context, text string) ([]models.SearchResult, error) {
	out := make([]models.SearchResult, 0)
	if strings.TrimSpace(text) == "" {
		return out, nil
	}

	files, err := s.files.SearchFiles(ctx, text, s.limit)
	if err != nil {
		return nil, fmt.Errorf("catalog search: %w", err)
	}

	for _, f := range files {
		line := f.Title
		if f.Description != "" {
			line += ": " + f.Description
		}
		out = append(out, models.SearchResult{Source: f.CategoryName, Text: line})
	}
	return out, nil
}
