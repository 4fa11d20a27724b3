package ports

import (
	"context"

	"github.com/Vovarama1992/cloudio/internal/models"
)

type Searcher interface {
	Search(ctx context.Context, text string) ([]models.SearchResult, error)
}
