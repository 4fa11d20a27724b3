package infra

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/Vovarama1992/cloudio/internal/ports"
)

type PostgresCategoryRepo struct {
	db DBTX
}

func NewPostgresCategoryRepo(db DBTX) ports.CategoryRepository {
	return &PostgresCategoryRepo{db: db}
}

func (r *PostgresCategoryRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

func (r *PostgresCategoryRepo) InsertCategory(ctx context.Context, name string) (*models.Category, error) {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id
	`
	c := &models.Category{Name: name}
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&c.ID); err != nil {
		return nil, mapPgError("insert category", err)
	}
	return c, nil
}

// DeleteCategory leaves files in place; the foreign key nulls their category_id.
func (r *PostgresCategoryRepo) DeleteCategory(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
