package infra

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/Vovarama1992/cloudio/internal/ports"
)

const selectFiles = `
		SELECT f.id, f.title, COALESCE(f.description, ''), COALESCE(f.source_url, ''),
		       COALESCE(f.media_type, ''), COALESCE(c.id, 0), COALESCE(c.name, '')
		FROM files f
		LEFT JOIN categories c ON f.category_id = c.id
`

type PostgresFileRepo struct {
	db DBTX
}

func NewPostgresFileRepo(db DBTX) ports.FileRepository {
	return &PostgresFileRepo{db: db}
}

func (r *PostgresFileRepo) ListFiles(ctx context.Context) ([]models.File, error) {
	rows, err := r.db.QueryContext(ctx, selectFiles+`		ORDER BY f.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return scanFiles(rows)
}

func (r *PostgresFileRepo) InsertFile(ctx context.Context, file *models.NewFile) (int, error) {
	query := `
		INSERT INTO files (title, description, source_url, category_id, media_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	category := sql.NullInt64{Int64: int64(file.CategoryID), Valid: file.CategoryID > 0}

	var id int
	err := r.db.QueryRowContext(ctx, query,
		file.Title, file.Description, file.SourceURL, category, string(file.MediaType),
	).Scan(&id)
	if err != nil {
		return 0, mapPgError("insert file", err)
	}
	return id, nil
}

func (r *PostgresFileRepo) DeleteFile(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

func (r *PostgresFileRepo) SearchFiles(ctx context.Context, text string, limit int) ([]models.File, error) {
	query := selectFiles + `
		WHERE f.title ILIKE $1 OR f.description ILIKE $1
		ORDER BY f.id DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, "%"+escapeLike(text)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search files: %w", err)
	}
	return scanFiles(rows)
}

func scanFiles(rows *sql.Rows) ([]models.File, error) {
	defer rows.Close()

	out := make([]models.File, 0)
	for rows.Next() {
		var (
			f         models.File
			mediaType string
		)
		if err := rows.Scan(
			&f.ID,
			&f.Title,
			&f.Description,
			&f.SourceURL,
			&mediaType,
			&f.CategoryID,
			&f.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		f.MediaType = models.MediaType(mediaType)
		if f.CategoryID == 0 {
			f.CategoryName = models.UncategorizedName
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan files: %w", err)
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
