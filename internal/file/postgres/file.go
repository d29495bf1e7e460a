package postgres

import (
	"context"

	internal "github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/file"
	"github.com/jmoiron/sqlx"
)

type FileRepository struct {
	db *sqlx.DB
}

func NewFileRepository(db *sqlx.DB) file.Repository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(ctx context.Context, f *file.File) error {
	query := `INSERT INTO files (file_id, user_id, uri, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, f.FileID, f.UserID, f.URI, f.CreatedAt)
	if err != nil {
		return internal.FromPgError(err, "failed to record file")
	}
	return nil
}
