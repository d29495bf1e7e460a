package file

import (
	"context"
	"fmt"
	"time"

	"github.com/gabriel-vasile/mimetype"
	internal "github.com/frahmantamala/employee-management/internal"
	"github.com/google/uuid"
)

// ObjectStorage persists raw bytes under a key and returns a public URI.
type ObjectStorage interface {
	Put(ctx context.Context, key string, contentType string, body []byte) (string, error)
}

type Repository interface {
	Create(ctx context.Context, f *File) error
}

var allowedTypes = map[string]string{
	"image/jpeg": "jpeg",
	"image/png":  "png",
}

type Service struct {
	repo         Repository
	storage      ObjectStorage
	queryTimeout time.Duration
}

func NewService(repo Repository, storage ObjectStorage) *Service {
	return &Service{repo: repo, storage: storage}
}

// Upload validates the payload by sniffing its real content (the client's
// Content-Type header is not trusted), stores the object under a fresh key
// and records the row.
func (s *Service) Upload(ctx context.Context, userID uuid.UUID, data []byte) (*UploadResponse, error) {
	if len(data) == 0 {
		return nil, internal.NewValidationError("file is empty", internal.ErrCodeInvalidFileType)
	}
	if len(data) > MaxFileSize {
		return nil, internal.ErrFileTooLarge
	}

	mime := mimetype.Detect(data)
	ext, ok := allowedTypes[mime.String()]
	if !ok {
		return nil, internal.ErrInvalidFileType
	}

	ctx, cancel := internal.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	fileID := uuid.New()
	key := fmt.Sprintf("%s.%s", fileID, ext)

	uri, err := s.storage.Put(ctx, key, mime.String(), data)
	if err != nil {
		return nil, internal.NewInternalError("failed to store file", err)
	}

	f := &File{
		FileID:    fileID,
		UserID:    userID,
		URI:       uri,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, internal.NewInternalError("failed to record file", err)
	}

	return &UploadResponse{URI: uri}, nil
}
