package file

import (
	"time"

	"github.com/google/uuid"
)

// MaxFileSize is the upload ceiling in bytes.
const MaxFileSize = 102400

// File records an uploaded object. Rows are append-only; re-uploading the
// same content produces a new row and a new URI.
type File struct {
	FileID    uuid.UUID `db:"file_id" json:"fileId"`
	UserID    uuid.UUID `db:"user_id" json:"-"`
	URI       string    `db:"uri" json:"uri"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// UploadResponse is the body returned after a successful upload.
type UploadResponse struct {
	URI string `json:"uri"`
}
