package file

import (
	"context"
	"errors"
	"io"
	"net/http"

	internal "github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/auth"
	"github.com/frahmantamala/employee-management/internal/transport"
	"github.com/frahmantamala/employee-management/pkg/logger"
	"github.com/google/uuid"
)

type ServiceAPI interface {
	Upload(ctx context.Context, userID uuid.UUID, data []byte) (*UploadResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

// Upload accepts a multipart form with a single "file" part. The request
// body is capped slightly above the file ceiling so oversized uploads are
// cut off during the read rather than buffered whole.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxFileSize+4096)
	if err := r.ParseMultipartForm(MaxFileSize + 4096); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.HandleServiceError(w, internal.ErrFileTooLarge)
			return
		}
		h.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	part, _, err := r.FormFile("file")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer part.Close()

	data, err := io.ReadAll(io.LimitReader(part, MaxFileSize+1))
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	resp, err := h.Service.Upload(r.Context(), user.ID, data)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("file uploaded", "user_id", user.ID, "uri", resp.URI)
	h.WriteJSON(w, http.StatusOK, resp)
}
